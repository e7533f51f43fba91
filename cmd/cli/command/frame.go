package command

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"stompwire/pkg/stomp"
)

var commandCmd = &cobra.Command{
	Use:   "command",
	Short: "Frame command validation",
	Long:  `Validate frame command tokens against a protocol revision and list the commands a revision accepts`,
}

var checkCommandCmd = &cobra.Command{
	Use:   "check [token]",
	Short: "Check whether a token is a valid frame command",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		version, err := requestedVersion()
		if err != nil {
			return err
		}

		token := args[0]
		log.Debug().Str("token", token).Stringer("version", version).Msg("checking frame command")

		if stomp.ValidCommandFor(token, version) {
			fmt.Printf("✓ %s is a valid STOMP %s command\n", token, version)
		} else {
			fmt.Printf("✗ %s is not a valid STOMP %s command\n", token, version)
		}
		return nil
	},
}

var listCommandsCmd = &cobra.Command{
	Use:   "list",
	Short: "List the frame commands a protocol revision accepts",
	RunE: func(cmd *cobra.Command, args []string) error {
		version, err := requestedVersion()
		if err != nil {
			return err
		}

		commands := stomp.Commands(version)
		fmt.Printf("STOMP %s accepts %d commands:\n\n", version, len(commands))
		for _, c := range commands {
			fmt.Println(c)
		}
		return nil
	},
}

func init() {
	commandCmd.AddCommand(checkCommandCmd)
	commandCmd.AddCommand(listCommandsCmd)
	rootCmd.AddCommand(commandCmd)
}
