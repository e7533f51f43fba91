package command

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"stompwire/pkg/stomp"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Protocol version negotiation commands",
	Long:  `Resolve version descriptors the way connection negotiation does and look up version-dependent header rules`,
}

var negotiateCmd = &cobra.Command{
	Use:   "negotiate [version]...",
	Short: "Pick the highest offered protocol revision",
	RunE: func(cmd *cobra.Command, args []string) error {
		v, err := stomp.NegotiateVersion(args)
		if err != nil {
			return err
		}

		log.Debug().Strs("offered", args).Stringer("selected", v).Msg("negotiated version")
		if len(args) == 0 {
			fmt.Printf("no versions offered, falling back to STOMP %s\n", v)
		} else {
			fmt.Printf("negotiated STOMP %s\n", v)
		}
		return nil
	},
}

var ackHeaderCmd = &cobra.Command{
	Use:   "ack-header [version]",
	Short: "Show which header an ACK/NACK must carry for a revision",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var v stomp.Version
		var err error
		if len(args) == 1 {
			v, err = stomp.ParseVersion(args[0])
		} else {
			v, err = requestedVersion()
		}
		if err != nil {
			return err
		}

		fmt.Printf("STOMP %s acknowledges via the %q header\n", v, stomp.AckHeaderKey(v))
		return nil
	},
}

func init() {
	versionCmd.AddCommand(negotiateCmd)
	versionCmd.AddCommand(ackHeaderCmd)
	rootCmd.AddCommand(versionCmd)
}
