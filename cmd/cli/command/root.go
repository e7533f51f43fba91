package command

// root.go defines the root command for the stompwire CLI.
// global flags, config loading and logging are set up here.

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"stompwire/internal/config"
	"stompwire/pkg/stomp"
)

var (
	protocolVersion string // global flag for the protocol revision to validate against
	cfg             *config.Config
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "stompwire",
	Short: "stompwire - STOMP frame validation toolbox",
	Long: `stompwire inspects STOMP protocol primitives without touching the
network. It answers the questions a frame codec or connection negotiator
would ask:

- Is this token a valid frame command for a given protocol revision?
- What is the typed form of this raw header pair?
- Which revision does a list of offered versions resolve to?
- Which header does an ACK or NACK have to carry?

Use "stompwire [command] -h" to see all available commands.`,
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global persistent flags = available to all subcommands
	rootCmd.PersistentFlags().StringVar(&protocolVersion, "protocol-version", "",
		"protocol revision to validate against (default from config)")
}

func initConfig() {
	c, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error loading config:", err)
		os.Exit(1)
	}
	cfg = c

	level, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)
	if c.LogFormat == "text" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}
}

// requestedVersion resolves the --protocol-version flag against the
// configured default.
func requestedVersion() (stomp.Version, error) {
	if protocolVersion == "" {
		return cfg.Version(), nil
	}
	v, err := stomp.ParseVersion(protocolVersion)
	if err != nil {
		return 0, fmt.Errorf("invalid --protocol-version: %w", err)
	}
	return v, nil
}
