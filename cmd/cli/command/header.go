package command

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"stompwire/pkg/stomp"
)

var headerCmd = &cobra.Command{
	Use:   "header",
	Short: "Header normalization commands",
	Long:  `Normalize raw header pairs into their typed form and decode value formats like heart-beat`,
}

var formatHeaderCmd = &cobra.Command{
	Use:   "format [key] [value]",
	Short: "Normalize a single raw header pair",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		h, err := stomp.FormatHeader(args[0], args[1])
		if err != nil {
			return err
		}
		printHeader(h)
		return nil
	},
}

var formatAllHeadersCmd = &cobra.Command{
	Use:   "format-all [key:value]...",
	Short: "Normalize a whole set of raw header pairs",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		headers := stomp.Headers{}
		for _, arg := range args {
			key, value, ok := strings.Cut(arg, ":")
			if !ok {
				return fmt.Errorf("malformed header pair %q, expected key:value", arg)
			}
			headers[key] = value
		}

		log.Debug().Int("count", len(headers)).Msg("normalizing header set")
		for _, key := range headers.SortedKeys() {
			h, err := stomp.FormatHeader(key, headers[key])
			if err != nil {
				return err
			}
			printHeader(h)
		}
		return nil
	},
}

var heartBeatCmd = &cobra.Command{
	Use:   "heart-beat [value]",
	Short: "Decode a heart-beat header value",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		hb, err := stomp.ParseHeartBeat(args[0])
		if err != nil {
			return err
		}
		fmt.Printf("send: every %d ms | receive: every %d ms (0 = none)\n", hb.Send, hb.Receive)
		return nil
	},
}

func printHeader(h stomp.Header) {
	switch v := h.(type) {
	case stomp.IntHeader:
		fmt.Printf("%s: %d (integer)\n", v.Key, v.Value)
	case stomp.FloatHeader:
		fmt.Printf("%s: %g (float)\n", v.Key, v.Value)
	case stomp.TextHeader:
		fmt.Printf("%s: %s\n", v.Key, v.Value)
	}
}

func init() {
	headerCmd.AddCommand(formatHeaderCmd)
	headerCmd.AddCommand(formatAllHeadersCmd)
	headerCmd.AddCommand(heartBeatCmd)
	rootCmd.AddCommand(headerCmd)
}
