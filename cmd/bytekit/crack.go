package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/provide-io/bytekit/go/bytekit/pkg"
)

func newCrackCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "crack [HEX]",
		Short: "Recover the key of a single-byte XOR ciphertext",
		Long: `Recover the key of a single-byte XOR ciphertext.

Prints "<plaintext>:<score>" for the best scoring key. Without an argument
the hex is read from stdin and line breaks between its lines are ignored.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var hexText string
			if len(args) == 1 {
				hexText = args[0]
			} else {
				in, err := stdinReader(cmd.InOrStdin())
				if err != nil {
					return err
				}
				data, err := io.ReadAll(in)
				if err != nil {
					return fmt.Errorf("reading stdin: %w", err)
				}
				hexText = pkg.JoinHexLines(string(data))
			}

			guess, err := pkg.Crack(hexText, a.cfg.BreakerOptions(a.logger)...)
			if err != nil {
				return err
			}
			a.logger.Info("key recovered", "key", fmt.Sprintf("0x%02x", guess.Key), "score", guess.Score)

			_, err = fmt.Fprintln(cmd.OutOrStdout(), guess.String())
			return err
		},
	}
}
