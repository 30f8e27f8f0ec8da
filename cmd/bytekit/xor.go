package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/provide-io/bytekit/go/bytekit/pkg"
)

const defaultXorKey = "TACOS"

func newXorCmd(a *app) *cobra.Command {
	var key string

	cmd := &cobra.Command{
		Use:   "xor",
		Short: "Repeating-key XOR stdin and print it as hex",
		Long: `Repeating-key XOR stdin and print it as hex.

All of stdin is encrypted, including any trailing newline.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := stdinReader(cmd.InOrStdin())
			if err != nil {
				return err
			}
			data, err := io.ReadAll(in)
			if err != nil {
				return fmt.Errorf("reading stdin: %w", err)
			}

			hx, err := pkg.EncryptRepeatingHex(data, []byte(key))
			if err != nil {
				return fmt.Errorf("--key: %w", err)
			}
			a.logger.Debug("encrypted input", "bytes", len(data), "key_length", len(key))

			_, err = fmt.Fprintln(cmd.OutOrStdout(), hx)
			return err
		},
	}

	cmd.Flags().StringVarP(&key, "key", "k", defaultXorKey, "Repeating XOR key")
	return cmd
}
