package main

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/provide-io/bytekit/go/bytekit/pkg/operations"
)

func newConvertCmd(a *app) *cobra.Command {
	var from, to string

	cmd := &cobra.Command{
		Use:   "convert [TEXT...]",
		Short: "Convert between encodings (hex to base64 by default)",
		Long: `Convert between encodings.

Each argument, or each non-blank stdin line, is decoded with the --from
chain and encoded with the --to chain. Chains are pipe-separated operation
names such as "hex|base64"; "raw" is no encoding.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			fromOps, err := operations.ParseChain(from)
			if err != nil {
				return err
			}
			toOps, err := operations.ParseChain(to)
			if err != nil {
				return err
			}
			a.logger.Debug("converting", "from", operations.ChainToString(fromOps), "to", operations.ChainToString(toOps))

			inputs := args
			if len(inputs) == 0 {
				in, err := stdinReader(cmd.InOrStdin())
				if err != nil {
					return err
				}
				scanner := bufio.NewScanner(in)
				for scanner.Scan() {
					if line := strings.TrimSpace(scanner.Text()); line != "" {
						inputs = append(inputs, line)
					}
				}
				if err := scanner.Err(); err != nil {
					return fmt.Errorf("reading stdin: %w", err)
				}
			}

			out := cmd.OutOrStdout()
			for _, input := range inputs {
				result, err := operations.Transcode([]byte(input), fromOps, toOps)
				if err != nil {
					return err
				}
				if _, err := fmt.Fprintln(out, string(result)); err != nil {
					return err
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&from, "from", "hex", "Encoding chain of the input")
	cmd.Flags().StringVar(&to, "to", "base64", "Encoding chain of the output")
	return cmd
}
