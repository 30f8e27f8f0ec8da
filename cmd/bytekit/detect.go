package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/provide-io/bytekit/go/bytekit/pkg"
	"github.com/provide-io/bytekit/go/bytekit/pkg/batch"
)

func newDetectCmd(a *app) *cobra.Command {
	var top int

	cmd := &cobra.Command{
		Use:   "detect [FILE]",
		Short: "Break every hex line of a file and report each best guess",
		Long: `Break every hex line of a file and report each best guess.

Prints "<score>,<plaintext>" per line in input order. Lines that fail to
decode are logged and skipped. Use --top to print only the best scoring
lines, or pipe through "sort -rn | head -n 1". Reads stdin without FILE.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var in io.Reader
			if len(args) == 1 {
				f, err := os.Open(args[0])
				if err != nil {
					return err
				}
				defer f.Close()
				in = f
			} else {
				r, err := stdinReader(cmd.InOrStdin())
				if err != nil {
					return err
				}
				in = r
			}

			results, err := pkg.Detect(in, a.logger.Named("detect"), a.cfg.BreakerOptions(a.logger)...)
			if err != nil {
				return err
			}
			if top > 0 {
				results = batch.Top(results, top)
			}

			out := cmd.OutOrStdout()
			for _, r := range results {
				if r.Err != nil {
					continue
				}
				if _, err := fmt.Fprintln(out, r.String()); err != nil {
					return err
				}
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&top, "top", "n", 0, "Print only the N best scoring lines (0 prints all, in input order)")
	return cmd
}
