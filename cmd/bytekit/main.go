package main

import (
	"fmt"
	"io"
	"os"
	"runtime/debug"
	"time"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"github.com/provide-io/bytekit/go/bytekit/internal/config"
	"github.com/provide-io/bytekit/go/bytekit/pkg/breaker"
	"github.com/provide-io/bytekit/go/bytekit/pkg/logging"
	"github.com/provide-io/bytekit/go/bytekit/pkg/score"
)

const version = "0.1.0"

// app carries settings shared by every subcommand.
type app struct {
	logLevel    string
	policy      string
	spaceWeight float64
	keys        keyRangeValue
	strict      bool

	cfg        config.Config
	logger     hclog.Logger
	logOut     io.Writer
	releaseLog func() error
}

// buildTimestamp reports when the binary was built: the VCS commit time
// embedded by the toolchain, else the executable's mtime, else now.
func buildTimestamp() string {
	if info, ok := debug.ReadBuildInfo(); ok {
		for _, setting := range info.Settings {
			if setting.Key == "vcs.time" {
				if t, err := time.Parse(time.RFC3339, setting.Value); err == nil {
					return t.UTC().Format(time.RFC3339)
				}
			}
		}
	}
	if exePath, err := os.Executable(); err == nil {
		if stat, err := os.Stat(exePath); err == nil {
			return stat.ModTime().UTC().Format(time.RFC3339)
		}
	}
	return time.Now().UTC().Format(time.RFC3339)
}

func newRootCmd() (*cobra.Command, *app) {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:           "bytekit",
		Short:         "Hex, base64, and XOR tools with single-byte XOR cryptanalysis",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}
	rootCmd.SetVersionTemplate(fmt.Sprintf("bytekit %s\nBuilt: %s\n", version, buildTimestamp()))

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&a.logLevel, "log-level", "", "Log level (trace, debug, info, warn, error, json:<level>)")
	flags.StringVar(&a.policy, "policy", "", "Score aggregation (additive, multiplicative)")
	flags.Float64Var(&a.spaceWeight, "space-weight", score.DefaultSpaceWeight, "Score weight of the space character")
	flags.Var(&a.keys, "keys", "Candidate keys (printable, letters, all, or hex lo-hi)")
	flags.BoolVar(&a.strict, "strict", false, "Skip keys whose plaintext is not valid UTF-8")
	rootCmd.Flags().BoolP("version", "V", false, "Show version information")

	rootCmd.AddCommand(
		newConvertCmd(a),
		newCrackCmd(a),
		newDetectCmd(a),
		newXorCmd(a),
	)
	return rootCmd, a
}

// setup resolves configuration: flags win over the environment.
func (a *app) setup(cmd *cobra.Command) error {
	a.cfg = config.Load()
	flags := cmd.Flags()

	if flags.Changed("log-level") {
		a.cfg.LogLevel = a.logLevel
	}
	if flags.Changed("policy") {
		p, err := score.ParsePolicy(a.policy)
		if err != nil {
			return err
		}
		a.cfg.ScorePolicy = p
	}
	if flags.Changed("space-weight") {
		if a.spaceWeight < 0 {
			return fmt.Errorf("--space-weight must not be negative, got %v", a.spaceWeight)
		}
		a.cfg.SpaceWeight = a.spaceWeight
	}
	if a.keys.set {
		a.cfg.Keys = a.keys.r
	}
	if flags.Changed("strict") {
		a.cfg.TextPolicy = breaker.Permissive
		if a.strict {
			a.cfg.TextPolicy = breaker.Strict
		}
	}

	a.logOut, a.releaseLog = logging.Output()
	a.logger = logging.NewLogger("bytekit", a.cfg.LogLevel, a.logOut)
	a.cfg.LogWarnings(a.logger)
	a.logger.Debug("configuration resolved",
		"policy", a.cfg.ScorePolicy,
		"space_weight", a.cfg.SpaceWeight,
		"keys", a.cfg.Keys,
		"text", a.cfg.TextPolicy)
	return nil
}

// close releases the log destination opened by setup.
func (a *app) close() error {
	if a.releaseLog == nil {
		return nil
	}
	release := a.releaseLog
	a.releaseLog = nil
	return release()
}

func main() {
	rootCmd, a := newRootCmd()
	err := rootCmd.Execute()
	if cerr := a.close(); err == nil && cerr != nil {
		err = fmt.Errorf("closing log: %w", cerr)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
