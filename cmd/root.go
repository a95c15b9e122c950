package cmd

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/ccwc/ccwc"
	"github.com/ccwc/ccwc/conf"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	_ "github.com/ccwc/ccwc/wc"
)

// newRoot returns the ccwc command for args. Every argument belongs to the
// ccwc runnable, which follows the traditional getopt rules rather than
// pflag's, so cobra is handed none of them and cannot mistake a file name
// for one of its own subcommands.
func newRoot(args []string) *cobra.Command {
	root := &cobra.Command{
		Use:                "ccwc [-clmw] [file ...]",
		Short:              "Print newline, word, byte and character counts for each file",
		Args:               cobra.NoArgs,
		DisableFlagParsing: true,
		SilenceErrors:      true,
		SilenceUsage:       true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := conf.New()
			if err != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "ccwc: config: %v\n", err)
				return err
			}

			logger, err := newLogger(cfg, cmd.ErrOrStderr())
			if err != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "ccwc: config: %v\n", err)
				return err
			}

			return ccwc.Run(ccwc.Context{
				Context: cmd.Context(),
				Stdout:  cmd.OutOrStdout(),
				Stderr:  cmd.ErrOrStderr(),
				Log:     logger,
			}, "ccwc", args...)
		},
	}
	root.CompletionOptions.DisableDefaultCmd = true
	root.SetArgs([]string{})
	return root
}

func newLogger(cfg *conf.Config, w io.Writer) (zerolog.Logger, error) {
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		return zerolog.Nop(), err
	}

	out := w
	switch cfg.LogFormat {
	case "json":
	case "console", "":
		out = zerolog.ConsoleWriter{Out: w, NoColor: true}
	default:
		return zerolog.Nop(), fmt.Errorf("unknown log format %q", cfg.LogFormat)
	}

	return zerolog.New(out).Level(level).With().Timestamp().Logger(), nil
}

// Execute runs ccwc with the process arguments and exits 1 on failure.
// Every error has already been reported by the time it gets here.
func Execute() {
	root := newRoot(os.Args[1:])
	if err := root.ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}
