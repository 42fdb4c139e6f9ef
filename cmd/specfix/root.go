package main

import (
	"context"
	"io"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/walteh/specfix/cmd/specfix/commands"
	"github.com/walteh/specfix/cmd/specfix/opts"
	"github.com/walteh/specfix/pkg/config"
	"github.com/walteh/specfix/pkg/log"
	"gitlab.com/tozd/go/errors"
)

type rootFlags struct {
	configFile string
	directory  string
	suffix     string
	debug      bool
}

// newRootCmd creates the root command with every subcommand attached
func newRootCmd() *cobra.Command {
	flags := &rootFlags{}
	rootOpts := &opts.RootOpts{}

	cmd := &cobra.Command{
		Use:   "specfix",
		Short: "Rewrite e2e spec files in place",
		Long: `specfix applies maintenance rewrites to the comprehensive e2e spec files.

Only files directly inside the target directory whose name ends with the
configured suffix are read. A file is written back only when its content changed.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			ctx := setupLogging(cmd.Context(), cmd.ErrOrStderr(), flags.debug)

			cfg, err := resolveConfig(ctx, cmd, flags)
			if err != nil {
				return err
			}

			rootOpts.Config = cfg
			reporter := log.New(cmd.OutOrStdout(), cmd.ErrOrStderr(), *zerolog.Ctx(ctx))
			cmd.SetContext(log.NewContext(ctx, reporter))
			return nil
		},
	}

	addRootFlags(cmd, flags)

	cmd.AddCommand(
		commands.NewWidenCmd(rootOpts),
		commands.NewPlaceholderCmd(rootOpts),
		commands.NewAllCmd(rootOpts),
		commands.NewCheckCmd(rootOpts),
		newVersionCmd(),
	)

	return cmd
}

// addRootFlags adds shared flags to the root command
func addRootFlags(cmd *cobra.Command, flags *rootFlags) {
	cmd.PersistentFlags().StringVarP(&flags.configFile, "config", "c", "", "config file path (.hcl, .yaml, .yml or .json)")
	cmd.PersistentFlags().StringVarP(&flags.directory, "dir", "C", config.DefaultDirectory, "directory holding the spec files")
	cmd.PersistentFlags().StringVar(&flags.suffix, "suffix", config.DefaultSuffix, "file name suffix of the files to rewrite")
	cmd.PersistentFlags().BoolVarP(&flags.debug, "debug", "d", false, "enable debug logging")
}

// resolveConfig layers an explicitly set flag over the config file over the defaults
func resolveConfig(ctx context.Context, cmd *cobra.Command, flags *rootFlags) (*config.Config, error) {
	cfg := config.Default()

	if flags.configFile != "" {
		loaded, err := config.LoadConfig(ctx, flags.configFile)
		if err != nil {
			return nil, errors.Errorf("loading config: %w", err)
		}
		cfg = loaded
	}

	if cmd.Flags().Changed("dir") {
		cfg.Directory = flags.directory
	}
	if cmd.Flags().Changed("suffix") {
		cfg.Suffix = flags.suffix
	}

	if err := cfg.Validate(); err != nil {
		return nil, errors.Errorf("validating config: %w", err)
	}

	zerolog.Ctx(ctx).Debug().Str("directory", cfg.Directory).Str("suffix", cfg.Suffix).Msg("resolved config")

	return cfg, nil
}

// setupLogging attaches a zerolog logger to ctx
func setupLogging(ctx context.Context, w io.Writer, debug bool) context.Context {
	level := zerolog.InfoLevel
	if debug {
		level = zerolog.DebugLevel
	}
	logger := zerolog.New(zerolog.ConsoleWriter{Out: w, TimeFormat: time.Kitchen}).
		Level(level).
		With().
		Timestamp().
		Logger()
	return logger.WithContext(ctx)
}
