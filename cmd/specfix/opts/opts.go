package opts

import (
	"github.com/walteh/specfix/pkg/config"
)

// RootOpts contains shared options used by all commands.
// It is populated by the root command before any subcommand runs; the
// reporter travels in the command context (see log.FromContext).
type RootOpts struct {
	Config *config.Config
}
