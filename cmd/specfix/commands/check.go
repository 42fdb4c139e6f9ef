package commands

import (
	"github.com/spf13/cobra"
	"github.com/walteh/specfix/cmd/specfix/opts"
	"github.com/walteh/specfix/pkg/fix/placeholder"
	"github.com/walteh/specfix/pkg/fix/statuscode"
	"gitlab.com/tozd/go/errors"
)

// ErrFilesNeedFixing is returned by check when a run would change files
var ErrFilesNeedFixing = errors.Base("files need fixing")

// NewCheckCmd creates a dry-run command that fails when any file would change
func NewCheckCmd(o *opts.RootOpts) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Report files that widen or placeholder would change",
		Long: `Check runs both rewrites without writing anything.
It exits non-zero when at least one file would change, which makes it usable in CI.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			summary, err := runPass(cmd.Context(), o, "check", true, statuscode.New(), placeholder.New())
			if err != nil {
				return err
			}
			if len(summary.Fixed) > 0 {
				return errors.Errorf("%d file(s) would change: %w", len(summary.Fixed), ErrFilesNeedFixing)
			}
			return nil
		},
	}

	return cmd
}
