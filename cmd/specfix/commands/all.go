package commands

import (
	"github.com/spf13/cobra"
	"github.com/walteh/specfix/cmd/specfix/opts"
	"github.com/walteh/specfix/pkg/fix/placeholder"
	"github.com/walteh/specfix/pkg/fix/statuscode"
)

// NewAllCmd creates a command running the widen pass and then the placeholder pass
func NewAllCmd(o *opts.RootOpts) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "all",
		Short: "Run widen, then placeholder",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := runPass(cmd.Context(), o, statuscode.Name, false, statuscode.New()); err != nil {
				return err
			}
			_, err := runPass(cmd.Context(), o, placeholder.Name, false, placeholder.New())
			return err
		},
	}

	return cmd
}
