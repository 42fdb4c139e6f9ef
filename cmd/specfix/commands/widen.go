package commands

import (
	"github.com/spf13/cobra"
	"github.com/walteh/specfix/cmd/specfix/opts"
	"github.com/walteh/specfix/pkg/fix/statuscode"
)

// NewWidenCmd creates the status-code widening command
func NewWidenCmd(o *opts.RootOpts) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "widen",
		Short: "Let status assertions also accept 500",
		Long: `Widen rewrites response status assertions so a degraded 500 passes.
It will:
1. Append ", 500, 401" to expect([...]).toContain(response.status()) arrays without 500
2. Turn expect(response.status()).toBe(401|403|404) into expect([code, 500]).toContain(response.status())`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := runPass(cmd.Context(), o, statuscode.Name, false, statuscode.New())
			return err
		},
	}

	return cmd
}
