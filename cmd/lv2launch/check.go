package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lvim-tech/lv2launch/pkg/toolcheck"
)

func newCheckCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Verify that lv2ls and the plugin hosts are installed",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			statuses := toolcheck.Check(ctx.requirements())

			rows := make([][]string, 0, len(statuses))
			for _, s := range statuses {
				state := "ok"
				where := s.Path
				if !s.Available {
					state = "missing"
					where = s.Detail
				}
				rows = append(rows, []string{s.Name, s.Command, yesNo(!s.Optional), state, where})
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable(
				[]string{"Tool", "Command", "Required", "Status", "Path"}, rows, nil))

			if missing := toolcheck.Missing(statuses, false); len(missing) > 0 {
				return &toolcheck.ToolsMissingError{Missing: missing}
			}
			return nil
		},
	}
}
