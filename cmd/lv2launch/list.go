package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/lvim-tech/lv2launch/pkg/logging"
	"github.com/lvim-tech/lv2launch/pkg/view"
)

func newListCommand(ctx *commandContext) *cobra.Command {
	var filter string
	var idsOnly bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print the plugin catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := *logging.FromContext(cmd.Context())

			if err := ctx.gateDiscovery(); err != nil {
				return err
			}

			cat, err := ctx.loadCatalog(cmd.Context())
			if err != nil {
				if cat.Len() == 0 {
					return err
				}
				logger.Warn().Err(err).Msg("catalog is incomplete")
				fmt.Fprintf(cmd.ErrOrStderr(), "Warning: %v\n", err)
			}
			if m, ok := cat.Mismatch(); ok {
				fmt.Fprintf(cmd.ErrOrStderr(), "Warning: %d names but %d identifiers; extra lines ignored\n", m.Names, m.Identifiers)
			}

			v := view.New(cat)
			v.SetQuery(filter)
			out := cmd.OutOrStdout()

			if idsOnly {
				for _, e := range v.Visible() {
					fmt.Fprintln(out, e.Identifier)
				}
				return nil
			}

			rows := make([][]string, 0, v.Len())
			for i, e := range v.Visible() {
				rows = append(rows, []string{strconv.Itoa(i + 1), e.Name, e.Identifier})
			}
			fmt.Fprintln(out, renderTable([]string{"#", "Name", "Identifier"}, rows,
				[]columnAlignment{alignRight, alignLeft, alignLeft}))
			fmt.Fprintf(out, "%d of %d plugins\n", v.Len(), v.Total())
			return nil
		},
	}

	cmd.Flags().StringVarP(&filter, "filter", "f", "", "Only list plugins whose name contains this text")
	cmd.Flags().BoolVar(&idsOnly, "ids", false, "Print identifiers only, one per line")
	return cmd
}
