package main

import (
	"errors"
	"fmt"
	"strconv"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"companydir/pkg/client"
	"companydir/pkg/filter"
	"companydir/pkg/insights"
	"companydir/pkg/ui"
)

// fail logs the underlying error and returns the static message shown to
// the user.
func (a *app) fail(op string, err error) error {
	a.logger.Debug(op+" failed", zap.Error(err))
	return errors.New(client.DisplayError(err))
}

func (a *app) listCmd() *cobra.Command {
	var (
		criteria filter.Criteria
		sortBy   string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List companies, optionally filtered",
		Long: `Prints the company table. Filters combine: a company is listed only when
it matches the search term and every tag axis that has a selection.

Example:
  directory list --search acme --industry Fintech --location "San Francisco"`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			all, err := a.client.ListCompanies(cmd.Context())
			if err != nil {
				return a.fail("list companies", err)
			}

			shown := filter.Apply(all, criteria)
			switch sortBy {
			case "":
			case "valuation":
				shown = filter.SortByValuation(shown)
			case "name":
				shown = filter.SortByName(shown)
			default:
				return fmt.Errorf("unknown sort %q (want valuation or name)", sortBy)
			}

			a.logger.Debug("listing companies", zap.Int("total", len(all)), zap.Int("shown", len(shown)))
			fmt.Fprintln(cmd.OutOrStdout(), ui.CompanyTable(shown, -1, ui.DefaultStyles()))
			return nil
		},
	}

	cmd.Flags().StringVarP(&criteria.Search, "search", "s", "", "Case-insensitive search over name, industries and location")
	cmd.Flags().StringArrayVar(&criteria.Industries, "industry", nil, "Industry tag (repeatable)")
	cmd.Flags().StringArrayVar(&criteria.Locations, "location", nil, "Location tag (repeatable)")
	cmd.Flags().StringVar(&sortBy, "sort", "", "Sort by valuation or name")
	return cmd
}

func (a *app) showCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show one company in detail",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil || id <= 0 {
				return fmt.Errorf("invalid company id %q", args[0])
			}

			c, err := a.client.GetCompany(cmd.Context(), id)
			if err != nil {
				return a.fail("get company", err)
			}
			fmt.Fprint(cmd.OutOrStdout(), ui.Detail(c, ui.DefaultStyles()))
			return nil
		},
	}
}

func (a *app) insightsCmd() *cobra.Command {
	var (
		groupBy string
		width   int
	)

	cmd := &cobra.Command{
		Use:   "insights",
		Short: "Show the distribution and valuation charts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			key, ok := insights.GroupBy(groupBy)
			if !ok {
				return fmt.Errorf("unknown group %q (want funding, country or industry)", groupBy)
			}

			all, err := a.client.ListCompanies(cmd.Context())
			if err != nil {
				return a.fail("list companies", err)
			}
			vals, err := a.client.ValuationRanking(cmd.Context())
			if err != nil {
				return a.fail("valuation ranking", err)
			}

			styles := ui.DefaultStyles()
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.PieChart("Companies by "+groupBy, insights.Distribution(all, key), width, styles))
			fmt.Fprintln(out, ui.BarChart(insights.ValuationRanking(vals), width, styles))
			return nil
		},
	}

	cmd.Flags().StringVar(&groupBy, "group-by", "funding", "Distribution key: funding, country or industry")
	cmd.Flags().IntVar(&width, "width", 40, "Chart width in cells")
	return cmd
}

func (a *app) browseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "browse",
		Short: "Open the interactive browser",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p := tea.NewProgram(ui.NewBrowser(a.client, a.timeout), tea.WithAltScreen(), tea.WithContext(cmd.Context()))
			if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
				return fmt.Errorf("browser: %w", err)
			}
			return nil
		},
	}
}
