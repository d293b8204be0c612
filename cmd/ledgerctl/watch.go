package main

import (
	"fmt"
	"io"
	"time"

	"school-erp/internal/dashboard"
	"school-erp/internal/models"

	"github.com/spf13/cobra"
)

func watchCmd(a *app) *cobra.Command {
	var (
		interval time.Duration
		query    string
	)

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Keep the transfer list on screen, refreshing on an interval",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if interval <= 0 {
				return fmt.Errorf("--interval must be positive")
			}

			out := cmd.OutOrStdout()
			page, err := a.page(cmd.Context())
			if err != nil {
				return err
			}
			page.SetQuery(query)

			render := func(err error) {
				writeWatchFrame(out, page.Transfers(), err, interval, time.Now())
			}
			render(nil)

			refresher := dashboard.NewRefresher(page, interval, a.logger, dashboard.WithOnRefresh(render))
			refresher.Start(cmd.Context())
			defer refresher.Stop()

			<-cmd.Context().Done()
			return nil
		},
	}

	cmd.Flags().DurationVarP(&interval, "interval", "i", 10*time.Second, "refresh interval")
	cmd.Flags().StringVarP(&query, "query", "q", "", "search text")

	return cmd
}

// writeWatchFrame clears the screen and draws one refresh of the transfer list
func writeWatchFrame(out io.Writer, transfers []models.Transfer, refreshErr error, interval time.Duration, now time.Time) {
	fmt.Fprint(out, "\033[H\033[2J")
	fmt.Fprintln(out, dashboard.TitleStyle.Render("Fund transfers"))
	if refreshErr != nil {
		fmt.Fprintln(out, dashboard.ErrorStyle.Render("refresh failed: "+refreshErr.Error()))
	}
	if err := dashboard.RenderTransfers(out, transfers); err != nil {
		fmt.Fprintln(out, dashboard.ErrorStyle.Render("render failed: "+err.Error()))
	}
	fmt.Fprintln(out, dashboard.SubtleStyle.Render(fmt.Sprintf("updated %s, every %s", now.Format(time.TimeOnly), interval)))
}
