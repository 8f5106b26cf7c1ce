package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/apextrack/go-admin-console/dashboard"
	"github.com/apextrack/go-admin-console/resources"
)

var watchDashboard bool

var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Show the dashboard summary",
	RunE: func(cmd *cobra.Command, args []string) error {
		ok, err := console.admit(cmd, viewDashboard)
		if err != nil || !ok {
			return err
		}
		if !watchDashboard {
			return console.showDashboard(cmd.Context())
		}
		return console.watchDashboard(cmd.Context())
	},
}

func (a *app) showDashboard(ctx context.Context) error {
	data, err := a.dashboard.Get(ctx)
	if err != nil {
		return err
	}
	renderDashboard(data)
	return nil
}

// watchDashboard polls until interrupted.
func (a *app) watchDashboard(ctx context.Context) error {
	interval, err := time.ParseDuration(a.cfg.GetDashboardPollInterval())
	if err != nil || interval <= 0 {
		interval = 30 * time.Second
	}

	poller, err := dashboard.NewPoller(a.dashboard, a.store, renderDashboard,
		dashboard.WithInterval(interval),
		dashboard.WithLogger(a.log),
	)
	if err != nil {
		return err
	}

	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()
	return poller.Run(ctx)
}

func renderDashboard(data *resources.DashboardData) {
	fmt.Println("Today")
	renderTable(
		[]string{"Clicks", "Leads", "Revenue", "EPC"},
		[][]string{{
			strconv.Itoa(data.Summary.TodayClicks),
			strconv.Itoa(data.Summary.TodayLeads),
			fmt.Sprintf("$%.2f", data.Summary.TodayRevenue),
			fmt.Sprintf("$%.2f", data.Summary.TodayEPC),
		}},
	)

	if len(data.PerformanceReport) > 0 {
		fmt.Println("\nPerformance")
		rows := make([][]string, 0, len(data.PerformanceReport))
		for _, row := range data.PerformanceReport {
			rows = append(rows, []string{
				row.SubID,
				strconv.Itoa(row.Hits),
				strconv.Itoa(row.Conversions),
				fmt.Sprintf("$%.2f", row.Revenue),
				fmt.Sprintf("%.2f%%", row.CR),
				fmt.Sprintf("$%.2f", row.EPC),
			})
		}
		renderTable([]string{"Sub ID", "Hits", "Conversions", "Revenue", "CR", "EPC"}, rows)
	}

	if len(data.RecentClicks) > 0 {
		fmt.Println("\nRecent clicks")
		rows := make([][]string, 0, len(data.RecentClicks))
		for _, click := range data.RecentClicks {
			rows = append(rows, []string{
				click.CreatedAt, click.SubID, click.OfferName,
				click.CountryCode, click.DeviceType, click.RedirectTypeUsed,
			})
		}
		renderTable([]string{"Time", "Sub ID", "Offer", "Country", "Device", "Redirect"}, rows)
	}

	if len(data.RecentLeads) > 0 {
		fmt.Println("\nRecent leads")
		rows := make([][]string, 0, len(data.RecentLeads))
		for _, lead := range data.RecentLeads {
			rows = append(rows, []string{
				lead.CreatedAt, lead.SubID, lead.CountryCode,
				lead.DeviceType, fmt.Sprintf("$%.2f", lead.Payout),
			})
		}
		renderTable([]string{"Time", "Sub ID", "Country", "Device", "Payout"}, rows)
	}
}

func init() {
	dashboardCmd.Flags().BoolVar(&watchDashboard, "watch", false, "keep polling the dashboard")
	rootCmd.AddCommand(dashboardCmd)
}
