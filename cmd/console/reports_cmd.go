package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/apextrack/go-admin-console/resources"
)

var (
	reportStartDate   string
	reportEndDate     string
	reportUsername    string
	reportBreakdownBy string
)

var reportsCmd = &cobra.Command{
	Use:       "reports <view>",
	Short:     "Run a report",
	Long:      "Run a report. Views: summary, clicks, conversions, breakdown.",
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"summary", "clicks", "conversions", "breakdown"},
	RunE: func(cmd *cobra.Command, args []string) error {
		ok, err := console.admit(cmd, viewReports)
		if err != nil || !ok {
			return err
		}

		view := resources.ReportView(args[0])
		result, err := console.reports.Run(cmd.Context(), resources.ReportQuery{
			View:        view,
			StartDate:   reportStartDate,
			EndDate:     reportEndDate,
			Username:    reportUsername,
			BreakdownBy: reportBreakdownBy,
		})
		if err != nil {
			return err
		}
		if len(result.Data) == 0 {
			fmt.Println("No data available for the selected filters.")
			return nil
		}
		renderReport(view, result)
		return nil
	},
}

func renderReport(view resources.ReportView, result *resources.ReportResult) {
	rows := make([][]string, 0, len(result.Data))
	switch view {
	case resources.ReportViewClicks:
		for _, row := range result.Data {
			rows = append(rows, []string{row.CreatedAt, row.Username, row.IPAddress, row.CountryCode, row.DeviceType})
		}
		renderTable([]string{"Date", "User", "IP", "Country", "Device"}, rows)
	case resources.ReportViewConversions:
		for _, row := range result.Data {
			rows = append(rows, []string{
				row.CreatedAt, row.ClickSubID, row.ClickCountryCode,
				row.Status, fmt.Sprintf("$%.2f", row.Payout),
			})
		}
		renderTable([]string{"Date", "Sub ID", "Country", "Status", "Payout"}, rows)
	case resources.ReportViewBreakdown:
		for _, row := range result.Data {
			rows = append(rows, []string{
				row.DimensionValue, strconv.Itoa(row.Hits), strconv.Itoa(row.UniqueClicks),
				strconv.Itoa(row.Leads), fmt.Sprintf("%.2f%%", row.CR), fmt.Sprintf("$%.2f", row.TotalPayout),
			})
		}
		renderTable([]string{"Dimension", "Hits", "Unique", "Conversions", "CR", "Payout"}, rows)
	default:
		for _, row := range result.Data {
			rows = append(rows, []string{
				row.Username, strconv.Itoa(row.Hits), strconv.Itoa(row.UniqueClicks),
				strconv.Itoa(row.Leads), strconv.Itoa(row.ApprovedLeads),
				fmt.Sprintf("%.2f%%", row.CR), fmt.Sprintf("$%.2f", row.TotalPayout),
			})
		}
		renderTable([]string{"User", "Hits", "Unique", "Leads", "Approved", "CR", "Payout"}, rows)
	}
}

func init() {
	reportsCmd.Flags().StringVar(&reportStartDate, "start", "", "start date (YYYY-MM-DD)")
	reportsCmd.Flags().StringVar(&reportEndDate, "end", "", "end date (YYYY-MM-DD)")
	reportsCmd.Flags().StringVar(&reportUsername, "username", "all", "actor filter")
	reportsCmd.Flags().StringVar(&reportBreakdownBy, "breakdown-by", "", "grouping dimension for the breakdown view")
	rootCmd.AddCommand(reportsCmd)
}
