package resources

import (
	"context"

	"github.com/apextrack/go-admin-console/gateway"
)

type DashboardClient struct {
	gw *gateway.Gateway
}

func NewDashboardClient(gw *gateway.Gateway) *DashboardClient {
	return &DashboardClient{gw: gw}
}

type DashboardSummary struct {
	TodayClicks  int     `json:"today_clicks"`
	TodayLeads   int     `json:"today_leads"`
	TodayRevenue float64 `json:"today_revenue"`
	TodayEPC     float64 `json:"today_epc"`
}

type RecentClick struct {
	SubID            string `json:"sub_id"`
	OfferName        string `json:"offer_name"`
	IPAddress        string `json:"ip_address"`
	CountryCode      string `json:"country_code"`
	OS               string `json:"os"`
	DeviceType       string `json:"device_type"`
	RedirectTypeUsed string `json:"redirect_type_used"`
	CreatedAt        string `json:"created_at"`
}

type PerformanceRow struct {
	SubID       string  `json:"sub_id"`
	Hits        int     `json:"hits"`
	Conversions int     `json:"conversions"`
	Revenue     float64 `json:"revenue"`
	CR          float64 `json:"cr"`
	EPC         float64 `json:"epc"`
}

type RecentLead struct {
	SubID       string  `json:"sub_id"`
	Payout      float64 `json:"payout"`
	CountryCode string  `json:"country_code"`
	DeviceType  string  `json:"device_type"`
	IPAddress   string  `json:"ip_address"`
	CreatedAt   string  `json:"created_at"`
}

type DashboardData struct {
	Summary           DashboardSummary `json:"summary"`
	RecentClicks      []RecentClick    `json:"recent_clicks"`
	PerformanceReport []PerformanceRow `json:"performance_report"`
	RecentLeads       []RecentLead     `json:"recent_leads"`
}

// Get fetches the aggregated dashboard view. Data is always fetched
// fresh; there is no client-side cache.
func (c *DashboardClient) Get(ctx context.Context) (*DashboardData, error) {
	var data DashboardData
	if err := c.gw.Do(ctx, "GET", "/dashboard", nil, &data); err != nil {
		return nil, err
	}
	return &data, nil
}
