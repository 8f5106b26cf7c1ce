package resources

import (
	"context"
	"net/url"

	"github.com/apextrack/go-admin-console/gateway"
	apierrors "github.com/apextrack/go-admin-console/internal/errors"
)

type ReportsClient struct {
	gw *gateway.Gateway
}

func NewReportsClient(gw *gateway.Gateway) *ReportsClient {
	return &ReportsClient{gw: gw}
}

type ReportView string

const (
	ReportViewSummary     ReportView = "summary"
	ReportViewClicks      ReportView = "clicks"
	ReportViewConversions ReportView = "conversions"
	ReportViewBreakdown   ReportView = "breakdown"
)

// ReportQuery is rebuilt per query and never persisted.
type ReportQuery struct {
	View        ReportView
	StartDate   string // inclusive, YYYY-MM-DD
	EndDate     string // inclusive, YYYY-MM-DD
	Username    string // actor filter, defaults to "all"
	BreakdownBy string // grouping dimension, required iff View is breakdown
}

// Validate checks the query before it reaches the network.
func (q ReportQuery) Validate() error {
	switch q.View {
	case ReportViewSummary, ReportViewClicks, ReportViewConversions, ReportViewBreakdown:
	default:
		return &apierrors.ValidationError{Field: "view", Reason: "unknown report view"}
	}
	if q.View == ReportViewBreakdown && q.BreakdownBy == "" {
		return &apierrors.ValidationError{Field: "breakdown_by", Reason: "required for the breakdown view"}
	}
	return nil
}

func (q ReportQuery) queryString() string {
	values := url.Values{}
	if q.StartDate != "" {
		values.Set("start_date", q.StartDate)
	}
	if q.EndDate != "" {
		values.Set("end_date", q.EndDate)
	}
	username := q.Username
	if username == "" {
		username = "all"
	}
	values.Set("username", username)
	if q.BreakdownBy != "" {
		values.Set("breakdown_by", q.BreakdownBy)
	}
	return values.Encode()
}

// ReportRow is the superset of the per-view row shapes; each view fills
// its own subset and leaves the rest zero.
type ReportRow struct {
	Username         string  `json:"username,omitempty"`
	Hits             int     `json:"hits,omitempty"`
	UniqueClicks     int     `json:"unique_clicks,omitempty"`
	Leads            int     `json:"leads,omitempty"`
	ApprovedLeads    int     `json:"approved_leads,omitempty"`
	CR               float64 `json:"cr,omitempty"`
	TotalPayout      float64 `json:"total_payout,omitempty"`
	CreatedAt        string  `json:"created_at,omitempty"`
	IPAddress        string  `json:"ip_address,omitempty"`
	CountryCode      string  `json:"country_code,omitempty"`
	DeviceType       string  `json:"device_type,omitempty"`
	ClickSubID       string  `json:"click_subid,omitempty"`
	ClickCountryCode string  `json:"click_country_code,omitempty"`
	Status           string  `json:"status,omitempty"`
	Payout           float64 `json:"payout,omitempty"`
	DimensionValue   string  `json:"dimension_value,omitempty"`
}

type ReportResult struct {
	Data []ReportRow `json:"data"`
}

// Run executes the report query.
func (c *ReportsClient) Run(ctx context.Context, query ReportQuery) (*ReportResult, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var result ReportResult
	path := "/reports/" + string(query.View) + "?" + query.queryString()
	if err := c.gw.Do(ctx, "GET", path, nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}
