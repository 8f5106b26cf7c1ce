package config

const (
	apiBaseURLVar   = "API_BASE_URL"
	timeoutVar      = "REQUEST_TIMEOUT"
	pollIntervalVar = "DASHBOARD_POLL_INTERVAL"
)

type API struct{}

var _ APIConfig = API{}

// GetAPIBaseURL returns the base URL of the remote console API,
// e.g. "https://www3.apextrack.site/api". All resource paths are
// resolved relative to it.
func (API) GetAPIBaseURL() string {
	return GetEnv(apiBaseURLVar, "https://www3.apextrack.site/api")
}

// GetRequestTimeout returns the per-request timeout as a duration string.
// The gateway parses it and falls back to its own default on a bad value.
func (API) GetRequestTimeout() string {
	return GetEnv(timeoutVar, "30s")
}

func (API) GetDashboardPollInterval() string {
	return GetEnv(pollIntervalVar, "30s")
}
