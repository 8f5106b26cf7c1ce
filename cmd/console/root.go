package main

import (
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/common-nighthawk/go-figure"
	"github.com/fatih/color"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/apextrack/go-admin-console/gateway"
	"github.com/apextrack/go-admin-console/guard"
	"github.com/apextrack/go-admin-console/internal/config"
	"github.com/apextrack/go-admin-console/resources"
	"github.com/apextrack/go-admin-console/session"
	"github.com/apextrack/go-admin-console/session/filerepo"
)

// app holds everything a command needs: the config, the credential
// store, the gateway, and the typed resource clients built on it.
type app struct {
	cfg   config.Config
	log   zerolog.Logger
	store *session.Store
	gw    *gateway.Gateway
	guard *guard.Guard

	auth      *resources.AuthClient
	dashboard *resources.DashboardClient
	offers    *resources.OffersClient
	users     *resources.UsersClient
	profile   *resources.ProfileClient
	reports   *resources.ReportsClient
	generator *resources.GeneratorClient
}

var (
	verbose bool
	console *app
)

var rootCmd = &cobra.Command{
	Use:   "console",
	Short: "ApexTrack admin console",
	Long: `Administrative console for the ApexTrack link-tracking platform:
login, dashboards, offer and user management, reports, and the
smartlink generator.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		console, err = newApp()
		return err
	},
	Run: func(cmd *cobra.Command, args []string) {
		figure.NewFigure(console.cfg.GetAppName(), "cybermedium", true).Print()
		fmt.Println()
		_ = cmd.Help()
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}

func newApp() (*app, error) {
	cfg := config.New()

	level, err := zerolog.ParseLevel(cfg.GetLogLevel())
	if err != nil {
		level = zerolog.InfoLevel
	}
	if verbose {
		level = zerolog.DebugLevel
	}
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).
		With().Timestamp().Logger()

	repo, err := filerepo.New(cfg.GetDataFolder())
	if err != nil {
		return nil, err
	}
	store := session.NewStore(repo)
	if err := store.Restore(); err != nil {
		logger.Warn().Err(err).Msg("could not restore persisted session")
	}

	timeout, err := time.ParseDuration(cfg.GetRequestTimeout())
	if err != nil || timeout <= 0 {
		timeout = 30 * time.Second
	}

	gw, err := gateway.New(cfg.GetAPIBaseURL(), store,
		gateway.WithLogger(logger),
		gateway.WithHTTPClient(&http.Client{Timeout: timeout}),
		gateway.WithSessionInvalidatedHook(func() {
			color.Yellow("Session expired. Run `console login` to sign in again.")
		}),
	)
	if err != nil {
		return nil, err
	}

	routeGuard, err := guard.New(store)
	if err != nil {
		return nil, err
	}

	return &app{
		cfg:       cfg,
		log:       logger,
		store:     store,
		gw:        gw,
		guard:     routeGuard,
		auth:      resources.NewAuthClient(gw),
		dashboard: resources.NewDashboardClient(gw),
		offers:    resources.NewOffersClient(gw),
		users:     resources.NewUsersClient(gw),
		profile:   resources.NewProfileClient(gw),
		reports:   resources.NewReportsClient(gw),
		generator: resources.NewGeneratorClient(gw),
	}, nil
}

// Protected views and their role requirements, mirroring the web
// console's routing table.
var (
	viewDashboard = guard.View{Name: "dashboard"}
	viewGenerator = guard.View{Name: "generator"}
	viewProfile   = guard.View{Name: "profile"}
	viewOffers    = guard.View{Name: "offers", RequiredRole: session.RoleAdmin}
	viewUsers     = guard.View{Name: "users", RequiredRole: session.RoleAdmin}
	viewReports   = guard.View{Name: "reports", RequiredRole: session.RoleAdmin}
)

// admit applies the route guard. It reports whether the command should
// proceed; on an under-privilege denial it falls back to the default
// authenticated view (the dashboard) instead of an error.
func (a *app) admit(cmd *cobra.Command, view guard.View) (bool, error) {
	switch a.guard.Admit(view) {
	case guard.Allow:
		return true, nil
	case guard.RedirectLogin:
		return false, fmt.Errorf("not signed in; run `console login` first")
	case guard.RedirectDefault:
		color.Yellow("%s requires the %q role; showing the dashboard instead", view.Name, view.RequiredRole)
		return false, a.showDashboard(cmd.Context())
	}
	return false, nil
}
