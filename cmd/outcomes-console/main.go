package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/agilept/outcomes/internal/config"
	"github.com/agilept/outcomes/internal/domain/clinician"
	"github.com/agilept/outcomes/internal/domain/encounter"
	"github.com/agilept/outcomes/internal/domain/episode"
	"github.com/agilept/outcomes/internal/domain/patient"
	"github.com/agilept/outcomes/internal/domain/snapshot"
	"github.com/agilept/outcomes/internal/platform/idgen"
	"github.com/agilept/outcomes/internal/platform/reporting"
	"github.com/agilept/outcomes/internal/platform/sandbox"
	"github.com/agilept/outcomes/internal/platform/session"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "outcomes-console",
		Short: "Patient outcomes console",
	}

	rootCmd.PersistentFlags().String("user", "", "Console username")
	rootCmd.PersistentFlags().String("pass", "", "Console password")

	rootCmd.AddCommand(dashboardCmd())
	rootCmd.AddCommand(reportCmd())
	rootCmd.AddCommand(measuresCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// app bundles the wired services for one console invocation. Everything is
// in memory; each run seeds its own dataset.
type app struct {
	cfg      *config.Config
	logger   zerolog.Logger
	sessions *session.Manager
	episodes *episode.Service
	reporter *reporting.Reporter
}

// newLogger derives the logger from config: console writer in development,
// JSON otherwise, levelled per LOG_LEVEL.
func newLogger(cfg *config.Config) zerolog.Logger {
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()
	if cfg.IsDev() {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout}).With().Timestamp().Logger()
	}
	if level, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		logger = logger.Level(level)
	}
	return logger
}

func buildApp(cmd *cobra.Command) (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	logger := newLogger(cfg)

	user, _ := cmd.Flags().GetString("user")
	pass, _ := cmd.Flags().GetString("pass")
	if user == "" {
		user = cfg.ConsoleUsername
	}
	if pass == "" {
		pass = cfg.ConsolePassword
	}
	if user != cfg.ConsoleUsername || pass != cfg.ConsolePassword {
		return nil, fmt.Errorf("invalid credentials")
	}

	sessions := session.NewManager(nil)
	sess := sessions.Login(session.User{
		ID:       "u1",
		Username: user,
		Name:     "Physical Therapy Aide",
		Role:     "aide",
	})
	logger.Info().Str("user", user).Str("token", sess.Token.String()).Msg("session started")

	ids := idgen.New()
	patients := patient.NewRepo(ids)
	clinicians := clinician.NewRepo(ids)
	encounters := encounter.NewRepo(ids)
	snapshots := snapshot.NewRepo(ids)

	seeder := sandbox.NewSeeder(patients, clinicians, encounters, snapshots, logger, nil)
	ctx := context.Background()
	if err := seeder.SeedBaseline(ctx); err != nil {
		return nil, fmt.Errorf("seed baseline: %w", err)
	}
	if cfg.SeedPatients > 0 {
		seedCfg := sandbox.SeedConfig{
			PatientCount:          cfg.SeedPatients,
			EncountersPerPatient:  cfg.SeedEncountersPer,
			SnapshotsPerEncounter: cfg.SeedSnapshotsPer,
			Seed:                  cfg.SeedRandom,
		}
		if err := seeder.SeedSynthetic(ctx, seedCfg); err != nil {
			return nil, fmt.Errorf("seed synthetic: %w", err)
		}
	}

	episodes := episode.NewService(encounters, patients, clinicians, snapshots, nil)
	reporter := reporting.NewReporter(patients, encounters, snapshots, episodes, nil)

	return &app{
		cfg:      cfg,
		logger:   logger,
		sessions: sessions,
		episodes: episodes,
		reporter: reporter,
	}, nil
}

func dashboardCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dashboard",
		Short: "Show the open episodes dashboard",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := buildApp(cmd)
			if err != nil {
				return err
			}
			defer a.sessions.Logout()

			search, _ := cmd.Flags().GetString("search")
			clinicianID, _ := cmd.Flags().GetString("clinician")
			page, _ := cmd.Flags().GetInt("page")
			pageSize, _ := cmd.Flags().GetInt("page-size")
			sortCol, _ := cmd.Flags().GetString("sort")
			desc, _ := cmd.Flags().GetBool("desc")

			if pageSize == 0 {
				pageSize = a.cfg.PageSize
			}

			dash := episode.NewDashboard(a.episodes, pageSize)
			if clinicianID != "" {
				dash.SetClinician(clinicianID)
			}
			if search != "" {
				dash.SetSearch(search)
			}
			if sortCol != "" {
				col, err := parseColumn(sortCol)
				if err != nil {
					return err
				}
				dash.Sort(col)
				if desc {
					dash.Sort(col)
				}
			}
			dash.SetPage(page)

			view, err := dash.View(cmd.Context())
			if err != nil {
				return err
			}

			renderView(os.Stdout, view)
			return nil
		},
	}

	cmd.Flags().String("search", "", "Filter by patient name, MRN or condition")
	cmd.Flags().String("clinician", "", "Filter by clinician id")
	cmd.Flags().Int("page", 1, "Page number")
	cmd.Flags().Int("page-size", 0, "Rows per page (10, 25, 50 or 100)")
	cmd.Flags().String("sort", "", "Sort column: "+columnList())
	cmd.Flags().Bool("desc", false, "Sort descending")
	return cmd
}

func reportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "report <measure-id>",
		Short: "Evaluate a reporting measure",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := buildApp(cmd)
			if err != nil {
				return err
			}
			defer a.sessions.Logout()

			report, err := a.reporter.Evaluate(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			fmt.Printf("%s (%s)\n", report.MeasureName, report.MeasureID)
			fmt.Printf("Generated at: %s\n\n", report.GeneratedAt.Format(time.RFC3339))
			for _, row := range report.Results {
				parts := make([]string, 0, len(row))
				for k, v := range row {
					parts = append(parts, fmt.Sprintf("%s=%v", k, v))
				}
				fmt.Println(strings.Join(parts, "  "))
			}
			return nil
		},
	}
}

func measuresCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "measures",
		Short: "List available reporting measures",
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tNAME\tDESCRIPTION")
			for _, m := range reporting.PredefinedMeasures {
				fmt.Fprintf(w, "%s\t%s\t%s\n", m.ID, m.Name, m.Description)
			}
			return w.Flush()
		},
	}
}

func renderView(out *os.File, view episode.View) {
	for _, status := range episode.AllStatuses {
		fmt.Fprintf(out, "[%s: %d] ", status, view.Counts[status])
	}
	fmt.Fprintln(out)
	fmt.Fprintln(out)

	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tPATIENT\tMRN\tCLINICIAN\tCONDITION\tSETUP\tINTAKE\tSTATUS DATE\tEMAIL SENT\tDAYS\tSTATUS")
	for _, ep := range view.Rows {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\t%d\t%s\n",
			ep.ID,
			ep.PatientName,
			ep.PatientMRN,
			ep.ClinicianName,
			ep.Condition,
			formatDate(&ep.SetupDate),
			formatDate(ep.IntakeDate),
			formatDate(ep.StatusDate),
			formatDate(&ep.EmailSentDate),
			ep.DaysSinceSetup,
			ep.Status,
		)
	}
	w.Flush()

	r := view.Range
	fmt.Fprintf(out, "\nShowing %d to %d of %d entries (page %d of %d)\n",
		r.From, r.To, r.Total, view.Page, view.TotalPages)
}

func formatDate(t *time.Time) string {
	if t == nil {
		return "-"
	}
	return t.Format("2006-01-02")
}

func parseColumn(s string) (episode.Column, error) {
	for _, c := range episode.Columns {
		if string(c) == s {
			return c, nil
		}
	}
	return "", fmt.Errorf("unknown sort column %q, expected one of: %s", s, columnList())
}

func columnList() string {
	parts := make([]string, len(episode.Columns))
	for i, c := range episode.Columns {
		parts[i] = string(c)
	}
	return strings.Join(parts, ", ")
}
