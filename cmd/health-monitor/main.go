package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/Lakshmitejasri/Automatic-Health-Monitoring-System/internal/cli"
	"github.com/Lakshmitejasri/Automatic-Health-Monitoring-System/internal/config"
	"github.com/Lakshmitejasri/Automatic-Health-Monitoring-System/internal/domain/advice"
	"github.com/Lakshmitejasri/Automatic-Health-Monitoring-System/internal/domain/report"
	"github.com/Lakshmitejasri/Automatic-Health-Monitoring-System/internal/platform/demo"
	"github.com/Lakshmitejasri/Automatic-Health-Monitoring-System/internal/platform/export"
	"github.com/Lakshmitejasri/Automatic-Health-Monitoring-System/internal/platform/logging"
	"github.com/Lakshmitejasri/Automatic-Health-Monitoring-System/pkg/pagination"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// env bundles what every subcommand needs once config is loaded.
type env struct {
	logger  zerolog.Logger
	store   *report.FileStore
	catalog *advice.Catalog
	app     *cli.App
}

func setup(cmd *cobra.Command) (*env, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logger := logging.WithRunID(logging.New(cfg.IsDev(), cfg.LogLevel, cmd.ErrOrStderr()))
	logger = logger.With().Str("command", cmd.Name()).Logger()

	catalog := advice.Default()
	if cfg.AdviceFile != "" {
		catalog, err = advice.LoadFile(cfg.AdviceFile)
		if err != nil {
			return nil, err
		}
		logger.Debug().Str("path", cfg.AdviceFile).Msg("loaded advice catalog")
	}

	store := report.NewFileStore(cfg.ReportsDir, report.WithLogger(logger))
	return &env{
		logger:  logger,
		store:   store,
		catalog: catalog,
		app:     cli.NewApp(store, catalog, cmd.InOrStdin(), cmd.OutOrStdout(), logger),
	}, nil
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "health-monitor",
		Short:        "Record patient diagnosis reports and print medication-based health plans",
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE:         runMenu,
	}

	rootCmd.AddCommand(menuCmd())
	rootCmd.AddCommand(addCmd())
	rootCmd.AddCommand(viewCmd())
	rootCmd.AddCommand(searchCmd())
	rootCmd.AddCommand(adviseCmd())
	rootCmd.AddCommand(listCmd())
	rootCmd.AddCommand(exportCmd())
	rootCmd.AddCommand(seedCmd())

	return rootCmd
}

func runMenu(cmd *cobra.Command, args []string) error {
	e, err := setup(cmd)
	if err != nil {
		return err
	}
	return e.app.RunMenu()
}

func menuCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "menu",
		Short: "Start the interactive menu (default)",
		Args:  cobra.NoArgs,
		RunE:  runMenu,
	}
}

func addCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Append a diagnosis report and print the health plan",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fields := map[string]string{}
			for _, name := range []string{"patient", "diagnosis", "doctor", "prescription"} {
				v, _ := cmd.Flags().GetString(name)
				v = strings.TrimSpace(v)
				if v == "" {
					return fmt.Errorf("--%s cannot be empty", name)
				}
				fields[name] = v
			}

			e, err := setup(cmd)
			if err != nil {
				return err
			}
			return e.app.AddReport(fields["patient"], fields["diagnosis"], fields["doctor"], fields["prescription"])
		},
	}
	cmd.Flags().String("patient", "", "Patient name")
	cmd.Flags().String("diagnosis", "", "Diagnosis details")
	cmd.Flags().String("doctor", "", "Doctor's name")
	cmd.Flags().String("prescription", "", "Medications, separated by \", \"")
	return cmd
}

func viewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "view <patient>",
		Short: "Print a patient's reports and medication change suggestions",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := setup(cmd)
			if err != nil {
				return err
			}
			if entries, _ := cmd.Flags().GetBool("entries"); entries {
				return e.app.ViewEntries(args[0])
			}
			return e.app.ViewReports(args[0])
		},
	}
	cmd.Flags().Bool("entries", false, "List parsed entries instead of the raw file")
	return cmd
}

func searchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "search <patient> <keyword>",
		Short: "Case-insensitive keyword search over a patient's reports",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if strings.TrimSpace(args[1]) == "" {
				return fmt.Errorf("search keyword cannot be empty")
			}
			e, err := setup(cmd)
			if err != nil {
				return err
			}
			return e.app.SearchReports(args[0], args[1], pagination.FromFlags(cmd))
		},
	}
	pagination.AddFlags(cmd)
	return cmd
}

func adviseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "advise <prescription>",
		Short: "Print the health plan for a prescription without storing anything",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := setup(cmd)
			if err != nil {
				return err
			}
			e.app.PrintHealthPlan(args[0])
			return nil
		},
	}
}

func listCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List patients with stored reports",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := setup(cmd)
			if err != nil {
				return err
			}
			return e.app.ListPatients()
		},
	}
}

func exportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export <patient>",
		Short: "Write a patient's reports and health plans to an xlsx workbook",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			patient := args[0]
			e, err := setup(cmd)
			if err != nil {
				return err
			}

			entries, found, err := e.store.Entries(patient)
			if err != nil {
				return err
			}
			if !found {
				fmt.Fprintf(cmd.OutOrStdout(), "No reports found for %s.\n", patient)
				return nil
			}

			data, err := export.Workbook(patient, entries, e.catalog)
			if err != nil {
				return fmt.Errorf("export %s: %w", patient, err)
			}

			out, _ := cmd.Flags().GetString("out")
			if out == "" {
				out = patient + ".xlsx"
			}
			if err := os.WriteFile(out, data, 0o644); err != nil {
				return fmt.Errorf("write %s: %w", out, err)
			}

			e.logger.Info().Str("patient", patient).Str("path", out).Int("entries", len(entries)).Msg("reports exported")
			fmt.Fprintf(cmd.OutOrStdout(), "Exported %d report(s) for %s to %s\n", len(entries), patient, out)
			return nil
		},
	}
	cmd.Flags().String("out", "", "Output file (default <patient>.xlsx)")
	return cmd
}

func seedCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Append synthetic reports for demo patients",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			patients, _ := cmd.Flags().GetInt("patients")
			perPatient, _ := cmd.Flags().GetInt("entries")
			seed, _ := cmd.Flags().GetUint64("seed")
			if patients <= 0 || perPatient <= 0 {
				return fmt.Errorf("--patients and --entries must be positive")
			}

			e, err := setup(cmd)
			if err != nil {
				return err
			}

			gen := demo.NewGenerator(seed, time.Now())
			for _, p := range gen.Patients(patients, perPatient) {
				for _, entry := range p.Entries {
					if err := e.store.Append(p.Name, entry); err != nil {
						return err
					}
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Seeded %d report(s) for %s\n", len(p.Entries), p.Name)
			}
			return nil
		},
	}
	cmd.Flags().Int("patients", 3, "Number of demo patients")
	cmd.Flags().Int("entries", 4, "Reports per patient")
	cmd.Flags().Uint64("seed", 0, "Random seed (0 = random)")
	return cmd
}
