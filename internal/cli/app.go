// Package cli implements the interactive menu and the shared output of the
// health-monitor subcommands.
package cli

import (
	"bufio"
	"fmt"
	"io"

	"github.com/rs/zerolog"

	"github.com/Lakshmitejasri/Automatic-Health-Monitoring-System/internal/domain/advice"
	"github.com/Lakshmitejasri/Automatic-Health-Monitoring-System/internal/domain/report"
	"github.com/Lakshmitejasri/Automatic-Health-Monitoring-System/pkg/pagination"
)

// App holds the store, the advice catalog and the terminal streams.
type App struct {
	store   report.Store
	catalog *advice.Catalog
	in      *bufio.Reader
	out     io.Writer
	logger  zerolog.Logger
}

// NewApp wires an App. in is only read by the interactive menu.
func NewApp(store report.Store, catalog *advice.Catalog, in io.Reader, out io.Writer, logger zerolog.Logger) *App {
	return &App{
		store:   store,
		catalog: catalog,
		in:      bufio.NewReader(in),
		out:     out,
		logger:  logger,
	}
}

// AddReport appends a report for the patient and prints the health plan
// for its prescription.
func (a *App) AddReport(patient, diagnosis, doctor, prescription string) error {
	if _, err := a.store.AddReport(patient, diagnosis, doctor, prescription); err != nil {
		return fmt.Errorf("add report for %s: %w", patient, err)
	}
	a.logger.Info().Str("patient", patient).Msg("diagnosis report added")

	fmt.Fprintf(a.out, "Diagnosis report for %s has been updated.\n\n", patient)
	a.PrintHealthPlan(prescription)
	return nil
}

// ViewReports prints the patient's full history followed by medication
// change suggestions derived from it.
func (a *App) ViewReports(patient string) error {
	text, found, err := a.store.ReadReport(patient)
	if err != nil {
		return fmt.Errorf("view reports for %s: %w", patient, err)
	}
	if !found {
		fmt.Fprintf(a.out, "No reports found for %s.\n\n", patient)
		return nil
	}

	fmt.Fprintf(a.out, "\nDiagnosis reports for %s:\n", patient)
	fmt.Fprintln(a.out, text)
	for _, s := range a.catalog.SuggestMedicationChanges(text) {
		fmt.Fprintf(a.out, "- %s\n", s)
	}
	return nil
}

// ViewEntries prints the patient's history as parsed entries.
func (a *App) ViewEntries(patient string) error {
	entries, found, err := a.store.Entries(patient)
	if err != nil {
		return fmt.Errorf("view reports for %s: %w", patient, err)
	}
	if !found {
		fmt.Fprintf(a.out, "No reports found for %s.\n\n", patient)
		return nil
	}

	fmt.Fprintf(a.out, "\nDiagnosis reports for %s:\n", patient)
	for i, e := range entries {
		fmt.Fprintf(a.out, "%d. %s  %s\n", i+1, e.Date, e.Doctor)
		fmt.Fprintf(a.out, "   Diagnosis: %s\n", e.Diagnosis)
		fmt.Fprintf(a.out, "   Prescription: %s\n", e.Prescription)
	}
	return nil
}

// SearchReports prints the lines of the patient's file containing keyword.
func (a *App) SearchReports(patient, keyword string, p pagination.Params) error {
	matches, found, err := a.store.Search(patient, keyword)
	if err != nil {
		return fmt.Errorf("search reports for %s: %w", patient, err)
	}
	if !found {
		fmt.Fprintf(a.out, "No reports found for %s.\n\n", patient)
		return nil
	}

	fmt.Fprintf(a.out, "\nSearch results for '%s' in %s's reports:\n", keyword, patient)
	if len(matches) == 0 {
		fmt.Fprintf(a.out, "No matches found for '%s'.\n\n", keyword)
		return nil
	}

	page := pagination.Page(matches, p)
	for _, m := range page {
		fmt.Fprintf(a.out, "Line %d: %s\n", m.Line, m.Text)
	}
	if p.Limit > 0 || p.Offset > 0 {
		fmt.Fprintf(a.out, "(%s)\n", p.Summary(len(page), len(matches)))
	}
	if p.HasNext(len(matches)) {
		fmt.Fprintf(a.out, "next page: --offset %d\n", p.NextOffset())
	}
	return nil
}

// PrintHealthPlan prints one advice block per prescription token.
func (a *App) PrintHealthPlan(prescription string) {
	fmt.Fprintln(a.out, "\nHealth Plan Recommendations:")
	for _, adv := range a.catalog.SuggestHealthPlan(prescription) {
		if !adv.Found {
			fmt.Fprintf(a.out, "- %s: %s\n", adv.Medication, advice.NoRecommendation)
			continue
		}
		fmt.Fprintf(a.out, "- %s:\n", adv.Medication)
		fmt.Fprintf(a.out, "  Usage: %s\n", adv.Record.Usage)
		fmt.Fprintf(a.out, "  Recommended Food: %s\n", adv.Record.Food)
		fmt.Fprintf(a.out, "  Recommended Exercise: %s\n", adv.Record.Exercise)
		fmt.Fprintf(a.out, "  Next Steps: %s\n", adv.Record.NextStep)
	}
	fmt.Fprint(a.out, "\n\n")
}

// ListPatients prints every patient that has a report file.
func (a *App) ListPatients() error {
	names, err := a.store.Patients()
	if err != nil {
		return fmt.Errorf("list patients: %w", err)
	}
	if len(names) == 0 {
		fmt.Fprintln(a.out, "No patients found.")
		return nil
	}
	for _, n := range names {
		fmt.Fprintln(a.out, n)
	}
	return nil
}
