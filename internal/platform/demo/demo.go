// Package demo generates synthetic patients and report entries for trying
// out the CLI without real data.
package demo

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/brianvoe/gofakeit/v7"

	"github.com/Lakshmitejasri/Automatic-Health-Monitoring-System/internal/domain/report"
)

var diagnoses = []string{
	"Hypertension, stage 1",
	"Type 2 diabetes mellitus",
	"Seasonal allergic rhinitis",
	"Hyperlipidemia",
	"Hypothyroidism",
	"Routine follow-up, stable",
	"Elevated fasting glucose",
}

// medications mixes names the default advice catalog knows with ones it does not.
var medications = []string{
	"Lisinopril",
	"Metformin",
	"Atorvastatin",
	"Amlodipine",
	"Levothyroxine",
	"Cetirizine",
}

// Patient is one synthetic patient with entries in chronological order.
type Patient struct {
	Name    string
	Entries []report.Entry
}

// Generator wraps a seeded faker so the same seed yields the same data.
type Generator struct {
	faker *gofakeit.Faker
	now   time.Time
}

// NewGenerator returns a generator. seed 0 picks a random seed.
func NewGenerator(seed uint64, now time.Time) *Generator {
	return &Generator{faker: gofakeit.New(seed), now: now}
}

// Patients returns n patients with perPatient entries each, dated within
// the year before now, oldest first.
func (g *Generator) Patients(n, perPatient int) []Patient {
	out := make([]Patient, 0, n)
	seen := make(map[string]bool, n)
	for i := 0; i < n; i++ {
		name := g.faker.FirstName() + g.faker.LastName()
		if report.ValidatePatientName(name) != nil {
			name = "Patient"
		}
		// Faker names carry no digits, so a numbered fallback cannot collide.
		if seen[name] {
			name = fmt.Sprintf("%s%d", name, i+1)
		}
		seen[name] = true
		out = append(out, Patient{Name: name, Entries: g.Entries(perPatient)})
	}
	return out
}

// Entries returns n entries in ascending date order.
func (g *Generator) Entries(n int) []report.Entry {
	dates := make([]time.Time, n)
	for i := range dates {
		dates[i] = g.faker.DateRange(g.now.AddDate(-1, 0, 0), g.now)
	}
	sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })

	entries := make([]report.Entry, n)
	for i, d := range dates {
		entries[i] = report.Entry{
			Date:         d.Format(report.DateLayout),
			Doctor:       "Dr. " + g.faker.LastName(),
			Diagnosis:    g.faker.RandomString(diagnoses),
			Prescription: g.prescription(),
		}
	}
	return entries
}

func (g *Generator) prescription() string {
	meds := make([]string, len(medications))
	copy(meds, medications)
	g.faker.ShuffleStrings(meds)
	return strings.Join(meds[:g.faker.IntRange(1, 3)], ", ")
}
