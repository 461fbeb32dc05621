package advice

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

var lisinopril = Record{
	Usage:    "Treats high blood pressure",
	Food:     "Low-sodium diet, more fruits and vegetables",
	Exercise: "30 minutes of cardio exercise, 5 times a week",
	NextStep: "Monitor blood pressure regularly. If symptoms persist, consider increasing dosage.",
}

var metformin = Record{
	Usage:    "Treats type 2 diabetes",
	Food:     "Low-carb diet, avoid sugary foods",
	Exercise: "Daily 30-minute walk, strength training twice a week",
	NextStep: "Monitor blood sugar levels. If not controlled, consider adding another medication.",
}

// -- Default catalog --

func TestDefault_IsSharedAndClosed(t *testing.T) {
	c := Default()
	if c != Default() {
		t.Error("expected Default() to return the same catalog every call")
	}
	if len(c.records) != 2 {
		t.Errorf("expected 2 records, got %d", len(c.records))
	}
	for _, name := range []string{"Lisinopril", "Metformin"} {
		if _, ok := c.Lookup(name); !ok {
			t.Errorf("expected %s in the default catalog", name)
		}
	}
}

func TestLookup_ExactMatchOnly(t *testing.T) {
	c := Default()

	if r, ok := c.Lookup("Lisinopril"); !ok || r != lisinopril {
		t.Errorf("Lookup(Lisinopril) = %+v, %v", r, ok)
	}
	for _, name := range []string{"lisinopril", "LISINOPRIL", " Lisinopril", "Lisinopril "} {
		if _, ok := c.Lookup(name); ok {
			t.Errorf("Lookup(%q) expected miss", name)
		}
	}
}

// -- SuggestHealthPlan --

func TestSuggestHealthPlan_SingleKnownMedication(t *testing.T) {
	got := Default().SuggestHealthPlan("Metformin")

	if len(got) != 1 {
		t.Fatalf("expected 1 advice block, got %d", len(got))
	}
	if !got[0].Found || got[0].Medication != "Metformin" || got[0].Record != metformin {
		t.Errorf("unexpected advice %+v", got[0])
	}
}

func TestSuggestHealthPlan_UnknownMedication(t *testing.T) {
	got := Default().SuggestHealthPlan("Aspirin")

	if len(got) != 1 {
		t.Fatalf("expected 1 advice block, got %d", len(got))
	}
	if got[0].Found {
		t.Error("expected Found=false for unknown medication")
	}
	if got[0].Record != (Record{}) {
		t.Errorf("expected zero record, got %+v", got[0].Record)
	}
}

func TestSuggestHealthPlan_OrderAndDuplicates(t *testing.T) {
	got := Default().SuggestHealthPlan("Lisinopril, Metformin")

	want := []Advice{
		{Medication: "Lisinopril", Found: true, Record: lisinopril},
		{Medication: "Metformin", Found: true, Record: metformin},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %+v, want %+v", got, want)
	}

	dup := Default().SuggestHealthPlan("Metformin, Aspirin, Metformin")
	if len(dup) != 3 {
		t.Fatalf("expected 3 blocks, got %d", len(dup))
	}
	if !dup[0].Found || dup[1].Found || !dup[2].Found {
		t.Errorf("unexpected resolution %+v", dup)
	}
}

func TestSuggestHealthPlan_SplitsOnCommaSpaceOnly(t *testing.T) {
	got := Default().SuggestHealthPlan("Lisinopril,Metformin")

	if len(got) != 1 || got[0].Found {
		t.Errorf("expected one unresolved token, got %+v", got)
	}
}

// -- SuggestMedicationChanges --

func TestSuggestMedicationChanges(t *testing.T) {
	c := Default()
	lis := "Consider increasing Lisinopril dosage if blood pressure remains uncontrolled."
	met := "If blood sugar levels are not stable, consider adding insulin or another medication."

	tests := []struct {
		name    string
		history string
		want    []string
	}{
		{"none", "Prescription: Aspirin\n", nil},
		{"lisinopril", "Prescription: Lisinopril\n", []string{lis}},
		{"metformin", "Prescription: Metformin\n", []string{met}},
		{"both in rule order", "Prescription: Metformin, Lisinopril\n", []string{lis, met}},
		{"diagnosis text triggers", "Diagnosis: reacted badly to Metformin\nPrescription: Rest\n", []string{met}},
		{"case sensitive", "Prescription: lisinopril\n", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := c.SuggestMedicationChanges(tt.history); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

// -- Parse / LoadFile --

func TestParse_Empty(t *testing.T) {
	if _, err := Parse([]byte("changes: []\n")); !errors.Is(err, ErrEmptyCatalog) {
		t.Errorf("expected ErrEmptyCatalog, got %v", err)
	}
}

func TestParse_InvalidRule(t *testing.T) {
	doc := "medications:\n  Aspirin:\n    usage: Pain\nchanges:\n  - medication: Aspirin\n"
	if _, err := Parse([]byte(doc)); err == nil {
		t.Error("expected error for rule without suggestion")
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "advice.yaml")
	doc := "medications:\n" +
		"  Aspirin:\n" +
		"    usage: Pain relief\n" +
		"    food: Take with food\n" +
		"    exercise: Light walking\n" +
		"    next_step: Review in two weeks\n"
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatalf("setup: %v", err)
	}

	c, err := LoadFile(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	r, ok := c.Lookup("Aspirin")
	if !ok || r.NextStep != "Review in two weeks" {
		t.Errorf("unexpected record %+v, %v", r, ok)
	}
	if got := c.SuggestMedicationChanges("Aspirin"); len(got) != 0 {
		t.Errorf("expected no change rules, got %v", got)
	}
}

func TestLoadFile_Missing(t *testing.T) {
	if _, err := LoadFile(filepath.Join(t.TempDir(), "missing.yaml")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected not-exist error, got %v", err)
	}
}
