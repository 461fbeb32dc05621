package report

import (
	"errors"
	"reflect"
	"testing"
)

func TestEntry_Format(t *testing.T) {
	e := Entry{Date: "2024-01-02", Doctor: "Dr. A", Diagnosis: "Cold", Prescription: "Rest"}

	want := "Date: 2024-01-02\nDoctor: Dr. A\nDiagnosis: Cold\nPrescription: Rest\n" + Separator + "\n"
	if got := e.Format(); got != want {
		t.Errorf("Format() = %q, want %q", got, want)
	}
	if len(Separator) != 40 {
		t.Errorf("expected 40-character separator, got %d", len(Separator))
	}
}

func TestParseEntries_RoundTrip(t *testing.T) {
	in := []Entry{
		{Date: "2024-01-02", Doctor: "Dr. A", Diagnosis: "Cold", Prescription: "Rest"},
		{Date: "2024-02-03", Doctor: "Dr. B", Diagnosis: "Hypertension", Prescription: "Lisinopril, Metformin"},
	}
	text := in[0].Format() + in[1].Format()

	if got := ParseEntries(text); !reflect.DeepEqual(got, in) {
		t.Errorf("ParseEntries() = %+v, want %+v", got, in)
	}
}

func TestParseEntries_TruncatedTail(t *testing.T) {
	text := Entry{Date: "2024-01-02", Doctor: "Dr. A", Diagnosis: "Cold", Prescription: "Rest"}.Format() +
		"Date: 2024-01-03\nDoctor: Dr. B\n"

	got := ParseEntries(text)
	if len(got) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(got))
	}
	if got[1].Doctor != "Dr. B" || got[1].Diagnosis != "" {
		t.Errorf("unexpected truncated entry %+v", got[1])
	}
}

func TestParseEntries_Empty(t *testing.T) {
	if got := ParseEntries(""); len(got) != 0 {
		t.Errorf("expected no entries, got %v", got)
	}
}

func TestValidatePatientName(t *testing.T) {
	for _, ok := range []string{"JaneDoe", "Jane Doe", "O'Brien", "José", "jane.doe"} {
		if err := ValidatePatientName(ok); err != nil {
			t.Errorf("ValidatePatientName(%q) unexpected error: %v", ok, err)
		}
	}
	for _, bad := range []string{"", " ", ".", "..", "../x", "x/y", `x\y`, "tab\tname", "nl\nname"} {
		if err := ValidatePatientName(bad); !errors.Is(err, ErrInvalidPatientName) {
			t.Errorf("ValidatePatientName(%q) = %v, want ErrInvalidPatientName", bad, err)
		}
	}
}

func TestEntry_Validate(t *testing.T) {
	ok := Entry{Date: "2024-01-02", Doctor: "Dr. A", Diagnosis: "Cold, mild", Prescription: "Rest"}
	if err := ok.Validate(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}

	bad := ok
	bad.Prescription = "Rest\nDate: 1999-01-01"
	if err := bad.Validate(); !errors.Is(err, ErrInvalidField) {
		t.Errorf("expected ErrInvalidField, got %v", err)
	}
}
