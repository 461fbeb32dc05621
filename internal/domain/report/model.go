package report

import (
	"errors"
	"fmt"
	"strings"
)

// Separator closes every entry block in a patient file.
var Separator = strings.Repeat("-", 40)

// DateLayout is the layout of the Date line.
const DateLayout = "2006-01-02"

const (
	prefixDate         = "Date: "
	prefixDoctor       = "Doctor: "
	prefixDiagnosis    = "Diagnosis: "
	prefixPrescription = "Prescription: "
)

var (
	ErrStorageUnavailable = errors.New("report storage unavailable")
	ErrInvalidPatientName = errors.New("invalid patient name")
	ErrInvalidField       = errors.New("invalid report field")
)

// Entry is one diagnosis record appended to a patient's file.
type Entry struct {
	Date         string `json:"date"`
	Doctor       string `json:"doctor"`
	Diagnosis    string `json:"diagnosis"`
	Prescription string `json:"prescription"`
}

// Validate rejects field values that would break the one-line-per-field
// layout of an entry block.
func (e Entry) Validate() error {
	fields := []struct{ name, value string }{
		{"date", e.Date},
		{"doctor", e.Doctor},
		{"diagnosis", e.Diagnosis},
		{"prescription", e.Prescription},
	}
	for _, f := range fields {
		if strings.ContainsAny(f.value, "\r\n") {
			return fmt.Errorf("%w: %s contains a line break", ErrInvalidField, f.name)
		}
	}
	return nil
}

// Format renders the entry as the five-line block stored on disk.
func (e Entry) Format() string {
	var b strings.Builder
	b.WriteString(prefixDate + e.Date + "\n")
	b.WriteString(prefixDoctor + e.Doctor + "\n")
	b.WriteString(prefixDiagnosis + e.Diagnosis + "\n")
	b.WriteString(prefixPrescription + e.Prescription + "\n")
	b.WriteString(Separator + "\n")
	return b.String()
}

// ParseEntries rebuilds entries from raw file text. Field lines are matched
// by prefix and each separator line closes the current entry; a trailing
// block without a separator (an interrupted append) is still returned.
func ParseEntries(text string) []Entry {
	var (
		entries []Entry
		cur     Entry
		dirty   bool
	)

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimRight(line, "\r")
		switch {
		case line == Separator:
			if dirty {
				entries = append(entries, cur)
			}
			cur, dirty = Entry{}, false
		case strings.HasPrefix(line, prefixDate):
			cur.Date, dirty = strings.TrimPrefix(line, prefixDate), true
		case strings.HasPrefix(line, prefixDoctor):
			cur.Doctor, dirty = strings.TrimPrefix(line, prefixDoctor), true
		case strings.HasPrefix(line, prefixDiagnosis):
			cur.Diagnosis, dirty = strings.TrimPrefix(line, prefixDiagnosis), true
		case strings.HasPrefix(line, prefixPrescription):
			cur.Prescription, dirty = strings.TrimPrefix(line, prefixPrescription), true
		}
	}
	if dirty {
		entries = append(entries, cur)
	}
	return entries
}
