// Package advice resolves prescriptions against a fixed medication table and
// derives follow-up suggestions from a patient's report history.
package advice

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

// PrescriptionSeparator splits a prescription into medication tokens.
const PrescriptionSeparator = ", "

// NoRecommendation is shown for medications missing from the table.
const NoRecommendation = "No specific recommendations available."

var ErrEmptyCatalog = errors.New("advice catalog has no medications")

//go:embed catalog.yaml
var defaultCatalogYAML []byte

// Record is the static advice attached to one medication.
type Record struct {
	Usage    string `yaml:"usage" json:"usage"`
	Food     string `yaml:"food" json:"food"`
	Exercise string `yaml:"exercise" json:"exercise"`
	NextStep string `yaml:"next_step" json:"next_step"`
}

// ChangeRule fires its suggestion when Medication occurs anywhere in a
// patient's history text.
type ChangeRule struct {
	Medication string `yaml:"medication" json:"medication"`
	Suggestion string `yaml:"suggestion" json:"suggestion"`
}

// Advice is the resolution of one prescription token. Found is false when
// the token is not in the table, in which case Record is zero.
type Advice struct {
	Medication string `json:"medication"`
	Found      bool   `json:"found"`
	Record     Record `json:"record"`
}

type document struct {
	Medications map[string]Record `yaml:"medications"`
	Changes     []ChangeRule      `yaml:"changes"`
}

// Catalog is an immutable medication table plus history rules. It is safe
// to share once built.
type Catalog struct {
	records map[string]Record
	changes []ChangeRule
}

var (
	defaultOnce    sync.Once
	defaultCatalog *Catalog
)

// Default returns the built-in catalog, parsed on first use.
func Default() *Catalog {
	defaultOnce.Do(func() {
		c, err := Parse(defaultCatalogYAML)
		if err != nil {
			panic(fmt.Sprintf("advice: embedded catalog: %v", err))
		}
		defaultCatalog = c
	})
	return defaultCatalog
}

// Parse builds a catalog from a YAML document.
func Parse(data []byte) (*Catalog, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse advice catalog: %w", err)
	}
	if len(doc.Medications) == 0 {
		return nil, ErrEmptyCatalog
	}

	c := &Catalog{
		records: make(map[string]Record, len(doc.Medications)),
		changes: make([]ChangeRule, 0, len(doc.Changes)),
	}
	for name, r := range doc.Medications {
		c.records[name] = r
	}
	for i, rule := range doc.Changes {
		if rule.Medication == "" || rule.Suggestion == "" {
			return nil, fmt.Errorf("parse advice catalog: change rule %d needs medication and suggestion", i)
		}
		c.changes = append(c.changes, rule)
	}
	return c, nil
}

// LoadFile builds a catalog from a YAML file on disk.
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read advice catalog %s: %w", path, err)
	}
	return Parse(data)
}

// Lookup returns the record for an exact, case-sensitive medication name.
func (c *Catalog) Lookup(medication string) (Record, bool) {
	r, ok := c.records[medication]
	return r, ok
}

// SuggestHealthPlan resolves every token of the prescription in input order.
// Repeated tokens produce repeated advice.
func (c *Catalog) SuggestHealthPlan(prescription string) []Advice {
	tokens := strings.Split(prescription, PrescriptionSeparator)
	out := make([]Advice, 0, len(tokens))
	for _, med := range tokens {
		r, ok := c.Lookup(med)
		out = append(out, Advice{Medication: med, Found: ok, Record: r})
	}
	return out
}

// SuggestMedicationChanges runs each change rule as a plain substring check
// over the raw history text, so a medication named inside a diagnosis line
// fires too.
func (c *Catalog) SuggestMedicationChanges(history string) []string {
	var out []string
	for _, rule := range c.changes {
		if strings.Contains(history, rule.Medication) {
			out = append(out, rule.Suggestion)
		}
	}
	return out
}
