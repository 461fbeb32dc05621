package report

import (
	"fmt"
	"strings"
	"unicode"
)

// ValidatePatientName rejects names that cannot safely become a single file
// name inside the reports directory.
func ValidatePatientName(name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("%w: name is empty", ErrInvalidPatientName)
	}
	if name == "." || name == ".." {
		return fmt.Errorf("%w: %q", ErrInvalidPatientName, name)
	}
	for _, r := range name {
		if r == '/' || r == '\\' || unicode.IsControl(r) {
			return fmt.Errorf("%w: %q contains %q", ErrInvalidPatientName, name, r)
		}
	}
	return nil
}
