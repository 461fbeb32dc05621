// Package pagination windows result slices by limit and offset for CLI
// listings.
package pagination

import (
	"fmt"

	"github.com/spf13/cobra"
)

const (
	FlagLimit  = "limit"
	FlagOffset = "offset"
)

// Params holds pagination parameters. A Limit of 0 means no limit.
type Params struct {
	Limit  int
	Offset int
}

// New clamps negative values to zero.
func New(limit, offset int) Params {
	if limit < 0 {
		limit = 0
	}
	if offset < 0 {
		offset = 0
	}
	return Params{Limit: limit, Offset: offset}
}

// AddFlags registers --limit and --offset on a command.
func AddFlags(cmd *cobra.Command) {
	cmd.Flags().Int(FlagLimit, 0, "Maximum number of results to show (0 = all)")
	cmd.Flags().Int(FlagOffset, 0, "Number of results to skip")
}

// FromFlags extracts pagination parameters from a command's flags.
func FromFlags(cmd *cobra.Command) Params {
	limit, _ := cmd.Flags().GetInt(FlagLimit)
	offset, _ := cmd.Flags().GetInt(FlagOffset)
	return New(limit, offset)
}

// Page returns the window of items selected by p.
func Page[T any](items []T, p Params) []T {
	if p.Offset >= len(items) {
		return items[:0]
	}
	end := len(items)
	if p.Limit > 0 && p.Limit < end-p.Offset {
		end = p.Offset + p.Limit
	}
	return items[p.Offset:end]
}

// HasNext returns true if there are more results after the current page.
func (p Params) HasNext(total int) bool {
	return p.Limit > 0 && p.Limit < total-p.Offset
}

// NextOffset returns the offset for the next page. Only meaningful when
// HasNext is true.
func (p Params) NextOffset() int {
	return p.Offset + p.Limit
}

// Summary describes the window for a footer line, e.g. "showing 11-20 of 42".
func (p Params) Summary(shown, total int) string {
	if shown == 0 {
		return fmt.Sprintf("showing 0 of %d", total)
	}
	return fmt.Sprintf("showing %d-%d of %d", p.Offset+1, p.Offset+shown, total)
}
