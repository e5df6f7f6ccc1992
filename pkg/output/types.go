// Package output provides formatting for search results.
package output

import "github.com/ccollicutt/littlegrep/pkg/search"

// Report is the complete result of one search.
type Report struct {
	Query      string         `json:"query" yaml:"query"`
	FilePath   string         `json:"file" yaml:"file"`
	IgnoreCase bool           `json:"ignore_case" yaml:"ignore_case"`
	Matches    []search.Match `json:"matches" yaml:"matches"`
}

// NewReport creates a Report. A nil match list is stored as empty so
// structured formats emit [] rather than null.
func NewReport(query, filePath string, ignoreCase bool, matches []search.Match) *Report {
	if matches == nil {
		matches = []search.Match{}
	}
	return &Report{
		Query:      query,
		FilePath:   filePath,
		IgnoreCase: ignoreCase,
		Matches:    matches,
	}
}
