// Package search finds the lines of a text buffer that contain a query.
package search

import "strings"

// Match is a matching line with its 1-based position in the buffer.
type Match struct {
	LineNum int    `json:"line" yaml:"line"`
	Text    string `json:"text" yaml:"text"`
}

// Search returns every line of contents containing query, in order.
// Comparison is exact and case-sensitive.
func Search(query, contents string) []string {
	return texts(Find(query, contents, false))
}

// SearchCaseInsensitive is like Search but compares lowercased forms.
// The returned lines keep their original casing.
func SearchCaseInsensitive(query, contents string) []string {
	return texts(Find(query, contents, true))
}

// Find returns the matching lines of contents along with their line numbers.
// The returned text is a substring of contents, never a copy.
func Find(query, contents string, ignoreCase bool) []Match {
	if ignoreCase {
		query = strings.ToLower(query)
	}

	var matches []Match
	for i, line := range lines(contents) {
		candidate := line
		if ignoreCase {
			candidate = strings.ToLower(line)
		}
		if strings.Contains(candidate, query) {
			matches = append(matches, Match{LineNum: i + 1, Text: line})
		}
	}
	return matches
}

// lines splits contents on \n. A trailing newline does not produce an empty
// final line and a trailing \r is dropped from each line.
func lines(contents string) []string {
	if contents == "" {
		return nil
	}
	contents = strings.TrimSuffix(contents, "\n")

	result := strings.Split(contents, "\n")
	for i, line := range result {
		result[i] = strings.TrimSuffix(line, "\r")
	}
	return result
}

func texts(matches []Match) []string {
	result := make([]string, 0, len(matches))
	for _, m := range matches {
		result = append(result, m.Text)
	}
	return result
}
