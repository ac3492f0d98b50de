package reports

import "time"

// Line is one label/value pair in a report summary block.
type Line struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// Section is a named block of free-form lines (e.g. one class in the
// class-wise attendance breakdown).
type Section struct {
	Heading string   `json:"heading"`
	Lines   []string `json:"lines"`
}

// Data is the renderer-agnostic report payload. Every format adapter
// consumes exactly this: PDF and Excel render the summary and sections,
// CSV renders only Columns + Records.
type Data struct {
	Title       string    `json:"title"`
	GeneratedAt time.Time `json:"generatedAt"`
	Summary     []Line    `json:"summary"`
	Sections    []Section `json:"sections"`
	Columns     []string  `json:"columns"`
	Records     [][]string `json:"records"`
}
