// Package report defines the output object for one solver run.
package report

// Report is the top-level output object.
type Report struct {
	Tool    string   `json:"tool"`
	Version string   `json:"version"`
	Day     int      `json:"day"`
	Title   string   `json:"title,omitempty"`
	Input   Input    `json:"input"`
	Answers []Answer `json:"answers"`
}

// Input describes the puzzle input a report was computed from.
type Input struct {
	File   string `json:"file"`
	Hash   string `json:"hash"`
	Lines  int    `json:"lines"`
	Sample bool   `json:"sample,omitempty"`
}

// Answer is the result of one puzzle part.
type Answer struct {
	Part  int `json:"part"`
	Value int `json:"value"`
}

// Value returns the answer for part and whether the report has one.
func (r *Report) Value(part int) (int, bool) {
	for _, a := range r.Answers {
		if a.Part == part {
			return a.Value, true
		}
	}
	return 0, false
}
