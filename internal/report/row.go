// pattern: Functional Core

package report

import (
	"strings"

	"repostat/internal/inspect"
)

// maxCommitWidth bounds the Last Commit column so rows stay on one line.
const maxCommitWidth = 60

// Row is one rendered table line.
type Row struct {
	Directory  string
	Branch     string
	Glyph      Glyph
	LastCommit string
	ErrorText  string // empty for healthy rows; rendered as "-"
}

// Section is a titled run of rows; the untitled section holds the
// ungrouped directories.
type Section struct {
	Title string
	Rows  []Row
}

// BuildRow turns an inspection result into its display row. Error rows
// keep branch and commit blank; healthy rows keep the error blank.
func BuildRow(res inspect.Result) Row {
	row := Row{Directory: res.Path, Glyph: Classify(res)}

	switch res.Outcome {
	case inspect.OutcomeInvalid:
		row.ErrorText = "Not a valid directory"
	case inspect.OutcomeNotARepo:
		row.ErrorText = "Not a Git repository"
	case inspect.OutcomeFailed:
		row.ErrorText = "Failed to retrieve Git info: " + res.Err
	default:
		row.Branch = res.Repo.Branch
		row.LastCommit = summarize(res.Repo.LastCommit)
	}

	return row
}

// summarize reduces a commit message to its truncated first line.
func summarize(msg string) string {
	line, _, _ := strings.Cut(msg, "\n")
	line = strings.TrimSpace(line)

	runes := []rune(line)
	if len(runes) <= maxCommitWidth {
		return line
	}
	return string(runes[:maxCommitWidth-3]) + "..."
}
