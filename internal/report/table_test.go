// pattern: Imperative Shell

package report

import (
	"regexp"
	"strings"
	"testing"

	"repostat/internal/inspect"
)

// ansiPattern matches ANSI escape sequences (CSI sequences, OSC sequences, and simple escapes).
var ansiPattern = regexp.MustCompile(`\x1b\[[0-9;]*[a-zA-Z]|\x1b\][^\x07]*\x07|\x1b[()][0-9A-B]`)

func stripANSI(s string) string {
	return ansiPattern.ReplaceAllString(s, "")
}

func TestBuildRow(t *testing.T) {
	tests := []struct {
		name string
		res  inspect.Result
		want Row
	}{
		{
			name: "invalid directory blanks repo fields",
			res:  inspect.Result{Path: "/missing", Outcome: inspect.OutcomeInvalid},
			want: Row{Directory: "/missing", Glyph: GlyphError, ErrorText: "Not a valid directory"},
		},
		{
			name: "non-repo directory",
			res:  inspect.Result{Path: "/plain", Outcome: inspect.OutcomeNotARepo},
			want: Row{Directory: "/plain", Glyph: GlyphError, ErrorText: "Not a Git repository"},
		},
		{
			name: "failed inspection carries cause",
			res:  inspect.Result{Path: "/broken", Outcome: inspect.OutcomeFailed, Err: "exit status 128"},
			want: Row{Directory: "/broken", Glyph: GlyphError, ErrorText: "Failed to retrieve Git info: exit status 128"},
		},
		{
			name: "healthy row has no error text",
			res: inspect.Result{
				Path:    "/repo",
				Outcome: inspect.OutcomeInspected,
				Repo:    &inspect.RepoInfo{Branch: "main", LastCommit: "add parser", Clean: true, Upstream: inspect.UpToDate},
			},
			want: Row{Directory: "/repo", Branch: "main", Glyph: GlyphClean, LastCommit: "add parser"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := BuildRow(tt.res)
			if got != tt.want {
				t.Errorf("BuildRow() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestSummarize(t *testing.T) {
	long := strings.Repeat("a", 80)

	tests := []struct {
		name string
		msg  string
		want string
	}{
		{"short message unchanged", "fix parser", "fix parser"},
		{"first line only", "subject line\n\nbody paragraph", "subject line"},
		{"trailing whitespace trimmed", "subject  \n", "subject"},
		{"long message truncated", long, long[:maxCommitWidth-3] + "..."},
		{"empty message", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := summarize(tt.msg); got != tt.want {
				t.Errorf("summarize(%q) = %q, want %q", tt.msg, got, tt.want)
			}
		})
	}
}

func TestRenderPreservesRowOrder(t *testing.T) {
	rows := []Row{
		{Directory: "/zz-first", Glyph: GlyphError, ErrorText: "Not a valid directory"},
		{Directory: "/aa-second", Glyph: GlyphError, ErrorText: "Not a Git repository"},
		{Directory: "/mm-third", Branch: "main", Glyph: GlyphClean, LastCommit: "done"},
	}

	var sb strings.Builder
	Render(&sb, NewStyles("mocha"), []Section{{Rows: rows}})
	out := stripANSI(sb.String())

	first := strings.Index(out, "/zz-first")
	second := strings.Index(out, "/aa-second")
	third := strings.Index(out, "/mm-third")
	if first < 0 || second < 0 || third < 0 {
		t.Fatalf("missing directories in output:\n%s", out)
	}
	if !(first < second && second < third) {
		t.Errorf("rows reordered: positions %d, %d, %d\n%s", first, second, third, out)
	}
}

func TestRenderErrorRow(t *testing.T) {
	rows := []Row{
		{Directory: "/missing", Glyph: GlyphError, ErrorText: "Not a valid directory"},
		{Directory: "/repo", Branch: "main", Glyph: GlyphClean, LastCommit: "ship it"},
	}

	var sb strings.Builder
	Render(&sb, NewStyles("mocha"), []Section{{Rows: rows}})
	out := stripANSI(sb.String())

	if !strings.Contains(out, "Not a valid directory") {
		t.Errorf("expected error message in output:\n%s", out)
	}
	// Healthy rows render a dash in the Error column.
	if !strings.Contains(out, "-") {
		t.Errorf("expected dash for healthy row:\n%s", out)
	}
	if !strings.Contains(out, "✓") {
		t.Errorf("expected clean glyph in output:\n%s", out)
	}
}

func TestRenderSectionTitles(t *testing.T) {
	sections := []Section{
		{Rows: []Row{{Directory: "/solo", Glyph: GlyphError, ErrorText: "Not a valid directory"}}},
		{Title: "work", Rows: []Row{{Directory: "/work/api", Branch: "main", Glyph: GlyphClean}}},
	}

	var sb strings.Builder
	Render(&sb, NewStyles("latte"), sections)
	out := stripANSI(sb.String())

	if !strings.Contains(out, "work") {
		t.Errorf("expected group title in output:\n%s", out)
	}
	if strings.Index(out, "/solo") > strings.Index(out, "/work/api") {
		t.Errorf("sections out of order:\n%s", out)
	}
}

func TestRenderEmptySectionStillPrintsHeaders(t *testing.T) {
	var sb strings.Builder
	Render(&sb, NewStyles("mocha"), []Section{{}})
	out := stripANSI(sb.String())

	for _, h := range headers {
		if !strings.Contains(out, h) {
			t.Errorf("missing header %q in output:\n%s", h, out)
		}
	}
}
