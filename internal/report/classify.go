// pattern: Functional Core

package report

import "repostat/internal/inspect"

// Glyph is the five-way presentation status of a directory.
type Glyph int

const (
	GlyphClean Glyph = iota
	GlyphAhead
	GlyphNoUpstream
	GlyphDirty
	GlyphError
)

// Symbol returns the fixed display symbol for the glyph.
func (g Glyph) Symbol() string {
	switch g {
	case GlyphClean:
		return "✓"
	case GlyphAhead:
		return "↑"
	case GlyphNoUpstream:
		return "⚠"
	case GlyphDirty:
		return "✗"
	default:
		return "?"
	}
}

// Classify maps an inspection result to its glyph. A dirty working
// tree wins over any upstream state; every non-inspected outcome is
// an error.
func Classify(res inspect.Result) Glyph {
	if res.Outcome != inspect.OutcomeInspected {
		return GlyphError
	}
	if !res.Repo.Clean {
		return GlyphDirty
	}
	switch res.Repo.Upstream {
	case inspect.HasUnpushed:
		return GlyphAhead
	case inspect.NoUpstream:
		return GlyphNoUpstream
	default:
		return GlyphClean
	}
}
