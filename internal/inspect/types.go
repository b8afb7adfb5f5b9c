// pattern: Functional Core

package inspect

// Outcome discriminates the result of inspecting one directory.
// Exactly one variant applies per directory.
type Outcome int

const (
	// OutcomeInspected means the directory is a working copy and all
	// queries succeeded; Repo holds the facts.
	OutcomeInspected Outcome = iota

	// OutcomeInvalid means the path is not an existing directory.
	OutcomeInvalid

	// OutcomeNotARepo means the directory is not under version control.
	OutcomeNotARepo

	// OutcomeFailed means a git query failed unexpectedly; Err holds
	// the underlying error text.
	OutcomeFailed
)

// UpstreamState classifies the local branch relative to its upstream.
type UpstreamState int

const (
	// UpToDate means zero local commits are missing from the upstream.
	UpToDate UpstreamState = iota

	// HasUnpushed means at least one local commit is not on the upstream.
	HasUnpushed

	// NoUpstream means the branch has no upstream configured. This is
	// a status, not an error.
	NoUpstream
)

// RepoInfo holds the facts gathered from a working copy.
type RepoInfo struct {
	Branch     string
	LastCommit string
	Clean      bool
	Upstream   UpstreamState
	AheadCount int // commits ahead of upstream, 0 unless HasUnpushed
}

// Result is the immutable record produced for one configured directory.
type Result struct {
	Path    string // resolved absolute path
	Outcome Outcome
	Err     string    // set only for OutcomeFailed
	Repo    *RepoInfo // set only for OutcomeInspected
}
