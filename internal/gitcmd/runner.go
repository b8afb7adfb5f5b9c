// pattern: Imperative Shell

package gitcmd

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strconv"
	"strings"
)

// ErrNoUpstream reports that the current branch has no upstream
// configured. It is a status, not a failure; callers branch on it.
var ErrNoUpstream = errors.New("no upstream configured")

// Runner executes the git queries the inspector needs. The concrete
// implementation shells out; tests substitute a fake.
type Runner interface {
	// IsRepo reports whether dir is inside a git working copy.
	IsRepo(ctx context.Context, dir string) bool

	// CurrentBranch returns the short name of the checked-out branch.
	CurrentBranch(ctx context.Context, dir string) (string, error)

	// LastCommitMessage returns the full message of the most recent
	// commit. Fails for a repository with no commits.
	LastCommitMessage(ctx context.Context, dir string) (string, error)

	// StatusPorcelain returns machine-readable status output, empty
	// when the working tree is clean.
	StatusPorcelain(ctx context.Context, dir string) (string, error)

	// AheadOfUpstream returns the number of commits on the local
	// branch that are not on its upstream. Returns ErrNoUpstream when
	// no upstream is configured.
	AheadOfUpstream(ctx context.Context, dir string) (int, error)
}

// ExecRunner runs git as a subprocess, one short-lived invocation per
// query. All console output is captured, never passed through.
type ExecRunner struct{}

func (r ExecRunner) IsRepo(ctx context.Context, dir string) bool {
	_, err := r.run(ctx, dir, "status")
	return err == nil
}

func (r ExecRunner) CurrentBranch(ctx context.Context, dir string) (string, error) {
	out, err := r.run(ctx, dir, "rev-parse", "--abbrev-ref", "HEAD")
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(out), nil
}

func (r ExecRunner) LastCommitMessage(ctx context.Context, dir string) (string, error) {
	out, err := r.run(ctx, dir, "log", "-1", "--pretty=%B")
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(out), nil
}

func (r ExecRunner) StatusPorcelain(ctx context.Context, dir string) (string, error) {
	return r.run(ctx, dir, "status", "--porcelain")
}

func (r ExecRunner) AheadOfUpstream(ctx context.Context, dir string) (int, error) {
	out, err := r.run(ctx, dir, "rev-list", "--count", "@{upstream}..HEAD")
	if err != nil {
		if isNoUpstream(err) {
			return 0, ErrNoUpstream
		}
		return 0, err
	}

	count, err := strconv.Atoi(strings.TrimSpace(out))
	if err != nil {
		return 0, fmt.Errorf("parsing rev-list count: %w", err)
	}
	return count, nil
}

// run invokes git scoped to dir and returns its stdout. A non-zero
// exit becomes an error carrying the trimmed stderr text.
func (ExecRunner) run(ctx context.Context, dir string, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, "git", append([]string{"-C", dir}, args...)...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		msg := strings.TrimSpace(stderr.String())
		if msg == "" {
			return "", fmt.Errorf("git %s: %w", strings.Join(args, " "), err)
		}
		return "", fmt.Errorf("git %s: %w: %s", strings.Join(args, " "), err, msg)
	}

	return stdout.String(), nil
}

// isNoUpstream matches the errors git emits when @{upstream} cannot be
// resolved: no upstream configured, or a detached HEAD.
func isNoUpstream(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "no upstream") ||
		strings.Contains(msg, "does not point to a branch") ||
		strings.Contains(msg, "no such branch")
}
