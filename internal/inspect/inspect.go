// pattern: Imperative Shell

package inspect

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"

	"repostat/internal/config"
	"repostat/internal/gitcmd"
)

// Inspector gathers status facts for configured directories. It never
// mutates a repository; every query is read-only.
type Inspector struct {
	runner  gitcmd.Runner
	logger  *zap.SugaredLogger
	timeout time.Duration // per git invocation, 0 disables
}

func New(runner gitcmd.Runner, logger *zap.SugaredLogger, timeout time.Duration) *Inspector {
	return &Inspector{
		runner:  runner,
		logger:  logger,
		timeout: timeout,
	}
}

// Inspect resolves path and collects its status facts. Failures are
// reported in the Result, never as an error; one bad directory must
// not abort the run.
func (ins *Inspector) Inspect(ctx context.Context, path string) Result {
	resolved := ResolvePath(path)

	info, err := os.Stat(resolved)
	if err != nil || !info.IsDir() {
		ins.logger.Debugw("not a directory", "path", resolved)
		return Result{Path: resolved, Outcome: OutcomeInvalid}
	}

	if !ins.isRepo(ctx, resolved) {
		ins.logger.Debugw("not a repository", "path", resolved)
		return Result{Path: resolved, Outcome: OutcomeNotARepo}
	}

	repo, err := ins.queryRepo(ctx, resolved)
	if err != nil {
		ins.logger.Debugw("inspection failed", "path", resolved, "error", err)
		return Result{Path: resolved, Outcome: OutcomeFailed, Err: err.Error()}
	}

	ins.logger.Debugw("inspected",
		"path", resolved,
		"branch", repo.Branch,
		"clean", repo.Clean,
		"upstream", repo.Upstream,
		"ahead", repo.AheadCount,
	)
	return Result{Path: resolved, Outcome: OutcomeInspected, Repo: repo}
}

func (ins *Inspector) isRepo(ctx context.Context, dir string) bool {
	ctx, cancel := ins.opCtx(ctx)
	defer cancel()
	return ins.runner.IsRepo(ctx, dir)
}

// queryRepo runs the branch, commit, status, and upstream queries in
// order, stopping at the first unexpected failure.
func (ins *Inspector) queryRepo(ctx context.Context, dir string) (*RepoInfo, error) {
	branch, err := ins.currentBranch(ctx, dir)
	if err != nil {
		return nil, err
	}

	lastCommit, err := ins.lastCommitMessage(ctx, dir)
	if err != nil {
		return nil, err
	}

	status, err := ins.statusPorcelain(ctx, dir)
	if err != nil {
		return nil, err
	}

	repo := &RepoInfo{
		Branch:     branch,
		LastCommit: lastCommit,
		Clean:      strings.TrimSpace(status) == "",
	}

	count, err := ins.aheadOfUpstream(ctx, dir)
	switch {
	case errors.Is(err, gitcmd.ErrNoUpstream):
		repo.Upstream = NoUpstream
	case err != nil:
		return nil, err
	case count > 0:
		repo.Upstream = HasUnpushed
		repo.AheadCount = count
	default:
		repo.Upstream = UpToDate
	}

	return repo, nil
}

func (ins *Inspector) currentBranch(ctx context.Context, dir string) (string, error) {
	ctx, cancel := ins.opCtx(ctx)
	defer cancel()
	return ins.runner.CurrentBranch(ctx, dir)
}

func (ins *Inspector) lastCommitMessage(ctx context.Context, dir string) (string, error) {
	ctx, cancel := ins.opCtx(ctx)
	defer cancel()
	return ins.runner.LastCommitMessage(ctx, dir)
}

func (ins *Inspector) statusPorcelain(ctx context.Context, dir string) (string, error) {
	ctx, cancel := ins.opCtx(ctx)
	defer cancel()
	return ins.runner.StatusPorcelain(ctx, dir)
}

func (ins *Inspector) aheadOfUpstream(ctx context.Context, dir string) (int, error) {
	ctx, cancel := ins.opCtx(ctx)
	defer cancel()
	return ins.runner.AheadOfUpstream(ctx, dir)
}

// opCtx bounds a single git invocation when a timeout is configured.
func (ins *Inspector) opCtx(ctx context.Context) (context.Context, context.CancelFunc) {
	if ins.timeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, ins.timeout)
}

// ResolvePath expands, absolutizes, and canonicalizes a configured
// path. Best effort: it never fails, even for paths that do not exist.
func ResolvePath(path string) string {
	expanded := config.ExpandHome(path)

	abs, err := filepath.Abs(expanded)
	if err != nil {
		abs = expanded
	}

	resolved, err := filepath.EvalSymlinks(abs)
	if err != nil {
		return abs
	}
	return resolved
}
