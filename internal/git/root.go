package git

import (
	"errors"
	"log/slog"
	"path/filepath"

	"github.com/go-git/go-git/v5"

	foundationerrors "git.home.luguber.info/inful/doclinkcheck/internal/foundation/errors"
	"git.home.luguber.info/inful/doclinkcheck/internal/logfields"
)

// FindRepositoryRoot returns the worktree root of the git repository that
// contains start, walking up parent directories. When start is not inside a
// repository the absolute form of start is returned with found=false.
func FindRepositoryRoot(start string) (root string, found bool, err error) {
	abs, err := filepath.Abs(start)
	if err != nil {
		return "", false, foundationerrors.RepositoryError("failed to resolve start directory").
			WithCause(err).
			WithContext("path", start).
			Build()
	}

	repo, err := git.PlainOpenWithOptions(abs, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		if errors.Is(err, git.ErrRepositoryNotExists) {
			slog.Debug("No enclosing git repository, using start directory", logfields.Path(abs))
			return abs, false, nil
		}
		return "", false, foundationerrors.RepositoryError("failed to open repository").
			WithCause(err).
			WithContext("path", abs).
			Build()
	}

	wt, err := repo.Worktree()
	if err != nil {
		// Bare repositories have no worktree to hold a docs directory.
		if errors.Is(err, git.ErrIsBareRepository) {
			return abs, false, nil
		}
		return "", false, foundationerrors.RepositoryError("failed to open worktree").
			WithCause(err).
			WithContext("path", abs).
			Build()
	}

	root = wt.Filesystem.Root()
	slog.Debug("Detected repository root", logfields.RepoRoot(root))
	return root, true, nil
}

// ResolveDocsRoot turns docsDir into an absolute path. Relative values are
// joined to repoRoot.
func ResolveDocsRoot(repoRoot, docsDir string) string {
	if filepath.IsAbs(docsDir) {
		return filepath.Clean(docsDir)
	}
	return filepath.Join(repoRoot, docsDir)
}
