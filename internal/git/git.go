// Package git answers the version-control questions the scanner itself
// stays out of: which files are staged, where the hooks directory lives,
// and best-effort repo metadata.
package git

import (
	"fmt"
	"os/exec"
	"path/filepath"
	"sort"
	"strings"

	gogit "github.com/go-git/go-git/v5"
)

func open(root string) (*gogit.Repository, error) {
	repo, err := gogit.PlainOpenWithOptions(root, &gogit.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return nil, fmt.Errorf("open repository at %s: %w", root, err)
	}
	return repo, nil
}

// StagedFiles returns the worktree root and the paths staged for the next
// commit (added, copied, modified, renamed; deletions excluded), relative
// to that root and sorted for a stable scan order.
func StagedFiles(root string) (string, []string, error) {
	repo, err := open(root)
	if err != nil {
		return "", nil, err
	}
	wt, err := repo.Worktree()
	if err != nil {
		return "", nil, fmt.Errorf("worktree: %w", err)
	}
	status, err := wt.Status()
	if err != nil {
		return "", nil, fmt.Errorf("status: %w", err)
	}
	var out []string
	for path, st := range status {
		switch st.Staging {
		case gogit.Added, gogit.Modified, gogit.Renamed, gogit.Copied:
			out = append(out, path)
		}
	}
	sort.Strings(out)
	return wt.Filesystem.Root(), out, nil
}

// RepoMetadata returns (repo, commit, branch) best-effort for the given
// root. Empty strings are returned on failure.
func RepoMetadata(root string) (string, string, string) {
	r, err := open(root)
	if err != nil {
		return "", "", ""
	}
	repo := ""
	if rem, err := r.Remote("origin"); err == nil && len(rem.Config().URLs) > 0 {
		s := strings.TrimSuffix(rem.Config().URLs[0], ".git")
		if i := strings.LastIndex(s, ":"); i >= 0 {
			s = s[i+1:]
		}
		if i := strings.Index(s, "github.com/"); i >= 0 {
			s = s[i+len("github.com/"):]
		}
		repo = strings.TrimPrefix(s, "//")
	}
	commit, branch := "", ""
	if head, err := r.Head(); err == nil {
		commit = head.Hash().String()
		branch = head.Name().Short()
	}
	return repo, commit, branch
}

// HooksDir resolves the repository's hooks directory, honoring
// core.hooksPath when set. Plumbing via the git binary keeps this correct
// for worktrees and submodules.
func HooksDir(root string) (string, error) {
	out, err := exec.Command("git", "-C", root, "rev-parse", "--git-path", "hooks").Output()
	if err != nil {
		return "", fmt.Errorf("resolve hooks dir: %w", err)
	}
	dir := strings.TrimSpace(string(out))
	if !filepath.IsAbs(dir) {
		dir = filepath.Join(root, dir)
	}
	return dir, nil
}
