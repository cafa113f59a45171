package git

import "testing"

func TestStagedFiles_NotARepo(t *testing.T) {
	if _, _, err := StagedFiles(t.TempDir()); err == nil {
		t.Fatal("expected error outside a git repository")
	}
}

func TestRepoMetadata_NotARepo(t *testing.T) {
	repo, commit, branch := RepoMetadata(t.TempDir())
	if repo != "" || commit != "" || branch != "" {
		t.Fatalf("expected empty metadata outside a repo, got (%q, %q, %q)", repo, commit, branch)
	}
}
