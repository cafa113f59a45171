package engine

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/leakgate/leakgate/internal/ignore"
	"github.com/leakgate/leakgate/internal/scanner"
)

func TestWalk_IncludeGlobs(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.env", "x\n")
	writeFile(t, dir, "b.txt", "y\n")

	var seen []string
	err := Walk(Config{Root: dir, IncludeGlobs: "**/*.env"}, ignore.Matcher{}, func(rel string, _ scanner.Target) {
		seen = append(seen, rel)
	})
	require.NoError(t, err)
	require.Equal(t, []string{"a.env"}, seen)
}

func TestWalk_SkipsUnreadable(t *testing.T) {
	if os.Getuid() == 0 {
		t.Skip("permission bits are advisory for root")
	}
	dir := t.TempDir()
	p := writeFile(t, dir, "locked.txt", "pwd=hunter2\n")
	require.NoError(t, os.Chmod(p, 0o000))
	t.Cleanup(func() { _ = os.Chmod(p, 0o644) })

	var seen []string
	err := Walk(Config{Root: dir}, ignore.Matcher{}, func(rel string, _ scanner.Target) {
		seen = append(seen, rel)
	})
	require.NoError(t, err, "an unreadable file must not abort the walk")
	require.Empty(t, seen)
}

func TestCountTargets(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.env", "x\n")
	writeFile(t, dir, filepath.Join("node_modules", "b.js"), "y\n")

	require.Equal(t, 1, CountTargets(Config{Root: dir, DefaultExcludes: true}))
	require.Equal(t, 2, CountTargets(Config{Root: dir}))
}
