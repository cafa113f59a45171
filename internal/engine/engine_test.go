package engine

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func join(parts ...string) string {
	return strings.Join(parts, "")
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(p), 0o755))
	require.NoError(t, os.WriteFile(p, []byte(content), 0o644))
	return p
}

func TestScanList_OrderFollowsArguments(t *testing.T) {
	dir := t.TempDir()
	key := join("AKIA", "ABCDEFGHIJKLMNOP")
	b := writeFile(t, dir, "b.env", "x\nkey = "+key+"\n")
	a := writeFile(t, dir, "a.env", "pwd=hunter2\ny\nkey = "+key+"\n")

	res, err := ScanWithStats(Config{Paths: []string{b, a}})
	require.NoError(t, err)
	require.Len(t, res.Findings, 3)
	// file argument order first, then ascending line number
	require.Equal(t, b, res.Findings[0].Path)
	require.Equal(t, 2, res.Findings[0].Line)
	require.Equal(t, a, res.Findings[1].Path)
	require.Equal(t, 1, res.Findings[1].Line)
	require.Equal(t, a, res.Findings[2].Path)
	require.Equal(t, 3, res.Findings[2].Line)
	require.Equal(t, 2, res.FilesScanned)
}

func TestScanList_DuplicateArgumentsDeduped(t *testing.T) {
	dir := t.TempDir()
	p := writeFile(t, dir, "a.env", "pwd=hunter2\n")
	res, err := ScanWithStats(Config{Paths: []string{p, p}})
	require.NoError(t, err)
	require.Len(t, res.Findings, 1, "at most one finding per (path, line)")
}

func TestScanList_SilentSkips(t *testing.T) {
	dir := t.TempDir()
	// 2 MiB of non-text content: over the size gate and binary
	big := writeFile(t, dir, "blob.dat", strings.Repeat("\x00a", 1<<20))
	missing := filepath.Join(dir, "gone.txt")

	res, err := ScanWithStats(Config{Paths: []string{big, missing}})
	require.NoError(t, err, "skippable input must not surface as an error")
	require.Empty(t, res.Findings)
	require.Zero(t, res.FilesScanned)
}

func TestScanList_RelativePathsResolveAgainstRoot(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.env", "pwd=hunter2\n")
	res, err := ScanWithStats(Config{Paths: []string{"a.env"}, Root: dir})
	require.NoError(t, err)
	require.Len(t, res.Findings, 1)
	require.Equal(t, "a.env", res.Findings[0].Path, "findings keep the caller's spelling")
}

func TestScanList_ExcludeGlobs(t *testing.T) {
	dir := t.TempDir()
	p := writeFile(t, dir, "a.env", "pwd=hunter2\n")
	res, err := ScanWithStats(Config{Paths: []string{p}, ExcludeGlobs: "*.env"})
	require.NoError(t, err)
	require.Empty(t, res.Findings)
}

func TestScanTree_WalksAndFilters(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "src/app.go", "token := \""+join("sk_live_", "abcDEF123456")+"\"\n")
	writeFile(t, dir, "node_modules/dep/index.js", "pwd=hunter2\n")
	writeFile(t, dir, "notes.txt", "// pwd=hunter2\n")

	res, err := ScanWithStats(Config{Root: dir, DefaultExcludes: true})
	require.NoError(t, err)
	require.Len(t, res.Findings, 1)
	require.Equal(t, filepath.Join("src", "app.go"), res.Findings[0].Path)
	require.Equal(t, "Stripe Live Key", res.Findings[0].Rule)
}

func TestScanTree_RespectsIgnoreFile(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.env", "pwd=hunter2\n")
	writeFile(t, dir, ".leakgateignore", "*.env\n")

	res, err := ScanWithStats(Config{Root: dir})
	require.NoError(t, err)
	require.Empty(t, res.Findings)
}

func TestRuleNames(t *testing.T) {
	names := RuleNames()
	require.NotEmpty(t, names)
	require.Equal(t, "AWS Key", names[0])
}
