package engine

import (
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/leakgate/leakgate/internal/ignore"
	"github.com/leakgate/leakgate/internal/scanner"
)

// Walk traverses the working tree and invokes handle for each eligible
// file. Selection mirrors scanList: globs, ignore patterns, size and
// text gates; all exclusions are silent.
func Walk(cfg Config, ign ignore.Matcher, handle func(rel string, t scanner.Target)) error {
	root := cfg.Root
	if root == "" {
		root = "."
	}
	return filepath.WalkDir(root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if d.IsDir() {
			if cfg.DefaultExcludes && isDefaultDirExcluded(d.Name()) {
				return filepath.SkipDir
			}
			return nil
		}
		rel, _ := filepath.Rel(root, p)
		if !allowedByGlobs(rel, cfg) {
			return nil
		}
		if ign.Match(rel) {
			return nil
		}
		if cfg.DefaultExcludes && isDefaultFileExcluded(strings.ToLower(rel)) {
			return nil
		}
		t, ok := scanner.ReadTarget(p, cfg.MaxBytes)
		if !ok {
			return nil
		}
		handle(rel, t)
		return nil
	})
}

// CountTargets estimates the number of files a walk would process. It
// mirrors the selection logic but avoids reading file content.
func CountTargets(cfg Config) int {
	root := cfg.Root
	if root == "" {
		root = "."
	}
	ign, _ := ignore.Load(filepath.Join(root, ignore.FileName))
	count := 0
	_ = filepath.WalkDir(root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if d.IsDir() {
			if cfg.DefaultExcludes && isDefaultDirExcluded(d.Name()) {
				return filepath.SkipDir
			}
			return nil
		}
		rel, _ := filepath.Rel(root, p)
		if !allowedByGlobs(rel, cfg) {
			return nil
		}
		if ign.Match(rel) {
			return nil
		}
		if cfg.DefaultExcludes && isDefaultFileExcluded(strings.ToLower(rel)) {
			return nil
		}
		if info, err := d.Info(); err != nil || (cfg.MaxBytes > 0 && info.Size() > cfg.MaxBytes) {
			return nil
		}
		count++
		return nil
	})
	return count
}
