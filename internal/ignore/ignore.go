// Package ignore loads repo-local ignore patterns for the scanner.
package ignore

import (
	"bufio"
	"os"
	"path/filepath"
	"strings"

	doublestar "github.com/bmatcuk/doublestar/v4"
)

// FileName is the repo-local ignore file searched at the scan root.
const FileName = ".leakgateignore"

// Matcher holds glob patterns, one per line, # comments allowed.
type Matcher struct {
	patterns []string
}

// Load reads patterns from path. A missing file yields an empty matcher
// and an error the caller may disregard.
func Load(path string) (Matcher, error) {
	var m Matcher
	f, err := os.Open(path)
	if err != nil {
		return m, err
	}
	defer f.Close()
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		m.patterns = append(m.patterns, line)
	}
	return m, sc.Err()
}

// New builds a matcher from literal patterns, mainly for tests.
func New(patterns ...string) Matcher {
	return Matcher{patterns: patterns}
}

// Match reports whether rel (slash-separated) matches any pattern, either
// against the full relative path or its basename.
func (m Matcher) Match(rel string) bool {
	rp := strings.ReplaceAll(rel, "\\", "/")
	for _, p := range m.patterns {
		if ok, _ := doublestar.Match(p, rp); ok {
			return true
		}
		if ok, _ := doublestar.Match(p, filepath.Base(rp)); ok {
			return true
		}
	}
	return false
}
