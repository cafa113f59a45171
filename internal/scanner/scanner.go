// Package scanner turns file content into findings. It splits content into
// physical lines, suppresses comment-looking lines, and evaluates the rule
// registry in order with a first-match-wins policy per line.
package scanner

import (
	"bufio"
	"bytes"
	"mime"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/leakgate/leakgate/internal/rules"
	"github.com/leakgate/leakgate/internal/types"
)

// DefaultMaxBytes is the per-file size gate. Larger files are skipped
// silently; this is cost control, not correctness.
const DefaultMaxBytes = 1 << 20

// Target is one file's content queued for scanning. It is owned by a single
// scan call and discarded afterwards.
type Target struct {
	Path    string
	Content []byte
}

// Comment suppression is a prefix heuristic over the whitespace-trimmed
// line, not a lexer. It intentionally also silences non-comment lines that
// happen to start with these markers.
var commentMarkers = []string{"#", "//", "/*", "*", "<!--"}

func isCommentLine(line string) bool {
	trimmed := strings.TrimLeft(line, " \t")
	for _, m := range commentMarkers {
		if strings.HasPrefix(trimmed, m) {
			return true
		}
	}
	return false
}

// ScanTarget returns the ordered findings for one target. Lines are 1-based;
// a line yields at most one finding, from the earliest-registered rule that
// matches anywhere in it.
func ScanTarget(t Target) []types.Finding {
	var out []types.Finding
	sc := bufio.NewScanner(bytes.NewReader(t.Content))
	// a single line may span the whole file; an undersized buffer would stop
	// the scan early and silently drop every later line
	sc.Buffer(make([]byte, 0, 64*1024), len(t.Content)+1)
	line := 0
	for sc.Scan() {
		line++
		txt := sc.Text()
		if isCommentLine(txt) {
			continue
		}
		for _, r := range rules.Registry() {
			if loc := r.Pattern.FindStringIndex(txt); loc != nil {
				out = append(out, types.Finding{
					Path:     t.Path,
					Line:     line,
					Rule:     r.Name,
					Match:    txt[loc[0]:loc[1]],
					Severity: r.Severity,
				})
				break
			}
		}
	}
	return out
}

// ReadTarget reads a candidate file and reports whether it is scannable.
// Missing or irregular paths, files over maxBytes, and non-text content are
// silent exclusions: ok=false, no error. A problem with one file must never
// abort the rest of the run.
func ReadTarget(path string, maxBytes int64) (Target, bool) {
	if maxBytes <= 0 {
		maxBytes = DefaultMaxBytes
	}
	info, err := os.Stat(path)
	if err != nil || !info.Mode().IsRegular() {
		return Target{}, false
	}
	if info.Size() > maxBytes {
		return Target{}, false
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return Target{}, false
	}
	if LooksBinary(b) || looksNonTextMIME(path, b) {
		return Target{}, false
	}
	return Target{Path: path, Content: b}, true
}

// LooksBinary sniffs a prefix for NUL bytes and invalid UTF-8, the cheap
// signals that content is not line-oriented text.
func LooksBinary(b []byte) bool {
	const sniff = 800
	n := len(b)
	if n > sniff {
		n = sniff
	}
	for i := 0; i < n; i++ {
		if b[i] == 0 {
			return true
		}
	}
	// trim a possibly split trailing rune before validating
	head := b[:n]
	for len(head) > 0 && n == sniff && !utf8.RuneStart(head[len(head)-1]) {
		head = head[:len(head)-1]
	}
	return !utf8.Valid(head)
}

// looksNonTextMIME uses the file extension and tiny magic-number checks to
// skip clearly non-text content in addition to NUL detection.
func looksNonTextMIME(path string, b []byte) bool {
	if ct := mime.TypeByExtension(filepath.Ext(path)); ct != "" {
		if strings.HasPrefix(ct, "image/") || strings.HasPrefix(ct, "video/") || strings.HasPrefix(ct, "audio/") {
			return true
		}
		if strings.Contains(ct, "zip") || strings.Contains(ct, "tar") || strings.Contains(ct, "gzip") {
			return true
		}
	}
	if len(b) >= 8 && string(b[:8]) == "\x89PNG\r\n\x1a\n" {
		return true
	}
	if len(b) >= 2 && b[0] == 'P' && b[1] == 'K' {
		return true
	}
	return false
}
