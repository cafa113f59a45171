package engine

import (
	"path/filepath"
	"strconv"
	"time"

	xxhash "github.com/cespare/xxhash/v2"
	"github.com/leakgate/leakgate/internal/ignore"
	"github.com/leakgate/leakgate/internal/rules"
	"github.com/leakgate/leakgate/internal/scanner"
	"github.com/leakgate/leakgate/internal/types"
)

// Config controls scanning behavior including scope and filters.
type Config struct {
	// Paths, when non-empty, selects explicit-list mode: files are scanned
	// in argument order and Root (if set) resolves relative paths.
	Paths []string

	// Root is the tree to walk when Paths is empty, and the base for
	// relative Paths otherwise.
	Root string

	IncludeGlobs    string
	ExcludeGlobs    string
	MaxBytes        int64
	DefaultExcludes bool
	NoColor         bool
	Progress        func()
}

// Result contains findings and basic scan statistics.
type Result struct {
	Findings     []types.Finding
	FilesScanned int
	Duration     time.Duration
}

// Scan runs a scan and returns only findings (without stats).
func Scan(cfg Config) ([]types.Finding, error) {
	res, err := ScanWithStats(cfg)
	if err != nil {
		return nil, err
	}
	return res.Findings, nil
}

// ScanWithStats runs a scan and returns findings along with timing and
// counts. Findings are ordered by (file selection order, line number).
// Scanning is sequential; one file is fully processed before the next.
func ScanWithStats(cfg Config) (Result, error) {
	var result Result
	if cfg.MaxBytes <= 0 {
		cfg.MaxBytes = scanner.DefaultMaxBytes
	}
	started := time.Now()

	if len(cfg.Paths) > 0 {
		scanList(cfg, &result)
	} else {
		if err := scanTree(cfg, &result); err != nil {
			return result, err
		}
	}

	result.Duration = time.Since(started)
	return result, nil
}

// scanList handles explicit file arguments. Unreadable, oversized, and
// non-text paths are silent exclusions and never abort the rest of the list.
func scanList(cfg Config, result *Result) {
	seen := map[uint64]bool{}
	for _, p := range cfg.Paths {
		if !allowedByGlobs(p, cfg) {
			continue
		}
		full := p
		if cfg.Root != "" && !filepath.IsAbs(p) {
			full = filepath.Join(cfg.Root, p)
		}
		t, ok := scanner.ReadTarget(full, cfg.MaxBytes)
		if !ok {
			continue
		}
		t.Path = p // report the caller's spelling, not the resolved one
		result.FilesScanned++
		if cfg.Progress != nil {
			cfg.Progress()
		}
		for _, f := range scanner.ScanTarget(t) {
			k := findingKey(f)
			if seen[k] {
				continue
			}
			seen[k] = true
			result.Findings = append(result.Findings, f)
		}
	}
}

func scanTree(cfg Config, result *Result) error {
	ign, _ := ignore.Load(filepath.Join(cfg.Root, ignore.FileName))
	return Walk(cfg, ign, func(rel string, t scanner.Target) {
		t.Path = rel
		result.FilesScanned++
		if cfg.Progress != nil {
			cfg.Progress()
		}
		result.Findings = append(result.Findings, scanner.ScanTarget(t)...)
	})
}

// findingKey hashes the (path, line) identity; at most one finding may
// exist per physical line even if the same path is listed twice.
func findingKey(f types.Finding) uint64 {
	return xxhash.Sum64String(f.Path + "\x00" + strconv.Itoa(f.Line))
}

// RuleNames returns the registry names in registration order, for UI and
// help commands.
func RuleNames() []string {
	return rules.Names()
}
