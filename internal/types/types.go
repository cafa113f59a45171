package types

// Severity is a coarse-grained risk level for a finding.
type Severity string

const (
	SevLow  Severity = "low"
	SevMed  Severity = "medium"
	SevHigh Severity = "high"
)

// Finding describes a potential secret detected at a path and 1-based line.
// Rule is the name of the registry rule that matched; a line yields at most
// one finding, from the earliest-registered rule.
type Finding struct {
	Path     string   `json:"path"`
	Line     int      `json:"line"`
	Rule     string   `json:"rule"`
	Match    string   `json:"match,omitempty"` // matched text (masked on render)
	Severity Severity `json:"severity"`
}
