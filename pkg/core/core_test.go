package core

import (
	"bytes"
	"testing"
)

func TestScan_Smoke(t *testing.T) {
	cfg := Config{
		Root: t.TempDir(),
	}
	findings, err := Scan(cfg)
	if err != nil {
		t.Fatalf("Scan error: %v", err)
	}
	if len(findings) != 0 {
		t.Fatalf("expected no findings in an empty dir, got %+v", findings)
	}
	if len(RuleNames()) == 0 {
		t.Fatal("expected non-empty rule names")
	}
}

func TestFindingsJSONRoundTrip(t *testing.T) {
	fs := []Finding{{Path: "a.env", Line: 3, Rule: "AWS Key", Severity: "high"}}
	var buf bytes.Buffer
	if err := MarshalFindings(&buf, fs); err != nil {
		t.Fatalf("marshal: %v", err)
	}
	got, err := UnmarshalFindings(&buf)
	if err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(got) != 1 || got[0] != fs[0] {
		t.Fatalf("round trip mismatch: %+v", got)
	}
}
