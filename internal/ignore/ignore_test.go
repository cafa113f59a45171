package ignore

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadAndMatch(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, FileName)
	content := "# generated files\n*.min.js\nsecrets/**\n\n.env\n"
	if err := os.WriteFile(p, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	m, err := Load(p)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	cases := map[string]bool{
		"app.min.js":        true,
		"nested/app.min.js": true, // basename fallback
		"secrets/prod.yml":  true,
		".env":              true,
		"main.go":           false,
		"secrets.go":        false,
	}
	for rel, want := range cases {
		if got := m.Match(rel); got != want {
			t.Errorf("Match(%q) = %v, want %v", rel, got, want)
		}
	}
}

func TestLoadMissingFile(t *testing.T) {
	m, err := Load(filepath.Join(t.TempDir(), FileName))
	if err == nil {
		t.Fatal("expected error for missing ignore file")
	}
	if m.Match("anything") {
		t.Fatal("empty matcher must match nothing")
	}
}
