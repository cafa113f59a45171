package hook

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParseAnswer(t *testing.T) {
	yes := []string{"y", "Y", "yes", "YES", " yes \n"}
	no := []string{"", "n", "no", "nah", "yeah", "\n"}
	for _, s := range yes {
		if !ParseAnswer(s) {
			t.Errorf("ParseAnswer(%q) = false, want true", s)
		}
	}
	for _, s := range no {
		if ParseAnswer(s) {
			t.Errorf("ParseAnswer(%q) = true, want false", s)
		}
	}
}

func TestInstallInto_WritesManagedScript(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "hooks")
	path, err := InstallInto(dir, false)
	if err != nil {
		t.Fatalf("install: %v", err)
	}
	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(b), marker) {
		t.Fatal("installed hook is missing the ownership marker")
	}
	if !strings.Contains(string(b), "leakgate hook") {
		t.Fatal("installed hook does not invoke leakgate")
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if info.Mode()&0o111 == 0 {
		t.Fatal("hook script must be executable")
	}
	// reinstalling our own hook needs no force
	if _, err := InstallInto(dir, false); err != nil {
		t.Fatalf("reinstall: %v", err)
	}
}

func TestInstallInto_RefusesForeignHook(t *testing.T) {
	dir := t.TempDir()
	foreign := filepath.Join(dir, "pre-commit")
	if err := os.WriteFile(foreign, []byte("#!/bin/sh\necho custom\n"), 0o755); err != nil {
		t.Fatal(err)
	}
	if _, err := InstallInto(dir, false); err == nil {
		t.Fatal("expected refusal to overwrite a foreign hook")
	}
	if _, err := InstallInto(dir, true); err != nil {
		t.Fatalf("force install: %v", err)
	}
	b, _ := os.ReadFile(foreign)
	if !strings.Contains(string(b), marker) {
		t.Fatal("force install should replace the hook")
	}
}
