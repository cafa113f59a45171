package cli

import "testing"

func TestPickInt64(t *testing.T) {
	local, global := int64(2048), int64(512)
	// 0 means the flag was left at its default, so file config must win
	if got := pickInt64(0, &local, &global); got != 2048 {
		t.Fatalf("local config must apply when the flag is unset, got %d", got)
	}
	if got := pickInt64(0, nil, &global); got != 512 {
		t.Fatalf("global config must apply when local is unset, got %d", got)
	}
	if got := pickInt64(4096, &local, &global); got != 4096 {
		t.Fatalf("an explicit flag must win, got %d", got)
	}
	if got := pickInt64(0, nil, nil); got != 0 {
		t.Fatalf("all unset must yield 0 so the engine default applies, got %d", got)
	}
}

func TestPickString(t *testing.T) {
	local, empty := "**/*.go", ""
	if got := pickString("", &local, nil); got != "**/*.go" {
		t.Fatalf("local config must apply, got %q", got)
	}
	if got := pickString("cli", &local, nil); got != "cli" {
		t.Fatalf("flag must win, got %q", got)
	}
	if got := pickString("", &empty, nil); got != "" {
		t.Fatalf("empty config values count as unset, got %q", got)
	}
}

func TestPickBool(t *testing.T) {
	yes, no := true, false
	if !pickBool(false, &yes, nil) {
		t.Fatal("local config must apply when the flag is unset")
	}
	if pickBool(false, &no, &yes) {
		t.Fatal("local config must shadow global")
	}
	if !pickBool(true, &no, nil) {
		t.Fatal("flag must win")
	}
}
