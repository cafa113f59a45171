package hook

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/leakgate/leakgate/internal/git"
)

// marker identifies hooks we wrote, so install/uninstall never clobbers a
// hand-rolled hook without --force.
const marker = "# managed by leakgate"

const script = `#!/bin/sh
` + marker + `
# Scans staged files for secret-shaped strings before each commit.
exec leakgate hook
`

// Install writes the pre-commit hook into the repository at root.
func Install(root string, force bool) (string, error) {
	dir, err := git.HooksDir(root)
	if err != nil {
		return "", err
	}
	return InstallInto(dir, force)
}

// Uninstall removes the hook if it is ours. Removing a foreign hook is an
// error; a missing hook is not.
func Uninstall(root string) error {
	dir, err := git.HooksDir(root)
	if err != nil {
		return err
	}
	path := filepath.Join(dir, "pre-commit")
	b, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return err
	}
	if !strings.Contains(string(b), marker) {
		return fmt.Errorf("%s was not installed by leakgate, leaving it in place", path)
	}
	return os.Remove(path)
}

// InstallInto is Install with an explicit hooks directory, used when the
// caller already resolved it (and by tests).
func InstallInto(dir string, force bool) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	path := filepath.Join(dir, "pre-commit")
	if b, err := os.ReadFile(path); err == nil {
		if !strings.Contains(string(b), marker) && !force {
			return "", fmt.Errorf("%s exists and was not installed by leakgate (use --force to overwrite)", path)
		}
	}
	if err := os.WriteFile(path, []byte(script), 0o755); err != nil {
		return "", err
	}
	return path, nil
}
