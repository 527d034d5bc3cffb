package e2e

import (
	"os"
	"os/exec"
	"path/filepath"
	"testing"
)

// buildNotebookBinary builds the notebook binary in dir and returns its path.
func buildNotebookBinary(t *testing.T, dir string) string {
	t.Helper()
	bin := filepath.Join(dir, "notebook.exe")
	// Tests run from tests/e2e.
	buildCmd := exec.Command("go", "build", "-o", bin, "../../cmd/notebook")
	if out, err := buildCmd.CombinedOutput(); err != nil {
		t.Fatalf("Failed to build notebook: %v\n%s", err, string(out))
	}
	return bin
}

// runCmd runs the binary in dir and returns its stdout. It fails the test on a non-zero exit.
func runCmd(t *testing.T, dir string, name string, args ...string) string {
	t.Helper()
	cmd := exec.Command(name, args...)
	cmd.Dir = dir
	cmd.Env = append(os.Environ(), "XDG_CONFIG_HOME="+dir)
	cmd.Stderr = os.Stderr
	out, err := cmd.Output()
	if err != nil {
		t.Fatalf("Command %s %v failed in %s: %v", name, args, dir, err)
	}
	return string(out)
}
