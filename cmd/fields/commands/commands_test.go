package commands

import (
	"io"
	"os"
	"strings"
	"testing"
)

// runCLI executes the root command with args and returns captured stdout.
func runCLI(t *testing.T, args ...string) string {
	t.Helper()

	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("pipe: %v", err)
	}
	origStdout := os.Stdout
	origArgs := os.Args
	os.Stdout = w
	os.Args = append([]string{"fields"}, args...)

	execErr := Execute()

	w.Close()
	os.Stdout = origStdout
	os.Args = origArgs

	out, readErr := io.ReadAll(r)
	if readErr != nil {
		t.Fatalf("read output: %v", readErr)
	}
	if execErr != nil {
		t.Fatalf("fields %s: %v", strings.Join(args, " "), execErr)
	}
	return string(out)
}

func TestHello(t *testing.T) {
	out := runCLI(t, "--home", t.TempDir(), "hello")
	if !strings.Contains(out, "Hello from Fields!") {
		t.Fatalf("unexpected output: %q", out)
	}
}

func TestListFieldsRendersTable(t *testing.T) {
	home := t.TempDir()

	runCLI(t, "--home", home,
		"create-field", "--name", "Shoreline North", "--value", "reserved")

	out := runCLI(t, "--home", home, "list-fields")
	for _, want := range []string{"Shoreline North", "reserved"} {
		if !strings.Contains(out, want) {
			t.Fatalf("table output missing %q:\n%s", want, out)
		}
	}
}

func TestListFieldsEmptyCatalog(t *testing.T) {
	out := runCLI(t, "--home", t.TempDir(), "list-fields")
	if !strings.Contains(out, "catalog is empty") {
		t.Fatalf("unexpected output: %q", out)
	}
}
