package main

import (
	"bytes"
	"os"
	"strings"
	"testing"
)

// runCLI drives run() with captured output buffers. Subcommands under
// test here all take a file argument rather than stdin.
func runCLI(t *testing.T, args ...string) (stdout, stderr string, code int) {
	t.Helper()
	var out, errOut bytes.Buffer
	code = run(args, &out, &errOut)
	return out.String(), errOut.String(), code
}

func TestRunDefaultsToTestSubcommand(t *testing.T) {
	stdout, _, code := runCLI(t)
	if code != 0 {
		t.Fatalf("bare lexlucid exited %d, want 0; stdout=%s", code, stdout)
	}
	if !strings.Contains(stdout, "scenarios passed") {
		t.Fatalf("bare lexlucid stdout = %q, want a summary line", stdout)
	}
}

func TestRunTestSubcommand(t *testing.T) {
	stdout, _, code := runCLI(t, "test")
	if code != 0 {
		t.Fatalf("test subcommand exited %d, want 0; stdout=%s", code, stdout)
	}
	if !strings.Contains(stdout, "scenarios passed") {
		t.Fatalf("test subcommand stdout = %q, want a summary line", stdout)
	}
}

func TestRunTestSubcommandShort(t *testing.T) {
	stdout, _, code := runCLI(t, "test", "--short")
	if code != 0 {
		t.Fatalf("test --short exited %d, want 0; stdout=%s", code, stdout)
	}
	if !strings.Contains(stdout, "scenarios passed") {
		t.Fatalf("test --short stdout = %q, want a summary line", stdout)
	}
}

func TestRunInspectFromFile(t *testing.T) {
	path := writeTempSource(t, "a + b")
	stdout, _, code := runCLI(t, "inspect", path)
	if code != 0 {
		t.Fatalf("inspect exited %d, want 0; stdout=%s", code, stdout)
	}
	if !strings.Contains(stdout, "ident") {
		t.Fatalf("inspect stdout = %q, want it to mention an ident token", stdout)
	}
}

func TestRunCoarseFromFile(t *testing.T) {
	path := writeTempSource(t, "x += 1_000u32")
	stdout, _, code := runCLI(t, "coarse", path)
	if code != 0 {
		t.Fatalf("coarse exited %d, want 0; stdout=%s", code, stdout)
	}
	if !strings.Contains(stdout, "integer-literal") {
		t.Fatalf("coarse stdout = %q, want it to mention the integer literal", stdout)
	}
}

func TestRunIdentCheckFindsForbiddenRawIdent(t *testing.T) {
	path := writeTempSource(t, "r#self")
	stdout, _, code := runCLI(t, "identcheck", path)
	if code != exitChecksFailed {
		t.Fatalf("identcheck exited %d, want %d; stdout=%s", code, exitChecksFailed, stdout)
	}
	if !strings.Contains(stdout, "forbidden") {
		t.Fatalf("identcheck stdout = %q, want a forbidden-name report", stdout)
	}
}

func TestRunIdentCheckAllowsPlainSelf(t *testing.T) {
	path := writeTempSource(t, "self")
	stdout, _, code := runCLI(t, "identcheck", path)
	if code != 0 {
		t.Fatalf("identcheck exited %d, want 0; stdout=%s", code, stdout)
	}
	if !strings.Contains(stdout, "no forbidden") {
		t.Fatalf("identcheck stdout = %q, want the all-clear message", stdout)
	}
}

func TestRunCollaboratorStubsExitTwo(t *testing.T) {
	for _, name := range []string{"compare", "decl-compare", "proptest"} {
		_, _, code := runCLI(t, name)
		if code != exitArgError {
			t.Fatalf("%s exited %d, want %d", name, code, exitArgError)
		}
	}
}

func TestRunInvalidEditionIsArgError(t *testing.T) {
	path := writeTempSource(t, "a")
	_, _, code := runCLI(t, "inspect", "--edition=1999", path)
	if code != exitArgError {
		t.Fatalf("invalid edition exited %d, want %d", code, exitArgError)
	}
}

func writeTempSource(t *testing.T, src string) string {
	t.Helper()
	path := t.TempDir() + "/input.rs"
	if err := os.WriteFile(path, []byte(src), 0o644); err != nil {
		t.Fatalf("writing temp source: %v", err)
	}
	return path
}
