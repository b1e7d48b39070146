package loader

import (
	"strings"
	"testing"

	"github.com/lookbusy1344/bigint/config"
	"github.com/lookbusy1344/bigint/repl"
)

func TestRunScriptFromEvaluatesEachLine(t *testing.T) {
	session := repl.NewSession(config.DefaultConfig())
	script := strings.NewReader("# a comment\n1 + 2\n\nx = 10 * 4\nans + x\n")
	var out strings.Builder

	if err := RunScriptFrom(script, session, &out); err != nil {
		t.Fatalf("RunScriptFrom: %v", err)
	}

	got := strings.Split(strings.TrimSpace(out.String()), "\n")
	want := []string{"3", "x = 40", "43"}
	if len(got) != len(want) {
		t.Fatalf("got %d lines %v, want %d lines %v", len(got), got, len(want), want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("line %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestRunScriptFromStopsAtFirstError(t *testing.T) {
	session := repl.NewSession(config.DefaultConfig())
	script := strings.NewReader("1 + 2\n1 / 0\n99\n")
	var out strings.Builder

	err := RunScriptFrom(script, session, &out)
	if err == nil {
		t.Fatal("expected an error from line 2")
	}
	if !strings.Contains(err.Error(), "line 2") {
		t.Errorf("error = %v, want it to mention line 2", err)
	}
	if strings.Contains(out.String(), "99") {
		t.Error("execution should have stopped before the third line")
	}
}
