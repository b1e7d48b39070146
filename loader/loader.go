// Package loader runs a file of calculator commands in batch mode: one
// command per line, in order, with output written the same way the REPL
// prints an evaluated line. It exists for non-interactive invocations of
// bigintctl (scripted tests, CI checks, generated calculations) the way
// the teacher project's loader turns a static program into VM state
// before execution begins.
package loader

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/lookbusy1344/bigint/repl"
)

// RunScript reads commands from path, executing each through session in
// order, and writes one line of output per non-empty, non-comment input
// line to out. A line beginning with '#' is a comment and produces no
// output. Execution stops at the first error, returning the 1-based line
// number it occurred on.
func RunScript(path string, session *repl.Session, out io.Writer) error {
	f, err := os.Open(path) // #nosec G304 -- path is an operator-supplied CLI argument
	if err != nil {
		return fmt.Errorf("loader: open %s: %w", path, err)
	}
	defer f.Close()

	return RunScriptFrom(f, session, out)
}

// RunScriptFrom is RunScript reading from an already-open source, so
// callers (and tests) can drive it from a string or stdin.
func RunScriptFrom(r io.Reader, session *repl.Session, out io.Writer) error {
	scanner := bufio.NewScanner(r)
	lineNo := 0

	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		result, err := session.Execute(line)
		if err != nil {
			return fmt.Errorf("loader: line %d: %w", lineNo, err)
		}
		if result != "" {
			fmt.Fprintln(out, result)
		}
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("loader: read error: %w", err)
	}
	return nil
}
