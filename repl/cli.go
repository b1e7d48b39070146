package repl

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// RunCLI runs the line-oriented command-line calculator, grounded on the
// teacher project's debugger RunCLI scan/print loop.
func RunCLI(s *Session) error {
	return RunCLIWithIO(s, os.Stdin, os.Stdout)
}

// RunCLIWithIO is RunCLI with explicit streams, split out so tests can
// drive the loop without touching the real terminal.
func RunCLIWithIO(s *Session, in io.Reader, out io.Writer) error {
	scanner := bufio.NewScanner(in)

	prompt := "bigint> "
	if s.Cfg != nil && s.Cfg.REPL.Prompt != "" {
		prompt = s.Cfg.REPL.Prompt
	}
	// Suppress the prompt when stdin isn't a real terminal (piped input,
	// input redirected from a file) so captured/redirected output isn't
	// interleaved with prompt noise.
	if f, ok := in.(*os.File); ok && !term.IsTerminal(int(f.Fd())) {
		prompt = ""
	}

	for {
		fmt.Fprint(out, prompt)

		if !scanner.Scan() {
			break
		}

		line := strings.TrimSpace(scanner.Text())

		if line == "quit" || line == "q" || line == "exit" {
			fmt.Fprintln(out, "Goodbye.")
			break
		}
		if line == "" {
			continue
		}
		if line == "help" {
			printHelp(out)
			continue
		}

		result, err := s.Execute(line)
		if err != nil {
			fmt.Fprintf(out, "Error: %v\n", err)
			continue
		}
		if result != "" {
			fmt.Fprintln(out, result)
		}
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("repl: input error: %w", err)
	}
	return nil
}

func printHelp(out io.Writer) {
	fmt.Fprint(out, `Commands:
  <expr>            evaluate an arithmetic expression (+ - * / % with parens)
  name = <expr>     store the result under a named value
  regs              list named values
  base bin|dec|hex  change the display base
  help              show this message
  quit | q | exit   leave the REPL

Numeric literals accept 0x/0b prefixes. "ans" holds the last expression result.
`)
}
