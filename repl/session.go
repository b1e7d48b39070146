// Package repl implements an interactive calculator session over
// bigint.Int: a line-oriented CLI loop and a full-screen tview/tcell
// console, both driving the same Session so named values persist across
// either front end. Structure follows the teacher project's
// debugger.Debugger / RunCLI / RunTUI split, re-purposed from stepping a
// CPU to evaluating arithmetic expressions.
package repl

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/lookbusy1344/bigint/bigint"
	"github.com/lookbusy1344/bigint/bigint/calc"
	"github.com/lookbusy1344/bigint/config"
)

// Session holds the named values and command history for one interactive
// calculator instance. "ans" holds the result of the most recent bare
// expression, the way the original's single accumulator behaves for a
// pocket-calculator UX; an assignment stores only into its named value.
type Session struct {
	Cfg       *config.Config
	Registers map[string]*bigint.Int
	History   []string
	Base      bigint.Base
}

var assignRe = regexp.MustCompile(`^\s*([A-Za-z_][A-Za-z0-9_]*)\s*=\s*(.+)$`)

// NewSession creates a session using cfg's default print base.
func NewSession(cfg *config.Config) *Session {
	s := &Session{
		Cfg:       cfg,
		Registers: make(map[string]*bigint.Int),
		Base:      baseFromName(cfg.Calculator.DefaultBase),
	}
	return s
}

func baseFromName(name string) bigint.Base {
	switch strings.ToLower(name) {
	case "bin":
		return bigint.BIN
	case "hex":
		return bigint.HEX
	default:
		return bigint.DEC
	}
}

// Execute runs one line of calculator input and returns the text to
// display: the value of an evaluated expression, "name = value" for an
// assignment, or the reply to a base/regs command. It is empty only for a
// blank line.
func (s *Session) Execute(line string) (string, error) {
	return s.ExecuteTraced(line, nil)
}

// evalTraced resolves named registers in expr to their decimal text before
// handing the expression to the calculator parser, which only understands
// numeric literals, then runs it with tracer notified of every kernel step
// (nil disables tracing).
func (s *Session) evalTraced(expr string, tracer bigint.Tracer) (*bigint.Int, error) {
	resolved := s.substituteRegisters(expr)
	return calc.EvalTraced(resolved, tracer)
}

// ExecuteTraced is Execute with a Tracer notified of every kernel step the
// evaluated expression triggers, including the right-hand side of an
// assignment. Introspection commands (base/regs) never call the tracer
// since they don't run arithmetic.
func (s *Session) ExecuteTraced(line string, tracer bigint.Tracer) (string, error) {
	line = strings.TrimSpace(line)
	if line == "" {
		return "", nil
	}
	s.History = append(s.History, line)
	if len(s.History) > s.historyLimit() {
		s.History = s.History[len(s.History)-s.historyLimit():]
	}

	switch {
	case line == "regs":
		return s.formatRegisters(), nil

	case strings.HasPrefix(line, "base "):
		s.Base = baseFromName(strings.TrimSpace(line[len("base "):]))
		return fmt.Sprintf("base set to %s", line[len("base "):]), nil

	default:
		if m := assignRe.FindStringSubmatch(line); m != nil {
			name, expr := m[1], m[2]
			v, err := s.evalTraced(expr, tracer)
			if err != nil {
				return "", err
			}
			s.Registers[name] = v
			return fmt.Sprintf("%s = %s", name, v.Text(s.Base)), nil
		}

		v, err := s.evalTraced(line, tracer)
		if err != nil {
			return "", err
		}
		s.Registers["ans"] = v
		return v.Text(s.Base), nil
	}
}

var identRe = regexp.MustCompile(`[A-Za-z_][A-Za-z0-9_]*`)

func (s *Session) substituteRegisters(expr string) string {
	return identRe.ReplaceAllStringFunc(expr, func(name string) string {
		if v, ok := s.Registers[name]; ok {
			return v.Text(bigint.DEC)
		}
		return name
	})
}

func (s *Session) formatRegisters() string {
	if len(s.Registers) == 0 {
		return "(no named values)"
	}
	var b strings.Builder
	for name, v := range s.Registers {
		fmt.Fprintf(&b, "%s = %s\n", name, v.Text(s.Base))
	}
	return strings.TrimRight(b.String(), "\n")
}

func (s *Session) historyLimit() int {
	if s.Cfg != nil && s.Cfg.REPL.HistorySize > 0 {
		return s.Cfg.REPL.HistorySize
	}
	return 1000
}
