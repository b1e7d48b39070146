package calc

import (
	"testing"

	"github.com/lookbusy1344/bigint/bigint"
)

func TestEval(t *testing.T) {
	cases := []struct {
		expr string
		want string
	}{
		{"1 + 2", "3"},
		{"10 - 20", "-10"},
		{"-5 * -5", "25"},
		{"0x10 * 2", "32"},
		{"0b101 + 1", "6"},
		{"(1 + 2) * 3", "9"},
		{"-7 / 3", "-2"},
		{"-7 % 3", "-1"},
		{"2 * (3 + 4) - 1", "13"},
	}
	for _, c := range cases {
		v, err := Eval(c.expr)
		if err != nil {
			t.Fatalf("Eval(%q): %v", c.expr, err)
		}
		if got := v.Text(bigint.DEC); got != c.want {
			t.Errorf("Eval(%q) = %s, want %s", c.expr, got, c.want)
		}
	}
}

func TestEvalDivisionByZero(t *testing.T) {
	if _, err := Eval("1 / 0"); err == nil {
		t.Fatal("expected division-by-zero error")
	}
}

func TestEvalSyntaxErrors(t *testing.T) {
	for _, expr := range []string{"1 +", "(1 + 2", "1 2", "@"} {
		if _, err := Eval(expr); err == nil {
			t.Errorf("Eval(%q) should fail", expr)
		}
	}
}
