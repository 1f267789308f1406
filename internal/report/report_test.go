package report

import (
	"strings"
	"testing"
)

func TestNewTable_ASCII(t *testing.T) {
	b := NewTable(ASCII)
	b.Header("term", "coefficient")
	b.Row("intercept", FmtCoef(50.123456789))
	b.Row("unemployment", FmtCoef(-0.3))
	b.Footer("R²", FmtR2(0.9876))

	out := b.String()
	for _, want := range []string{"TERM", "intercept", "50.1235", "-0.3", "0.9876"} {
		if !strings.Contains(out, want) {
			t.Errorf("ASCII table missing %q:\n%s", want, out)
		}
	}
}

func TestNewTable_Markdown(t *testing.T) {
	b := NewTable(Markdown)
	b.Header("a", "b")
	b.Row(1, 2)

	out := b.String()
	if !strings.Contains(out, "|") {
		t.Errorf("Markdown table has no pipes:\n%s", out)
	}
}

func TestFmtCoef_ZeroIsExact(t *testing.T) {
	if got := FmtCoef(0); got != "0" {
		t.Errorf("FmtCoef(0) = %q, want \"0\"", got)
	}
	if got := FmtCoef(8e-5); got != "8e-05" {
		t.Errorf("FmtCoef(8e-5) = %q, want \"8e-05\"", got)
	}
}

func TestTruncate(t *testing.T) {
	cases := []struct {
		in     string
		maxLen int
		want   string
	}{
		{"short", 10, "short"},
		{"exactly-ten", 11, "exactly-ten"},
		{"a-very-long-name", 10, "a-very-..."},
		{"ab", 2, "ab"},
	}
	for _, c := range cases {
		if got := Truncate(c.in, c.maxLen); got != c.want {
			t.Errorf("Truncate(%q, %d) = %q, want %q", c.in, c.maxLen, got, c.want)
		}
	}
}

func TestMark(t *testing.T) {
	if Mark(true) != "ok" || Mark(false) != "missing" {
		t.Error("Mark values changed")
	}
}
