package format

import "testing"

func TestEscapeMarkdown(t *testing.T) {
	cases := []struct{ in, want string }{
		{"plain", "plain"},
		{"a_b", `a\_b`},
		{"*bold*", `\*bold\*`},
		{"[link]", `\[link]`},
		{"`code`", "\\`code\\`"},
		{`back\slash`, `back\\slash`},
		{"", ""},
	}
	for _, tc := range cases {
		if got := EscapeMarkdown(tc.in); got != tc.want {
			t.Fatalf("EscapeMarkdown(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
