package callbacks

import (
	"testing"

	tele "gopkg.in/telebot.v4"
)

func TestParseData(t *testing.T) {
	cases := []struct {
		data            string
		unique, payload string
	}{
		{"\fprocess", "process", ""},
		{"\fprocess|", "process", ""},
		{"\fopen|42", "open", "42"},
		{"\fopen|a|b", "open", "a|b"},
		{"plain", "plain", ""},
	}
	for _, tc := range cases {
		unique, payload := ParseData(&tele.Callback{Data: tc.data})
		if unique != tc.unique || payload != tc.payload {
			t.Fatalf("ParseData(%q) = (%q, %q), want (%q, %q)",
				tc.data, unique, payload, tc.unique, tc.payload)
		}
	}
}

func TestParseDataNil(t *testing.T) {
	unique, payload := ParseData(nil)
	if unique != "" || payload != "" {
		t.Fatalf("ParseData(nil) = (%q, %q)", unique, payload)
	}
}
