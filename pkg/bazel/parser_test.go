package bazel

import (
	"strings"
	"testing"
)

func TestParseBindings(t *testing.T) {
	src := `
# comment before anything
NAMES = ["a", 'b', "c",]  # trailing comma and mixed quotes
EMPTY = []
PAIRS = {"k1": "v1", "k2": "v2"}
SINGLE = 'just a string'
`
	bindings, err := parseBindings(src)
	if err != nil {
		t.Fatalf("parseBindings() error = %v", err)
	}

	names, ok := bindings["NAMES"].(list)
	if !ok || len(names) != 3 {
		t.Fatalf("NAMES = %v, want 3-element list", bindings["NAMES"])
	}
	if names[1] != "b" {
		t.Errorf("NAMES[1] = %v, want %q", names[1], "b")
	}

	if empty, ok := bindings["EMPTY"].(list); !ok || len(empty) != 0 {
		t.Errorf("EMPTY = %v, want empty list", bindings["EMPTY"])
	}

	pairs, ok := bindings["PAIRS"].(dict)
	if !ok || len(pairs) != 2 {
		t.Fatalf("PAIRS = %v, want 2-entry dict", bindings["PAIRS"])
	}
	if pairs[0].key != "k1" || pairs[0].val != "v1" {
		t.Errorf("PAIRS[0] = %+v", pairs[0])
	}

	if bindings["SINGLE"] != "just a string" {
		t.Errorf("SINGLE = %v", bindings["SINGLE"])
	}
}

func TestParseBindingsRejectsCode(t *testing.T) {
	// Anything that is not a literal assignment must be rejected; the
	// region is data, not a program.
	tests := []struct {
		name string
		src  string
		want string
	}{
		{"function call", `X = glob(["*.jar"])`, "only string, list, and dict literals"},
		{"reference", "X = OTHER_LIST", "only string, list, and dict literals"},
		{"number", "X = 42", "only string, list, and dict literals"},
		{"unterminated string", `X = "abc`, "unterminated string"},
		{"newline in string", "X = \"abc\ndef\"", "unterminated string"},
		{"unterminated list", `X = ["a"`, "unterminated list"},
		{"missing equals", `X ["a"]`, "expected '='"},
		{"dict missing colon", `X = {"a" "b"}`, "expected ':'"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseBindings(tt.src)
			if err == nil {
				t.Fatal("parseBindings() expected error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("parseBindings() error = %v, want substring %q", err, tt.want)
			}
		})
	}
}

func TestParseBindingsErrorNamesLine(t *testing.T) {
	_, err := parseBindings("A = []\nB = []\nC = oops()")
	if err == nil {
		t.Fatal("parseBindings() expected error")
	}
	if !strings.Contains(err.Error(), "line 3") {
		t.Errorf("parseBindings() error = %v, want line 3", err)
	}
}
