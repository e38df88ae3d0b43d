package service

import "testing"

func TestExtractFirstJSONObject(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "bare object",
			input: `{"a": 1}`,
			want:  `{"a": 1}`,
		},
		{
			name:  "fenced with prose",
			input: "Sure, here you go:\n```json\n{\"a\": 1}\n```\nEnjoy!",
			want:  `{"a": 1}`,
		},
		{
			name:  "nested braces",
			input: `prefix {"a": {"b": [1, 2]}} suffix`,
			want:  `{"a": {"b": [1, 2]}}`,
		},
		{
			name:  "braces inside strings",
			input: `{"a": "keep } this {"}`,
			want:  `{"a": "keep } this {"}`,
		},
		{
			name:  "no object",
			input: "plain text, no json here",
			want:  "",
		},
		{
			name:  "unbalanced",
			input: `{"a": 1`,
			want:  "",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := extractFirstJSONObject(tc.input); got != tc.want {
				t.Fatalf("expected %q, got %q", tc.want, got)
			}
		})
	}
}
