package service

import "testing"

func TestExtractJSON(t *testing.T) {
	cases := []struct {
		name string
		raw  string
		want string
	}{
		{"bare object", `{"score": 80}`, `{"score": 80}`},
		{"surrounding whitespace", "\n  {\"score\": 80}\n", `{"score": 80}`},
		{"json fence", "```json\n{\"score\": 80}\n```", `{"score": 80}`},
		{"plain fence", "```\n{\"score\": 80}\n```", `{"score": 80}`},
		{"fence without newline", "```json{\"score\": 80}```", `{"score": 80}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := extractJSON(tc.raw); got != tc.want {
				t.Errorf("extractJSON(%q) = %q, want %q", tc.raw, got, tc.want)
			}
		})
	}
}

func TestClampScore(t *testing.T) {
	cases := []struct {
		in   float64
		want float64
	}{
		{-5, 0},
		{0, 0},
		{72.5, 72.5},
		{100, 100},
		{180, 100},
	}
	for _, tc := range cases {
		if got := clampScore(tc.in); got != tc.want {
			t.Errorf("clampScore(%v) = %v, want %v", tc.in, got, tc.want)
		}
	}
}
