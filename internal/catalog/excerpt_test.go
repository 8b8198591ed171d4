package catalog

import "testing"

func TestExcerpt(t *testing.T) {
	tests := []struct {
		name string
		html string
		n    int
		want string
	}{
		{name: "empty", html: "", n: 10, want: ""},
		{name: "strips markup", html: "<p>Hello <strong>there</strong></p>", n: 0, want: "Hello there"},
		{name: "collapses whitespace", html: "<p>one</p>\n   <p>two</p>", n: 0, want: "one two"},
		{name: "truncates", html: "<p>abcdefgh</p>", n: 4, want: "abcd…"},
		{name: "exact length", html: "<p>abcd</p>", n: 4, want: "abcd"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Excerpt(tt.html, tt.n); got != tt.want {
				t.Errorf("Excerpt(%q, %d) = %q, want %q", tt.html, tt.n, got, tt.want)
			}
		})
	}
}
