package tui

import "testing"

func TestTruncateEnd(t *testing.T) {
	tests := []struct {
		name  string
		in    string
		limit int
		want  string
	}{
		{"short string untouched", "hello", 10, "hello"},
		{"exact length untouched", "hello", 5, "hello"},
		{"truncated with ellipsis", "hello world", 8, "hello w…"},
		{"limit one", "hello", 1, "…"},
		{"limit zero", "hello", 0, ""},
		{"multibyte runes", "héllo wörld", 8, "héllo w…"},
		{"empty string", "", 5, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := truncateEnd(tt.in, tt.limit); got != tt.want {
				t.Errorf("truncateEnd(%q, %d) = %q, want %q", tt.in, tt.limit, got, tt.want)
			}
		})
	}
}

func TestTruncateMiddle(t *testing.T) {
	tests := []struct {
		name  string
		in    string
		limit int
		want  string
	}{
		{"short string untouched", "hello", 10, "hello"},
		{"keeps both ends", "https://example.org/news/article-1", 15, "https:/…ticle-1"},
		{"limit one", "hello", 1, "…"},
		{"limit zero", "hello", 0, ""},
		{"empty string", "", 5, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := truncateMiddle(tt.in, tt.limit)
			if got != tt.want {
				t.Errorf("truncateMiddle(%q, %d) = %q, want %q", tt.in, tt.limit, got, tt.want)
			}
			if n := len([]rune(got)); tt.limit > 0 && n > tt.limit {
				t.Errorf("result %q exceeds limit %d", got, tt.limit)
			}
		})
	}
}
