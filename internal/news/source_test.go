package news

import "testing"

func TestSourceColor(t *testing.T) {
	tests := []struct {
		source string
		want   string
	}{
		{"NDTV", "#e40000"},
		{"BBC News", "#bb1919"},
		{"CNN", "#cc0000"},
		{"Reuters", "#ff8000"},
		{"Some Blog", DefaultSourceColor},
		{"", DefaultSourceColor},
		{"ndtv", DefaultSourceColor}, // lookup is exact
	}

	for _, tt := range tests {
		if got := SourceColor(tt.source); got != tt.want {
			t.Errorf("SourceColor(%q) = %q, want %q", tt.source, got, tt.want)
		}
	}
}

func TestSourceInitials(t *testing.T) {
	tests := []struct {
		source string
		want   string
	}{
		{"NDTV", "N"},
		{"BBC News", "BN"},
		{"the hindu", "TH"},
		{"Hindustan Times Online", "HTO"},
		{"", ""},
		{"  spaced   out  ", "SO"},
	}

	for _, tt := range tests {
		if got := SourceInitials(tt.source); got != tt.want {
			t.Errorf("SourceInitials(%q) = %q, want %q", tt.source, got, tt.want)
		}
	}
}
