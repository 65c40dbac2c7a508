package resolve

import "testing"

func TestComposeClassNames(t *testing.T) {
	tests := []struct {
		name     string
		segments []string
		want     string
	}{
		{"all present", []string{"ui-button", "gen-123", "custom"}, "ui-button gen-123 custom"},
		{"leading empty", []string{"", "gen-123", "custom"}, "gen-123 custom"},
		{"middle empty", []string{"ui-button", "", "custom"}, "ui-button custom"},
		{"trailing empty", []string{"ui-button", "gen-123", ""}, "ui-button gen-123"},
		{"all empty", []string{"", "", ""}, ""},
		{"whitespace only segment", []string{"ui-button", "   ", "custom"}, "ui-button custom"},
		{"padded segments", []string{" ui-button ", "gen-123"}, "ui-button gen-123"},
		{"no segments", nil, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ComposeClassNames(tt.segments...); got != tt.want {
				t.Errorf("ComposeClassNames(%q) = %q, want %q", tt.segments, got, tt.want)
			}
		})
	}
}
