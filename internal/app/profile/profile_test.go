package profile

import (
	"strings"
	"testing"

	"ukoradar/internal/pkg/errs"
)

func TestNormalizeName(t *testing.T) {
	tests := []struct {
		name     string
		in       string
		want     string
		wantCode int
	}{
		{name: "trims whitespace", in: "  Juma  ", want: "Juma"},
		{name: "empty rejected", in: "", wantCode: errs.ErrNameRequired},
		{name: "whitespace only rejected", in: "   ", wantCode: errs.ErrNameRequired},
		{name: "long name truncated", in: strings.Repeat("a", 100), want: strings.Repeat("a", MaxNameLength)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := normalizeName(tt.in)
			if tt.wantCode != 0 {
				if err == nil || err.Code != tt.wantCode {
					t.Fatalf("normalizeName(%q) err = %v, want code %d", tt.in, err, tt.wantCode)
				}
				return
			}
			if err != nil {
				t.Fatalf("normalizeName(%q): %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("normalizeName(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
