package nb2blog

import (
	"errors"
	"testing"
	"time"

	"github.com/alnah/go-nb2blog/internal/dateutil"
)

func TestResolveDate(t *testing.T) {
	t.Parallel()

	fixedTime := time.Date(2025, 11, 3, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		value   string
		want    string
		wantErr error
	}{
		{name: "literal label passthrough", value: "november 2025", want: "november 2025"},
		{name: "empty passthrough", value: "", want: ""},
		{name: "auto", value: "auto", want: "2025-11-03"},
		{name: "blog preset", value: "auto:blog", want: "november 2025"},
		{name: "month preset", value: "auto:month", want: "November 2025"},
		{name: "custom format", value: "auto:DD/MM/YYYY", want: "03/11/2025"},
		{name: "empty format", value: "auto:", wantErr: dateutil.ErrInvalidDateFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := ResolveDate(tt.value, fixedTime)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("ResolveDate(%q) = %q, want %q", tt.value, got, tt.want)
			}
		})
	}
}
