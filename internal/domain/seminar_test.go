package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSeminar_RegistrationOpen(t *testing.T) {
	start := time.Date(2026, 3, 14, 18, 0, 0, 0, time.UTC)
	s := &Seminar{StartsAt: start}

	tests := []struct {
		name string
		now  time.Time
		want bool
	}{
		{"a day before", start.Add(-24 * time.Hour), true},
		{"just outside the cutoff", start.Add(-RegistrationCutoff - time.Second), true},
		{"exactly at the cutoff", start.Add(-RegistrationCutoff), false},
		{"inside the cutoff", start.Add(-30 * time.Minute), false},
		{"after the start", start.Add(time.Minute), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, s.RegistrationOpen(tt.now))
		})
	}
}
