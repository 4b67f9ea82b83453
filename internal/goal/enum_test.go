package goal

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDeriveStatus(t *testing.T) {
	tests := []struct {
		name         string
		current      GoalStatus
		progress     int
		wantProgress int
		wantStatus   GoalStatus
	}{
		{"negative clamps to zero", StatusActive, -10, 0, StatusActive},
		{"zero keeps active", StatusActive, 0, 0, StatusActive},
		{"positive starts work", StatusActive, 30, 30, StatusInProgress},
		{"in-progress stays", StatusInProgress, 60, 60, StatusInProgress},
		{"hundred completes", StatusActive, 100, 100, StatusCompleted},
		{"above hundred clamps and completes", StatusInProgress, 150, 100, StatusCompleted},
		{"never demoted to active", StatusInProgress, 0, 0, StatusInProgress},
		{"completed stays completed below hundred", StatusCompleted, 40, 40, StatusCompleted},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			progress, status := DeriveStatus(tt.current, tt.progress)
			assert.Equal(t, tt.wantProgress, progress)
			assert.Equal(t, tt.wantStatus, status)
		})
	}
}
