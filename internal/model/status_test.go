package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTaskStatus(t *testing.T) {
	tests := []struct {
		status   TaskStatus
		active   bool
		finished bool
	}{
		{StatusWaiting, false, false},
		{StatusRunning, true, false},
		{StatusCompleted, false, true},
		{StatusError, false, true},
		{StatusStopped, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.status.String(), func(t *testing.T) {
			assert.Equal(t, tt.active, tt.status.IsActive())
			assert.Equal(t, tt.finished, tt.status.IsFinished())
		})
	}
}
