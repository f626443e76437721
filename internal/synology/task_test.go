package synology

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusPredicates(t *testing.T) {
	tests := []struct {
		status   Status
		active   bool
		finished bool
	}{
		{StatusWaiting, true, false},
		{StatusDownloading, true, false},
		{StatusFinishing, true, false},
		{StatusHashChecking, true, false},
		{StatusFilehostingWaiting, true, false},
		{StatusExtracting, true, false},
		{StatusFinished, false, true},
		{StatusError, false, true},
		{StatusSeeding, false, false},
		{StatusPaused, false, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			assert.Equal(t, tt.active, tt.status.IsActive())
			assert.Equal(t, tt.finished, tt.status.IsFinished())
		})
	}
}

func TestTaskElapsedSeconds(t *testing.T) {
	tests := []struct {
		name      string
		started   int64
		completed int64
		want      int64
	}{
		{"normal window", 1000, 4600, 3600},
		{"no times", 0, 0, 0},
		{"still running", 500, 500, 0},
		{"clock skew", 500, 100, -400},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var task Task
			task.Additional.Detail.StartedTime = tt.started
			task.Additional.Detail.CompletedTime = tt.completed
			assert.Equal(t, tt.want, task.ElapsedSeconds())
		})
	}
}

func TestTaskUnmarshal(t *testing.T) {
	payload := `{
		"id": "dbid_42",
		"title": "ubuntu-24.04.iso",
		"status": "downloading",
		"size": 2147483648,
		"type": "bt",
		"username": "admin",
		"additional": {
			"detail": {"completed_time": 0, "started_time": 1735689600},
			"file": [
				{"name": "ubuntu-24.04.iso", "size": 2147483648}
			]
		}
	}`

	var task Task
	require.NoError(t, json.Unmarshal([]byte(payload), &task))

	assert.Equal(t, "dbid_42", task.ID)
	assert.Equal(t, "ubuntu-24.04.iso", task.Title)
	assert.Equal(t, StatusDownloading, task.Status)
	assert.Equal(t, int64(2147483648), task.Size)
	assert.Equal(t, "bt", task.Type)
	assert.Equal(t, int64(1735689600), task.Additional.Detail.StartedTime)
	require.Len(t, task.Additional.File, 1)
	assert.Equal(t, int64(2147483648), task.Additional.File[0].Size)
}
