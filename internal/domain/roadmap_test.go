package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var testNow = time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC)

func TestNewUnlockedEntry(t *testing.T) {
	e := NewUnlockedEntry("u1", "r1", "s1", testNow)
	assert.Equal(t, CategoryWeak, e.Category)
	assert.Equal(t, 50.0, e.Priority)
	assert.Equal(t, RoadmapTodo, e.Status)
	assert.Equal(t, 0, e.Progress)
	assert.Equal(t, testNow, e.CreatedAt)
}

func TestSetProgress_DerivesStatus(t *testing.T) {
	cases := []struct {
		pct      int
		progress int
		status   RoadmapStatus
	}{
		{-5, 0, RoadmapTodo},
		{0, 0, RoadmapTodo},
		{1, 1, RoadmapInProgress},
		{99, 99, RoadmapInProgress},
		{100, 100, RoadmapDone},
		{140, 100, RoadmapDone},
	}
	for _, tc := range cases {
		e := &RoadmapEntry{Status: RoadmapTodo}
		e.SetProgress(tc.pct, testNow)
		assert.Equal(t, tc.progress, e.Progress, "pct=%d", tc.pct)
		assert.Equal(t, tc.status, e.Status, "pct=%d", tc.pct)
		assert.Equal(t, testNow, e.UpdatedAt)
	}
}

func TestRaiseProgress_NeverLowers(t *testing.T) {
	e := &RoadmapEntry{Status: RoadmapInProgress, Progress: 60}
	assert.False(t, e.RaiseProgress(40, testNow))
	assert.Equal(t, 60, e.Progress)

	assert.True(t, e.RaiseProgress(100, testNow))
	assert.Equal(t, 100, e.Progress)
	assert.True(t, e.IsDone())
}

func TestAverageProgress(t *testing.T) {
	assert.Equal(t, 0.0, AverageProgress(nil))

	entries := []*RoadmapEntry{{Progress: 100}, {Progress: 50}, {Progress: 0}}
	assert.Equal(t, 50.0, AverageProgress(entries))
}
