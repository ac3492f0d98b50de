package jobs

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCleanupReportsTask(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("REPORT_DIR", dir)

	sub := filepath.Join(dir, "attendance")
	require.NoError(t, os.MkdirAll(sub, 0o755))

	oldFile := filepath.Join(sub, "old.csv")
	newFile := filepath.Join(sub, "new.csv")
	require.NoError(t, os.WriteFile(oldFile, []byte("a"), 0o644))
	require.NoError(t, os.WriteFile(newFile, []byte("b"), 0o644))
	stale := time.Now().AddDate(0, 0, -40)
	require.NoError(t, os.Chtimes(oldFile, stale, stale))

	task, err := NewCleanupReportsTask(30)
	require.NoError(t, err)
	assert.Equal(t, TypeCleanupReports, task.Type())

	require.NoError(t, HandleCleanupReportsTask(context.Background(), task))

	assert.NoFileExists(t, oldFile)
	assert.FileExists(t, newFile)
}

func TestCleanupReportsTaskMissingDir(t *testing.T) {
	t.Setenv("REPORT_DIR", filepath.Join(t.TempDir(), "never-created"))

	task, err := NewCleanupReportsTask(0) // 0 falls back to the 90-day default
	require.NoError(t, err)
	assert.NoError(t, HandleCleanupReportsTask(context.Background(), task))
}

func TestRecomputeAttendanceTask(t *testing.T) {
	task, err := NewRecomputeAttendanceTask(RecomputeAttendancePayload{
		ClassID:   "not-a-hex-id",
		SectionID: "also-bad",
		Date:      "2026-03-02",
	})
	require.NoError(t, err)
	assert.Equal(t, TypeRecomputeAttendance, task.Type())

	// malformed ids fail before any store access
	assert.Error(t, HandleRecomputeAttendanceTask(context.Background(), task))
}
