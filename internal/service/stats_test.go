package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestGetSummary(t *testing.T) {
	db := newTestDB(t)
	seedTemplates(t, db)
	generationService := newTestGenerationService(t, db)

	pendingEntry(t, generationService, "s-1", intPtr(2), intPtr(1))
	pendingEntry(t, generationService, "s-2", nil, nil)
	pendingEntry(t, generationService, "s-3", intPtr(1), intPtr(1))
	require.NoError(t, generationService.ProcessPending(context.Background()))
	pendingEntry(t, generationService, "s-4", intPtr(0), intPtr(3))

	summary, err := NewStatsService(db, zap.NewNop()).GetSummary()
	require.NoError(t, err)

	assert.Equal(t, int64(1), summary.PendingEntries)
	assert.Equal(t, int64(2), summary.CompletedEntries)
	assert.Equal(t, int64(1), summary.FailedEntries)
	assert.Equal(t, int64(2), summary.GeneratedArticles)
	require.Len(t, summary.RecentFailures, 1)
	assert.Contains(t, summary.RecentFailures[0].ErrorMessage, "no usable result")
}
