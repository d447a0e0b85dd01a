//go:build e2e

package tasks_test

import (
	"testing"

	"github.com/aussiebroadwan/taskboard/pkg/tasksdk"
	"github.com/stretchr/testify/require"
)

// TestRateLimitLogin verifies /login uses the strict profile (5 req/min).
func TestRateLimitLogin(t *testing.T) {
	baseURL := setupTaskboardContainer(t, true)
	client := tasksdk.NewClient(baseURL)
	ctx := t.Context()

	for i := range 5 {
		_, err := client.Login(ctx, "nobody", password)
		require.ErrorIs(t, err, tasksdk.ErrUserNotFound, "request %d should not be rate limited", i+1)
	}

	_, err := client.Login(ctx, "nobody", password)
	require.Error(t, err)
	require.Contains(t, err.Error(), "429")
}
