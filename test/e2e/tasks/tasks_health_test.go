//go:build e2e

package tasks_test

import (
	"testing"

	"github.com/aussiebroadwan/taskboard/pkg/tasksdk"
	"github.com/stretchr/testify/require"
)

// TestSystemEndpoints verifies the banner and health checks on a fresh store.
func TestSystemEndpoints(t *testing.T) {
	baseURL := setupTaskboardContainer(t, false)
	client := tasksdk.NewClient(baseURL)

	banner, err := client.Root(t.Context())
	require.NoError(t, err)
	require.Equal(t, "API is running...", banner)

	live, err := client.GetLiveness(t.Context())
	require.NoError(t, err)
	require.Equal(t, "ok", live.Status)

	ready, err := client.GetReadiness(t.Context())
	require.NoError(t, err)
	require.Equal(t, "ok", ready.Status)
	require.NotNil(t, ready.Checks)
	require.Equal(t, "ok", ready.Checks.Store)
}
