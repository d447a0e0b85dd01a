package tasksdk_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/aussiebroadwan/taskboard/pkg/tasksdk"
	"github.com/stretchr/testify/require"
)

func TestAPIErrorIs(t *testing.T) {
	err := error(&tasksdk.APIError{StatusCode: http.StatusNotFound, Code: tasksdk.ErrorCodeTaskNotFound, Message: "other words"})
	require.ErrorIs(t, err, tasksdk.ErrTaskNotFound)
	require.NotErrorIs(t, err, tasksdk.ErrUserNotFound)
	require.False(t, errors.Is(errors.New("plain"), tasksdk.ErrTaskNotFound))
}

func TestAPIErrorWriteError(t *testing.T) {
	rec := httptest.NewRecorder()
	tasksdk.ErrInvalidToken.WriteError(rec)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	require.Equal(t, "no-store", rec.Header().Get("Cache-Control"))

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Equal(t, "Invalid Token", body["message"])
	require.Equal(t, "invalid_token", body["error"])
}

func TestClientSendsRawToken(t *testing.T) {
	var gotAuth, gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotPath = r.URL.Path
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"01ABC","title":"t","completed":true,"owner":"alice"}`))
	}))
	defer srv.Close()

	session := tasksdk.NewClient(srv.URL+"/").NewSession("alice", "tok-123")
	task, err := session.MarkDone(context.Background(), "01ABC")
	require.NoError(t, err)
	require.True(t, task.Completed)
	require.Equal(t, "tok-123", gotAuth)
	require.Equal(t, "/tasks/01ABC", gotPath)
}

func TestClientParsesErrors(t *testing.T) {
	t.Run("json body", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tasksdk.ErrUserExists.WriteError(w)
		}))
		defer srv.Close()

		err := tasksdk.NewClient(srv.URL).Register(context.Background(), "alice", "pw")
		require.ErrorIs(t, err, tasksdk.ErrUserExists)

		var apiErr *tasksdk.APIError
		require.ErrorAs(t, err, &apiErr)
		require.Equal(t, "User already exists", apiErr.Message)
	})

	t.Run("plain text body", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "bad gateway", http.StatusBadGateway)
		}))
		defer srv.Close()

		_, err := tasksdk.NewClient(srv.URL).GetLiveness(context.Background())
		var apiErr *tasksdk.APIError
		require.ErrorAs(t, err, &apiErr)
		require.Equal(t, http.StatusBadGateway, apiErr.StatusCode)
		require.Contains(t, apiErr.Message, "bad gateway")
	})
}
