package notify

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/templui/tasklist/internal/model"
)

func TestSlackProvider_PostsCompletionMessage(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		assert.Equal(t, "/api/chat.postMessage", r.URL.Path)
		assert.NoError(t, r.ParseForm())

		authorized := r.Header.Get("Authorization") == "Bearer xoxb-test" || r.FormValue("token") == "xoxb-test"
		assert.True(t, authorized, "token must be sent with the request")
		assert.Equal(t, "task-notifications", r.FormValue("channel"))
		assert.Equal(t, "Someone just completed the task Water plants", r.FormValue("text"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"ok":true,"channel":"C123","ts":"1700000000.000100"}`))
	}))
	defer srv.Close()

	p := NewSlackProvider("xoxb-test", "task-notifications", srv.URL+"/api/")
	err := p.TaskCompleted(context.Background(), &model.Task{ID: 1, Title: "Water plants"})

	require.NoError(t, err)
	assert.Equal(t, int32(1), calls.Load())
	assert.Equal(t, ProviderSlack, p.Name())
}

func TestSlackProvider_APIErrorPropagates(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"ok":false,"error":"invalid_auth"}`))
	}))
	defer srv.Close()

	p := NewSlackProvider("bad", "task-notifications", srv.URL+"/api/")
	err := p.TaskCompleted(context.Background(), &model.Task{ID: 1, Title: "x"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid_auth")
}

func TestSlackProvider_APIURLWithoutTrailingSlash(t *testing.T) {
	var path string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path = r.URL.Path
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"ok":true,"channel":"C123","ts":"1.0"}`))
	}))
	defer srv.Close()

	p := NewSlackProvider("xoxb-test", "task-notifications", srv.URL+"/api")
	err := p.TaskCompleted(context.Background(), &model.Task{ID: 1, Title: "x"})

	require.NoError(t, err)
	assert.Equal(t, "/api/chat.postMessage", path)
}
