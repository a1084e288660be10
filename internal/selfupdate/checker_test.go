package selfupdate

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func releaseServer(t *testing.T, tag string) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/repos/careercompass/compass/releases/latest" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		_, _ = w.Write([]byte(`{"tag_name":"` + tag + `","html_url":"https://example.com/` + tag + `"}`))
	}))
	t.Cleanup(server.Close)
	return server
}

func TestCheck_UpdateAvailable(t *testing.T) {
	server := releaseServer(t, "v2.1.0")
	checker := NewChecker(WithBaseURL(server.URL))

	result, err := checker.Check(context.Background(), &CheckInput{Version: "v2.0.3"})
	require.NoError(t, err)
	assert.True(t, result.UpdateAvailable)
	assert.Equal(t, "v2.1.0", result.LatestVersion)
	assert.Equal(t, "https://example.com/v2.1.0", result.ReleaseURL)
}

func TestCheck_AlreadyLatest(t *testing.T) {
	server := releaseServer(t, "v2.0.3")
	checker := NewChecker(WithBaseURL(server.URL))

	result, err := checker.Check(context.Background(), &CheckInput{Version: "v2.0.3"})
	require.NoError(t, err)
	assert.False(t, result.UpdateAvailable)
}

func TestCheck_MissingVPrefix(t *testing.T) {
	server := releaseServer(t, "v1.2.0")
	checker := NewChecker(WithBaseURL(server.URL))

	result, err := checker.Check(context.Background(), &CheckInput{Version: "1.1.0"})
	require.NoError(t, err)
	assert.True(t, result.UpdateAvailable)
}

func TestCheck_DevBuildNeverUpdates(t *testing.T) {
	server := releaseServer(t, "v9.9.9")
	checker := NewChecker(WithBaseURL(server.URL))

	result, err := checker.Check(context.Background(), &CheckInput{Version: "(devel)"})
	require.NoError(t, err)
	assert.False(t, result.UpdateAvailable)
}

func TestCheck_APIFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer server.Close()

	checker := NewChecker(WithBaseURL(server.URL))
	_, err := checker.Check(context.Background(), &CheckInput{Version: "v1.0.0"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "HTTP 403")
}
