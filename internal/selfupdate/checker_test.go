package selfupdate

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func releaseServer(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/repos/abhisek/svenska/releases/latest" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(server.Close)
	return server
}

func TestCheck(t *testing.T) {
	tests := []struct {
		name    string
		current string
		tag     string
		want    bool
	}{
		{"newer release", "v1.2.0", "v1.3.0", true},
		{"same version", "v1.3.0", "v1.3.0", false},
		{"ahead of release", "v1.4.0", "v1.3.0", false},
		{"missing v prefix", "1.2.0", "v1.3.0", true},
		{"dev build", "(devel)", "v1.3.0", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := releaseServer(t, http.StatusOK,
				`{"tag_name":"`+tt.tag+`","html_url":"https://example.com/`+tt.tag+`"}`)

			res, err := NewChecker(WithBaseURL(server.URL)).Check(context.Background(), &CheckInput{Version: tt.current})
			require.NoError(t, err)
			assert.Equal(t, tt.want, res.UpdateAvailable)
			assert.Equal(t, tt.tag, res.LatestVersion)
			assert.Equal(t, "https://example.com/"+tt.tag, res.ReleaseURL)
		})
	}
}

func TestCheckErrors(t *testing.T) {
	t.Run("http status", func(t *testing.T) {
		server := releaseServer(t, http.StatusForbidden, `{"message":"rate limited"}`)
		_, err := NewChecker(WithBaseURL(server.URL)).Check(context.Background(), &CheckInput{Version: "v1.0.0"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "HTTP 403")
	})

	t.Run("bad tag", func(t *testing.T) {
		server := releaseServer(t, http.StatusOK, `{"tag_name":"nightly"}`)
		_, err := NewChecker(WithBaseURL(server.URL)).Check(context.Background(), &CheckInput{Version: "v1.0.0"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid release tag")
	})

	t.Run("bad json", func(t *testing.T) {
		server := releaseServer(t, http.StatusOK, `{`)
		_, err := NewChecker(WithBaseURL(server.URL)).Check(context.Background(), &CheckInput{Version: "v1.0.0"})
		require.Error(t, err)
	})
}

func TestCanonical(t *testing.T) {
	assert.Equal(t, "v1.2.3", canonical("1.2.3"))
	assert.Equal(t, "v1.2.3", canonical(" v1.2.3 "))
	assert.Equal(t, "", canonical("(devel)"))
	assert.Equal(t, "", canonical(""))
	assert.Equal(t, "", canonical("latest"))
}
