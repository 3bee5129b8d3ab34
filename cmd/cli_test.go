package main

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/eclipse-robotics/vexu-site/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestFeedCommand(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"posts":[{"id":"1","mediaUrl":"a"},{"id":"2","media_url":"b"},{"id":"3"},{"id":"4"},{"id":"5"}]}`))
	}))
	defer srv.Close()

	out, err := execute(t, "feed", "--url", srv.URL)
	require.NoError(t, err)

	var got struct {
		State string `json:"state"`
		Posts []struct {
			ID string `json:"id"`
		} `json:"posts"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, "loaded", got.State)
	assert.Len(t, got.Posts, 4)
}

func TestFeedCommandFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	out, err := execute(t, "feed", "--url", srv.URL)
	require.NoError(t, err)
	assert.Contains(t, out, `"state": "failed"`)
	assert.Contains(t, out, `"posts": []`)
}

func TestPacketCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "packet.pdf")

	out, err := execute(t, "packet", "-o", path)
	require.NoError(t, err)
	assert.Equal(t, path, strings.TrimSpace(out))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF-")))
}

func TestInvalidLogLevel(t *testing.T) {
	t.Setenv("LOG_LEVEL", "loud")

	_, err := execute(t, "packet", "-o", filepath.Join(t.TempDir(), "p.pdf"))
	assert.ErrorContains(t, err, "invalid log level")
}

func TestServerRoutes(t *testing.T) {
	t.Setenv("PUBLIC_DIR", t.TempDir())
	cfg := loadTestConfig(t)

	e := newServer(cfg, mustSite(t))

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("X-Request-Id"))
	assert.Equal(t, "DENY", rec.Header().Get("X-Frame-Options"))
}

func TestExecuteFlushesOnFailure(t *testing.T) {
	a := newApp()
	flushed := 0
	a.initLogging = func(*service.Config, io.Writer) (func(), error) {
		return func() { flushed++ }, nil
	}

	cmd := a.rootCmd()
	cmd.SetOut(io.Discard)
	cmd.SetErr(io.Discard)
	cmd.SetArgs([]string{"packet", "-o", filepath.Join(t.TempDir(), "missing", "packet.pdf")})

	err := a.execute(cmd)

	require.Error(t, err)
	assert.Equal(t, 1, flushed)
}
