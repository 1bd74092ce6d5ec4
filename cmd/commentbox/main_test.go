package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/five82/commentbox/internal/analysis"
	"github.com/five82/commentbox/internal/commentator"
	"github.com/five82/commentbox/internal/session"
)

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	root := newRootCommand()
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return stdout.String(), stderr.String(), err
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func newAnalysisServer(t *testing.T) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/health":
			_, _ = w.Write([]byte(`{"status":"ok"}`))
		case "/analyze":
			var req analysis.Request
			if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
				w.WriteHeader(http.StatusBadRequest)
				return
			}
			if req.Commentator == "jatin" {
				w.WriteHeader(http.StatusInternalServerError)
				_, _ = w.Write([]byte(`{"detail":"scrape failed"}`))
				return
			}
			_ = json.NewEncoder(w).Encode(analysis.Response{
				Commentary:  "Shot! " + req.Commentator + " on " + req.URL,
				WebsiteType: "blog",
			})
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestResolveCommentators(t *testing.T) {
	noPick := func() (commentator.Commentator, error) {
		t.Fatalf("pick should not be called")
		return commentator.Commentator{}, nil
	}

	all, err := resolveCommentators(nil, true, noPick)
	require.NoError(t, err)
	assert.Len(t, all, len(commentator.All()))

	got, err := resolveCommentators([]string{"Harsha", "ravi", " harsha ", ""}, false, noPick)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "harsha", got[0].ID)
	assert.Equal(t, "ravi", got[1].ID)

	_, err = resolveCommentators([]string{"benaud"}, false, noPick)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown commentator")

	picked, err := resolveCommentators(nil, false, func() (commentator.Commentator, error) {
		c, _ := commentator.Lookup("jatin")
		return c, nil
	})
	require.NoError(t, err)
	assert.Equal(t, "jatin", picked[0].ID)

	_, err = resolveCommentators(nil, false, func() (commentator.Commentator, error) {
		return commentator.Commentator{}, errors.New("interrupted")
	})
	assert.Error(t, err)
}

type stubAnalyzer struct{}

func (stubAnalyzer) Analyze(_ context.Context, req analysis.Request) (*analysis.Response, error) {
	if req.Commentator == "harsha" {
		return nil, &analysis.NetworkError{Err: errors.New("connection refused")}
	}
	return &analysis.Response{Commentary: "commentary by " + req.Commentator}, nil
}

func (stubAnalyzer) Health(context.Context) (*analysis.HealthResponse, error) {
	return &analysis.HealthResponse{Status: "ok"}, nil
}

func TestAnalyzeAll(t *testing.T) {
	results := analyzeAll(context.Background(), stubAnalyzer{}, func() *session.Controller { return session.New() },
		"  https://example.com ", commentator.All(), nil)

	require.Len(t, results, 3)
	assert.Equal(t, "ravi", results[0].Commentator)
	assert.Equal(t, "commentary by ravi", results[0].Commentary)
	assert.Equal(t, "https://example.com", results[0].URL)
	assert.Empty(t, results[0].Error)

	assert.Equal(t, "harsha", results[1].Commentator)
	assert.Contains(t, results[1].Error, "connection refused")
	assert.True(t, results[1].network)
	assert.Zero(t, results[1].Status)
	assert.Empty(t, results[1].Commentary)

	assert.Equal(t, "commentary by jatin", results[2].Commentary)
}

func TestAnalyzeAll_BlankURL(t *testing.T) {
	results := analyzeAll(context.Background(), stubAnalyzer{}, func() *session.Controller { return session.New() },
		"   ", []commentator.Commentator{commentator.Default()}, nil)
	require.Len(t, results, 1)
	assert.Equal(t, session.ErrEmptyURL.Error(), results[0].Error)
}

func TestReport(t *testing.T) {
	results := []result{
		{Commentator: "ravi", Name: "Ravi Shastri", Commentary: "Into the stands!", title: "🎯 Ravi Shastri's Take"},
		{Commentator: "harsha", Name: "Harsha Bhogle", Error: "HTTP error! status: 500"},
	}

	var out, errOut bytes.Buffer
	err := report(&out, &errOut, results, analyzeOptions{})
	require.Error(t, err)
	assert.Equal(t, "1 of 2 analyses failed", err.Error())
	assert.Contains(t, out.String(), "Ravi Shastri's Take")
	assert.Contains(t, out.String(), "Into the stands!")
	assert.Contains(t, errOut.String(), "✗ Harsha Bhogle: HTTP error! status: 500")

	out.Reset()
	errOut.Reset()
	err = report(&out, &errOut, results[:1], analyzeOptions{json: true})
	require.NoError(t, err)
	var decoded []map[string]any
	require.NoError(t, json.Unmarshal(out.Bytes(), &decoded))
	require.Len(t, decoded, 1)
	assert.Equal(t, "Into the stands!", decoded[0]["commentary"])
	assert.NotContains(t, decoded[0], "error")
	assert.NotContains(t, decoded[0], "title")
}

func TestReport_UnreachableAPIHint(t *testing.T) {
	var errOut bytes.Buffer
	err := report(&bytes.Buffer{}, &errOut, []result{{Name: "Harsha Bhogle", Error: "network error: connection refused", network: true}}, analyzeOptions{})
	require.Error(t, err)
	assert.Contains(t, errOut.String(), "commentbox ping")
}

func TestReport_StripsTerminalControls(t *testing.T) {
	results := []result{
		{Name: "Ravi Shastri", Commentary: "Six!\x1b]0;pwned\x07\x1b[2J\nOut!", title: "Ravi Shastri's Take"},
	}
	var out bytes.Buffer
	require.NoError(t, report(&out, &bytes.Buffer{}, results, analyzeOptions{}))
	assert.NotContains(t, out.String(), "\x1b")
	assert.Contains(t, out.String(), "Six!\nOut!")
}

func TestReport_SingleFailureReturnsMessage(t *testing.T) {
	err := report(&bytes.Buffer{}, &bytes.Buffer{}, []result{{Name: "Ravi Shastri", Error: session.MsgNoCommentary}}, analyzeOptions{})
	require.Error(t, err)
	assert.Equal(t, session.MsgNoCommentary, err.Error())
}

func TestAnalyzeCommand(t *testing.T) {
	srv := newAnalysisServer(t)
	cfg := writeConfig(t, "log_file = \"-\"\n")

	stdout, _, err := execute(t, "--config", cfg, "--api-url", srv.URL,
		"analyze", "-c", "ravi,harsha", "--json", "https://example.com")
	require.NoError(t, err)

	var got []result
	require.NoError(t, json.Unmarshal([]byte(stdout), &got))
	require.Len(t, got, 2)
	assert.Equal(t, "Shot! ravi on https://example.com", got[0].Commentary)
	assert.Equal(t, "blog", got[0].WebsiteType)
	assert.Equal(t, "Shot! harsha on https://example.com", got[1].Commentary)
}

func TestAnalyzeCommand_Failure(t *testing.T) {
	srv := newAnalysisServer(t)
	cfg := writeConfig(t, "log_file = \"-\"\n")

	_, stderr, err := execute(t, "--config", cfg, "--api-url", srv.URL,
		"analyze", "-c", "jatin", "https://example.com")
	require.Error(t, err)
	assert.Equal(t, "HTTP error! status: 500 (scrape failed)", err.Error())
	assert.Contains(t, stderr, "Jatin Sapru")
}

func TestAnalyzeCommand_JSONCarriesStatus(t *testing.T) {
	srv := newAnalysisServer(t)
	cfg := writeConfig(t, "log_file = \"-\"\n")

	stdout, _, err := execute(t, "--config", cfg, "--api-url", srv.URL,
		"analyze", "--json", "-c", "ravi,jatin", "https://example.com")
	require.Error(t, err)

	var got []result
	require.NoError(t, json.Unmarshal([]byte(stdout), &got))
	require.Len(t, got, 2)
	assert.Zero(t, got[0].Status)
	assert.Equal(t, http.StatusInternalServerError, got[1].Status)
	assert.Equal(t, "HTTP error! status: 500 (scrape failed)", got[1].Error)
}

func TestAnalyzeCommand_DefaultCommentatorWithoutTTY(t *testing.T) {
	srv := newAnalysisServer(t)
	cfg := writeConfig(t, "log_file = \"-\"\n")

	stdout, _, err := execute(t, "--config", cfg, "--api-url", srv.URL, "analyze", "https://example.com")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Ravi Shastri's Take")
	assert.Contains(t, stdout, "Shot! ravi on https://example.com")
}

func TestAnalyzeCommand_RequiresURL(t *testing.T) {
	_, _, err := execute(t, "analyze")
	assert.Error(t, err)
}

func TestCommentatorsCommand(t *testing.T) {
	stdout, _, err := execute(t, "commentators", "--ids")
	require.NoError(t, err)
	assert.Equal(t, "ravi\nharsha\njatin\n", stdout)

	stdout, _, err = execute(t, "commentators")
	require.NoError(t, err)
	for _, want := range []string{"ravi *", "Ravi Shastri", "Bhogle's Balance", "Jatin's Jubilation", "DESCRIPTION"} {
		assert.Contains(t, stdout, want)
	}
}

func TestPingCommand(t *testing.T) {
	srv := newAnalysisServer(t)
	cfg := writeConfig(t, "log_file = \"-\"\n")

	stdout, _, err := execute(t, "--config", cfg, "--api-url", srv.URL, "ping")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(stdout, srv.URL+": ok ("), "stdout = %q", stdout)

	stdout, _, err = execute(t, "--config", cfg, "--api-url", srv.URL, "ping", "--wait", "2s")
	require.NoError(t, err)
	assert.Contains(t, stdout, ": ok (")
}

func TestPingCommand_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()
	cfg := writeConfig(t, "log_file = \"-\"\n")

	_, _, err := execute(t, "--config", cfg, "--api-url", url, "ping")
	require.Error(t, err)
	assert.Contains(t, err.Error(), url)
}

func TestLogsCommand(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "commentbox.log")
	lines := `{"level":"info","ts":"2026-10-18T10:00:00.000Z","msg":"commentbox starting","api_url":"http://127.0.0.1:8000"}
{"level":"warn","ts":"2026-10-18T10:00:01.000Z","msg":"analysis failed","commentator":"ravi"}
`
	require.NoError(t, os.WriteFile(logPath, []byte(lines), 0o644))
	cfg := writeConfig(t, "log_file = \""+logPath+"\"\n")

	stdout, _, err := execute(t, "--config", cfg, "logs", "-n", "1")
	require.NoError(t, err)
	assert.Equal(t, "2026-10-18T10:00:01.000Z WARN  analysis failed commentator=ravi\n", stdout)

	stdout, _, err = execute(t, "--config", cfg, "logs", "--raw")
	require.NoError(t, err)
	assert.Equal(t, lines, stdout)
}

func TestLogsCommand_Disabled(t *testing.T) {
	cfg := writeConfig(t, "log_file = \"-\"\n")
	_, _, err := execute(t, "--config", cfg, "logs")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "logging is disabled")
}

func TestVersionCommand(t *testing.T) {
	stdout, _, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, stdout, "commentbox development (local-build)")
	assert.Contains(t, stdout, "Go version:")
}
