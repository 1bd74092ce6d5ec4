package app

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/five82/commentbox/internal/config"
	"github.com/five82/commentbox/internal/session"
	"github.com/five82/commentbox/internal/urlcheck"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestSetup(t *testing.T) {
	t.Setenv(config.EnvAPIURL, "")
	logPath := filepath.Join(t.TempDir(), "commentbox.log")
	path := writeConfig(t, `
api_url = "http://analysis.internal:9000/api/"
request_timeout = "45s"
rate_limit = 10
validate_urls = true
share_command = "wl-copy"
log_file = "`+logPath+`"
log_level = "debug"
`)

	rt, err := Setup(Options{ConfigPath: path})
	if err != nil {
		t.Fatalf("Setup returned error: %v", err)
	}
	defer rt.Close()

	if got := rt.Client.BaseURL(); got != "http://analysis.internal:9000/api" {
		t.Fatalf("BaseURL = %q", got)
	}
	if rt.Config.RequestTimeout != 45*time.Second || rt.Config.RateLimit != 10 {
		t.Fatalf("config = %+v", rt.Config)
	}
	if rt.Sharer == nil {
		t.Fatalf("Sharer is nil")
	}

	rt.Logger.Info("setup test")
	_ = rt.Logger.Sync()
	if info, err := os.Stat(logPath); err != nil || info.Size() == 0 {
		t.Fatalf("log file not written: %v", err)
	}
}

func TestSetup_APIURLOverride(t *testing.T) {
	t.Setenv(config.EnvAPIURL, "http://from-env:1")
	path := writeConfig(t, "log_file = \"-\"\n")

	rt, err := Setup(Options{ConfigPath: path, APIURL: "http://from-flag:2"})
	if err != nil {
		t.Fatalf("Setup returned error: %v", err)
	}
	defer rt.Close()
	if got := rt.Client.BaseURL(); got != "http://from-flag:2" {
		t.Fatalf("BaseURL = %q, want flag value", got)
	}
}

func TestSetup_BadConfig(t *testing.T) {
	t.Setenv(config.EnvAPIURL, "")
	path := writeConfig(t, "request_timeout = \"soon\"\n")
	if _, err := Setup(Options{ConfigPath: path}); err == nil {
		t.Fatalf("Setup accepted a bad request_timeout")
	}
}

func TestSetup_BadAPIURL(t *testing.T) {
	t.Setenv(config.EnvAPIURL, "")
	path := writeConfig(t, "api_url = \"not a url\"\nlog_file = \"-\"\n")
	if _, err := Setup(Options{ConfigPath: path}); err == nil {
		t.Fatalf("Setup accepted an api_url without a host")
	}
}

func TestNewSession_Validation(t *testing.T) {
	rt := &Runtime{Config: config.Config{ValidateURLs: true}}
	_, err := rt.NewSession().Begin("example")
	if !errors.Is(err, urlcheck.ErrInvalid) {
		t.Fatalf("Begin(example) error = %v, want ErrInvalid", err)
	}

	rt.Config.ValidateURLs = false
	if _, err := rt.NewSession().Begin("example"); err != nil {
		t.Fatalf("Begin without validation returned %v", err)
	}

	if _, err := rt.NewSession().Begin(" "); !errors.Is(err, session.ErrEmptyURL) {
		t.Fatalf("Begin(blank) error = %v, want ErrEmptyURL", err)
	}
}

func TestRuntimeCloseNil(t *testing.T) {
	var rt *Runtime
	rt.Close()
}
