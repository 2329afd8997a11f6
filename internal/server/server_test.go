package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/jpsantiago/aralplan/internal/config"
)

func testConfigManager(t *testing.T, mutate func(*config.Config)) *config.Manager {
	t.Helper()

	cfg := config.DefaultConfig()
	if mutate != nil {
		mutate(cfg)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		t.Fatalf("marshal config: %v", err)
	}
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	mgr, err := config.NewManager(path)
	if err != nil {
		t.Fatalf("NewManager() error = %v", err)
	}
	return mgr
}

func TestNewDefaults(t *testing.T) {
	srv, err := New(Config{})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if srv.Addr() != "127.0.0.1:8787" {
		t.Errorf("Addr() = %q, want 127.0.0.1:8787", srv.Addr())
	}
	if srv.IsRunning() {
		t.Error("IsRunning() = true before Start")
	}
}

func TestNewWiresMockProvider(t *testing.T) {
	mgr := testConfigManager(t, func(c *config.Config) {
		c.LLMProviders = map[string]config.LLMProviderCfg{
			"mock": {Type: "mock", Enabled: true},
		}
		c.Defaults.LLMProvider = "mock"
	})

	srv, err := New(Config{ConfigManager: mgr})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	if !srv.Registry().HasLLM("mock") {
		t.Error("mock provider not registered from config")
	}
	if srv.Generator() == nil {
		t.Fatal("generator nil with a usable provider configured")
	}
	if got := srv.Generator().Provider(); got != "mock" {
		t.Errorf("generator provider = %q, want mock", got)
	}
}

func TestNewWithoutUsableProvider(t *testing.T) {
	mgr := testConfigManager(t, func(c *config.Config) {
		c.LLMProviders = map[string]config.LLMProviderCfg{}
	})

	srv, err := New(Config{ConfigManager: mgr})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if srv.Generator() != nil {
		t.Error("generator should be nil without a configured provider")
	}
}

func TestPrintInfoFromConfig(t *testing.T) {
	mgr := testConfigManager(t, func(c *config.Config) {
		c.PrintInfo.School = "Mabini National High School"
		c.PrintInfo.Teacher = ""
	})

	srv, err := New(Config{ConfigManager: mgr})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	info := srv.Store().PrintInfo()
	if info.School != "Mabini National High School" {
		t.Errorf("school = %q, config value not applied", info.School)
	}
	if info.Teacher == "" {
		t.Error("blank config field must keep the sample default")
	}
}

func TestRequireInitBeforeStart(t *testing.T) {
	srv, err := New(Config{})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	called := false
	handler := srv.requireInit(func(w http.ResponseWriter, r *http.Request) {
		called = true
	})

	rec := httptest.NewRecorder()
	handler(rec, httptest.NewRequest("GET", "/api/plan", nil))

	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("status = %d, want 503 before Start", rec.Code)
	}
	if called {
		t.Error("handler invoked before services were wired")
	}

	var resp map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp["error"] == "" {
		t.Error("503 body missing error message")
	}
}

func TestHealthRouteDoesNotRequireInit(t *testing.T) {
	srv, err := New(Config{})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	rec := httptest.NewRecorder()
	srv.httpServer.Handler.ServeHTTP(rec, httptest.NewRequest("GET", "/health", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("GET /health = %d before Start, want 200", rec.Code)
	}
}
