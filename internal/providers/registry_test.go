package providers

import "testing"

func TestNewRegistryFromConfig(t *testing.T) {
	cfg := RegistryConfig{
		LLMProviders: map[string]LLMProviderConfig{
			"gemini":   {Type: "gemini", APIKey: "key-1", Model: "gemini-2.5-flash", Enabled: true},
			"openai":   {Type: "openai", APIKey: "", Enabled: true}, // no key, skipped
			"mock":     {Type: "mock", Enabled: true},               // no key needed
			"disabled": {Type: "gemini", APIKey: "key-2", Enabled: false},
		},
	}

	r := NewRegistryFromConfig(cfg)

	if !r.HasLLM("gemini") {
		t.Error("gemini client not registered")
	}
	if !r.HasLLM("mock") {
		t.Error("mock client not registered")
	}
	if r.HasLLM("openai") {
		t.Error("openai client registered without API key")
	}
	if r.HasLLM("disabled") {
		t.Error("disabled client registered")
	}
}

func TestRegistryGetLLM(t *testing.T) {
	r := NewRegistry()
	mock := NewMockClient()
	r.RegisterLLM("mock", mock)

	got, err := r.GetLLM("mock")
	if err != nil {
		t.Fatalf("GetLLM() error = %v", err)
	}
	if got != mock {
		t.Error("GetLLM() returned a different client")
	}

	if _, err := r.GetLLM("missing"); err == nil {
		t.Error("expected error for unknown client")
	}
}

func TestRegistryReload(t *testing.T) {
	r := NewRegistryFromConfig(RegistryConfig{
		LLMProviders: map[string]LLMProviderConfig{
			"gemini": {Type: "gemini", APIKey: "key-1", Enabled: true},
		},
	})

	before, err := r.GetLLM("gemini")
	if err != nil {
		t.Fatalf("GetLLM() error = %v", err)
	}

	// Unchanged config keeps the same client instance.
	r.Reload(RegistryConfig{
		LLMProviders: map[string]LLMProviderConfig{
			"gemini": {Type: "gemini", APIKey: "key-1", Enabled: true},
		},
	})
	after, _ := r.GetLLM("gemini")
	if before != after {
		t.Error("unchanged config should not recreate the client")
	}

	// Changed key recreates the client.
	r.Reload(RegistryConfig{
		LLMProviders: map[string]LLMProviderConfig{
			"gemini": {Type: "gemini", APIKey: "key-2", Enabled: true},
		},
	})
	after, _ = r.GetLLM("gemini")
	if before == after {
		t.Error("changed API key should recreate the client")
	}

	// Removed config unregisters.
	r.Reload(RegistryConfig{})
	if r.HasLLM("gemini") {
		t.Error("removed provider still registered after reload")
	}
}
