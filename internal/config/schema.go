package config

// Config holds aralplan configuration.
type Config struct {
	Server       ServerCfg                 `mapstructure:"server" yaml:"server"`
	LLMProviders map[string]LLMProviderCfg `mapstructure:"llm_providers" yaml:"llm_providers"`
	Defaults     DefaultsCfg               `mapstructure:"defaults" yaml:"defaults"`
	PrintInfo    PrintInfoCfg              `mapstructure:"print_info" yaml:"print_info"`
	PDF          PDFCfg                    `mapstructure:"pdf" yaml:"pdf"`
}

// ServerCfg configures the HTTP server.
type ServerCfg struct {
	Host string `mapstructure:"host" yaml:"host"`
	Port int    `mapstructure:"port" yaml:"port"`
}

// LLMProviderCfg configures an LLM provider.
type LLMProviderCfg struct {
	Type           string `mapstructure:"type" yaml:"type"`                       // "gemini", "openai", "mock"
	Model          string `mapstructure:"model" yaml:"model"`                     // Model name
	APIKey         string `mapstructure:"api_key" yaml:"api_key"`                 // API key (supports ${ENV_VAR} syntax)
	BaseURL        string `mapstructure:"base_url" yaml:"base_url"`               // Override endpoint (optional)
	MaxAttempts    int    `mapstructure:"max_attempts" yaml:"max_attempts"`       // 1 = single attempt, no retries
	TimeoutSeconds int    `mapstructure:"timeout_seconds" yaml:"timeout_seconds"` // HTTP timeout
	Enabled        bool   `mapstructure:"enabled" yaml:"enabled"`
}

// DefaultsCfg specifies generation defaults.
type DefaultsCfg struct {
	LLMProvider         string  `mapstructure:"llm_provider" yaml:"llm_provider"` // Provider used for generation
	Language            string  `mapstructure:"language" yaml:"language"`
	Days                int     `mapstructure:"days" yaml:"days"`
	IntegrateObjectives bool    `mapstructure:"integrate_objectives" yaml:"integrate_objectives"` // SOLO+HOTS objectives
	Temperature         float64 `mapstructure:"temperature" yaml:"temperature"`
	MaxTokens           int     `mapstructure:"max_tokens" yaml:"max_tokens"` // 0 = provider default
}

// PrintInfoCfg seeds the Daily Lesson Log header fields.
type PrintInfoCfg struct {
	School       string `mapstructure:"school" yaml:"school"`
	Teacher      string `mapstructure:"teacher" yaml:"teacher"`
	GradeLevel   string `mapstructure:"grade_level" yaml:"grade_level"`
	LearningArea string `mapstructure:"learning_area" yaml:"learning_area"`
	Quarter      string `mapstructure:"quarter" yaml:"quarter"`
}

// PDFCfg configures upload handling.
type PDFCfg struct {
	// MaxSizeMB is an advisory cap on uploaded PDFs. Zero disables it.
	MaxSizeMB int `mapstructure:"max_size_mb" yaml:"max_size_mb"`
}

// DefaultConfig returns configuration with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Server: ServerCfg{
			Host: "localhost",
			Port: 8787,
		},
		LLMProviders: map[string]LLMProviderCfg{
			"gemini": {
				Type:        "gemini",
				Model:       "gemini-2.5-flash",
				APIKey:      "${GEMINI_API_KEY}",
				MaxAttempts: 1,
				Enabled:     true,
			},
			"openai": {
				Type:    "openai",
				Model:   "gpt-4o-mini",
				APIKey:  "${OPENAI_API_KEY}",
				Enabled: false,
			},
		},
		Defaults: DefaultsCfg{
			LLMProvider:         "gemini",
			Language:            "English",
			Days:                1,
			IntegrateObjectives: true,
			Temperature:         0.7,
		},
		PrintInfo: PrintInfoCfg{
			School:       "Sample National High School",
			Teacher:      "Juan Dela Cruz",
			GradeLevel:   "Grade 10",
			LearningArea: "Araling Panlipunan",
			Quarter:      "First Quarter",
		},
		PDF: PDFCfg{
			MaxSizeMB: 10,
		},
	}
}

// GetLLMProvider returns an LLM provider config by name.
func (c *Config) GetLLMProvider(name string) (LLMProviderCfg, bool) {
	cfg, ok := c.LLMProviders[name]
	return cfg, ok
}

// EnabledLLMProviders returns all enabled LLM providers.
func (c *Config) EnabledLLMProviders() map[string]LLMProviderCfg {
	result := make(map[string]LLMProviderCfg)
	for name, cfg := range c.LLMProviders {
		if cfg.Enabled {
			result[name] = cfg
		}
	}
	return result
}
