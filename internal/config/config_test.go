package config

import "testing"

func validConfig() Config {
	return Config{
		HTTP:     HTTPConfig{Port: 8080},
		Database: DatabaseConfig{Driver: "redis", Addrs: []string{"localhost:6379"}},
		AI:       AIConfig{Provider: "mock"},
	}
}

func TestValidate_Valid(t *testing.T) {
	cfg := validConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidate_InvalidPort(t *testing.T) {
	for _, port := range []int{0, -1, 70000} {
		cfg := validConfig()
		cfg.HTTP.Port = port
		if err := cfg.Validate(); err == nil {
			t.Errorf("expected error for port %d", port)
		}
	}
}

func TestValidate_MissingAddrs(t *testing.T) {
	cfg := validConfig()
	cfg.Database.Addrs = nil
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for missing database.addrs")
	}
}

func TestValidate_InvalidDriver(t *testing.T) {
	cfg := validConfig()
	cfg.Database.Driver = "postgres"
	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected error for unknown driver")
	}
	expected := `database.driver must be "valkey" or "redis", got "postgres"`
	if err.Error() != expected {
		t.Errorf("unexpected error message:\ngot:  %q\nwant: %q", err.Error(), expected)
	}
}

func TestValidate_InvalidProvider(t *testing.T) {
	cfg := validConfig()
	cfg.AI.Provider = "llama"
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for unknown ai.provider")
	}
}

func TestValidate_InvalidTemperature(t *testing.T) {
	cfg := validConfig()
	cfg.AI.OpenAI.Temperature = 3.5
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for temperature out of range")
	}
}

func TestApplyDefaults(t *testing.T) {
	cfg := Config{}
	cfg.ApplyDefaults()

	if cfg.HTTP.ReadTimeoutSec != 10 {
		t.Errorf("ReadTimeoutSec = %d, want 10", cfg.HTTP.ReadTimeoutSec)
	}
	if cfg.HTTP.WriteTimeoutSec != 60 {
		t.Errorf("WriteTimeoutSec = %d, want 60", cfg.HTTP.WriteTimeoutSec)
	}
	if cfg.Database.Driver != "valkey" {
		t.Errorf("Driver = %q, want valkey", cfg.Database.Driver)
	}
	if cfg.Storage.KeyPrefix != "somm:" {
		t.Errorf("KeyPrefix = %q, want somm:", cfg.Storage.KeyPrefix)
	}
	if cfg.AI.Provider != "mock" {
		t.Errorf("Provider = %q, want mock", cfg.AI.Provider)
	}
	if cfg.AI.MaxRetries != 2 {
		t.Errorf("MaxRetries = %d, want 2", cfg.AI.MaxRetries)
	}
	if cfg.AI.RetryBaseDelayMS != 1000 {
		t.Errorf("RetryBaseDelayMS = %d, want 1000", cfg.AI.RetryBaseDelayMS)
	}
	if cfg.AI.OpenAI.Model != "gpt-4o-mini" {
		t.Errorf("Model = %q, want gpt-4o-mini", cfg.AI.OpenAI.Model)
	}
}

func TestOpenAIConfigured(t *testing.T) {
	tests := []struct {
		name string
		ai   AIConfig
		want bool
	}{
		{"disabled", AIConfig{Enabled: false, Provider: "openai", OpenAI: OpenAIConfig{APIKey: "sk-x"}}, false},
		{"mock provider", AIConfig{Enabled: true, Provider: "mock", OpenAI: OpenAIConfig{APIKey: "sk-x"}}, false},
		{"no key", AIConfig{Enabled: true, Provider: "openai"}, false},
		{"configured", AIConfig{Enabled: true, Provider: "openai", OpenAI: OpenAIConfig{APIKey: "sk-x"}}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Config{AI: tt.ai}
			if got := cfg.OpenAIConfigured(); got != tt.want {
				t.Errorf("OpenAIConfigured() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestExpandEnvVars(t *testing.T) {
	t.Setenv("SOMM_TEST_KEY", "secret")

	in := []byte("api_key: ${SOMM_TEST_KEY}\nmodel: ${SOMM_TEST_MODEL:-gpt-4o-mini}\n")
	out := string(expandEnvVars(in))

	want := "api_key: secret\nmodel: gpt-4o-mini\n"
	if out != want {
		t.Errorf("expandEnvVars:\ngot:  %q\nwant: %q", out, want)
	}
}
