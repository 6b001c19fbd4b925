package config

import "testing"

func envWith(values map[string]string) func(string) string {
	return func(key string) string {
		return values[key]
	}
}

func TestFromEnvDefaults(t *testing.T) {
	cfg := FromEnv(envWith(nil))

	if cfg.Port != DefaultPort {
		t.Fatalf("expected default port %q, got %q", DefaultPort, cfg.Port)
	}
	if !cfg.BodyParsing {
		t.Fatalf("expected body parsing enabled by default")
	}
	if cfg.Addr() != ":3000" {
		t.Fatalf("expected addr :3000, got %q", cfg.Addr())
	}
}

func TestFromEnvPortOverride(t *testing.T) {
	cfg := FromEnv(envWith(map[string]string{"PORT": "8080"}))

	if cfg.Port != "8080" {
		t.Fatalf("expected port 8080, got %q", cfg.Port)
	}
	if cfg.Addr() != ":8080" {
		t.Fatalf("expected addr :8080, got %q", cfg.Addr())
	}
}

func TestFromEnvEmptyPortFallsBack(t *testing.T) {
	cfg := FromEnv(envWith(map[string]string{"PORT": ""}))

	if cfg.Port != DefaultPort {
		t.Fatalf("expected default port for empty PORT, got %q", cfg.Port)
	}
}

func TestFromEnvBodyParsingToggle(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  bool
	}{
		{name: "unset keeps default", value: "", want: true},
		{name: "false disables", value: "false", want: false},
		{name: "zero disables", value: "0", want: false},
		{name: "off disables", value: "off", want: false},
		{name: "case insensitive", value: "FALSE", want: false},
		{name: "surrounding whitespace", value: " no ", want: false},
		{name: "true enables", value: "true", want: true},
		{name: "unknown value enables", value: "anything", want: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := FromEnv(envWith(map[string]string{"BODY_PARSING": tc.value}))
			if cfg.BodyParsing != tc.want {
				t.Fatalf("BODY_PARSING=%q: expected %v, got %v", tc.value, tc.want, cfg.BodyParsing)
			}
		})
	}
}
