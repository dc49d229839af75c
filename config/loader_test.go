package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearEnv blanks every recognized variable so ambient credentials
// cannot leak into the test.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"OPENAI_API_KEY", "OPENAI_BASE_URL", "OPENAI_ORGANIZATION", "OPENAI_TIMEOUT"} {
		t.Setenv(key, "")
	}
}

// --- Loader ---

func TestLoader_LoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := NewLoader().Load()
	require.NoError(t, err)

	assert.Empty(t, cfg.APIKey())
	assert.Equal(t, "https://api.openai.com/v1/", cfg.BaseURL().String())
	assert.Empty(t, cfg.Organization())
	assert.Zero(t, cfg.Timeout())
}

func TestLoader_LoadFromYAML(t *testing.T) {
	clearEnv(t)

	configPath := filepath.Join(t.TempDir(), "openai.yaml")
	yamlContent := `
api_key: "sk-from-yaml"
base_url: "https://proxy.internal/v1/"
organization: "org-acme"
timeout: 90s
headers:
  X-Env: "staging"
`
	require.NoError(t, os.WriteFile(configPath, []byte(yamlContent), 0o644))

	f, err := NewLoader().WithConfigPath(configPath).LoadFile()
	require.NoError(t, err)
	assert.Equal(t, "sk-from-yaml", f.APIKey)
	assert.Equal(t, "https://proxy.internal/v1/", f.BaseURL)
	assert.Equal(t, "org-acme", f.Organization)
	assert.Equal(t, Duration(90*time.Second), f.Timeout)
	assert.Equal(t, "staging", f.Headers["X-Env"])

	cfg, err := NewLoader().WithConfigPath(configPath).Load()
	require.NoError(t, err)
	assert.Equal(t, "sk-from-yaml", cfg.APIKey())
	assert.Equal(t, "https://proxy.internal/v1/", cfg.BaseURL().String())
	assert.Equal(t, "org-acme", cfg.Organization())
	assert.Equal(t, 90*time.Second, cfg.Timeout())
	assert.Equal(t, "staging", cfg.Headers().Get("X-Env"))
}

func TestLoader_LoadFromEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("OPENAI_API_KEY", "sk-from-env")
	t.Setenv("OPENAI_BASE_URL", "https://env.example/v1/")
	t.Setenv("OPENAI_ORGANIZATION", "org-env")
	t.Setenv("OPENAI_TIMEOUT", "45s")

	cfg, err := NewLoader().Load()
	require.NoError(t, err)

	assert.Equal(t, "sk-from-env", cfg.APIKey())
	assert.Equal(t, "https://env.example/v1/", cfg.BaseURL().String())
	assert.Equal(t, "org-env", cfg.Organization())
	assert.Equal(t, 45*time.Second, cfg.Timeout())
}

func TestLoader_EnvOverridesYAML(t *testing.T) {
	clearEnv(t)

	configPath := filepath.Join(t.TempDir(), "openai.yaml")
	yamlContent := `
api_key: "sk-from-yaml"
organization: "org-yaml"
`
	require.NoError(t, os.WriteFile(configPath, []byte(yamlContent), 0o644))

	t.Setenv("OPENAI_API_KEY", "sk-from-env")

	cfg, err := NewLoader().WithConfigPath(configPath).Load()
	require.NoError(t, err)

	// Environment wins for the key; untouched YAML values survive.
	assert.Equal(t, "sk-from-env", cfg.APIKey())
	assert.Equal(t, "org-yaml", cfg.Organization())
}

func TestLoader_CustomEnvPrefix(t *testing.T) {
	clearEnv(t)
	t.Setenv("MYAPP_API_KEY", "sk-custom-prefix")

	cfg, err := NewLoader().WithEnvPrefix("MYAPP").Load()
	require.NoError(t, err)
	assert.Equal(t, "sk-custom-prefix", cfg.APIKey())
}

func TestLoader_NonExistentFile(t *testing.T) {
	clearEnv(t)

	cfg, err := NewLoader().
		WithConfigPath("/non/existent/path/openai.yaml").
		Load()
	require.NoError(t, err)
	assert.Equal(t, "https://api.openai.com/v1/", cfg.BaseURL().String())
}

func TestLoader_InvalidYAML(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "invalid.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("api_key: [broken"), 0o644))

	_, err := NewLoader().WithConfigPath(configPath).Load()
	assert.Error(t, err)
}

func TestLoader_InvalidTimeout(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "openai.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("timeout: banana"), 0o644))

	_, err := NewLoader().WithConfigPath(configPath).Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse duration")
}

func TestLoader_WithValidator(t *testing.T) {
	clearEnv(t)

	_, err := NewLoader().WithValidator((*File).Validate).Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "api_key is required")
}

// --- File ---

func TestFile_Validate(t *testing.T) {
	tests := []struct {
		name    string
		file    File
		wantErr bool
	}{
		{
			name: "complete file",
			file: File{APIKey: "sk-test", Timeout: Duration(30 * time.Second)},
		},
		{
			name:    "missing api key",
			file:    File{},
			wantErr: true,
		},
		{
			name:    "negative timeout",
			file:    File{APIKey: "sk-test", Timeout: Duration(-time.Second)},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.file.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

// --- MustLoad ---

func TestMustLoad_Success(t *testing.T) {
	clearEnv(t)

	configPath := filepath.Join(t.TempDir(), "openai.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte(`api_key: "sk-must"`), 0o644))

	assert.NotPanics(t, func() {
		cfg := MustLoad(configPath)
		assert.Equal(t, "sk-must", cfg.APIKey())
	})
}

func TestMustLoad_InvalidFile(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "invalid.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("api_key: [broken"), 0o644))

	assert.Panics(t, func() {
		MustLoad(configPath)
	})
}

func TestLoadFromEnv_Function(t *testing.T) {
	clearEnv(t)
	t.Setenv("OPENAI_API_KEY", "sk-env-only")

	cfg, err := LoadFromEnv()
	require.NoError(t, err)
	assert.Equal(t, "sk-env-only", cfg.APIKey())
}
