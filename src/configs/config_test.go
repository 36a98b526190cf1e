package configs

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.hcl")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadDefaults(t *testing.T) {
	config, err := Load(&Options{
		Path:         filepath.Join(t.TempDir(), "missing.hcl"),
		AllowMissing: true,
	})
	require.NoError(t, err)

	assert.Equal(t, os.FileMode(0644), config.DefaultFileMode)
	assert.Equal(t, os.FileMode(0755), config.DefaultDirMode)
	assert.Equal(t, DefaultFetchTimeout, config.FetchTimeout)
	assert.Equal(t, DefaultCacheSize, config.CacheSize)
	assert.False(t, config.Strict)
	assert.Nil(t, config.S3)
}

func TestLoadMissingNotAllowed(t *testing.T) {
	_, err := Load(&Options{Path: filepath.Join(t.TempDir(), "missing.hcl")})
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
default_file_mode = 384
default_dir_mode  = 448
fetch_timeout     = "5s"
cache_size        = 16
strict            = true
structure         = "structures/project.json"

s3 {
  endpoint   = "minio:9000"
  access_key = "ak"
  secret_key = "sk"
  use_ssl    = false
}
`)

	config, err := Load(&Options{Path: path})
	require.NoError(t, err)

	assert.Equal(t, os.FileMode(0600), config.DefaultFileMode)
	assert.Equal(t, os.FileMode(0700), config.DefaultDirMode)
	assert.Equal(t, 5*time.Second, config.FetchTimeout)
	assert.Equal(t, 16, config.CacheSize)
	assert.True(t, config.Strict)
	assert.Equal(t, filepath.Join(filepath.Dir(path), "structures", "project.json"), config.Structure)

	require.NotNil(t, config.S3)
	assert.Equal(t, "minio:9000", config.S3.Endpoint)
	assert.Equal(t, "us-east-1", config.S3.Region)
	assert.Equal(t, "ak", config.S3.AccessKey)
	assert.Equal(t, "sk", config.S3.SecretKey)
	require.NotNil(t, config.S3.UseSSL)
	assert.False(t, *config.S3.UseSSL)
}

func TestLoadEnv(t *testing.T) {
	t.Setenv("SCAFFOLD_TEST_SECRET", "from-env")

	path := writeConfig(t, `
s3 {
  endpoint   = "s3.amazonaws.com"
  secret_key = env.SCAFFOLD_TEST_SECRET
}
`)

	config, err := Load(&Options{Path: path})
	require.NoError(t, err)
	require.NotNil(t, config.S3)
	assert.Equal(t, "from-env", config.S3.SecretKey)
	assert.True(t, *config.S3.UseSSL)
}

func TestLoadDotEnv(t *testing.T) {
	path := writeConfig(t, `
s3 {
  endpoint   = "s3.amazonaws.com"
  access_key = env.SCAFFOLD_TEST_DOTENV_KEY
}
`)
	dotenv := filepath.Join(filepath.Dir(path), ".env")
	require.NoError(t, os.WriteFile(dotenv, []byte("SCAFFOLD_TEST_DOTENV_KEY=dotenv\n"), 0o600))
	t.Cleanup(func() {
		_ = os.Unsetenv("SCAFFOLD_TEST_DOTENV_KEY")
	})

	config, err := Load(&Options{Path: path})
	require.NoError(t, err)
	assert.Equal(t, "dotenv", config.S3.AccessKey)
}

func TestLoadInvalid(t *testing.T) {
	for name, content := range map[string]string{
		"syntax":           `strict = `,
		"type":             `strict = "yes please"`,
		"timeout":          `fetch_timeout = "soon"`,
		"negative timeout": `fetch_timeout = "-1s"`,
		"escaping path":    `structure = "../structure.json"`,
		"missing endpoint": "s3 {\n  region = \"eu-north-1\"\n}\n",
	} {
		t.Run(name, func(t *testing.T) {
			_, err := Load(&Options{Path: writeConfig(t, content)})
			assert.Error(t, err)
		})
	}
}
