package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestInit_ReadsYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	yaml := `
server:
  port: "9090"
storage:
  data_dir: "/tmp/records"
llm:
  model: "test-model"
`
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0644))

	Init(path)
	require.Equal(t, "9090", Conf.Server.Port)
	require.Equal(t, "/tmp/records", Conf.Storage.DataDir)
	require.Equal(t, "test-model", Conf.LLM.Model)
	// 未在文件中出现的键使用默认值
	require.Equal(t, "info", Conf.Log.Level)
}

func TestInit_MissingFileUsesDefaultsAndEnv(t *testing.T) {
	t.Setenv("LLM_API_KEY", "sk-from-env")
	t.Setenv("STORAGE_DATA_DIR", "/var/lib/records")

	Init(filepath.Join(t.TempDir(), "no-such-config.yaml"))
	require.Equal(t, "sk-from-env", Conf.LLM.APIKey)
	require.Equal(t, "/var/lib/records", Conf.Storage.DataDir)
	require.Equal(t, "8080", Conf.Server.Port)
}
