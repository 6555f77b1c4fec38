package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfig(t *testing.T) {
	a := assert.New(t)

	path := filepath.Join(t.TempDir(), "mdmexec.yaml")
	err := os.WriteFile(path, []byte(`
bundle_url: https://download.microsoft.com/ddf/DDFv2.zip
output: execs.json
own_block_only: true
`), 0o644)
	a.NoError(err)

	cfg, err := loadConfig(path)
	a.NoError(err)
	a.Equal("https://download.microsoft.com/ddf/DDFv2.zip", cfg.BundleURL)
	a.Equal("execs.json", cfg.Output)
	a.True(cfg.OwnBlockOnly)
	a.False(cfg.InheritFormat)
}

func TestLoadConfigDefaults(t *testing.T) {
	a := assert.New(t)
	cfg, err := loadConfig("")
	a.NoError(err)
	a.Equal("csp_exec_commands.json", cfg.Output)
	a.False(cfg.OwnBlockOnly)
}

func TestLoadConfigMissingFile(t *testing.T) {
	a := assert.New(t)
	_, err := loadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	a.Error(err)
}
