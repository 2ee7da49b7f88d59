/*
Copyright 2026 Seaglass Design. All rights reserved.
Use of this source code is governed by the Apache-2.0
license that can be found in the LICENSE file.
*/

package config_test

import (
	"io"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seaglass-design/themegen/config"
	"github.com/seaglass-design/themegen/internal/logger"
	"github.com/seaglass-design/themegen/internal/mapfs"
)

func TestLoad_YAML(t *testing.T) {
	mfs := mapfs.New()
	mfs.AddFile("/proj/.config/themegen.yaml", `prefix: carbon
defaultTheme: g100
outputDir: dist/scss
metadata:
  - tokens.yml
  - path: extra/tokens.yml
    optional: true
`, 0644)

	cfg, err := config.Load(mfs, "/proj")
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "carbon", cfg.Prefix)
	assert.Equal(t, "g100", cfg.DefaultTheme)
	assert.Equal(t, "dist/scss", cfg.OutputDir)

	require.Len(t, cfg.Metadata, 2)
	assert.Equal(t, "tokens.yml", cfg.Metadata[0].Path)
	assert.False(t, cfg.Metadata[0].Optional)
	assert.Equal(t, "extra/tokens.yml", cfg.Metadata[1].Path)
	assert.True(t, cfg.Metadata[1].Optional)
}

func TestLoad_JSONWithComments(t *testing.T) {
	mfs := mapfs.New()
	mfs.AddFile("/proj/.config/themegen.json", `{
  // generated modules land here
  "outputDir": "scss/generated",
  "metadata": ["tokens.yml"]
}`, 0644)

	cfg, err := config.Load(mfs, "/proj")
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "scss/generated", cfg.OutputDir)
	require.Len(t, cfg.Metadata, 1)
	assert.Equal(t, "tokens.yml", cfg.Metadata[0].Path)
}

func TestLoad_NotFound(t *testing.T) {
	cfg, err := config.Load(mapfs.New(), "/proj")
	require.NoError(t, err)
	assert.Nil(t, cfg)
}

func TestLoadOrDefault(t *testing.T) {
	cfg := config.LoadOrDefault(mapfs.New(), "/proj")
	require.NotNil(t, cfg)
	assert.Equal(t, "scss/generated", cfg.OutputDir)
	assert.Empty(t, cfg.Prefix)
}

func TestExpandMetadata_Glob(t *testing.T) {
	mfs := mapfs.New()
	mfs.AddFile("/proj/meta/a.yml", "tokens:\n", 0644)
	mfs.AddFile("/proj/meta/b.yml", "tokens:\n", 0644)
	mfs.AddFile("/proj/meta/notes.txt", "", 0644)

	cfg := &config.Config{Metadata: []config.FileSpec{{Path: "meta/*.yml"}}}

	paths, err := cfg.ExpandMetadata(mfs, "/proj")
	require.NoError(t, err)
	assert.Equal(t, []string{"/proj/meta/a.yml", "/proj/meta/b.yml"}, paths)
}

func TestExpandMetadata_MissingRequired(t *testing.T) {
	cfg := &config.Config{Metadata: []config.FileSpec{{Path: "tokens.yml"}}}

	_, err := cfg.ExpandMetadata(mapfs.New(), "/proj")
	assert.Error(t, err)
}

func TestExpandMetadata_MissingOptionalSkipped(t *testing.T) {
	logger.SetOutput(io.Discard)
	t.Cleanup(func() { logger.SetOutput(os.Stderr) })

	mfs := mapfs.New()
	mfs.AddFile("/proj/tokens.yml", "tokens:\n", 0644)

	cfg := &config.Config{Metadata: []config.FileSpec{
		{Path: "tokens.yml"},
		{Path: "extra.yml", Optional: true},
	}}

	paths, err := cfg.ExpandMetadata(mfs, "/proj")
	require.NoError(t, err)
	assert.Equal(t, []string{"/proj/tokens.yml"}, paths)
}
