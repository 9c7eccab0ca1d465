package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finmap-dev/finmap/internal/hierarchy"
)

func TestDefault_BuildsValidHierarchy(t *testing.T) {
	cfg := Default()

	h, err := hierarchy.New(cfg.Definition())
	require.NoError(t, err)
	assert.Len(t, h.LeafNames(), 14)
	assert.Equal(t, "Equity", h.BalancingName())

	values, err := cfg.LeafValues()
	require.NoError(t, err)
	assert.Len(t, values, 14)
	assert.True(t, values["Cash"].Equal(decimal.NewFromInt(10000)))
}

func TestSaveLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "finmap.yaml")

	require.NoError(t, Save(path, Default()))

	cfg, err := Load(path)
	require.NoError(t, err)

	h, err := hierarchy.New(cfg.Definition())
	require.NoError(t, err)

	children, err := h.ChildrenOf("CurrentAssets")
	require.NoError(t, err)
	assert.Equal(t, []string{"Cash", "AR", "Inventory"}, children)

	values, err := cfg.LeafValues()
	require.NoError(t, err)
	assert.True(t, values["PPE"].Equal(decimal.NewFromInt(40000)))
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading config")
}

func TestLoad_MalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "finmap.yaml")
	require.NoError(t, os.WriteFile(path, []byte(":\n  - not yaml"), 0o644))

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing config")
}

func TestLeafValues_BadValue(t *testing.T) {
	cfg := Default()
	cfg.Accounts[0].Value = "not-a-number"

	_, err := cfg.LeafValues()
	require.Error(t, err)
	assert.Contains(t, err.Error(), cfg.Accounts[0].Name)
}

func TestLeafValues_EmptyDefaultsToZero(t *testing.T) {
	cfg := Default()
	cfg.Accounts[0].Value = ""

	values, err := cfg.LeafValues()
	require.NoError(t, err)
	assert.True(t, values[cfg.Accounts[0].Name].IsZero())
}
