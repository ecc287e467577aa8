package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pelletier/go-toml/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteConfigOrdered(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), configName)

	require.NoError(t, WriteConfigOrdered(DefaultConfig(), configPath))

	content, err := os.ReadFile(configPath)
	require.NoError(t, err)

	var sections []string
	for _, line := range strings.Split(string(content), "\n") {
		if strings.HasPrefix(line, "[") && strings.HasSuffix(line, "]") {
			sections = append(sections, line)
		}
	}
	assert.Equal(t, []string{
		"[bridge]", "[database]", "[favicon]", "[logging]",
		"[palette]", "[reset]", "[search]", "[snapshot]",
	}, sections)

	var decoded Config
	require.NoError(t, toml.Unmarshal(content, &decoded))
	assert.Equal(t, DefaultConfig().Palette, decoded.Palette)
	assert.Equal(t, DefaultConfig().Bridge.ListenAddr, decoded.Bridge.ListenAddr)
}

func TestWriteConfigOrdered_Nil(t *testing.T) {
	require.Error(t, WriteConfigOrdered(nil, filepath.Join(t.TempDir(), configName)))
}

func TestSortTOMLSections(t *testing.T) {
	input := `[search]
default_engine = 'google'


[palette]
tab_limit = 10
`
	want := `[palette]
tab_limit = 10

[search]
default_engine = 'google'
`
	assert.Equal(t, want, sortTOMLSections(input))
}
