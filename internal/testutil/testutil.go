// Package testutil provides shared test helpers for creating config files and DSL dictionary fixtures.
package testutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/unicode"
)

// DSLHeader is the metadata written at the top of every DSL fixture.
var DSLHeader = []string{
	`#NAME "bkrs test dictionary"`,
	`#INDEX_LANGUAGE "Chinese"`,
	`#CONTENTS_LANGUAGE "Russian"`,
}

// SetupTestConfig writes a config file with the given YAML content.
// Returns the path to the generated config file.
func SetupTestConfig(t *testing.T, tmpDir string, content string) string {
	t.Helper()

	cfgPath := filepath.Join(tmpDir, "config.yml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(content), 0644))
	return cfgPath
}

// DSLFileOption configures optional settings when creating a DSL fixture.
type DSLFileOption func(*dslFileConfig)

type dslFileConfig struct {
	endianness unicode.Endianness
	header     []string
}

// WithBigEndian encodes the fixture as UTF-16BE.
func WithBigEndian() DSLFileOption {
	return func(cfg *dslFileConfig) {
		cfg.endianness = unicode.BigEndian
	}
}

// WithHeader replaces the default metadata lines.
func WithHeader(lines ...string) DSLFileOption {
	return func(cfg *dslFileConfig) {
		cfg.header = lines
	}
}

// EncodeUTF16 encodes text as UTF-16 with a byte order mark.
func EncodeUTF16(t *testing.T, text string, endianness unicode.Endianness) []byte {
	t.Helper()

	encoded, err := unicode.UTF16(endianness, unicode.UseBOM).NewEncoder().String(text)
	require.NoError(t, err)
	return []byte(encoded)
}

// WriteDSLFile creates a UTF-16LE DSL file with a metadata header followed by lines.
// Returns the path to the created file.
func WriteDSLFile(t *testing.T, dir, name string, lines []string, opts ...DSLFileOption) string {
	t.Helper()

	cfg := dslFileConfig{
		endianness: unicode.LittleEndian,
		header:     DSLHeader,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	all := make([]string, 0, len(cfg.header)+len(lines))
	all = append(all, cfg.header...)
	all = append(all, lines...)
	content := strings.Join(all, "\r\n") + "\r\n"

	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, EncodeUTF16(t, content, cfg.endianness), 0644))
	return path
}
