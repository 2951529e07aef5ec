package converter

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReport_add(t *testing.T) {
	var report Report
	report.add(FileReport{Path: "a.dsl", Entries: 2})
	report.add(FileReport{Path: "b.dsl", Error: "process b.dsl: broken"})
	report.add(FileReport{Path: "c.dsl", Entries: 3, DroppedEntries: 1})

	assert.Equal(t, 5, report.Entries)
	assert.Equal(t, 1, report.FailedFiles)
	assert.Len(t, report.Files, 3)
}

func TestWriteReport(t *testing.T) {
	report := &Report{
		InputDirectory: "dictionaries",
		OutputFile:     "bkrs.json",
		Format:         FormatAlt,
		Entries:        2,
		FailedFiles:    1,
		Files: []FileReport{
			{
				Path:             "dictionaries/a.dsl",
				Entries:          2,
				DroppedEntries:   1,
				MalformedEntries: 1,
				OrphanLines:      3,
			},
			{
				Path:  "dictionaries/b.dsl",
				Error: "process dictionaries/b.dsl: line 4: invalid UTF-16 encoding",
			},
		},
	}

	t.Run("report is written as YAML", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "reports", "report.yml")
		require.NoError(t, WriteReport(path, report))

		got, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, `input_directory: dictionaries
output_file: bkrs.json
format: alt
entries: 2
failed_files: 1
files:
    - path: dictionaries/a.dsl
      entries: 2
      dropped_entries: 1
      malformed_entries: 1
      orphan_lines: 3
    - path: dictionaries/b.dsl
      entries: 0
      dropped_entries: 0
      malformed_entries: 0
      orphan_lines: 0
      error: 'process dictionaries/b.dsl: line 4: invalid UTF-16 encoding'
`, string(got))
	})

	t.Run("MkdirAll error returns error", func(t *testing.T) {
		dir := t.TempDir()
		filePath := filepath.Join(dir, "blocker")
		require.NoError(t, os.WriteFile(filePath, []byte("x"), 0o644))

		err := WriteReport(filepath.Join(filePath, "subdir", "report.yml"), report)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "create report directory")
	})

	t.Run("writeYAML error returns error", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "report.yml")
		require.NoError(t, os.MkdirAll(path, 0o755))

		err := WriteReport(path, report)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "write "+path)
	})
}
