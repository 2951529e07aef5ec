package converter

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileReport counts what happened to the entries of one input file.
type FileReport struct {
	Path             string `yaml:"path"`
	Entries          int    `yaml:"entries"`
	DroppedEntries   int    `yaml:"dropped_entries"`
	MalformedEntries int    `yaml:"malformed_entries"`
	OrphanLines      int    `yaml:"orphan_lines"`
	Error            string `yaml:"error,omitempty"`
}

// Report summarizes a conversion run.
type Report struct {
	InputDirectory string       `yaml:"input_directory,omitempty"`
	OutputFile     string       `yaml:"output_file,omitempty"`
	Format         Format       `yaml:"format"`
	Entries        int          `yaml:"entries"`
	FailedFiles    int          `yaml:"failed_files"`
	Files          []FileReport `yaml:"files"`
}

func (r *Report) add(file FileReport) {
	r.Files = append(r.Files, file)
	r.Entries += file.Entries
	if file.Error != "" {
		r.FailedFiles++
	}
}

// WriteReport writes the report to a YAML file, creating its directory if needed.
func WriteReport(path string, report *Report) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create report directory: %w", err)
	}
	if err := writeYAML(path, report); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

func writeYAML(path string, data interface{}) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() { _ = f.Close() }()

	enc := yaml.NewEncoder(f)
	defer func() { _ = enc.Close() }()
	return enc.Encode(data)
}
