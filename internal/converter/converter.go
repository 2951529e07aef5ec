// Package converter converts directories of bkrs DSL dictionaries into a single JSON document.
package converter

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/at-ishikawa/bkrs2json/internal/dsl"
	"github.com/at-ishikawa/bkrs2json/internal/language"
)

//go:generate mockgen -source=converter.go -destination=../mocks/converter/mock_sink.go -package=mock_converter EntrySink

// EntrySink receives the converted entries in order.
type EntrySink interface {
	Write(entry dsl.Entry) error
}

// Options controls how input files are found, parsed and written.
type Options struct {
	Extension        string
	HeaderLines      int
	Format           Format
	RussianThreshold float64
}

// DefaultOptions returns the options matching bkrs.info dictionary dumps.
func DefaultOptions() Options {
	return Options{
		Extension:        ".dsl",
		HeaderLines:      dsl.DefaultHeaderLines,
		Format:           FormatDefault,
		RussianThreshold: language.DefaultRussianThreshold,
	}
}

// Converter reads DSL files one after another and writes their entries.
type Converter struct {
	options    Options
	normalizer *dsl.Normalizer
}

// NewConverter creates a Converter.
func NewConverter(options Options) *Converter {
	return &Converter{
		options:    options,
		normalizer: dsl.NewNormalizer(language.NewRussianClassifier(options.RussianThreshold)),
	}
}

// Convert converts every input file in inputDirectory into the JSON file outputFile.
// Configuration problems are reported as *ConfigurationError before outputFile is created.
// A failure in one input file is recorded in the report and the remaining files are still converted.
func (c *Converter) Convert(inputDirectory, outputFile string) (*Report, error) {
	if err := CheckPaths(inputDirectory, outputFile); err != nil {
		return nil, err
	}
	files, err := FindInputFiles(inputDirectory, c.options.Extension)
	if err != nil {
		return nil, err
	}

	file, err := os.Create(outputFile)
	if err != nil {
		return nil, fmt.Errorf("os.Create > %w", err)
	}
	defer func() {
		_ = file.Close()
	}()

	buffered := bufio.NewWriter(file)
	writer := NewJSONWriter(buffered, c.options.Format)
	if err := writer.Begin(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrWriteOutput, err)
	}

	report, err := c.ConvertFiles(files, writer)
	if err != nil {
		return report, err
	}
	report.InputDirectory = inputDirectory
	report.OutputFile = outputFile

	if err := writer.End(); err != nil {
		return report, fmt.Errorf("%w: %w", ErrWriteOutput, err)
	}
	if err := buffered.Flush(); err != nil {
		return report, fmt.Errorf("%w: %w", ErrWriteOutput, err)
	}
	if err := file.Close(); err != nil {
		return report, fmt.Errorf("%w: %w", ErrWriteOutput, err)
	}

	slog.Default().Info("conversion finished",
		slog.String("output", outputFile),
		slog.Int("records", writer.Count()),
		slog.Int("files", len(report.Files)),
		slog.Int("failed_files", report.FailedFiles),
	)
	return report, nil
}

// ConvertFiles converts the files in the given order and writes their entries to sink.
// It stops only when sink fails; other errors are logged and recorded per file.
func (c *Converter) ConvertFiles(files []string, sink EntrySink) (*Report, error) {
	report := &Report{
		Format: c.options.Format,
	}
	for _, path := range files {
		slog.Default().Info("parsing file", slog.String("path", path))

		fileReport, err := c.convertFile(path, sink)
		if errors.Is(err, ErrWriteOutput) {
			report.add(fileReport)
			return report, err
		}
		if err != nil {
			fileErr := &FileError{Path: path, Err: err}
			slog.Default().Error("failed to process a file",
				slog.String("path", path),
				slog.Any("error", err),
			)
			fileReport.Error = fileErr.Error()
		}

		slog.Default().Debug("file converted",
			slog.String("path", path),
			slog.Int("entries", fileReport.Entries),
			slog.Int("dropped_entries", fileReport.DroppedEntries),
			slog.Int("malformed_entries", fileReport.MalformedEntries),
			slog.Int("orphan_lines", fileReport.OrphanLines),
		)
		report.add(fileReport)
	}
	return report, nil
}

func (c *Converter) convertFile(path string, sink EntrySink) (FileReport, error) {
	report := FileReport{Path: path}

	// An undecodable file contributes no entries.
	if err := checkFileEncoding(path); err != nil {
		return report, err
	}

	file, err := os.Open(path)
	if err != nil {
		return report, fmt.Errorf("os.Open > %w", err)
	}
	defer func() {
		_ = file.Close()
	}()

	reader := dsl.NewReader(dsl.NewDecoder(file), dsl.WithHeaderLines(c.options.HeaderLines))
	for {
		raw, err := reader.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			report.OrphanLines = reader.OrphanLines()
			return report, fmt.Errorf("reader.Next > %w", err)
		}

		entry, err := c.normalizer.Normalize(raw)
		if errors.Is(err, dsl.ErrMalformedEntry) {
			report.MalformedEntries++
			slog.Default().Warn("skip a malformed entry",
				slog.String("path", path),
				slog.Int("line", reader.LineNumber()),
				slog.Any("error", err),
			)
			continue
		}
		if err != nil {
			report.OrphanLines = reader.OrphanLines()
			return report, fmt.Errorf("normalizer.Normalize > %w", err)
		}
		if entry == nil {
			report.DroppedEntries++
			continue
		}

		if err := sink.Write(*entry); err != nil {
			report.OrphanLines = reader.OrphanLines()
			return report, fmt.Errorf("%w: %w", ErrWriteOutput, err)
		}
		report.Entries++
	}
	report.OrphanLines = reader.OrphanLines()
	return report, nil
}

func checkFileEncoding(path string) error {
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("os.Open > %w", err)
	}
	defer func() {
		_ = file.Close()
	}()

	if err := dsl.CheckEncoding(file); err != nil {
		return fmt.Errorf("dsl.CheckEncoding > %w", err)
	}
	return nil
}

// CheckPaths verifies that inputDirectory is a directory and that the directory of outputFile exists.
func CheckPaths(inputDirectory, outputFile string) error {
	info, err := os.Stat(inputDirectory)
	if err != nil || !info.IsDir() {
		return &ConfigurationError{Path: inputDirectory, Err: ErrInputDirectoryNotFound}
	}

	outputDirectory := filepath.Dir(outputFile)
	info, err = os.Stat(outputDirectory)
	if err != nil || !info.IsDir() {
		return &ConfigurationError{Path: outputDirectory, Err: ErrOutputDirectoryNotFound}
	}
	return nil
}

// FindInputFiles returns the files in directory whose names end with extension, sorted by name.
func FindInputFiles(directory, extension string) ([]string, error) {
	entries, err := os.ReadDir(directory)
	if err != nil {
		return nil, fmt.Errorf("os.ReadDir > %w", err)
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), extension) {
			continue
		}
		files = append(files, filepath.Join(directory, entry.Name()))
	}
	if len(files) == 0 {
		return nil, &ConfigurationError{
			Path: directory,
			Err:  fmt.Errorf("%w with extension %s in directory", ErrNoInputFiles, extension),
		}
	}
	return files, nil
}
