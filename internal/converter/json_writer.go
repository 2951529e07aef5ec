package converter

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/at-ishikawa/bkrs2json/internal/dsl"
)

// Format is the shape of each record in the output JSON array.
type Format string

const (
	// FormatDefault writes {"<headword>": ["<pinyin>", ["<meaning>", ...]]}.
	FormatDefault Format = "default"
	// FormatAlt writes {"word": "<headword>", "pinyin": "<pinyin>", "meanings": [...]}.
	FormatAlt Format = "alt"
)

// AllFormats lists the supported output formats.
var AllFormats = []Format{FormatDefault, FormatAlt}

// ParseFormat returns the format with the given name.
func ParseFormat(name string) (Format, error) {
	for _, format := range AllFormats {
		if name == string(format) {
			return format, nil
		}
	}
	return "", fmt.Errorf("invalid format: %s", name)
}

type altRecord struct {
	Word     string   `json:"word"`
	Pinyin   string   `json:"pinyin"`
	Meanings []string `json:"meanings"`
}

// JSONWriter writes entries as a JSON array one record at a time.
// Begin must be called before the first Write and End after the last.
type JSONWriter struct {
	writer io.Writer
	format Format
	count  int
}

// NewJSONWriter creates a JSONWriter writing records of the given format to w.
func NewJSONWriter(w io.Writer, format Format) *JSONWriter {
	return &JSONWriter{
		writer: w,
		format: format,
	}
}

// Begin opens the JSON array.
func (w *JSONWriter) Begin() error {
	if _, err := io.WriteString(w.writer, "[\n"); err != nil {
		return fmt.Errorf("io.WriteString > %w", err)
	}
	return nil
}

// Write appends an entry as a pretty-printed record.
func (w *JSONWriter) Write(entry dsl.Entry) error {
	record, err := w.encode(entry)
	if err != nil {
		return err
	}

	if w.count > 0 {
		if _, err := io.WriteString(w.writer, ",\n"); err != nil {
			return fmt.Errorf("io.WriteString > %w", err)
		}
	}
	if _, err := w.writer.Write(record); err != nil {
		return fmt.Errorf("writer.Write > %w", err)
	}
	w.count++
	return nil
}

// End closes the JSON array.
func (w *JSONWriter) End() error {
	if _, err := io.WriteString(w.writer, "\n]"); err != nil {
		return fmt.Errorf("io.WriteString > %w", err)
	}
	return nil
}

// Count returns the number of records written.
func (w *JSONWriter) Count() int {
	return w.count
}

func (w *JSONWriter) encode(entry dsl.Entry) ([]byte, error) {
	var record any
	switch w.format {
	case FormatAlt:
		record = altRecord{
			Word:     entry.Headword,
			Pinyin:   entry.Pinyin,
			Meanings: entry.Meanings,
		}
	default:
		record = map[string]any{
			entry.Headword: []any{entry.Pinyin, entry.Meanings},
		}
	}

	var buf bytes.Buffer
	encoder := json.NewEncoder(&buf)
	encoder.SetEscapeHTML(false)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(record); err != nil {
		return nil, fmt.Errorf("encoder.Encode > %w", err)
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}
