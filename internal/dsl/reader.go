// Package dsl parses bkrs.info dictionaries in the DSL (ABBYY Lingvo) markup format.
//
// A DSL file starts with a few metadata lines, followed by articles.
// Each article starts with a headword line written in Chinese characters,
// then a pinyin line and the body lines with the translations:
//
//	#NAME "..."
//	#INDEX_LANGUAGE "Chinese"
//	#CONTENTS_LANGUAGE "Russian"
//	你好
//	 [p]nǐhǎo[/p]
//	 [m1]здравствуйте[/m]
package dsl

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// DefaultHeaderLines is the number of metadata lines at the top of a DSL file.
const DefaultHeaderLines = 3

// Reader groups the lines of a decoded DSL file into raw entries.
type Reader struct {
	lines       *bufio.Reader
	headerLines int

	lineNumber    int
	headerSkipped bool
	pending       RawEntry
	orphanLines   int
	done          bool
}

// ReaderOption configures a Reader.
type ReaderOption func(*Reader)

// WithHeaderLines sets the number of lines skipped at the top of the file.
func WithHeaderLines(n int) ReaderOption {
	return func(r *Reader) {
		r.headerLines = n
	}
}

// NewReader creates a Reader over UTF-8 text, typically the output of NewDecoder.
func NewReader(r io.Reader, opts ...ReaderOption) *Reader {
	reader := &Reader{
		lines:       bufio.NewReader(r),
		headerLines: DefaultHeaderLines,
	}
	for _, opt := range opts {
		opt(reader)
	}
	return reader
}

// Next returns the next raw entry, or io.EOF once all entries were returned.
// Lines before the first headword do not belong to any entry and are discarded.
func (r *Reader) Next() (RawEntry, error) {
	if r.done {
		return nil, io.EOF
	}
	if err := r.skipHeader(); err != nil {
		return nil, err
	}

	for {
		line, err := r.readLine()
		if errors.Is(err, io.EOF) {
			r.done = true
			entry := r.pending
			r.pending = nil
			if len(entry) == 0 {
				return nil, io.EOF
			}
			return entry, nil
		}
		if err != nil {
			return nil, err
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		if isHeadword(line) {
			entry := r.pending
			r.pending = RawEntry{line}
			if len(entry) > 0 {
				return entry, nil
			}
			continue
		}

		if r.pending == nil {
			r.orphanLines++
			slog.Default().Debug("discard a line before the first headword",
				slog.Int("line", r.lineNumber),
				slog.String("text", line),
			)
			continue
		}
		r.pending = append(r.pending, line)
	}
}

// OrphanLines returns how many non-empty lines were found before the first headword.
func (r *Reader) OrphanLines() int {
	return r.orphanLines
}

// LineNumber returns the number of lines read so far.
func (r *Reader) LineNumber() int {
	return r.lineNumber
}

func (r *Reader) skipHeader() error {
	if r.headerSkipped {
		return nil
	}
	r.headerSkipped = true
	for i := 0; i < r.headerLines; i++ {
		if _, err := r.readLine(); err != nil {
			if errors.Is(err, io.EOF) {
				r.done = true
				return io.EOF
			}
			return err
		}
	}
	return nil
}

func (r *Reader) readLine() (string, error) {
	line, err := r.lines.ReadString('\n')
	if line == "" && err != nil {
		if errors.Is(err, io.EOF) {
			return "", io.EOF
		}
		return "", fmt.Errorf("bufio.Reader.ReadString > %w", err)
	}
	r.lineNumber++
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("bufio.Reader.ReadString > %w", err)
	}
	return line, nil
}
