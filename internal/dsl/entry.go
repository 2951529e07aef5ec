package dsl

import (
	"errors"
	"fmt"
	"strings"
)

// ErrMalformedEntry is returned for an entry without a pinyin line.
var ErrMalformedEntry = errors.New("malformed entry")

// RawEntry is the lines of one dictionary article as they appear in a DSL file:
// the headword, the pinyin line and the body lines.
type RawEntry []string

// Headword returns the first line of the entry.
func (e RawEntry) Headword() string {
	if len(e) == 0 {
		return ""
	}
	return e[0]
}

// Entry is a dictionary article with markup removed and only Russian meanings kept.
type Entry struct {
	Headword string
	Pinyin   string
	Meanings []string
}

// Classifier decides which meanings are kept.
type Classifier interface {
	IsMainlyRussian(meaning string) bool
}

// Normalizer turns raw DSL articles into entries.
type Normalizer struct {
	classifier Classifier
}

// NewNormalizer creates a Normalizer that keeps the meanings accepted by classifier.
func NewNormalizer(classifier Classifier) *Normalizer {
	return &Normalizer{
		classifier: classifier,
	}
}

// Normalize cleans a raw entry.
// It returns nil without an error when no meaning of the entry is mainly Russian,
// and ErrMalformedEntry when the entry has no pinyin line.
func (n *Normalizer) Normalize(raw RawEntry) (*Entry, error) {
	if len(raw) < 2 {
		return nil, fmt.Errorf("%w: %q has no pinyin line", ErrMalformedEntry, raw.Headword())
	}

	body := strings.Join(raw[2:], " ")
	body = removeExamples(body)
	body = stripInlineTags(body)

	var meanings []string
	for _, candidate := range extractMeanings(body) {
		candidate = strings.TrimSpace(candidate)
		if candidate == "" {
			continue
		}
		if !n.classifier.IsMainlyRussian(candidate) {
			continue
		}
		meanings = append(meanings, cleanMeaning(candidate))
	}
	if len(meanings) == 0 {
		return nil, nil
	}

	return &Entry{
		Headword: strings.TrimSpace(raw[0]),
		Pinyin:   strings.TrimSpace(stripInlineTags(strings.TrimSpace(raw[1]))),
		Meanings: meanings,
	}, nil
}
