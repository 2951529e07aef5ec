// Package language classifies translation segments by the script they are written in.
package language

import "strings"

// DefaultRussianThreshold is the share of Cyrillic letters a segment must exceed
// to be treated as Russian.
const DefaultRussianThreshold = 0.1

// Roman numerals mark sections in bkrs dictionaries, e.g. "I.", "IV."
const romanSectionMarkers = "IV"

// RussianClassifier decides whether a translation segment is mainly Russian.
type RussianClassifier struct {
	threshold float64
}

// NewRussianClassifier creates a classifier with the given Cyrillic ratio threshold.
func NewRussianClassifier(threshold float64) *RussianClassifier {
	return &RussianClassifier{
		threshold: threshold,
	}
}

// IsMainlyRussian reports whether the share of Cyrillic letters among
// Cyrillic and Latin letters is above the threshold.
// Segments starting with a Roman numeral section marker are always Russian.
// Segments without any Cyrillic or Latin letters are never Russian.
func (c *RussianClassifier) IsMainlyRussian(meaning string) bool {
	if meaning != "" && strings.IndexByte(romanSectionMarkers, meaning[0]) >= 0 {
		return true
	}

	cyrillic, latin := CountLetters(meaning)
	total := cyrillic + latin
	if total == 0 {
		return false
	}
	return float64(cyrillic)/float64(total) > c.threshold
}

// CountLetters returns the number of runes in the Cyrillic block (U+0400-U+04FF)
// and the number of ASCII Latin letters in s.
func CountLetters(s string) (cyrillic int, latin int) {
	for _, r := range s {
		switch {
		case r >= 0x0400 && r <= 0x04FF:
			cyrillic++
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
			latin++
		}
	}
	return cyrillic, latin
}
