package dsl

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

const (
	exampleOpen  = "[ex]"
	exampleClose = "[/ex]"
	meaningOpen  = "[m"
	meaningClose = "[/m]"
)

// Inline formatting tags whose markers are dropped while the enclosed text is kept.
var inlineTagNames = []string{"c", "p", "ref", "b", "i", "*"}

var meaningUnescaper = strings.NewReplacer(`\[`, "[", `\]`, "]", `\"`, `"`)

// removeExamples removes every span from "[ex]" to the nearest following "[/ex]".
// An "[ex]" without a closing marker is kept as is.
func removeExamples(s string) string {
	var b strings.Builder
	for {
		start := strings.Index(s, exampleOpen)
		if start < 0 {
			break
		}
		end := strings.Index(s[start+len(exampleOpen):], exampleClose)
		if end < 0 {
			break
		}
		b.WriteString(s[:start])
		s = s[start+len(exampleOpen)+end+len(exampleClose):]
	}
	b.WriteString(s)
	return b.String()
}

// stripInlineTags removes the opening and closing markers of inline tags such as "[b]" and "[/ref]".
func stripInlineTags(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); {
		if s[i] == '[' {
			if n := inlineTagLen(s[i:]); n > 0 {
				i += n
				continue
			}
		}
		b.WriteByte(s[i])
		i++
	}
	return b.String()
}

// inlineTagLen returns the length of the inline tag marker s starts with, or 0.
func inlineTagLen(s string) int {
	n := len("[")
	if strings.HasPrefix(s[n:], "/") {
		n++
	}
	for _, name := range inlineTagNames {
		if strings.HasPrefix(s[n:], name+"]") {
			return n + len(name) + len("]")
		}
	}
	return 0
}

// extractMeanings returns the text inside each "[m]...[/m]" or "[mN]...[/m]" span in order.
// The text runs to the nearest closing marker.
func extractMeanings(s string) []string {
	var meanings []string
	for {
		start := strings.Index(s, meaningOpen)
		if start < 0 {
			return meanings
		}
		n := meaningOpenLen(s[start:])
		if n == 0 {
			s = s[start+1:]
			continue
		}
		body := s[start+n:]
		end := strings.Index(body, meaningClose)
		if end < 0 {
			return meanings
		}
		meanings = append(meanings, body[:end])
		s = body[end+len(meaningClose):]
	}
}

// meaningOpenLen returns the length of "[m]" or "[mN]" at the start of s, or 0.
// N is a single digit giving the indentation level, which is ignored.
func meaningOpenLen(s string) int {
	if !strings.HasPrefix(s, meaningOpen) {
		return 0
	}
	rest := s[len(meaningOpen):]
	if strings.HasPrefix(rest, "]") {
		return len(meaningOpen) + 1
	}
	r, size := utf8.DecodeRuneInString(rest)
	if unicode.IsDigit(r) && strings.HasPrefix(rest[size:], "]") {
		return len(meaningOpen) + size + 1
	}
	return 0
}

// cleanMeaning unescapes brackets and quotes and collapses whitespace.
func cleanMeaning(s string) string {
	return strings.Join(strings.Fields(meaningUnescaper.Replace(s)), " ")
}

// isHeadword reports whether line consists only of CJK Unified Ideographs (U+4E00-U+9FFF).
func isHeadword(line string) bool {
	if line == "" {
		return false
	}
	for _, r := range line {
		if r < 0x4E00 || r > 0x9FFF {
			return false
		}
	}
	return true
}
