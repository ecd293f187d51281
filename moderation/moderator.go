package moderation

import (
	"bufio"
	"os"
	"sort"
	"strings"
	"unicode"

	goahocorasick "github.com/anknown/ahocorasick"
)

// Screener checks free-text submission fields (item and move names)
// against a forbidden-word list before anything reaches the store.
// Matching is resistant to casing, spacing and common leet spellings.
type Screener struct {
	matcher *goahocorasick.Machine
	enabled bool
}

// NewScreener builds the Aho-Corasick automaton from normalized patterns.
// An empty word list yields a screener that accepts everything.
func NewScreener(words []string) (*Screener, error) {
	patterns := make([][]rune, 0, len(words))
	for _, word := range words {
		p := normalizeRunes([]rune(word))
		if len(p) > 0 {
			patterns = append(patterns, p)
		}
	}
	if len(patterns) == 0 {
		return &Screener{}, nil
	}
	// The underlying double-array trie wants its keywords sorted.
	sort.Slice(patterns, func(i, j int) bool {
		return string(patterns[i]) < string(patterns[j])
	})

	m := new(goahocorasick.Machine)
	if err := m.Build(patterns); err != nil {
		return nil, err
	}
	return &Screener{matcher: m, enabled: true}, nil
}

// LoadScreener reads one forbidden word per line. A missing path disables
// screening.
func LoadScreener(path string) (*Screener, error) {
	if path == "" {
		return &Screener{}, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var words []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		if word := strings.TrimSpace(scanner.Text()); word != "" {
			words = append(words, word)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return NewScreener(words)
}

// Clean reports whether the text contains no forbidden pattern.
func (s *Screener) Clean(text string) bool {
	if !s.enabled {
		return true
	}
	norm := normalizeRunes([]rune(text))
	if len(norm) == 0 {
		return true
	}
	return len(s.matcher.MultiPatternSearch(norm, true)) == 0
}

// normalizeRunes lowercases, strips noise and undoes leet substitutions.
func normalizeRunes(input []rune) []rune {
	out := make([]rune, 0, len(input))
	for _, r := range input {
		clean := simplifyRune(r)
		if isNoise(clean) {
			continue
		}
		out = append(out, unicode.ToLower(clean))
	}
	return out
}

// simplifyRune maps common leet speak characters back to their standard
// alphabet counterparts.
func simplifyRune(r rune) rune {
	switch r {
	case '4', '@':
		return 'a'
	case '3', '€':
		return 'e'
	case '1', '!', '|':
		return 'i'
	case '0':
		return 'o'
	case '5', '$':
		return 's'
	default:
		return r
	}
}

func isNoise(r rune) bool {
	return unicode.IsPunct(r) || unicode.IsSpace(r) || unicode.IsSymbol(r)
}
