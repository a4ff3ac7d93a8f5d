package moderation

import (
	"log/slog"
	"slices"
	"strings"
	"unicode"

	goahocorasick "github.com/anknown/ahocorasick"
	"github.com/samber/lo"
)

// Moderator censors forbidden words in message bodies.
// Matching ignores case, punctuation, spacing and common leet speak,
// so "B.4.d.g.€r" is caught by "badger".
type Moderator struct {
	matcher      *goahocorasick.Machine
	dictionary   map[string]string // normalized -> dictionary word
	censoredChar rune
	log          *slog.Logger
}

type runeMapping struct {
	normalized []rune
	origIdx    []int
}

// NewModerator builds the Aho-Corasick automaton from the normalized dictionary.
// Entries that normalize to nothing (pure punctuation, blanks) are dropped.
func NewModerator(censoredWords []string, censoredChar rune, log *slog.Logger) (*Moderator, error) {
	dictionary := make(map[string]string, len(censoredWords))
	for _, word := range censoredWords {
		n := string(normalizeRunes([]rune(word)))
		if _, exists := dictionary[n]; n != "" && !exists {
			dictionary[n] = strings.ToLower(strings.TrimSpace(word))
		}
	}
	normalized := lo.Keys(dictionary)
	slices.Sort(normalized)

	mod := &Moderator{dictionary: dictionary, censoredChar: censoredChar, log: log}
	if len(normalized) == 0 {
		log.Debug("Moderation dictionary is empty")
		return mod, nil
	}
	patterns := lo.Map(normalized, func(word string, _ int) []rune { return []rune(word) })
	m := new(goahocorasick.Machine)
	if err := m.Build(patterns); err != nil {
		return nil, err
	}
	mod.matcher = m
	log.Debug("Moderation dictionary loaded", "words", len(patterns))
	return mod, nil
}

// Censor replaces every matched character with the censored rune while keeping
// spacing and punctuation around the match. It returns the dictionary words found.
func (m *Moderator) Censor(original string) (string, []string) {
	if m.matcher == nil {
		return original, nil
	}
	mapping := normalize(original)
	if len(mapping.normalized) == 0 {
		return original, nil
	}

	spans := m.matcher.MultiPatternSearch(mapping.normalized, false)
	if len(spans) == 0 {
		return original, nil
	}

	origRunes := []rune(original)
	var words []string
	for _, span := range spans {
		normStart := span.Pos
		normEnd := normStart + len(span.Word)
		if normStart < 0 || normEnd > len(mapping.origIdx) {
			continue
		}
		origStart := mapping.origIdx[normStart]
		origEnd := mapping.origIdx[normEnd-1] + 1
		for i := origStart; i < origEnd; i++ {
			origRunes[i] = m.censoredChar
		}
		words = append(words, m.dictionary[string(span.Word)])
	}
	if len(words) > 0 {
		m.log.Debug("Message censored", "matches", len(words))
	}
	return string(origRunes), words
}

// normalize keeps, for every searchable rune, the index of the rune it came from.
func normalize(input string) runeMapping {
	origRunes := []rune(input)
	mapping := runeMapping{
		normalized: make([]rune, 0, len(origRunes)),
		origIdx:    make([]int, 0, len(origRunes)),
	}
	for i, r := range origRunes {
		clean := simplifyRune(r)
		if isNoise(clean) {
			continue
		}
		mapping.normalized = append(mapping.normalized, unicode.ToLower(clean))
		mapping.origIdx = append(mapping.origIdx, i)
	}
	return mapping
}

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

// simplifyRune maps leet speak back to letters.
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
