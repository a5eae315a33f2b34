package nlp

import "strings"

// defaultStopwords are common English function words that never count as keywords.
var defaultStopwords = []string{"and", "the", "for", "with", "you", "that", "this", "from", "have", "are", "but"}

// Stopwords is an immutable set of words excluded from keyword extraction.
type Stopwords struct {
	words map[string]struct{}
}

// NewStopwords builds a stopword set from the built-in list plus extra words.
// Extras are lowercased and trimmed; empty entries are ignored.
func NewStopwords(extra ...string) Stopwords {
	words := make(map[string]struct{}, len(defaultStopwords)+len(extra))
	for _, w := range defaultStopwords {
		words[w] = struct{}{}
	}
	for _, w := range extra {
		w = strings.ToLower(strings.TrimSpace(w))
		if w == "" {
			continue
		}
		words[w] = struct{}{}
	}
	return Stopwords{words: words}
}

// Has reports whether w is a stopword. w must already be lowercase.
func (s Stopwords) Has(w string) bool {
	_, ok := s.words[w]
	return ok
}

// Len returns the number of stopwords.
func (s Stopwords) Len() int { return len(s.words) }
