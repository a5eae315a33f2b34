package nlp

import (
	"regexp"
	"strings"
)

const minKeywordLen = 3

var (
	// nonKeyword matches separator runs; underscore separates too.
	nonKeyword = regexp.MustCompile(`[^a-z0-9]+`)
	numeric    = regexp.MustCompile(`^[0-9]+(\.[0-9]+)?$`)
)

// KeywordSet is a set of normalized keywords that remembers the order in
// which each keyword was first seen.
type KeywordSet struct {
	order []string
	index map[string]struct{}
}

func newKeywordSet(capacity int) KeywordSet {
	return KeywordSet{
		order: make([]string, 0, capacity),
		index: make(map[string]struct{}, capacity),
	}
}

// NewKeywordSet builds a set from already normalized keywords, keeping the
// first occurrence of duplicates.
func NewKeywordSet(keywords ...string) KeywordSet {
	s := newKeywordSet(len(keywords))
	for _, k := range keywords {
		s.add(k)
	}
	return s
}

func (s *KeywordSet) add(k string) {
	if _, ok := s.index[k]; ok {
		return
	}
	s.index[k] = struct{}{}
	s.order = append(s.order, k)
}

// Contains reports whether k is in the set.
func (s KeywordSet) Contains(k string) bool {
	_, ok := s.index[k]
	return ok
}

// Len returns the number of distinct keywords.
func (s KeywordSet) Len() int { return len(s.order) }

// Keywords returns the keywords in first-seen order. The slice is a copy.
func (s KeywordSet) Keywords() []string {
	out := make([]string, len(s.order))
	copy(out, s.order)
	return out
}

// Extractor turns free text into keyword sets using a fixed stopword list.
// It holds no mutable state and is safe for concurrent use.
type Extractor struct {
	stop Stopwords
}

// NewExtractor returns an Extractor backed by stop.
func NewExtractor(stop Stopwords) *Extractor {
	return &Extractor{stop: stop}
}

var defaultExtractor = NewExtractor(NewStopwords())

// ExtractKeywords extracts keywords from text with the built-in stopwords.
func ExtractKeywords(text string) KeywordSet {
	return defaultExtractor.Extract(text)
}

// Extract lowercases text, splits it on anything that is not an ASCII letter
// or digit and keeps tokens that are at least three characters long, are not
// stopwords and are not plain numbers.
func (e *Extractor) Extract(text string) KeywordSet {
	if text == "" {
		return newKeywordSet(0)
	}
	tokens := nonKeyword.Split(strings.ToLower(text), -1)
	set := newKeywordSet(len(tokens))
	for _, t := range tokens {
		if e.keep(t) {
			set.add(t)
		}
	}
	return set
}

func (e *Extractor) keep(token string) bool {
	if len(token) < minKeywordLen {
		return false
	}
	if e.stop.Has(token) {
		return false
	}
	return !IsNumeric(token)
}

// IsNumeric reports whether token is an unsigned integer or decimal such as
// "123" or "45.6". Exponents, signs and hex forms are not numbers here.
func IsNumeric(token string) bool {
	return numeric.MatchString(token)
}
