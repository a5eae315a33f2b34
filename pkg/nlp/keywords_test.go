package nlp

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractKeywords(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{"empty", "", []string{}},
		{"stopwords only", "and the for with you", []string{}},
		{"short words", "a an to is ab", []string{}},
		{"numbers dropped", "2024 123.45 room42", []string{"room42"}},
		{"punctuation only", "... !!! ,,, --- ___", []string{}},
		{"case and punctuation", "JavaScript, Node.js!", []string{"javascript", "node"}},
		{"underscore separates", "snake_case_name", []string{"snake", "case", "name"}},
		{"first seen order", "react python react java python", []string{"react", "python", "java"}},
		{"alphanumeric kept", "k8s 3d s3 ec2", []string{"k8s", "ec2"}},
		{"whitespace runs", "  go\t\tdocker\n\nkubernetes  ", []string{"docker", "kubernetes"}},
		{"non-ascii separates", "café naïve résumé", []string{"caf", "sum"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExtractKeywords(tt.text)
			assert.Equal(t, tt.want, got.Keywords())
			assert.Equal(t, len(tt.want), got.Len())
		})
	}
}

func TestExtractKeywordsDeterministic(t *testing.T) {
	text := "Senior Go engineer: PostgreSQL, Kafka, Kubernetes; 5+ years. Go, Kafka!"
	first := ExtractKeywords(text)
	second := ExtractKeywords(text)
	assert.Equal(t, first.Keywords(), second.Keywords())
}

func TestExtractKeywordsInvariants(t *testing.T) {
	text := "The QUICK brown_fox jumps over 42 lazy dogs, 3.14 times; Ünïcødé ✓ 日本語 and k8s."
	set := ExtractKeywords(text)
	require.NotZero(t, set.Len())
	for _, k := range set.Keywords() {
		assert.Equal(t, strings.ToLower(k), k)
		assert.GreaterOrEqual(t, len(k), 3, k)
		assert.False(t, IsNumeric(k), k)
		assert.False(t, NewStopwords().Has(k), k)
	}
}

func TestKeywordsReturnsCopy(t *testing.T) {
	set := NewKeywordSet("python", "java")
	kw := set.Keywords()
	kw[0] = "mutated"
	assert.Equal(t, []string{"python", "java"}, set.Keywords())
	assert.True(t, set.Contains("python"))
	assert.False(t, set.Contains("mutated"))
}

func TestNewKeywordSetDeduplicates(t *testing.T) {
	set := NewKeywordSet("go", "rust", "go")
	assert.Equal(t, []string{"go", "rust"}, set.Keywords())
}

func TestZeroKeywordSet(t *testing.T) {
	var set KeywordSet
	assert.Zero(t, set.Len())
	assert.False(t, set.Contains("anything"))
	assert.Empty(t, set.Keywords())
}

func TestIsNumeric(t *testing.T) {
	tests := []struct {
		token string
		want  bool
	}{
		{"123", true},
		{"0", true},
		{"45.6", true},
		{"45.", false},
		{".5", false},
		{"1e10", false},
		{"-5", false},
		{"0x1f", false},
		{"123abc", false},
		{"k8s", false},
		{"", false},
	}
	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			assert.Equal(t, tt.want, IsNumeric(tt.token))
		})
	}
}

func TestExtractorExtraStopwords(t *testing.T) {
	e := NewExtractor(NewStopwords(" Team ", "", "WORK"))
	got := e.Extract("Great team work with Golang")
	assert.Equal(t, []string{"great", "golang"}, got.Keywords())
}

func TestNewStopwordsDefaults(t *testing.T) {
	s := NewStopwords()
	for _, w := range []string{"and", "the", "for", "with", "you", "that", "this", "from", "have", "are", "but"} {
		assert.True(t, s.Has(w), w)
	}
	assert.Equal(t, 11, s.Len())
	assert.False(t, s.Has("python"))
}

func TestExtractLargeInput(t *testing.T) {
	text := strings.Repeat("golang kubernetes postgres 2024 and ", 20000)
	got := ExtractKeywords(text)
	assert.Equal(t, []string{"golang", "kubernetes", "postgres"}, got.Keywords())
}
