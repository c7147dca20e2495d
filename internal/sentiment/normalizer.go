package sentiment

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gopkg.in/neurosnap/sentences.v1"
)

const (
	minTokenLength   = 3
	asciiPunctuation = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"
)

var (
	urlPattern   = regexp.MustCompile(`http\S+`)
	digitPattern = regexp.MustCompile(`\p{Nd}+`)
)

// Normalizer reduces review text to lowercase content tokens joined by single spaces.
// Safe for concurrent use.
type Normalizer struct {
	stopwords StopwordFilter
	tokenizer *sentences.DefaultWordTokenizer
}

// NewNormalizer builds a normalizer. A nil filter selects the NLTK English set.
func NewNormalizer(filter StopwordFilter) *Normalizer {
	if filter == nil {
		filter = nltkStopwords{}
	}
	return &Normalizer{
		stopwords: filter,
		tokenizer: sentences.NewWordTokenizer(sentences.NewPunctStrings()),
	}
}

// Normalize lowercases text, strips URLs, digits and punctuation, tokenizes, and drops
// stop words and tokens shorter than three characters.
func (n *Normalizer) Normalize(text string) string {
	text = cases.Lower(language.English).String(text)
	text = urlPattern.ReplaceAllString(text, "")
	text = digitPattern.ReplaceAllString(text, "")
	text = stripPunctuation(text)

	kept := make([]string, 0, 16)
	for _, token := range n.tokenize(text) {
		if utf8.RuneCountInString(token) < minTokenLength || n.stopwords.IsStopword(token) {
			continue
		}
		kept = append(kept, token)
	}
	return strings.Join(kept, " ")
}

func (n *Normalizer) tokenize(text string) []string {
	// The tokenizer only closes the final word on a trailing byte, so pad with a space.
	toks := n.tokenizer.Tokenize(text+" ", false)
	words := make([]string, 0, len(toks))
	for _, tok := range toks {
		words = append(words, strings.Fields(tok.Tok)...)
	}
	return words
}

// ASCII punctuation is deleted in place so "don't" stays one word. Any other
// punctuation, symbol or number rune separates words.
func stripPunctuation(text string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r < utf8.RuneSelf && strings.ContainsRune(asciiPunctuation, r):
			return -1
		case unicode.IsPunct(r) || unicode.IsSymbol(r) || unicode.IsNumber(r):
			return ' '
		}
		return r
	}, text)
}
