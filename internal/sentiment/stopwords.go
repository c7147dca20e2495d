package sentiment

import (
	"fmt"
	"strings"

	"github.com/bbalet/stopwords"
)

const (
	StopwordsNLTK     = "nltk"
	StopwordsExtended = "extended"
)

// StopwordFilter reports whether a lowercase token is a stop word.
type StopwordFilter interface {
	IsStopword(token string) bool
}

// NewStopwordFilter returns the filter registered under kind.
func NewStopwordFilter(kind string) (StopwordFilter, error) {
	switch kind {
	case StopwordsNLTK, "":
		return nltkStopwords{}, nil
	case StopwordsExtended:
		return extendedStopwords{}, nil
	default:
		return nil, fmt.Errorf("unknown stop-word set %q (expected %s|%s)", kind, StopwordsNLTK, StopwordsExtended)
	}
}

type nltkStopwords struct{}

func (nltkStopwords) IsStopword(token string) bool {
	_, ok := englishStopwords[token]
	return ok
}

// extendedStopwords adds the bbalet English list on top of the NLTK set.
type extendedStopwords struct{}

func (extendedStopwords) IsStopword(token string) bool {
	if _, ok := englishStopwords[token]; ok {
		return true
	}
	return strings.TrimSpace(stopwords.CleanString(token, "en", false)) == ""
}

// englishStopwords is the NLTK English stop-word corpus.
var englishStopwords = toSet(
	"i", "me", "my", "myself", "we", "our", "ours", "ourselves", "you", "you're", "you've",
	"you'll", "you'd", "your", "yours", "yourself", "yourselves", "he", "him", "his",
	"himself", "she", "she's", "her", "hers", "herself", "it", "it's", "its", "itself",
	"they", "them", "their", "theirs", "themselves", "what", "which", "who", "whom", "this",
	"that", "that'll", "these", "those", "am", "is", "are", "was", "were", "be", "been",
	"being", "have", "has", "had", "having", "do", "does", "did", "doing", "a", "an", "the",
	"and", "but", "if", "or", "because", "as", "until", "while", "of", "at", "by", "for",
	"with", "about", "against", "between", "into", "through", "during", "before", "after",
	"above", "below", "to", "from", "up", "down", "in", "out", "on", "off", "over", "under",
	"again", "further", "then", "once", "here", "there", "when", "where", "why", "how", "all",
	"any", "both", "each", "few", "more", "most", "other", "some", "such", "no", "nor", "not",
	"only", "own", "same", "so", "than", "too", "very", "s", "t", "can", "will", "just", "don",
	"don't", "should", "should've", "now", "d", "ll", "m", "o", "re", "ve", "y", "ain",
	"aren", "aren't", "couldn", "couldn't", "didn", "didn't", "doesn", "doesn't", "hadn",
	"hadn't", "hasn", "hasn't", "haven", "haven't", "isn", "isn't", "ma", "mightn",
	"mightn't", "mustn", "mustn't", "needn", "needn't", "shan", "shan't", "shouldn",
	"shouldn't", "wasn", "wasn't", "weren", "weren't", "won", "won't", "wouldn", "wouldn't",
)

func toSet(words ...string) map[string]struct{} {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return set
}
