package keywords

import "unicode/utf8"

const (
	posNoun = "名詞"

	posDetailGeneral    = "一般"
	posDetailProperNoun = "固有名詞"
	posDetailSahen      = "サ変接続"

	// minKeywordRunes is exclusive: a keyword needs more runes than this.
	minKeywordRunes = 1
)

var keywordPOSDetails = map[string]struct{}{
	posDetailGeneral:    {},
	posDetailProperNoun: {},
	posDetailSahen:      {},
}

// IsKeyword reports whether tok is a general, proper or sa-connection noun
// longer than one character.
func IsKeyword(tok Token) bool {
	if tok.POS != posNoun {
		return false
	}
	if _, ok := keywordPOSDetails[tok.POSDetail]; !ok {
		return false
	}
	return utf8.RuneCountInString(tok.Surface) > minKeywordRunes
}

// FilterKeywords keeps the keyword tokens and returns their distinct surfaces
// in first-occurrence order. The result is never nil.
func FilterKeywords(tokens []Token) []string {
	keywords := make([]string, 0, len(tokens))
	seen := make(map[string]struct{}, len(tokens))
	for _, tok := range tokens {
		if !IsKeyword(tok) {
			continue
		}
		if _, ok := seen[tok.Surface]; ok {
			continue
		}
		seen[tok.Surface] = struct{}{}
		keywords = append(keywords, tok.Surface)
	}

	return keywords
}
