package shell

import "unicode"

// Tokenize splits text into words on whitespace, honoring single and double
// quotes. The quote character that opened a region is the only one that can
// close it, and quote characters never appear in the output. An unterminated
// quote runs to the end of the input rather than being an error. Empty words
// are never emitted.
func Tokenize(text string) []string {
	var tokens []string
	var current []rune
	inQuotes := false
	var quoteChar rune

	for _, c := range text {
		switch {
		case (c == '"' || c == '\'') && !inQuotes:
			inQuotes = true
			quoteChar = c
		case inQuotes && c == quoteChar:
			inQuotes = false
			quoteChar = 0
		case unicode.IsSpace(c) && !inQuotes:
			if len(current) > 0 {
				tokens = append(tokens, string(current))
				current = current[:0]
			}
		default:
			current = append(current, c)
		}
	}

	if len(current) > 0 {
		tokens = append(tokens, string(current))
	}

	return tokens
}
