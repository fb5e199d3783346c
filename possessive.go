package solrq

import "strings"

func isPossessiveCandidate(value string) bool {
	return strings.HasSuffix(value, "s") || strings.Contains(value, "s ")
}

// possessive rewrites each space separated word ending in "s" to end in "'s" instead.
// Trailing empty words are dropped, and nothing is written for empty words until the first real one,
// so " dogs " becomes "dog's".
func possessive(value string) string {
	words := strings.Split(value, " ")
	for len(words) > 0 && words[len(words)-1] == "" {
		words = words[:len(words)-1]
	}

	sb := strings.Builder{}
	for _, word := range words {
		if sb.Len() > 0 {
			sb.WriteRune(space)
		}
		if strings.HasSuffix(word, "s") {
			sb.WriteString(word[:len(word)-1])
			sb.WriteString("'s")
		} else {
			sb.WriteString(word)
		}
	}

	return sb.String()
}
