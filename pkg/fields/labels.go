package fields

import "strings"

// TitleCase converts a snake_case identifier into a human-friendly label:
// each segment gets an upper-case initial and a lower-cased remainder. It is
// total over any identifier, including empty strings and consecutive
// underscores.
func TitleCase(name string) string {
	if name == "" {
		return ""
	}

	var segments []string
	for _, word := range strings.Split(name, "_") {
		if word == "" {
			continue
		}
		segments = append(segments, titleWord(word))
	}
	return strings.Join(segments, " ")
}

func titleWord(word string) string {
	lower := strings.ToLower(word)
	return strings.ToUpper(lower[:1]) + lower[1:]
}
