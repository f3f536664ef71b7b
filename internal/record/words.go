package record

import "unicode"

// CountWords returns the number of whitespace-delimited tokens across texts.
func CountWords(texts []string) int {
	total := 0
	for _, text := range texts {
		total += countFields(text)
	}
	return total
}

func countFields(s string) int {
	count := 0
	inWord := false
	for _, r := range s {
		if unicode.IsSpace(r) {
			inWord = false
			continue
		}
		if !inWord {
			count++
			inWord = true
		}
	}
	return count
}
