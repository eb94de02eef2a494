package ui

import (
	"unicode/utf8"

	"github.com/sahilm/fuzzy"
)

// matchedRunes returns the rune positions in text that line up with query
// as a subsequence. Entries admitted by similarity alone, without such an
// alignment, get no highlight.
func matchedRunes(query, text string) []int {
	if query == "" || text == "" {
		return nil
	}
	matches := fuzzy.Find(query, []string{text})
	if len(matches) == 0 {
		return nil
	}
	return byteToRuneIndexes(text, matches[0].MatchedIndexes)
}

func byteToRuneIndexes(text string, offsets []int) []int {
	if len(offsets) == 0 {
		return nil
	}
	out := make([]int, 0, len(offsets))
	next := 0
	runeIdx := 0
	for byteIdx := range text {
		for next < len(offsets) && offsets[next] < byteIdx {
			next++
		}
		if next >= len(offsets) {
			break
		}
		if offsets[next] == byteIdx {
			out = append(out, runeIdx)
			next++
		}
		runeIdx++
	}
	return out
}

func limitIndexes(indexes []int, n int) []int {
	out := indexes[:0:0]
	for _, i := range indexes {
		if i < n {
			out = append(out, i)
		}
	}
	return out
}

func runeCount(s string) int {
	return utf8.RuneCountInString(s)
}
