package ihex

// WordDiff describes a word position where two word lists disagree.
type WordDiff struct {
	// Index is the position of the word in both lists
	Index int

	// A is the word of the first list, nil if the list is shorter
	A *AddressedWord

	// B is the word of the second list, nil if the list is shorter
	B *AddressedWord
}

// DiffWords compares two word lists position by position and returns every
// position where the address or the data differ, or where only one of the
// lists has a word.
//
// Example:
//
//	diffs := ihex.DiffWords(hexImg.WordList(), binImg.WordList())
//	for _, d := range diffs {
//	    fmt.Printf("word %d differs\n", d.Index)
//	}
func DiffWords(a, b []AddressedWord) []WordDiff {
	var diffs []WordDiff

	for i := 0; i < max(len(a), len(b)); i++ {
		var wa, wb *AddressedWord
		if i < len(a) {
			wa = &a[i]
		}
		if i < len(b) {
			wb = &b[i]
		}
		if wa != nil && wb != nil && *wa == *wb {
			continue
		}
		diffs = append(diffs, WordDiff{Index: i, A: wa, B: wb})
	}
	return diffs
}
