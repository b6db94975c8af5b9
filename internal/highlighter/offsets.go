package highlighter

import "unicode/utf8"

// runeOffsets indexes a line by rune. starts[i] is the byte offset of rune i,
// with starts[n] == len(line). runeAt maps every byte offset, including
// len(line), to the index of the rune that contains it.
type runeOffsets struct {
	starts []int
	runeAt []int
}

func indexRunes(line string) runeOffsets {
	n := utf8.RuneCountInString(line)
	idx := runeOffsets{
		starts: make([]int, 0, n+1),
		runeAt: make([]int, len(line)+1),
	}
	ri := 0
	for bi := 0; bi < len(line); {
		_, size := utf8.DecodeRuneInString(line[bi:])
		idx.starts = append(idx.starts, bi)
		for k := 0; k < size; k++ {
			idx.runeAt[bi+k] = ri
		}
		bi += size
		ri++
	}
	idx.starts = append(idx.starts, len(line))
	idx.runeAt[len(line)] = ri
	return idx
}

// count returns the number of runes in the indexed line.
func (o runeOffsets) count() int {
	return len(o.starts) - 1
}
