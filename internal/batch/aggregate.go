package batch

import "sort"

// MaxID returns the highest seat id, or false for an empty batch.
func MaxID(ids []int) (int, bool) {
	if len(ids) == 0 {
		return 0, false
	}
	highest := ids[0]
	for _, id := range ids[1:] {
		if id > highest {
			highest = id
		}
	}
	return highest, true
}

// MinID returns the lowest seat id, or false for an empty batch.
func MinID(ids []int) (int, bool) {
	if len(ids) == 0 {
		return 0, false
	}
	lowest := ids[0]
	for _, id := range ids[1:] {
		if id < lowest {
			lowest = id
		}
	}
	return lowest, true
}

// FreeSeat finds the seat id missing from the batch whose neighbours id-1 and
// id+1 are both present. If several gaps qualify the lowest is returned.
func FreeSeat(ids []int) (int, bool) {
	sorted := append([]int(nil), ids...)
	sort.Ints(sorted)

	for i := 1; i < len(sorted); i++ {
		if sorted[i]-sorted[i-1] == 2 {
			return sorted[i] - 1, true
		}
	}
	return 0, false
}
