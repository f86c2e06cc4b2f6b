package editdist

// Distance returns the Levenshtein distance between a and b.
//
// If either word is empty the result is the length of the other. Otherwise
// the classic dynamic-programming table is evaluated one row at a time: row[j]
// holds the distance between the first i characters of a and the first j
// characters of b, and diag carries the top-left cell of the previous row.
// Only the final corner is observable, so a single row suffices.
func Distance(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	if len(ra) == 0 {
		return len(rb)
	}
	if len(rb) == 0 {
		return len(ra)
	}

	// Keep the shorter word along the row.
	if len(rb) > len(ra) {
		ra, rb = rb, ra
	}

	row := make([]int, len(rb)+1)
	for j := range row {
		row[j] = j
	}

	for i := 1; i <= len(ra); i++ {
		diag := row[0]
		row[0] = i
		for j := 1; j <= len(rb); j++ {
			up := row[j]
			if ra[i-1] == rb[j-1] {
				row[j] = diag
			} else {
				row[j] = 1 + min(up, row[j-1], diag) // delete, insert, substitute
			}
			diag = up
		}
	}
	return row[len(rb)]
}

// Within reports whether Distance(a, b) <= k.
//
// It returns early once every cell of the current row exceeds k, since row
// minima never decrease. A negative k is never satisfied.
func Within(a, b string, k int) bool {
	if k < 0 {
		return false
	}
	ra, rb := []rune(a), []rune(b)
	if abs(len(ra)-len(rb)) > k {
		return false
	}
	if len(ra) == 0 || len(rb) == 0 {
		return true // length gap already checked
	}
	if len(rb) > len(ra) {
		ra, rb = rb, ra
	}

	row := make([]int, len(rb)+1)
	for j := range row {
		row[j] = j
	}

	for i := 1; i <= len(ra); i++ {
		diag := row[0]
		row[0] = i
		best := row[0]
		for j := 1; j <= len(rb); j++ {
			up := row[j]
			if ra[i-1] == rb[j-1] {
				row[j] = diag
			} else {
				row[j] = 1 + min(up, row[j-1], diag)
			}
			diag = up
			best = min(best, row[j])
		}
		if best > k {
			return false
		}
	}
	return row[len(rb)] <= k
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
