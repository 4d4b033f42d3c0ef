package core

// Clean collapses whitespace in the given columns of every row and returns
// how many cells changed. Rows too short to hold a column are left alone.
func (t *Table) Clean(columns []int) (changed int) {
	for _, row := range t.Rows {
		for _, i := range columns {
			if i >= len(row) {
				continue
			}
			cleaned := CollapseWhitespace(row[i])
			if cleaned != row[i] {
				row[i] = cleaned
				changed++
			}
		}
	}
	return
}

// Dedupe drops every row whose full (column, value) sequence matches an
// earlier row, keeping first-seen order, and returns how many were dropped.
func (t *Table) Dedupe() (removed int) {
	seen := make(map[Fingerprint]struct{}, len(t.Rows))
	kept := t.Rows[:0]
	for _, row := range t.Rows {
		fp := RowFingerprint(t.Header, row)
		if _, exists := seen[fp]; exists {
			removed++
			continue
		}
		seen[fp] = struct{}{}
		kept = append(kept, row)
	}

	// release dropped rows held by the tail of the backing array
	for i := len(kept); i < len(t.Rows); i++ {
		t.Rows[i] = nil
	}
	t.Rows = kept
	return
}
