package ucd

// Table resolves a codepoint to the value of the first interval containing
// it. The scan is deliberately linear and order-sensitive: script and width
// sources may contain overlapping entries for the same codepoint, and
// "first interval in source-file order wins" is the only tie-break
// consistent with the authoritative data. A sorted binary search would be
// valid only for genuinely disjoint tables and is not worth diverging
// policies over.
type Table struct {
	intervals []Interval
}

// NewTable wraps a parsed interval list. The slice is retained, not copied;
// callers must not reorder it afterwards.
func NewTable(intervals []Interval) *Table {
	return &Table{intervals: intervals}
}

// Resolve returns the value of the first interval containing cp, or
// ok=false if no interval contains it.
func (t *Table) Resolve(cp rune) (value string, ok bool) {
	for i := range t.intervals {
		if cp >= t.intervals[i].Lo && cp <= t.intervals[i].Hi {
			return t.intervals[i].Value, true
		}
	}
	return "", false
}

// Contains reports whether any interval contains cp.
func (t *Table) Contains(cp rune) bool {
	_, ok := t.Resolve(cp)
	return ok
}

// Len returns the number of intervals.
func (t *Table) Len() int {
	return len(t.intervals)
}
