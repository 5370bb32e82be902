package authormatch

// Record bundles a raw author name with every comparison form derived from
// it. Records are built once per reconciliation call and never mutated.
type Record struct {
	// Original is the verbatim input string, kept for display.
	Original string
	// Normalized is the punctuation-and-whitespace-canonicalized form.
	Normalized string
	// FirstLast is the first-initial+surname reduction of Normalized.
	FirstLast string
	// Transliterated is FirstLast with accented characters mapped to ASCII.
	Transliterated string
}

// BuildRecord derives all comparison forms for a single raw name.
func BuildRecord(name string) Record {
	normalized := Normalize(name)
	firstLast := FirstLast(normalized)
	return Record{
		Original:       name,
		Normalized:     normalized,
		FirstLast:      firstLast,
		Transliterated: Transliterate(firstLast),
	}
}

// BuildRecords builds one Record per input name, preserving input order.
// Duplicates are preserved, not deduplicated: each occurrence can consume
// at most one counterpart during matching.
func BuildRecords(names []string) []Record {
	records := make([]Record, len(names))
	for i, name := range names {
		records[i] = BuildRecord(name)
	}
	return records
}
