package authormatch

import (
	"github.com/scholarly/paper-check-service/internal/domain"
)

// Match reconciles the document-side author records against the
// reference-side records and returns the ordered match report plus an
// aggregate flag that is true iff every name on both sides was paired.
//
// Round 1 walks the reference list in order and pairs each record with the
// first unconsumed document record whose Normalized form is equal. Round 2
// walks the leftover reference records, again in order, and pairs each with
// the first unconsumed document record whose FirstLast or Transliterated
// form is equal. Names never pair twice: consumption is tracked with marker
// arrays over the immutable inputs, which preserves the first-remaining-
// occurrence tie-break without mutating either list.
//
// The report lists exact pairs in reference order, then loose pairs in
// discovery order, then unmatched reference names, then unmatched document
// names, both in their original relative order. Matching is total: it never
// fails, and every input name appears in exactly one record.
//
// Tie-breaking rides on input list order. If two document names are equally
// loose-matchable to one reference name, the first in list order wins, which
// can produce surprising pairings for near-duplicate names. Changing that
// would flip pass/fail outcomes for already-validated papers, so it stays.
func Match(doc, ref []Record) ([]domain.MatchRecord, bool) {
	docUsed := make([]bool, len(doc))
	refUsed := make([]bool, len(ref))
	report := make([]domain.MatchRecord, 0, len(doc)+len(ref))

	// Round 1: exact match on the normalized form.
	var leftover []int
	for i := range ref {
		matched := false
		for j := range doc {
			if docUsed[j] {
				continue
			}
			if doc[j].Normalized == ref[i].Normalized {
				docUsed[j] = true
				refUsed[i] = true
				report = append(report, domain.MatchRecord{
					DocumentName:  doc[j].Original,
					ReferenceName: ref[i].Original,
					Matched:       true,
					Exact:         true,
				})
				matched = true
				break
			}
		}
		if !matched {
			leftover = append(leftover, i)
		}
	}

	// Round 2: loose match on the reduced or transliterated form. Either
	// equality alone suffices.
	for _, i := range leftover {
		for j := range doc {
			if docUsed[j] {
				continue
			}
			if doc[j].FirstLast == ref[i].FirstLast ||
				doc[j].Transliterated == ref[i].Transliterated {
				docUsed[j] = true
				refUsed[i] = true
				report = append(report, domain.MatchRecord{
					DocumentName:  doc[j].Original,
					ReferenceName: ref[i].Original,
					Matched:       true,
					Exact:         false,
				})
				break
			}
		}
	}

	allMatched := true
	for i := range ref {
		if !refUsed[i] {
			allMatched = false
			report = append(report, domain.MatchRecord{ReferenceName: ref[i].Original})
		}
	}
	for j := range doc {
		if !docUsed[j] {
			allMatched = false
			report = append(report, domain.MatchRecord{DocumentName: doc[j].Original})
		}
	}

	return report, allMatched
}
