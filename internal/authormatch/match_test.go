package authormatch

import (
	"testing"

	"github.com/scholarly/paper-check-service/internal/domain"
)

func matchNames(t *testing.T, doc, ref []string) ([]domain.MatchRecord, bool) {
	t.Helper()
	return Match(BuildRecords(doc), BuildRecords(ref))
}

func TestMatch_LooseMatchesAndUnmatchedDocument(t *testing.T) {
	t.Parallel()

	doc := []string{"Y. Z. Gómez Martínez", "T. X. Therou", "A. Tiller"}
	ref := []string{"Y. Gomez Martinez", "T. Therou"}

	report, allMatched := matchNames(t, doc, ref)

	if allMatched {
		t.Error("allMatched = true, want false")
	}
	if len(report) != 3 {
		t.Fatalf("report has %d records, want 3", len(report))
	}

	expected := []domain.MatchRecord{
		{DocumentName: "Y. Z. Gómez Martínez", ReferenceName: "Y. Gomez Martinez", Matched: true, Exact: false},
		{DocumentName: "T. X. Therou", ReferenceName: "T. Therou", Matched: true, Exact: false},
		{DocumentName: "A. Tiller", ReferenceName: "", Matched: false, Exact: false},
	}
	for i, want := range expected {
		if report[i] != want {
			t.Errorf("report[%d] = %+v, want %+v", i, report[i], want)
		}
	}
}

func TestMatch_ExactSingleAuthor(t *testing.T) {
	t.Parallel()

	report, allMatched := matchNames(t, []string{"T. Anderson"}, []string{"T. Anderson"})

	if !allMatched {
		t.Error("allMatched = false, want true")
	}
	if len(report) != 1 {
		t.Fatalf("report has %d records, want 1", len(report))
	}
	want := domain.MatchRecord{DocumentName: "T. Anderson", ReferenceName: "T. Anderson", Matched: true, Exact: true}
	if report[0] != want {
		t.Errorf("report[0] = %+v, want %+v", report[0], want)
	}
}

func TestMatch_EmptyDocumentSide(t *testing.T) {
	t.Parallel()

	report, allMatched := matchNames(t, nil, []string{"A. Smith"})

	if allMatched {
		t.Error("allMatched = true, want false")
	}
	if len(report) != 1 {
		t.Fatalf("report has %d records, want 1", len(report))
	}
	want := domain.MatchRecord{ReferenceName: "A. Smith"}
	if report[0] != want {
		t.Errorf("report[0] = %+v, want %+v", report[0], want)
	}
}

func TestMatch_BothSidesEmpty(t *testing.T) {
	t.Parallel()

	report, allMatched := matchNames(t, nil, nil)

	if !allMatched {
		t.Error("allMatched = false, want true for two empty lists")
	}
	if len(report) != 0 {
		t.Errorf("report has %d records, want 0", len(report))
	}
}

func TestMatch_NormalizationInsertsMissingSpace(t *testing.T) {
	t.Parallel()

	report, allMatched := matchNames(t, []string{"A.Smith"}, []string{"A. Smith"})

	if !allMatched {
		t.Error("allMatched = false, want true")
	}
	if len(report) != 1 || !report[0].Exact {
		t.Errorf("report = %+v, want one exact pair", report)
	}
	if report[0].DocumentName != "A.Smith" {
		t.Errorf("DocumentName = %q, want verbatim original %q", report[0].DocumentName, "A.Smith")
	}
}

func TestMatch_IdenticalListsAllExact(t *testing.T) {
	t.Parallel()

	names := []string{"T. Anderson", "Y. Z. Gómez Martínez", "A. Tiller"}
	report, allMatched := matchNames(t, names, names)

	if !allMatched {
		t.Error("allMatched = false, want true")
	}
	if len(report) != len(names) {
		t.Fatalf("report has %d records, want %d", len(report), len(names))
	}
	for i, rec := range report {
		if !rec.Exact || !rec.Matched {
			t.Errorf("report[%d] = %+v, want exact pair", i, rec)
		}
		// Round 1 walks the reference list in order, so identical lists pair
		// positionally.
		if rec.ReferenceName != names[i] {
			t.Errorf("report[%d].ReferenceName = %q, want %q", i, rec.ReferenceName, names[i])
		}
	}
}

func TestMatch_DuplicateNamesConsumeOnce(t *testing.T) {
	t.Parallel()

	report, allMatched := matchNames(t,
		[]string{"A. Smith", "A. Smith"},
		[]string{"A. Smith"},
	)

	if allMatched {
		t.Error("allMatched = true, want false")
	}
	if len(report) != 2 {
		t.Fatalf("report has %d records, want 2", len(report))
	}
	if !report[0].Matched || !report[0].Exact {
		t.Errorf("report[0] = %+v, want exact pair", report[0])
	}
	if report[1].Matched || report[1].DocumentName != "A. Smith" || report[1].ReferenceName != "" {
		t.Errorf("report[1] = %+v, want unmatched document entry", report[1])
	}
}

func TestMatch_ExactPairsPrecedeLoosePairs(t *testing.T) {
	t.Parallel()

	// The first reference name only loose-matches, the second matches
	// exactly. Exact pairs must still come first in the report.
	doc := []string{"T. X. Therou", "A. Smith"}
	ref := []string{"T. Therou", "A. Smith"}

	report, allMatched := matchNames(t, doc, ref)

	if !allMatched {
		t.Error("allMatched = false, want true")
	}
	if len(report) != 2 {
		t.Fatalf("report has %d records, want 2", len(report))
	}
	if !report[0].Exact || report[0].ReferenceName != "A. Smith" {
		t.Errorf("report[0] = %+v, want the exact pair first", report[0])
	}
	if report[1].Exact || report[1].ReferenceName != "T. Therou" {
		t.Errorf("report[1] = %+v, want the loose pair second", report[1])
	}
}

func TestMatch_UnmatchedOrderingReferenceThenDocument(t *testing.T) {
	t.Parallel()

	doc := []string{"D. One", "D. Two"}
	ref := []string{"R. One", "R. Two"}

	report, allMatched := matchNames(t, doc, ref)

	if allMatched {
		t.Error("allMatched = true, want false")
	}
	if len(report) != 4 {
		t.Fatalf("report has %d records, want 4", len(report))
	}

	wantRefs := []string{"R. One", "R. Two"}
	for i, want := range wantRefs {
		if report[i].ReferenceName != want || report[i].DocumentName != "" || report[i].Matched {
			t.Errorf("report[%d] = %+v, want unmatched reference %q", i, report[i], want)
		}
	}
	wantDocs := []string{"D. One", "D. Two"}
	for i, want := range wantDocs {
		if report[i+2].DocumentName != want || report[i+2].ReferenceName != "" || report[i+2].Matched {
			t.Errorf("report[%d] = %+v, want unmatched document %q", i+2, report[i+2], want)
		}
	}
}

func TestMatch_FirstRemainingOccurrenceWins(t *testing.T) {
	t.Parallel()

	// Both document names loose-match the single reference name; the first
	// in list order must win.
	doc := []string{"J. P. Smith", "J. Q. Smith"}
	ref := []string{"J. Smith"}

	report, _ := matchNames(t, doc, ref)

	if len(report) != 2 {
		t.Fatalf("report has %d records, want 2", len(report))
	}
	if report[0].DocumentName != "J. P. Smith" || !report[0].Matched {
		t.Errorf("report[0] = %+v, want first document occurrence paired", report[0])
	}
	if report[1].DocumentName != "J. Q. Smith" || report[1].Matched {
		t.Errorf("report[1] = %+v, want second document occurrence unmatched", report[1])
	}
}

func TestMatch_Totality(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		doc  []string
		ref  []string
	}{
		{"disjoint", []string{"A. One", "B. Two"}, []string{"C. Three"}},
		{"overlapping", []string{"A. Smith", "B. Jones", "C. Brown"}, []string{"B. Jones", "D. Green"}},
		{"duplicates everywhere", []string{"A. Smith", "A. Smith", "A. Smith"}, []string{"A. Smith", "A. Smith"}},
		{"empty reference", []string{"A. Smith"}, nil},
		{"garbage input", []string{"***", "--", ". . ."}, []string{"???"}},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			report, _ := matchNames(t, tc.doc, tc.ref)

			pairs := 0
			for _, rec := range report {
				if rec.Matched {
					pairs++
				}
				if rec.Exact && !rec.Matched {
					t.Errorf("record %+v has Exact without Matched", rec)
				}
			}
			if want := len(tc.doc) + len(tc.ref) - pairs; len(report) != want {
				t.Errorf("report has %d records, want %d", len(report), want)
			}

			docSeen := 0
			refSeen := 0
			for _, rec := range report {
				if rec.DocumentName != "" {
					docSeen++
				}
				if rec.ReferenceName != "" {
					refSeen++
				}
			}
			if docSeen != len(tc.doc) {
				t.Errorf("document names appear %d times in report, want %d", docSeen, len(tc.doc))
			}
			if refSeen != len(tc.ref) {
				t.Errorf("reference names appear %d times in report, want %d", refSeen, len(tc.ref))
			}
		})
	}
}
