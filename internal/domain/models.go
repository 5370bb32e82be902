// Package domain provides domain models and business logic for the paper check service.
package domain

// Indicator is the tri-state display state for a reconciled author row.
type Indicator string

const (
	// IndicatorExact marks a pair matched on full normalized equality (green).
	IndicatorExact Indicator = "green"
	// IndicatorLoose marks a pair matched only after reduction or
	// transliteration (amber).
	IndicatorLoose Indicator = "amber"
	// IndicatorNone marks a name with no counterpart on the other side (red).
	IndicatorNone Indicator = "red"
)

// MatchRecord is one entry of the author reconciliation report: either a
// reconciled document/reference pair or a one-sided unmatched name.
type MatchRecord struct {
	// DocumentName is the original document-side string, empty when the
	// name was only present on the reference side.
	DocumentName string
	// ReferenceName is the original reference-side string, empty when the
	// name was only present on the document side.
	ReferenceName string
	// Matched reports whether a correspondence was found in either round.
	Matched bool
	// Exact reports whether the correspondence was found in round 1
	// (full normalized equality). Exact implies Matched.
	Exact bool
}

// DisplayRow is the display-ready projection of a MatchRecord for the
// report renderer.
type DisplayRow struct {
	Type          string
	Indicator     Indicator
	DocumentName  string
	ReferenceName string
}

// ReferenceRow is one paper entry from the authoritative reference registry.
type ReferenceRow struct {
	// Paper is the paper code, matched against the submitted filename stem.
	Paper string
	// Title is the paper title as recorded in the registry.
	Title string
	// Authors is the raw comma-delimited author list from the registry.
	Authors string
}

// TitleCheck is the result of comparing the submitted title against the
// reference title.
type TitleCheck struct {
	Match    bool
	Document string
	// Reference is the registry title, uppercased with space runs collapsed,
	// or placeholder text when the paper was not found in debug mode.
	Reference string
}

// AuthorCheck is the result of reconciling the two author lists.
type AuthorCheck struct {
	// Match is true iff every name on both sides was reconciled.
	Match    bool
	Document string
	// Reference is the raw registry author text, or placeholder text when
	// the paper was not found in debug mode.
	Reference string
	Report    []DisplayRow
}

// CheckSummary is the full reference check result for one submission.
type CheckSummary struct {
	// OK is true iff both the title and the author list match.
	OK      bool
	Title   TitleCheck
	Authors AuthorCheck
}
