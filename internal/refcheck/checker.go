// Package refcheck verifies a submitted paper's title and author list
// against its entry in the authoritative reference registry.
package refcheck

import (
	"context"
	"regexp"
	"strings"

	"github.com/rs/zerolog"

	"github.com/scholarly/paper-check-service/internal/authormatch"
	"github.com/scholarly/paper-check-service/internal/domain"
)

var multiSpace = regexp.MustCompile(" +")

// notFoundPlaceholder is shown in place of registry values when debug mode
// downgrades a lookup miss to a degraded report.
const notFoundPlaceholder = "No matching paper found in the reference list"

// RowFinder resolves a reference row by paper code.
type RowFinder interface {
	Lookup(code string) (domain.ReferenceRow, bool)
}

// Checker runs the reference check for one submission at a time. It holds no
// per-call state, so a single Checker is safe for concurrent use.
type Checker struct {
	registry RowFinder
	debug    bool
	logger   zerolog.Logger
}

// NewChecker creates a Checker backed by the given registry. With debug set,
// a missing reference row produces a degraded placeholder summary instead of
// an error.
func NewChecker(registry RowFinder, debug bool, logger zerolog.Logger) *Checker {
	return &Checker{
		registry: registry,
		debug:    debug,
		logger:   logger.With().Str("component", "refcheck").Logger(),
	}
}

// Check compares the submitted title and raw author text against the
// registry row selected by exact equality with paperCode. A lookup miss
// returns a PaperNotFoundError unless debug mode downgrades it. Title
// comparison is case-insensitive with space runs collapsed on the registry
// side; author comparison preserves case and runs the two-phase matcher,
// which is total and never fails.
func (c *Checker) Check(ctx context.Context, paperCode, title, authors string) (domain.CheckSummary, error) {
	row, found := c.registry.Lookup(paperCode)
	if !found {
		if !c.debug {
			return domain.CheckSummary{}, domain.NewPaperNotFoundError(paperCode)
		}
		c.logger.Warn().Str("paper", paperCode).Msg("paper not in registry, returning placeholder summary")
		return domain.CheckSummary{
			Title: domain.TitleCheck{
				Document:  strings.ToUpper(title),
				Reference: notFoundPlaceholder,
			},
			Authors: domain.AuthorCheck{
				Document:  authors,
				Reference: notFoundPlaceholder,
				Report:    []domain.DisplayRow{},
			},
		}, nil
	}

	docTitle := strings.ToUpper(title)
	refTitle := multiSpace.ReplaceAllString(strings.ToUpper(row.Title), " ")
	titleMatch := docTitle == refTitle

	docRecords := authormatch.BuildRecords(authormatch.SplitAuthors(authors))
	refRecords := authormatch.BuildRecords(authormatch.SplitAuthors(row.Authors))
	report, allMatched := authormatch.Match(docRecords, refRecords)

	c.logger.Debug().
		Str("paper", paperCode).
		Bool("title_match", titleMatch).
		Bool("authors_match", allMatched).
		Int("document_authors", len(docRecords)).
		Int("reference_authors", len(refRecords)).
		Msg("reference check complete")

	return domain.CheckSummary{
		OK: titleMatch && allMatched,
		Title: domain.TitleCheck{
			Match:     titleMatch,
			Document:  docTitle,
			Reference: refTitle,
		},
		Authors: domain.AuthorCheck{
			Match:     allMatched,
			Document:  authors,
			Reference: row.Authors,
			Report:    authormatch.AssembleReport(report),
		},
	}, nil
}
