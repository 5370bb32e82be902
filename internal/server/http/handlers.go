package httpserver

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/scholarly/paper-check-service/internal/domain"
	"github.com/scholarly/paper-check-service/internal/observability"
)

// maxRequestBodySize limits request bodies to 1 MB.
const maxRequestBodySize = 1 << 20

var validate = validator.New(validator.WithRequiredStructEnabled())

// createValidation handles POST /api/v1/validations.
// It checks a submitted paper's title and author list against the
// authoritative reference registry and returns the full check report.
func (s *Server) createValidation(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()
	body, err := io.ReadAll(io.LimitReader(r.Body, maxRequestBodySize))
	if err != nil {
		writeError(w, http.StatusBadRequest, "failed to read request body")
		return
	}

	var req validationRequest
	if err := json.Unmarshal(body, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON request body")
		return
	}

	if err := validate.Struct(req); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			field := verrs[0]
			writeError(w, http.StatusBadRequest, fmt.Sprintf("invalid request: field %q failed %q constraint", field.Field(), field.Tag()))
			return
		}
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	runID := uuid.New().String()
	ctx := observability.WithRunID(r.Context(), runID)
	ctx = observability.WithPaperCode(ctx, req.PaperCode)
	logger := observability.WithValidationContext(s.logger, runID, req.PaperCode)

	start := time.Now()
	summary, err := s.checker.Check(ctx, req.PaperCode, req.Title, req.Authors)
	if err != nil {
		var notFound *domain.PaperNotFoundError
		switch {
		case errors.As(err, &notFound):
			if s.metrics != nil {
				s.metrics.RecordLookupMiss()
			}
			logger.Warn().Str("paper", notFound.Paper).Msg("paper not found in reference registry")
			writeError(w, http.StatusNotFound,
				fmt.Sprintf("paper %q not found in the reference list; check that the file name matches the paper code", notFound.Paper))
			return
		case errors.Is(err, domain.ErrReferenceUnavailable):
			logger.Error().Err(err).Msg("reference registry unavailable")
			writeError(w, http.StatusServiceUnavailable, "reference list is unavailable")
			return
		default:
			logger.Error().Err(err).Msg("validation failed")
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}
	}

	if s.metrics != nil {
		s.metrics.RecordValidation(summary.OK, time.Since(start).Seconds())
		exact, loose, unmatched := countRows(summary.Authors.Report)
		s.metrics.RecordAuthorRows(exact, loose, unmatched)
	}

	logger.Info().
		Bool("ok", summary.OK).
		Bool("title_match", summary.Title.Match).
		Bool("authors_match", summary.Authors.Match).
		Int("report_rows", len(summary.Authors.Report)).
		Msg("validation completed")

	writeJSON(w, http.StatusOK, summaryToResponse(runID, req.PaperCode, summary))
}

// countRows tallies report rows per indicator.
func countRows(rows []domain.DisplayRow) (exact, loose, unmatched int) {
	for _, row := range rows {
		switch row.Indicator {
		case domain.IndicatorExact:
			exact++
		case domain.IndicatorLoose:
			loose++
		default:
			unmatched++
		}
	}
	return exact, loose, unmatched
}

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, statusCode int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		// Best-effort; headers already sent.
		_ = err
	}
}

// writeError writes a JSON error response.
func writeError(w http.ResponseWriter, statusCode int, message string) {
	writeJSON(w, statusCode, map[string]string{
		"error": message,
	})
}
