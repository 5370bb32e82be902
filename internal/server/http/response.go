package httpserver

import (
	"github.com/scholarly/paper-check-service/internal/domain"
)

// validationRequest is the JSON request body for checking a submitted paper
// against the reference list.
type validationRequest struct {
	PaperCode string `json:"paper_code" validate:"required,max=64"`
	Title     string `json:"title" validate:"required,max=2000"`
	Authors   string `json:"authors" validate:"required,max=10000"`
}

// Validation response types for JSON serialization.

type validationResponse struct {
	RunID     string              `json:"run_id"`
	PaperCode string              `json:"paper_code"`
	OK        bool                `json:"ok"`
	Title     titleCheckResponse  `json:"title"`
	Authors   authorCheckResponse `json:"authors"`
}

type titleCheckResponse struct {
	Match     bool   `json:"match"`
	Document  string `json:"document"`
	Reference string `json:"reference"`
}

type authorCheckResponse struct {
	Match     bool                 `json:"match"`
	Document  string               `json:"document"`
	Reference string               `json:"reference"`
	Report    []displayRowResponse `json:"report"`
}

type displayRowResponse struct {
	Type          string `json:"type"`
	Indicator     string `json:"indicator"`
	DocumentName  string `json:"document_name"`
	ReferenceName string `json:"reference_name"`
}

// Converter functions

func summaryToResponse(runID, paperCode string, s domain.CheckSummary) validationResponse {
	report := make([]displayRowResponse, len(s.Authors.Report))
	for i, row := range s.Authors.Report {
		report[i] = displayRowResponse{
			Type:          row.Type,
			Indicator:     string(row.Indicator),
			DocumentName:  row.DocumentName,
			ReferenceName: row.ReferenceName,
		}
	}

	return validationResponse{
		RunID:     runID,
		PaperCode: paperCode,
		OK:        s.OK,
		Title: titleCheckResponse{
			Match:     s.Title.Match,
			Document:  s.Title.Document,
			Reference: s.Title.Reference,
		},
		Authors: authorCheckResponse{
			Match:     s.Authors.Match,
			Document:  s.Authors.Document,
			Reference: s.Authors.Reference,
			Report:    report,
		},
	}
}
