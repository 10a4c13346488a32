package evaluations

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"ats-resume/internal/generatedresumes"
	"ats-resume/internal/shared/metrics"
	"ats-resume/internal/shared/telemetry"
	"ats-resume/resume/model"
)

// Evaluation is what a submission shows back to the user.
type Evaluation struct {
	ID                string             `json:"evaluationId"`
	RawResponse       string             `json:"rawResponse"`
	ProfileSummary    string             `json:"profileSummary"`
	JDMatch           string             `json:"jdMatch"`
	MissingKeywords   string             `json:"missingKeywords"`
	YearsOfExperience string             `json:"yearsOfExperience"`
	ResumeText        string             `json:"resumeText,omitempty"`
	Notices           []string           `json:"notices"`
	GeneratedResume   *GeneratedDownload `json:"generatedResume,omitempty"`
}

// GeneratedDownload points at the stored PDF.
type GeneratedDownload struct {
	ID          string    `json:"id"`
	FileName    string    `json:"fileName"`
	PageCount   int       `json:"pageCount"`
	DownloadURL string    `json:"downloadUrl"`
	ExpiresAt   time.Time `json:"expiresAt"`
}

// Service evaluates submissions and stores the generated résumé.
type Service struct {
	Pipeline  *Pipeline
	Generated *generatedresumes.Service
	Metrics   *metrics.Metrics

	now func() time.Time
}

// NewService constructs a Service.
func NewService(pipeline *Pipeline, generated *generatedresumes.Service, m *metrics.Metrics) *Service {
	return &Service{Pipeline: pipeline, Generated: generated, Metrics: m, now: time.Now}
}

// Evaluate runs one submission. The returned Evaluation is filled in as far as
// the pipeline got, so callers can show the raw response and notices on error.
func (s *Service) Evaluate(ctx context.Context, in Input) (Evaluation, error) {
	if len(in.Data) == 0 {
		return Evaluation{}, fmt.Errorf("%w: empty file", ErrInvalidInput)
	}

	start := s.now()
	eval := Evaluation{ID: uuid.NewString()}

	res, err := s.Pipeline.Run(ctx, in)
	eval.RawResponse = res.RawResponse
	eval.Notices = nonNil(res.Notices)
	if err != nil {
		s.finish(eval.ID, outcomeFor(err), start, err)
		return eval, err
	}

	eval.ProfileSummary = res.Details.ProfileSummary
	eval.JDMatch = res.Details.JDMatch
	eval.MissingKeywords = strings.Join(res.Details.MissingKeywords, ", ")
	eval.YearsOfExperience = res.Details.YearsOfExperience
	eval.ResumeText = res.ResumeText

	stored, err := s.Generated.Save(ctx, eval.ID, res.FileName, res.Document.Bytes(), res.Document.PageCount())
	if err != nil {
		err = fmt.Errorf("%w: %v", ErrDocument, err)
		s.finish(eval.ID, metrics.OutcomeDocumentFailed, start, err)
		return eval, err
	}
	eval.GeneratedResume = &GeneratedDownload{
		ID:          stored.ID,
		FileName:    stored.FileName,
		PageCount:   stored.PageCount,
		DownloadURL: generatedresumes.DownloadPath(stored.ID),
		ExpiresAt:   stored.ExpiresAt,
	}

	s.finish(eval.ID, metrics.OutcomeCompleted, start, nil)
	return eval, nil
}

func (s *Service) finish(evaluationID, outcome string, start time.Time, err error) {
	elapsed := s.now().Sub(start)
	s.Metrics.ObserveEvaluation(outcome, elapsed)

	fields := map[string]any{
		"evaluation_id": evaluationID,
		"outcome":       outcome,
		"duration_ms":   elapsed.Milliseconds(),
	}
	if err != nil {
		fields["error"] = err
		telemetry.Error("evaluation.failed", fields)
		return
	}
	telemetry.Info("evaluation.completed", fields)
}

func outcomeFor(err error) string {
	var parseErr *model.ParseError
	switch {
	case errors.Is(err, model.ErrEmptyResult):
		return metrics.OutcomeEmptyResult
	case errors.As(err, &parseErr):
		return metrics.OutcomeParseError
	default:
		return metrics.OutcomeDocumentFailed
	}
}

func nonNil(items []string) []string {
	if items == nil {
		return []string{}
	}
	return items
}
