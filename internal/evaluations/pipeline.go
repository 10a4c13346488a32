package evaluations

import (
	"context"
	"fmt"
	"strings"

	"ats-resume/internal/extract"
	"ats-resume/internal/llm"
	"ats-resume/internal/shared/telemetry"
	"ats-resume/internal/shared/util"
	"ats-resume/resume/document"
	"ats-resume/resume/model"
	"ats-resume/resume/render"
)

const (
	generatedSuffix  = "_generated_resume.pdf"
	unnamedCandidate = "Not_specified"
	extractionNotice = "Could not extract text from %s: %v"
)

// Input is one submission: a job description and an uploaded résumé.
type Input struct {
	JobDescription string
	FileName       string
	MimeType       string
	Data           []byte
}

// Result carries everything a submission produced. On error, RawResponse and
// Notices are still filled in as far as the pipeline got.
type Result struct {
	RawResponse string
	Record      model.ResumeRecord
	Details     model.Details
	ResumeText  string
	Document    *document.Document
	FileName    string
	Notices     []string
}

// Pipeline runs extraction, evaluation, parsing, rendering and PDF layout.
type Pipeline struct {
	Evaluator *llm.Evaluator
	Builder   *document.Builder
}

// NewPipeline constructs a Pipeline.
func NewPipeline(evaluator *llm.Evaluator, builder *document.Builder) *Pipeline {
	return &Pipeline{Evaluator: evaluator, Builder: builder}
}

// Run processes one submission. It returns model.ErrEmptyResult when the model
// never answered, a *model.ParseError when the answer was not a résumé record,
// and ErrDocument when the PDF could not be laid out.
func (p *Pipeline) Run(ctx context.Context, in Input) (Result, error) {
	var res Result

	text, err := extract.ExtractTextFromBytes(ctx, in.Data, in.MimeType, in.FileName)
	if err != nil {
		telemetry.Warn("evaluation.extract_failed", map[string]any{
			"file_name": in.FileName,
			"error":     err,
		})
		res.Notices = append(res.Notices, fmt.Sprintf(extractionNotice, in.FileName, err))
		text = ""
	}

	prompt := llm.BuildPrompt(text, in.JobDescription)
	res.RawResponse = p.Evaluator.Evaluate(ctx, prompt, func(attempt int, err error) {
		res.Notices = append(res.Notices, llm.AttemptMessage(attempt, err))
	})

	record, err := model.Parse(res.RawResponse)
	if err != nil {
		return res, err
	}
	res.Record = record
	res.Details = record.Details()
	res.ResumeText = render.Text(res.Details)
	res.FileName = OutputFileName(record.CandidateName())

	doc, err := p.Builder.Build(res.ResumeText)
	if err != nil {
		return res, fmt.Errorf("%w: %v", ErrDocument, err)
	}
	res.Document = doc
	return res, nil
}

// OutputFileName names the generated PDF after the candidate.
// Names that are empty or unsafe as a file name fall back to Not_specified.
func OutputFileName(candidateName string) string {
	name := strings.TrimSpace(candidateName)
	if name == "" {
		return unnamedCandidate + generatedSuffix
	}
	safe, err := util.SanitizeFileName(name)
	if err != nil {
		return unnamedCandidate + generatedSuffix
	}
	return safe + generatedSuffix
}
