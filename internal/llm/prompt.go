package llm

import (
	_ "embed"
	"strings"
)

const (
	resumePlaceholder      = "{resume}"
	descriptionPlaceholder = "{description}"
)

//go:embed prompts/evaluate.txt
var evaluateTemplate string

// BuildPrompt fills the evaluation template with the résumé text and the job description.
// Both values are inserted verbatim and never re-scanned for placeholders.
func BuildPrompt(resumeText, jobDescription string) string {
	r := strings.NewReplacer(
		resumePlaceholder, resumeText,
		descriptionPlaceholder, jobDescription,
	)
	return r.Replace(evaluateTemplate)
}
