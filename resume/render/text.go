package render

import (
	"fmt"
	"strings"

	"ats-resume/resume/model"
)

// Section headers, in the order they appear in the rendered text.
const (
	HeaderPersonalInformation = "Personal Information:"
	HeaderProfessionalSummary = "Professional Summary:"
	HeaderSkills              = "Skills:"
	HeaderWorkExperience      = "Work Experience:"
	HeaderEducation           = "Education:"
)

// SectionHeaders lists every header Text emits.
var SectionHeaders = []string{
	HeaderPersonalInformation,
	HeaderProfessionalSummary,
	HeaderSkills,
	HeaderWorkExperience,
	HeaderEducation,
}

const (
	indent             = "    "
	continuationIndent = "   "
)

// Text lays out résumé details as plain text, one section per header.
// The personal information block always comes first.
func Text(d model.Details) string {
	var b strings.Builder

	b.WriteString(HeaderPersonalInformation + "\n")
	fmt.Fprintf(&b, "%sName: %s\n", indent, d.Name)
	fmt.Fprintf(&b, "%sPhone: %s\n", indent, d.Phone)
	fmt.Fprintf(&b, "%sEmail: %s\n", indent, d.Email)
	b.WriteString("\n")

	b.WriteString(HeaderProfessionalSummary + "\n")
	b.WriteString(indent + d.ProfileSummary + "\n")
	b.WriteString("\n")

	b.WriteString(HeaderSkills + "\n")
	b.WriteString(indent + Skills(d.Skills) + "\n")
	b.WriteString("\n")

	b.WriteString(HeaderWorkExperience + "\n")
	b.WriteString(workExperience(d.WorkExperience) + "\n")
	b.WriteString("\n")

	b.WriteString(HeaderEducation + "\n")
	b.WriteString(education(d.Education) + "\n")

	return b.String()
}

// Skills flattens a skill list into one sentence.
func Skills(skills []string) string {
	if len(skills) == 0 {
		skills = []string{model.NotSpecified}
	}
	return "Proficient in " + strings.Join(skills, ", ") + "."
}

func workExperience(entries []model.WorkExperienceDetails) string {
	if len(entries) == 0 {
		return indent + model.NotSpecified
	}
	blocks := make([]string, 0, len(entries))
	for i, we := range entries {
		blocks = append(blocks, fmt.Sprintf(
			"%s%d) Company: %s\n%sPosition: %s\n%sDuration: %s\n%sDescription: %s",
			indent, i+1, we.Company,
			continuationIndent, we.Position,
			continuationIndent, we.Duration,
			continuationIndent, we.Description,
		))
	}
	return strings.Join(blocks, "\n")
}

func education(entries []model.EducationDetails) string {
	if len(entries) == 0 {
		return indent + model.NotSpecified
	}
	blocks := make([]string, 0, len(entries))
	for i, edu := range entries {
		blocks = append(blocks, fmt.Sprintf(
			"%s%d) School: %s\n%sDegree: %s\n%sDuration: %s",
			indent, i+1, edu.Institution,
			continuationIndent, edu.Degree,
			continuationIndent, edu.Duration,
		))
	}
	return strings.Join(blocks, "\n")
}
