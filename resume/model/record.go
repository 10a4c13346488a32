package model

// NotSpecified replaces every value the model left out.
const NotSpecified = "Not specified"

// ResumeRecord is the evaluation reply of the model. Every field is optional:
// a nil pointer or nil slice means the key was absent or null. Scalars are Text
// so a number or boolean where a string was asked for still decodes.
type ResumeRecord struct {
	JDMatch             *Text                `json:"JD Match,omitempty"`
	MissingKeywords     []string             `json:"Missing Keywords,omitempty"`
	YearsOfExperience   *Text                `json:"Years of experience,omitempty"`
	ProfileSummary      *Text                `json:"Profile Summary,omitempty"`
	PersonalInformation *PersonalInformation `json:"Personal Information,omitempty"`
	Skills              []string             `json:"Skills,omitempty"`
	WorkExperience      []WorkExperience     `json:"Work Experience,omitempty"`
	Education           []Education          `json:"Education,omitempty"`
}

type PersonalInformation struct {
	Name  *Text `json:"Name,omitempty"`
	Phone *Text `json:"Phone,omitempty"`
	Email *Text `json:"Email,omitempty"`
}

type WorkExperience struct {
	Company     *Text `json:"Company,omitempty"`
	Position    *Text `json:"Position,omitempty"`
	Duration    *Text `json:"Duration,omitempty"`
	Description *Text `json:"Description,omitempty"`
}

type Education struct {
	Institution *Text `json:"Institution,omitempty"`
	Degree      *Text `json:"Degree,omitempty"`
	Duration    *Text `json:"Duration,omitempty"`
}

// Details is a ResumeRecord with every missing value replaced by NotSpecified.
type Details struct {
	JDMatch           string
	MissingKeywords   []string
	YearsOfExperience string
	ProfileSummary    string
	Name              string
	Phone             string
	Email             string
	Skills            []string
	WorkExperience    []WorkExperienceDetails
	Education         []EducationDetails
}

type WorkExperienceDetails struct {
	Company     string
	Position    string
	Duration    string
	Description string
}

type EducationDetails struct {
	Institution string
	Degree      string
	Duration    string
}

// Details applies the NotSpecified defaults. Empty keyword and skill lists become a
// single NotSpecified entry; empty entry lists stay empty.
func (r ResumeRecord) Details() Details {
	d := Details{
		JDMatch:           orDefault(r.JDMatch),
		MissingKeywords:   listOrDefault(r.MissingKeywords),
		YearsOfExperience: orDefault(r.YearsOfExperience),
		ProfileSummary:    orDefault(r.ProfileSummary),
		Name:              NotSpecified,
		Phone:             NotSpecified,
		Email:             NotSpecified,
		Skills:            listOrDefault(r.Skills),
	}
	if p := r.PersonalInformation; p != nil {
		d.Name = orDefault(p.Name)
		d.Phone = orDefault(p.Phone)
		d.Email = orDefault(p.Email)
	}
	for _, we := range r.WorkExperience {
		d.WorkExperience = append(d.WorkExperience, WorkExperienceDetails{
			Company:     orDefault(we.Company),
			Position:    orDefault(we.Position),
			Duration:    orDefault(we.Duration),
			Description: orDefault(we.Description),
		})
	}
	for _, edu := range r.Education {
		d.Education = append(d.Education, EducationDetails{
			Institution: orDefault(edu.Institution),
			Degree:      orDefault(edu.Degree),
			Duration:    orDefault(edu.Duration),
		})
	}
	return d
}

// CandidateName returns the name the model extracted, or "" when it gave none.
func (r ResumeRecord) CandidateName() string {
	if r.PersonalInformation == nil || r.PersonalInformation.Name == nil {
		return ""
	}
	return string(*r.PersonalInformation.Name)
}

func orDefault(v *Text) string {
	if v == nil {
		return NotSpecified
	}
	return string(*v)
}

func listOrDefault(items []string) []string {
	if len(items) == 0 {
		return []string{NotSpecified}
	}
	out := make([]string, len(items))
	copy(out, items)
	return out
}
