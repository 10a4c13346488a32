package render

import (
	"strings"
	"testing"

	"ats-resume/resume/model"
)

func TestTextFullRecord(t *testing.T) {
	record := model.ResumeRecord{
		ProfileSummary: model.TextOf("Backend engineer"),
		PersonalInformation: &model.PersonalInformation{
			Name:  model.TextOf("Ada Lovelace"),
			Phone: model.TextOf("555-0100"),
			Email: model.TextOf("ada@example.com"),
		},
		Skills: []string{"Go", "SQL"},
		WorkExperience: []model.WorkExperience{
			{Company: model.TextOf("Acme"), Position: model.TextOf("SRE"), Duration: model.TextOf("2019-2023"), Description: model.TextOf("Kept things up")},
			{Company: model.TextOf("Initech"), Position: model.TextOf("Dev"), Duration: model.TextOf("2017-2019"), Description: model.TextOf("TPS reports")},
		},
		Education: []model.Education{
			{Institution: model.TextOf("MIT"), Degree: model.TextOf("BSc"), Duration: model.TextOf("2013-2017")},
		},
	}

	want := "Personal Information:\n" +
		"    Name: Ada Lovelace\n" +
		"    Phone: 555-0100\n" +
		"    Email: ada@example.com\n" +
		"\n" +
		"Professional Summary:\n" +
		"    Backend engineer\n" +
		"\n" +
		"Skills:\n" +
		"    Proficient in Go, SQL.\n" +
		"\n" +
		"Work Experience:\n" +
		"    1) Company: Acme\n" +
		"   Position: SRE\n" +
		"   Duration: 2019-2023\n" +
		"   Description: Kept things up\n" +
		"    2) Company: Initech\n" +
		"   Position: Dev\n" +
		"   Duration: 2017-2019\n" +
		"   Description: TPS reports\n" +
		"\n" +
		"Education:\n" +
		"    1) School: MIT\n" +
		"   Degree: BSc\n" +
		"   Duration: 2013-2017\n"

	if got := Text(record.Details()); got != want {
		t.Fatalf("unexpected text:\n%s\nwant:\n%s", got, want)
	}
}

func TestTextEmptyRecordUsesPlaceholders(t *testing.T) {
	got := Text(model.ResumeRecord{}.Details())

	for _, fragment := range []string{
		"    Name: Not specified\n",
		"    Phone: Not specified\n",
		"    Email: Not specified\n",
		"Professional Summary:\n    Not specified\n",
		"Proficient in Not specified.",
		"Work Experience:\n    Not specified",
		"Education:\n    Not specified",
	} {
		if !strings.Contains(got, fragment) {
			t.Fatalf("expected %q in:\n%s", fragment, got)
		}
	}
}

func TestTextStartsWithPersonalInformation(t *testing.T) {
	got := Text(model.ResumeRecord{}.Details())
	if !strings.HasPrefix(got, HeaderPersonalInformation+"\n") {
		t.Fatalf("personal information must come first:\n%s", got)
	}
	block := strings.SplitN(got, "\n\n", 2)[0]
	if strings.Count(block, "\n") != 3 {
		t.Fatalf("personal block should be header plus three lines, got %q", block)
	}
}

func TestTextSectionOrder(t *testing.T) {
	got := Text(model.ResumeRecord{}.Details())
	last := -1
	for _, header := range SectionHeaders {
		idx := strings.Index(got, header)
		if idx <= last {
			t.Fatalf("header %q out of order", header)
		}
		last = idx
	}
}

func TestSkills(t *testing.T) {
	tests := []struct {
		name   string
		skills []string
		want   string
	}{
		{name: "single", skills: []string{"Python"}, want: "Proficient in Python."},
		{name: "several", skills: []string{"Go", "Rust", "C"}, want: "Proficient in Go, Rust, C."},
		{name: "empty", skills: nil, want: "Proficient in Not specified."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Skills(tt.skills); got != tt.want {
				t.Fatalf("got %q want %q", got, tt.want)
			}
		})
	}
}
