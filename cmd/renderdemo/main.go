package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"ats-resume/resume/document"
	"ats-resume/resume/model"
	"ats-resume/resume/render"
)

func main() {
	outPath := flag.String("out", "./out/sample_resume.pdf", "output path for generated PDF")
	logoPath := flag.String("logo", "", "optional logo image (png, jpg or gif)")
	flag.Parse()

	text := render.Text(sampleRecord().Details())

	logo, err := document.LoadLogo(*logoPath)
	if err != nil {
		exitErr(fmt.Sprintf("load logo: %v", err))
	}
	doc, err := document.NewBuilder(logo).Build(text)
	if err != nil {
		exitErr(fmt.Sprintf("render failed: %v", err))
	}

	if err := os.MkdirAll(filepath.Dir(*outPath), 0o755); err != nil {
		exitErr(fmt.Sprintf("write failed: %v", err))
	}
	if err := os.WriteFile(*outPath, doc.Bytes(), 0o644); err != nil {
		exitErr(fmt.Sprintf("write failed: %v", err))
	}
	textPath := filepath.Join(filepath.Dir(*outPath), "sample_resume.txt")
	if err := os.WriteFile(textPath, []byte(text), 0o644); err != nil {
		exitErr(fmt.Sprintf("write failed: %v", err))
	}

	fmt.Printf("OK: wrote %s (%d pages)\n", *outPath, doc.PageCount())
}

func sampleRecord() model.ResumeRecord {
	str := model.TextOf
	work := make([]model.WorkExperience, 0, 8)
	for i := 1; i <= 8; i++ {
		work = append(work, model.WorkExperience{
			Company:     str(fmt.Sprintf("Company %d", i)),
			Position:    str("Senior Backend Engineer"),
			Duration:    str(fmt.Sprintf("%d - %d", 2010+i, 2011+i)),
			Description: str("Built Go services, HTTP APIs and background workers."),
		})
	}
	return model.ResumeRecord{
		JDMatch:           str("85%"),
		MissingKeywords:   []string{"Kubernetes", "Terraform"},
		YearsOfExperience: str("12"),
		ProfileSummary:    str("Backend engineer focused on distributed systems."),
		PersonalInformation: &model.PersonalInformation{
			Name:  str("Jane Doe"),
			Phone: str("+1 555 0100"),
			Email: str("jane.doe@example.com"),
		},
		Skills:         []string{"Go", "PostgreSQL", "AWS", "Docker"},
		WorkExperience: work,
		Education: []model.Education{
			{Institution: str("State University"), Degree: str("BSc Computer Science"), Duration: str("2006 - 2010")},
		},
	}
}

func exitErr(msg string) {
	fmt.Fprintln(os.Stderr, msg)
	os.Exit(1)
}
