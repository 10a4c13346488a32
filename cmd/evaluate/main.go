package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"ats-resume/internal/bootstrap"
	"ats-resume/internal/evaluations"
	"ats-resume/internal/shared/config"
	"ats-resume/resume/model"
	"ats-resume/resume/render"
)

func main() {
	resumePath := flag.String("resume", "", "Path to resume file (pdf, docx or txt)")
	jd := flag.String("jd", "", "Job description text")
	jdPath := flag.String("jd-file", "", "Path to job description file")
	outDir := flag.String("out", ".", "Directory for the generated PDF")
	flag.Parse()

	if strings.TrimSpace(*resumePath) == "" {
		exitErr("resume path is required")
	}

	cfg, err := config.Load()
	if err != nil {
		exitErr(err.Error())
	}

	data, err := os.ReadFile(*resumePath)
	if err != nil {
		exitErr(fmt.Sprintf("read resume: %v", err))
	}

	jobDescription := *jd
	if strings.TrimSpace(*jdPath) != "" {
		jdBytes, err := os.ReadFile(*jdPath)
		if err != nil {
			exitErr(fmt.Sprintf("read job description: %v", err))
		}
		jobDescription = string(jdBytes)
	}

	ctx := context.Background()
	client, err := bootstrap.NewLLMClient(ctx, cfg)
	if err != nil {
		exitErr(err.Error())
	}
	pipeline, err := bootstrap.NewPipeline(cfg, client, nil)
	if err != nil {
		exitErr(err.Error())
	}

	res, runErr := pipeline.Run(ctx, evaluations.Input{
		JobDescription: jobDescription,
		FileName:       filepath.Base(*resumePath),
		Data:           data,
	})
	for _, notice := range res.Notices {
		fmt.Fprintln(os.Stderr, notice)
	}

	var parseErr *model.ParseError
	switch {
	case errors.Is(runErr, model.ErrEmptyResult):
		exitErr(runErr.Error())
	case errors.As(runErr, &parseErr):
		fmt.Println(res.RawResponse)
		exitErr(runErr.Error())
	case runErr != nil:
		exitErr(runErr.Error())
	}

	fmt.Println(res.RawResponse)
	fmt.Println()
	fmt.Printf("Profile Summary: %s\n", res.Details.ProfileSummary)
	fmt.Printf("JD Match: %s\n", res.Details.JDMatch)
	fmt.Printf("Missing Keywords: %s\n", strings.Join(res.Details.MissingKeywords, ", "))
	fmt.Printf("Years of experience: %s\n", res.Details.YearsOfExperience)
	fmt.Println()
	fmt.Print(render.Text(res.Details))

	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		exitErr(fmt.Sprintf("create output dir: %v", err))
	}
	outPath := filepath.Join(*outDir, res.FileName)
	if err := os.WriteFile(outPath, res.Document.Bytes(), 0o644); err != nil {
		exitErr(fmt.Sprintf("write pdf: %v", err))
	}
	fmt.Printf("\nOK: wrote %s (%d pages)\n", outPath, res.Document.PageCount())
}

func exitErr(msg string) {
	fmt.Fprintln(os.Stderr, msg)
	os.Exit(1)
}
