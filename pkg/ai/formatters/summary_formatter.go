package formatters

import (
	"context"
	"fmt"
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"

	"resume-builder/internal/model"
)

const (
	defaultJobTitle = "Professional"
	defaultCompany  = "Industry"
	defaultSkills   = "General Professional Skills"

	// EmptySummary is returned when the model answers with no text.
	EmptySummary = "Could not generate summary."
)

// Chatter sends one prompt and returns the model's text.
type Chatter interface {
	Chat(ctx context.Context, input string) (string, error)
}

// SummaryRequest is the candidate profile the prompt is built from.
type SummaryRequest struct {
	JobTitle          string `json:"jobTitle"`
	Company           string `json:"company"`
	Skills            string `json:"skills"`
	YearsOfExperience int    `json:"yearsOfExperience"`
}

// BuildSummaryRequest derives the prompt inputs from doc. The first
// experience entry is taken as the most recent role.
func BuildSummaryRequest(doc model.Document) SummaryRequest {
	req := SummaryRequest{
		JobTitle:          defaultJobTitle,
		Company:           defaultCompany,
		YearsOfExperience: estimateYears(doc.Experience),
	}
	if len(doc.Experience) > 0 {
		req.JobTitle = doc.Experience[0].JobTitle
		req.Company = doc.Experience[0].Company
	}

	names := make([]string, 0, len(doc.Skills))
	for _, s := range doc.Skills {
		names = append(names, s.Name)
	}
	req.Skills = strings.Join(names, ", ")
	if req.Skills == "" {
		req.Skills = defaultSkills
	}
	return req
}

// estimateYears assumes two years per listed position. It ignores the
// entries' dates.
// TODO: derive the estimate from start/end dates once callers rely on it.
func estimateYears(exp []model.Experience) int {
	return len(exp) * 2
}

// SummaryPrompt renders the instructions sent to the model.
func SummaryPrompt(req SummaryRequest) string {
	return fmt.Sprintf(`You are an expert resume writer. Write a professional, punchy, and ATS-friendly professional summary (approx 50-80 words) for a resume.

Candidate Details:
- Most Recent Role: %s at %s
- Key Skills: %s
- Years of Experience: %d (estimated)

The summary should highlight leadership, problem-solving, and technical expertise relevant to their background. Do not use placeholders. Write in the first person but without pronouns (e.g., "Experienced software engineer..." instead of "I am an experienced...").`,
		req.JobTitle, req.Company, req.Skills, req.YearsOfExperience)
}

type SummaryFormatter struct {
	chat   Chatter
	policy *bluemonday.Policy
}

func NewSummaryFormatter(chat Chatter) *SummaryFormatter {
	return &SummaryFormatter{chat: chat, policy: bluemonday.StrictPolicy()}
}

// Generate asks the model for a professional summary of doc. Any markup in
// the answer is stripped; an empty answer yields EmptySummary.
func (sf *SummaryFormatter) Generate(ctx context.Context, doc model.Document) (string, error) {
	out, err := sf.chat.Chat(ctx, SummaryPrompt(BuildSummaryRequest(doc)))
	if err != nil {
		return "", err
	}
	text := strings.TrimSpace(html.UnescapeString(sf.policy.Sanitize(out)))
	if text == "" {
		return EmptySummary, nil
	}
	return text, nil
}
