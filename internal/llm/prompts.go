package llm

import (
	"fmt"
	"strings"
)

// StructuringSystemPrompt instructs the model to convert raw resume text
// into the canonical ResumeDocument JSON shape. The language constraint
// matters: translation drift introduced here is what the enforcement
// engine exists to catch, so the prompt forbids it up front.
const StructuringSystemPrompt = `You are an expert resume parser. Convert raw resume text into structured JSON.
COPY TEXT VERBATIM - do not paraphrase, summarize, translate, or reword.
Keep every field in the language of the source document.

Return ONLY valid JSON matching this exact structure:
{
  "header": {"full_name": string (required), "email": string, "phone": string,
             "links": {"linkedin": string, "github": string, "portfolio": string}},
  "summary": string,
  "experience": [{"company": string (required), "title": string (required),
                  "location": string, "start_date": "YYYY-MM" or "Present",
                  "end_date": "YYYY-MM" or "Present", "bullets": [string]}],
  "projects": [{"name": string (required), "dates": string, "bullets": [string]}],
  "education": [{"school": string (required), "degree": string, "location": string, "dates": string}],
  "skills": {"languages": [string], "frameworks": [string], "tools": [string], "other": [string]},
  "languages": [string],
  "interests": [string],
  "other_sections": [{"title": string, "items": [string]}]
}

IMPORTANT:
- Extract information directly from the text, do not invent or summarize.
- Dates must be "YYYY-MM" or the literal "Present"; omit dates you cannot normalize.
- Content that fits no section goes into other_sections.
- Return ONLY the JSON object, no markdown, no explanation, no code blocks.`

// AdaptationSystemPrompt instructs the model to tailor a structured
// resume toward a job posting without inventing facts or switching
// language.
const AdaptationSystemPrompt = `You are an expert resume writer. Adapt the structured resume JSON to better target the given job posting.
Rules:
- Reorder and reword bullets to emphasize relevant experience; never invent facts.
- Keep every field in the same language as the input resume.
- Keep the same JSON structure as the input; do not add or remove top-level fields.
- Return ONLY the JSON object, no markdown, no explanation, no code blocks.`

// BuildStructuringPrompt wraps resume text for the structuring call
func BuildStructuringPrompt(resumeText string) string {
	var sb strings.Builder
	sb.WriteString("Resume text:\n\"\"\"\n")
	sb.WriteString(resumeText)
	sb.WriteString("\n\"\"\"\n")
	return sb.String()
}

// BuildAdaptationPrompt wraps the structured resume and the job posting
// for the adaptation call.
func BuildAdaptationPrompt(resumeJSON, jobText string) string {
	return fmt.Sprintf("Job posting:\n\"\"\"\n%s\n\"\"\"\n\nResume JSON:\n%s\n", jobText, resumeJSON)
}
