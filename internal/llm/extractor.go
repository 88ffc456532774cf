package llm

import (
	"fmt"
	"strings"
)

// ExtractionSchema defines the structure for LLM-based content extraction.
// It provides a reusable way to define what information to extract from text.
type ExtractionSchema struct {
	Name        string        // Schema name (e.g., "JobCriteria")
	Description string        // System prompt preamble describing the extraction task
	Fields      []SchemaField // Expected output fields
}

// SchemaField defines a single field in the extraction output.
type SchemaField struct {
	Name        string // JSON field name
	Type        string // Type hint: "string", "[]string", "map[string]string"
	Description string // Description for the LLM
	Required    bool   // Whether this field is required
}

// BuildExtractionPrompt constructs the LLM prompt from schema and input text.
func BuildExtractionPrompt(schema ExtractionSchema, inputText string) string {
	var sb strings.Builder

	// System description
	sb.WriteString(schema.Description)
	sb.WriteString("\n\n")

	// Output schema
	sb.WriteString("Return ONLY valid JSON matching this exact structure:\n{\n")
	for i, field := range schema.Fields {
		typeHint := field.Type
		if typeHint == "" {
			typeHint = "string"
		}
		requiredHint := ""
		if field.Required {
			requiredHint = " (required)"
		}
		sb.WriteString(fmt.Sprintf("  \"%s\": %s%s", field.Name, typeHint, requiredHint))
		if field.Description != "" {
			sb.WriteString(fmt.Sprintf(" // %s", field.Description))
		}
		if i < len(schema.Fields)-1 {
			sb.WriteString(",")
		}
		sb.WriteString("\n")
	}
	sb.WriteString("}\n\n")

	// Instructions
	sb.WriteString("IMPORTANT:\n")
	sb.WriteString("- Extract information directly from the text, do not invent or summarize.\n")
	sb.WriteString("- Return ONLY the JSON object, no markdown, no explanation, no code blocks.\n\n")

	// Input text
	sb.WriteString("Input text:\n\"\"\"\n")
	sb.WriteString(inputText)
	sb.WriteString("\n\"\"\"\n")

	return sb.String()
}

// --- Predefined Schemas ---

// JobCriteriaSchema returns the extraction schema for job-criteria analysis.
// The output maps directly onto the JobCriteria JSON shape consumed by the
// scoring pipeline.
func JobCriteriaSchema() ExtractionSchema {
	return ExtractionSchema{
		Name: "JobCriteria",
		Description: `You are an expert technical recruiter. Your task is to extract concrete,
checkable hiring criteria from a raw job description.
Skills must be named technologies or methodologies, not soft skills.
Weights must be non-negative numbers that sum to 1.0.`,
		Fields: []SchemaField{
			{
				Name:        "job_title",
				Type:        "\"string\"",
				Description: "The job title",
				Required:    true,
			},
			{
				Name:        "required_skills",
				Type:        "[\"string\"]",
				Description: "Required technical skills, one canonical name each",
				Required:    true,
			},
			{
				Name:        "skill_variants",
				Type:        "{\"skill\": [\"string\"]}",
				Description: "Alternative phrasings per skill (e.g., 'Kubernetes': ['k8s'])",
				Required:    false,
			},
			{
				Name:        "scoring_weights",
				Type:        "{\"skills\": number, \"experience\": number, \"location\": number, \"certifications\": number, \"education\": number}",
				Description: "Relative importance of each dimension, summing to 1.0",
				Required:    true,
			},
			{
				Name:        "experience_requirements",
				Type:        "{\"minimum_years\": number, \"preferred_years\": number}",
				Description: "Years of experience the posting asks for",
				Required:    false,
			},
			{
				Name:        "education_requirements",
				Type:        "{\"minimum_level\": \"string\", \"strict\": bool}",
				Description: "Minimum education level: high school, associate, bachelor, master or doctorate",
				Required:    false,
			},
			{
				Name:        "required_certifications",
				Type:        "[\"string\"]",
				Description: "Certifications named as requirements, with abbreviations in parentheses",
				Required:    false,
			},
			{
				Name:        "location",
				Type:        "\"string\"",
				Description: "Job location, or 'Remote'",
				Required:    false,
			},
		},
	}
}
