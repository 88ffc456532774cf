// Package schemas validates run artifacts against the JSON Schemas under
// schemas/: the job-criteria input, and the ranked-result and
// duplicate-summary outputs.
package schemas

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// ResolveSchemaPath locates a schema file given its path relative to the
// repository root. Commands and package tests run from different depths of
// the tree, so the search walks from the working directory up through three
// parent directories and returns the first candidate that exists, or "" when
// none does.
func ResolveSchemaPath(relativePath string) string {
	candidate := relativePath
	for depth := 0; depth < 4; depth++ {
		if absPath, err := filepath.Abs(candidate); err == nil {
			if _, err := os.Stat(absPath); err == nil {
				return absPath
			}
		}
		candidate = filepath.Join("..", candidate)
	}
	return ""
}

// ValidationError reports every schema violation found in one document.
type ValidationError struct {
	Errors []FieldError
}

// FieldError is a single violation at one field path.
type FieldError struct {
	Field   string
	Message string
}

func (ve *ValidationError) Error() string {
	var sb strings.Builder
	sb.WriteString("validation failed:\n")
	for i, fe := range ve.Errors {
		fmt.Fprintf(&sb, "  %d. %s: %s\n", i+1, fe.Field, fe.Message)
	}
	return sb.String()
}

// SchemaLoadError means the schema itself could not be loaded or evaluated,
// as opposed to the document failing validation. Callers treat it as a
// deployment problem rather than bad input.
type SchemaLoadError struct {
	Path    string
	Message string
	Cause   error
}

func (e *SchemaLoadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("failed to load schema %s: %s: %v", e.Path, e.Message, e.Cause)
	}
	return fmt.Sprintf("failed to load schema %s: %s", e.Path, e.Message)
}

func (e *SchemaLoadError) Unwrap() error {
	return e.Cause
}

// ValidateJSON checks the JSON document at jsonPath against the schema file
// at schemaPath. Documents that fail validation produce a *ValidationError
// listing every offending field; schema problems surface as *SchemaLoadError.
func ValidateJSON(schemaPath, jsonPath string) error {
	schemaAbs, err := filepath.Abs(schemaPath)
	if err != nil {
		return fmt.Errorf("failed to resolve schema path: %w", err)
	}
	docAbs, err := filepath.Abs(jsonPath)
	if err != nil {
		return fmt.Errorf("failed to resolve document path: %w", err)
	}

	if _, err := os.Stat(schemaAbs); err != nil {
		return fmt.Errorf("schema file not found: %s", schemaAbs)
	}
	if _, err := os.Stat(docAbs); err != nil {
		return fmt.Errorf("document not found: %s", docAbs)
	}

	return runValidation(
		gojsonschema.NewReferenceLoader("file://"+schemaAbs),
		gojsonschema.NewReferenceLoader("file://"+docAbs),
		schemaAbs,
	)
}

// ValidateJSONString validates in-memory JSON content against an in-memory
// schema, for artifacts that have not been written to disk yet.
func ValidateJSONString(schemaContent, jsonContent string) error {
	return runValidation(
		gojsonschema.NewStringLoader(schemaContent),
		gojsonschema.NewStringLoader(jsonContent),
		"(inline schema)",
	)
}

func runValidation(schema, document gojsonschema.JSONLoader, schemaRef string) error {
	result, err := gojsonschema.Validate(schema, document)
	if err != nil {
		// gojsonschema conflates unloadable schemas and unparseable
		// documents; either way nothing was validated.
		return &SchemaLoadError{
			Path:    schemaRef,
			Message: "schema could not be evaluated",
			Cause:   err,
		}
	}
	if result.Valid() {
		return nil
	}
	return newValidationError(result)
}

func newValidationError(result *gojsonschema.Result) *ValidationError {
	ve := &ValidationError{Errors: make([]FieldError, 0, len(result.Errors()))}
	for _, desc := range result.Errors() {
		field := desc.Field()
		if field == "" {
			field = "(root)"
		}
		ve.Errors = append(ve.Errors, FieldError{
			Field:   field,
			Message: desc.Description(),
		})
	}
	return ve
}
