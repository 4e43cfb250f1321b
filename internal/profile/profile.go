// Package profile parses the optional pre-structured analysis record (the
// JSON an upstream LLM layer emits for a resume and job description) into
// explicit optional-field structs. Documents are validated against the
// shipped JSON Schema before decoding, so malformed shapes fail with field
// paths instead of decoding into silent zero values.
package profile

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"

	"github.com/jonathan/langhire/internal/types"
	"github.com/jonathan/langhire/schemas"
)

// Document is the wire shape of a structured profile record.
type Document struct {
	ResumeAnalysis *types.CandidateProfile `json:"resume_analysis,omitempty"`
	JDAnalysis     *types.JobPosting       `json:"jd_analysis,omitempty"`
}

// FieldError is one schema violation at a specific field path.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError aggregates every schema violation in a document.
type ValidationError struct {
	Errors []FieldError
}

func (ve *ValidationError) Error() string {
	var sb strings.Builder
	sb.WriteString("profile validation failed:\n")
	for i, err := range ve.Errors {
		sb.WriteString(fmt.Sprintf("  %d. %s: %s\n", i+1, err.Field, err.Message))
	}
	return sb.String()
}

// Parse validates raw JSON against the analysis-profile schema and decodes
// it. Absent sections come back as nil pointers; callers apply their own
// documented defaults.
func Parse(raw []byte) (*Document, error) {
	schemaLoader := gojsonschema.NewStringLoader(schemas.AnalysisProfile)
	documentLoader := gojsonschema.NewBytesLoader(raw)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return nil, fmt.Errorf("failed to validate profile document: %w", err)
	}

	if !result.Valid() {
		validationErr := &ValidationError{
			Errors: make([]FieldError, 0, len(result.Errors())),
		}
		for _, desc := range result.Errors() {
			field := desc.Field()
			if field == "" {
				field = "(root)"
			}
			validationErr.Errors = append(validationErr.Errors, FieldError{
				Field:   field,
				Message: desc.Description(),
			})
		}
		return nil, validationErr
	}

	var doc Document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("failed to decode profile document: %w", err)
	}

	return &doc, nil
}
