// Package ir defines the resolved representation of a reflection catalog.
// Raw catalog records are normalized into these types before any document
// or declaration is produced.
package ir

// Warning codes recorded during normalization and assembly.
const (
	WarnDuplicateField     = "duplicate_field"
	WarnUnroutableEndpoint = "unroutable_endpoint"
	WarnInvalidRecord      = "invalid_record"
	WarnDuplicateType      = "duplicate_type"
	WarnMissingReference   = "missing_type_reference"
)

// Warning represents a non-fatal issue encountered during normalization.
type Warning struct {
	// Code is a machine-readable warning identifier.
	Code string `json:"code"`

	// Message is a human-readable description.
	Message string `json:"message"`

	// Name is the type, function or event that triggered the warning, if applicable.
	Name string `json:"name,omitempty"`
}

// String returns the warning as a single line notice.
func (w Warning) String() string {
	if w.Name == "" {
		return w.Code + ": " + w.Message
	}
	return w.Code + " (" + w.Name + "): " + w.Message
}
