package openapi

import (
	"context"
	"fmt"

	"github.com/getkin/kin-openapi/openapi3"
)

// Validate loads the marshalled document with kin-openapi and runs its
// structural validation. Loading fails on $ref targets missing from the
// component table, so a nil result also means every reference resolves.
func Validate(ctx context.Context, doc *Document) error {
	data, err := doc.ToJSON()
	if err != nil {
		return fmt.Errorf("marshal document: %w", err)
	}

	loader := openapi3.NewLoader()
	loader.Context = ctx
	t, err := loader.LoadFromData(data)
	if err != nil {
		return fmt.Errorf("load document: %w", err)
	}
	if err := t.Validate(ctx, openapi3.DisableSchemaFormatValidation()); err != nil {
		return fmt.Errorf("validate document: %w", err)
	}
	return nil
}
