package queries

import (
	"context"

	"rateshop/internal/core/domain/model/dimensions"
)

// ResolveDimensionsQueryHandler resolves a shipment's rating dimensions in
// both pricing contexts. Stateless; the context parameter is kept for
// handler signature consistency.
type ResolveDimensionsQueryHandler struct{}

// NewResolveDimensionsQueryHandler creates a handler for dimension resolution.
func NewResolveDimensionsQueryHandler() ResolveDimensionsQueryHandler {
	return ResolveDimensionsQueryHandler{}
}

// Handle resolves both contexts from the profile.
// Incomplete results are not an error; the IsComplete flags tell the caller
// whether each context is ready to rate.
func (h ResolveDimensionsQueryHandler) Handle(
	_ context.Context,
	query ResolveDimensionsQuery,
) (ResolveDimensionsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return ResolveDimensionsQueryResponse{}, err
	}

	declared := dimensions.ResolveDeclared(query.Profile())
	measured := dimensions.ResolveMeasured(query.Profile(), query.Quantity())

	return ResolveDimensionsQueryResponse{
		Declared: ResolvedContextResponse{Dimensions: declared, IsComplete: declared.IsComplete()},
		Measured: ResolvedContextResponse{Dimensions: measured, IsComplete: measured.IsComplete()},
	}, nil
}
