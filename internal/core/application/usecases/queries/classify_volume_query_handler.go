package queries

import (
	"context"

	"rateshop/internal/core/domain/model/dimensions"
)

// ClassifyVolumeQueryHandler applies the volume-overage classifier.
type ClassifyVolumeQueryHandler struct{}

// NewClassifyVolumeQueryHandler creates a handler for volume classification.
func NewClassifyVolumeQueryHandler() ClassifyVolumeQueryHandler {
	return ClassifyVolumeQueryHandler{}
}

// Handle classifies the dimension set.
func (h ClassifyVolumeQueryHandler) Handle(
	_ context.Context,
	query ClassifyVolumeQuery,
) (ClassifyVolumeQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return ClassifyVolumeQueryResponse{}, err
	}

	result := dimensions.Classify(query.Dims())

	return ClassifyVolumeQueryResponse{
		CubicSize:  result.CubicSize,
		OverLimit:  result.OverLimit,
		Applicable: result.Applicable(),
	}, nil
}
