package queries

import (
	"errors"

	"rateshop/internal/core/domain/model/dimensions"
	"rateshop/internal/pkg/guard"
)

var ErrClassifyVolumeQueryIsNotConstructed = errors.New(
	"ClassifyVolumeQuery must be created via NewClassifyVolumeQuery constructor",
)

// ClassifyVolumeQuery checks a dimension set against the weight-tiered
// cubic-size limits. Advisory only: the flag never blocks rating or
// selection.
type ClassifyVolumeQuery struct { //nolint:recvcheck //using for validation
	dims dimensions.DimensionSet

	guard guard.ConstructorGuard
}

// NewClassifyVolumeQuery creates a volume classification query.
// Incomplete dimension sets are accepted; they classify as not applicable.
func NewClassifyVolumeQuery(dims dimensions.DimensionSet) ClassifyVolumeQuery {
	return ClassifyVolumeQuery{
		dims:  dims,
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the query was created through the constructor.
func (q ClassifyVolumeQuery) Validate() error {
	return q.guard.Validate(ErrClassifyVolumeQueryIsNotConstructed)
}

// Dims returns the dimension set being classified.
func (q ClassifyVolumeQuery) Dims() dimensions.DimensionSet {
	return q.dims
}

// ClassifyVolumeQueryResponse is the advisory overage classification.
type ClassifyVolumeQueryResponse struct {
	CubicSize  float64
	OverLimit  bool
	Applicable bool
}
