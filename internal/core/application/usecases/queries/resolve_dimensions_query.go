package queries

import (
	"errors"

	"rateshop/internal/core/domain/model/dimensions"
	"rateshop/internal/pkg/guard"
)

var (
	ErrResolveDimensionsQueryIsNotConstructed = errors.New(
		"ResolveDimensionsQuery must be created via NewResolveDimensionsQuery constructor",
	)
	ErrQuantityIsInvalid = errors.New("quantity must be at least 1")
)

// ResolveDimensionsQuery computes the rating dimensions for a shipment in
// both pricing contexts from its raw profile fields. Pure computation; no
// storage involved.
type ResolveDimensionsQuery struct { //nolint:recvcheck //using for validation
	profile  dimensions.ShipmentProfile
	quantity int

	guard guard.ConstructorGuard
}

// NewResolveDimensionsQuery creates a dimension resolution query.
// Quantity is the number of units in the shipment and must be at least 1.
func NewResolveDimensionsQuery(
	profile dimensions.ShipmentProfile, quantity int,
) (ResolveDimensionsQuery, error) {
	query := ResolveDimensionsQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := query.setQuantity(quantity); err != nil {
		return ResolveDimensionsQuery{}, err
	}

	query.profile = profile
	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q ResolveDimensionsQuery) Validate() error {
	return q.guard.Validate(ErrResolveDimensionsQueryIsNotConstructed)
}

// Profile returns the raw shipment profile fields.
func (q ResolveDimensionsQuery) Profile() dimensions.ShipmentProfile {
	return q.profile
}

// Quantity returns the number of units in the shipment.
func (q ResolveDimensionsQuery) Quantity() int {
	return q.quantity
}

func (q *ResolveDimensionsQuery) setQuantity(quantity int) error {
	if quantity < 1 {
		return ErrQuantityIsInvalid
	}

	q.quantity = quantity
	return nil
}

// ResolvedContextResponse is one pricing context's resolved dimensions.
type ResolvedContextResponse struct {
	Dimensions dimensions.DimensionSet
	IsComplete bool
}

// ResolveDimensionsQueryResponse carries both pricing contexts.
type ResolveDimensionsQueryResponse struct {
	Declared ResolvedContextResponse
	Measured ResolvedContextResponse
}
