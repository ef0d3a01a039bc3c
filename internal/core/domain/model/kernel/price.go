package kernel

import (
	"fmt"

	"rateshop/internal/pkg/errs"
	"rateshop/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// ErrPriceIsNotConstructed is returned when attempting to use an improperly
// initialized Price. Prices must be created via one of the NewPrice
// constructors.
var ErrPriceIsNotConstructed = errs.NewValueIsRequiredError(
	"price must be created via NewPrice, NewPriceFromString or NewPriceFromFloat")

// Price represents a carrier rate amount. It is an immutable value object
// backed by an arbitrary-precision decimal so that quote comparison and
// deduplication never suffer float rounding artifacts.
//
// Carrier quotes are considered the same offer when they agree on the price
// rounded to two decimal places; Key returns that canonical form.
//
// The zero value of Price is invalid and will fail validation - use the
// constructors to create instances.
//
// Example:
//
//	p, err := kernel.NewPriceFromString("10.00")
//	if err != nil {
//	    // handle validation error
//	}
//	fmt.Println(p.Key()) // Output: 10.00
type Price struct { //nolint:recvcheck //using for validation
	amount decimal.Decimal
	guard  guard.ConstructorGuard
}

// NewPrice creates a Price from a decimal amount.
// The amount must not be negative.
func NewPrice(amount decimal.Decimal) (Price, error) {
	if amount.IsNegative() {
		return Price{}, errs.NewValueIsInvalidErrorWithCause(
			"price", fmt.Errorf("%s is negative", amount.String()))
	}

	return Price{amount: amount, guard: guard.NewConstructorGuard()}, nil
}

// NewPriceFromString parses a decimal string such as "10.00" into a Price.
// Returns an error for malformed or negative input.
func NewPriceFromString(s string) (Price, error) {
	amount, err := decimal.NewFromString(s)
	if err != nil {
		return Price{}, errs.NewValueIsInvalidErrorWithCause("price", err)
	}
	return NewPrice(amount)
}

// NewPriceFromFloat creates a Price from a float64 amount.
// Intended for test fixtures and local rate providers; wire and persistence
// paths should prefer NewPriceFromString.
func NewPriceFromFloat(f float64) (Price, error) {
	return NewPrice(decimal.NewFromFloat(f))
}

// Validate checks if the Price was properly constructed via a constructor.
func (p Price) Validate() error {
	return p.guard.Validate(ErrPriceIsNotConstructed)
}

// Amount returns the underlying decimal amount.
func (p Price) Amount() decimal.Decimal {
	return p.amount
}

// Key returns the amount rounded to two decimal places as a string.
// This is the canonical form used in quote deduplication keys and in
// same-offer comparison.
func (p Price) Key() string {
	return p.amount.StringFixed(2)
}

// Float64 returns the amount as a float64 for display purposes.
// The conversion may lose precision; never use it for comparison.
func (p Price) Float64() float64 {
	f, _ := p.amount.Float64()
	return f
}

// Cmp compares two prices, returning -1, 0, or 1 when p is less than, equal
// to, or greater than other.
func (p Price) Cmp(other Price) int {
	return p.amount.Cmp(other.amount)
}

// LessThan reports whether p is strictly cheaper than other.
func (p Price) LessThan(other Price) bool {
	return p.amount.LessThan(other.amount)
}

// IsEqual reports whether two prices represent the same offer amount,
// comparing the two-decimal canonical form.
func (p Price) IsEqual(other Price) bool {
	return p.Key() == other.Key()
}

// String returns the exact decimal representation.
// This method implements the fmt.Stringer interface.
func (p Price) String() string {
	return p.amount.String()
}
