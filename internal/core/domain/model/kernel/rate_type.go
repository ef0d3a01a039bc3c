package kernel

import (
	"fmt"

	"rateshop/internal/pkg/errs"
)

// RateType discriminates between the two independently priced dimension
// contexts of a shipment. A shipment may carry one active rate selection per
// RateType, each with its own lifecycle.
//
// The two contexts are:
//
//	RateTypeDeclared ("D") - pricing against the dimensions declared for
//	customs and carrier billing.
//	RateTypeMeasured ("O") - pricing against physically measured or
//	inventory-sourced dimensions.
type RateType int

const (
	// RateTypeUnknown represents an invalid or undefined rate type.
	// This value (0) helps catch uninitialized RateType values.
	RateTypeUnknown RateType = iota

	// RateTypeDeclared selects declared-dimension pricing ("D").
	RateTypeDeclared

	// RateTypeMeasured selects measured-dimension pricing ("O").
	RateTypeMeasured
)

// getRateTypeStrings returns the wire/persistence codes for all rate types.
func getRateTypeStrings() map[RateType]string {
	return map[RateType]string{
		RateTypeUnknown:  "Unknown",
		RateTypeDeclared: "D",
		RateTypeMeasured: "O",
	}
}

// getValidRateTypeStrings returns only valid rate types, to support validation.
func getValidRateTypeStrings() map[RateType]string {
	//nolint:exhaustive // RateTypeUnknown is intentionally excluded as it's invalid
	return map[RateType]string{
		RateTypeDeclared: "D",
		RateTypeMeasured: "O",
	}
}

// RateTypeFromString parses the single-letter code ("D" or "O") used on the
// wire and in persistence. Returns an error for any other input.
func RateTypeFromString(s string) (RateType, error) {
	for rt, code := range getValidRateTypeStrings() {
		if code == s {
			return rt, nil
		}
	}
	return RateTypeUnknown, errs.NewValueIsInvalidErrorWithCause(
		"rate type is invalid", fmt.Errorf("%q is not a valid rate type", s))
}

// Validate checks if the RateType value is valid.
// Valid rate types are RateTypeDeclared and RateTypeMeasured;
// RateTypeUnknown (0) and any other values are invalid.
func (rt RateType) Validate() error {
	if _, ok := getValidRateTypeStrings()[rt]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"rate type is invalid", fmt.Errorf("%d is not a valid rate type", rt))
	}
	return nil
}

// String returns the single-letter code of the rate type, or "Unknown" for
// invalid values. This method implements the fmt.Stringer interface and is
// safe to call on any RateType value.
func (rt RateType) String() string {
	if str, ok := getRateTypeStrings()[rt]; ok {
		return str
	}
	return "Unknown"
}
