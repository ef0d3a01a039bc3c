// Package kernel provides core domain primitives for the rate engine.
// It implements fundamental building blocks following Domain-Driven Design
// principles that are used throughout the domain model.
//
// The package includes:
//   - UUID: a value object for unique identifiers with validation and comparison
//   - Price: a value object for carrier rate amounts backed by arbitrary-precision decimals
//   - RateType: the discriminator between declared-dimension and measured-dimension pricing
//
// These primitives enforce domain invariants and validation rules, ensuring
// that domain objects are always in a valid state. They are designed to be
// immutable and thread-safe, making them suitable for concurrent use.
package kernel
