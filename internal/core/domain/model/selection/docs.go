// Package selection provides the ActiveRateSelection aggregate: the durable
// record of which carrier quote a shipper has chosen (or the engine
// auto-chose) for a shipment, kept independently per rate-type context.
//
// Key business rules:
//   - One selection per (shipment, rate type) pair; the declared ("D") and
//     measured ("O") contexts live side by side without interfering.
//   - Last write wins: a new selection overwrites the old one entirely and
//     no history is kept.
//   - Re-selecting the active quote leaves the stored state unchanged.
package selection
