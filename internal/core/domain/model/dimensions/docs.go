// Package dimensions provides the dimension-tuple data model shared by the
// declared and measured pricing contexts of a shipment, together with the two
// pure computations built on it:
//
//   - Resolver: picks the effective length/width/height/weight tuple for a
//     shipment from its candidate sources, applying the quantity-aware weight
//     rule and an explicit, ordered fallback chain per field.
//   - Classifier: computes the cubic size of a tuple and flags it against the
//     weight-tiered volume-overage threshold table.
//
// Unlike most of the domain model, DimensionSet is not constructor-guarded:
// an incomplete tuple is itself meaningful ("not ready to rate") and must
// propagate rather than fail. Resolution never raises; missing source fields
// resolve to zero.
package dimensions
