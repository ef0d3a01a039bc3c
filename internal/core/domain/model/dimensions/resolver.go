package dimensions

// ShipmentProfile carries every dimension-bearing field recorded for a
// shipment, from all of its sources:
//
//   - Declared* fields are the values persisted for customs and carrier
//     billing (the "_d" columns of the order record). They are used directly
//     by the declared context, without recomputation.
//   - Item* fields come from inventory master data and describe a single
//     unit of the shipped article.
//   - Order* fields are the legacy order-level dimensions, used as fallback
//     when inventory data is absent.
//
// Missing fields are zero; the resolver treats zero as "absent" and walks
// the fallback chain.
type ShipmentProfile struct {
	DeclaredLength float64
	DeclaredWidth  float64
	DeclaredHeight float64
	DeclaredWeight float64

	ItemLength float64
	ItemWidth  float64
	ItemHeight float64

	// ItemDeclaredWeight is the weight declared for a single unit.
	// It is defined per unit only and is never scaled by quantity.
	ItemDeclaredWeight float64

	// ItemActualWeight is the measured per-unit weight.
	ItemActualWeight float64

	OrderLength float64
	OrderWidth  float64
	OrderHeight float64
	OrderWeight float64
}

// ResolveDeclared returns the declared-context dimension tuple: the persisted
// "_d" fields as-is. No fallback chain and no quantity scaling apply; the
// declared values either exist or the context is simply not ready.
func ResolveDeclared(profile ShipmentProfile) DimensionSet {
	return NewDimensionSet(
		profile.DeclaredLength,
		profile.DeclaredWidth,
		profile.DeclaredHeight,
		profile.DeclaredWeight,
	)
}

// ResolveMeasured returns the measured-context dimension tuple for shipping
// quantity units.
//
// Sides resolve through an ordered candidate chain, inventory first:
//
//	length: ItemLength, OrderLength
//	width:  ItemWidth,  OrderWidth
//	height: ItemHeight, OrderHeight
//
// Sides are per-package and are not scaled by quantity.
//
// Weight follows the quantity rule. The per-unit declared weight is only
// meaningful for a single unit, so multi-unit shipments bypass it entirely:
//
//	quantity <= 1: declared unit weight, falling back to actual unit weight
//	quantity  > 1: actual unit weight x quantity (even when actual is zero)
//
// where the actual unit weight itself falls back to the legacy order-level
// weight when inventory data is absent.
//
// Resolution never fails; fields with no usable candidate resolve to zero
// and yield an incomplete set, which signals "not ready to rate".
func ResolveMeasured(profile ShipmentProfile, quantity int) DimensionSet {
	actualWeight := firstPositive(profile.ItemActualWeight, profile.OrderWeight)

	var weight float64
	if quantity > 1 {
		weight = actualWeight * float64(quantity)
	} else {
		weight = firstPositive(profile.ItemDeclaredWeight, actualWeight)
	}

	return NewDimensionSet(
		firstPositive(profile.ItemLength, profile.OrderLength),
		firstPositive(profile.ItemWidth, profile.OrderWidth),
		firstPositive(profile.ItemHeight, profile.OrderHeight),
		weight,
	)
}

// firstPositive walks an ordered candidate list and returns the first usable
// value. Candidates that are negative or non-finite count as absent.
func firstPositive(candidates ...float64) float64 {
	for _, c := range candidates {
		if v := sanitizeDimension(c); v > 0 {
			return v
		}
	}
	return 0
}
