// Package selectionrepo provides data transfer objects and mapping functions
// for active rate selection persistence. Implements the repository pattern for
// the selection aggregate, converting between domain entities and the
// relational representation.
package selectionrepo

import (
	"time"

	"rateshop/internal/core/domain/model/kernel"
	"rateshop/internal/core/domain/model/selection"

	"github.com/google/uuid"
)

// SelectionDTO represents the database row for an active rate selection.
// One row per (shipment, rate type); upserts overwrite in place, so the table
// never accumulates selection history.
type SelectionDTO struct {
	ShipmentID uuid.UUID `gorm:"type:uuid;primaryKey"`
	RateType   string    `gorm:"type:varchar(1);primaryKey"`
	RateID     string
	Carrier    string
	Service    string
	Price      string    `gorm:"type:numeric(12,4)"`
	UpdatedAt  time.Time `gorm:"autoUpdateTime"`
}

// TableName specifies the database table name for selection rows.
func (SelectionDTO) TableName() string {
	return "active_rate_selections"
}

// fromDomain converts a selection aggregate to its database representation.
func fromDomain(aggregate *selection.ActiveRateSelection) SelectionDTO {
	return SelectionDTO{
		ShipmentID: aggregate.ShipmentID().Bytes(),
		RateType:   aggregate.RateType().String(),
		RateID:     aggregate.RateID(),
		Carrier:    aggregate.Carrier(),
		Service:    aggregate.Service(),
		Price:      aggregate.Price().String(),
	}
}

// toDomain converts a database row back to a selection aggregate,
// revalidating the stored fields through the domain constructors.
func toDomain(dto SelectionDTO) (*selection.ActiveRateSelection, error) {
	shipmentID, err := kernel.UUIDFromBytes(dto.ShipmentID[:])
	if err != nil {
		return nil, err
	}

	rateType, err := kernel.RateTypeFromString(dto.RateType)
	if err != nil {
		return nil, err
	}

	price, err := kernel.NewPriceFromString(dto.Price)
	if err != nil {
		return nil, err
	}

	return selection.RestoreActiveRateSelection(
		shipmentID, rateType, dto.Carrier, dto.Service, dto.RateID, price)
}
