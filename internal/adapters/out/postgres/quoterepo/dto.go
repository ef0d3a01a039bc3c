// Package quoterepo persists normalized quote batches. A batch is the
// deduplicated output of one rate fetch; rows keep their normalization order
// in the position column so reads can rebuild the exact grouping.
package quoterepo

import (
	"time"

	"rateshop/internal/core/domain/model/kernel"
	"rateshop/internal/core/domain/model/rate"

	"github.com/google/uuid"
)

// QuoteDTO represents one persisted quote of a batch.
type QuoteDTO struct {
	ShipmentID uuid.UUID `gorm:"type:uuid;primaryKey"`
	RateType   string    `gorm:"type:varchar(1);primaryKey"`
	Position   int       `gorm:"primaryKey"`
	RateID     string
	Carrier    string
	Service    string
	Price      string    `gorm:"type:numeric(12,4)"`
	Source     string
	FetchedAt  time.Time `gorm:"index"`
}

// TableName specifies the database table name for quote rows.
func (QuoteDTO) TableName() string {
	return "quotes"
}

func fromDomain(
	shipmentID kernel.UUID, rateType kernel.RateType, position int, quote rate.Quote, fetchedAt time.Time,
) QuoteDTO {
	return QuoteDTO{
		ShipmentID: shipmentID.Bytes(),
		RateType:   rateType.String(),
		Position:   position,
		RateID:     quote.ID(),
		Carrier:    quote.Carrier(),
		Service:    quote.Service(),
		Price:      quote.Price().String(),
		Source:     quote.Source(),
		FetchedAt:  fetchedAt,
	}
}

func toDomain(dto QuoteDTO) (rate.Quote, error) {
	price, err := kernel.NewPriceFromString(dto.Price)
	if err != nil {
		return rate.Quote{}, err
	}

	return rate.NewQuote(dto.RateID, dto.Carrier, dto.Service, price, dto.Source)
}
