package rate

import (
	"errors"

	"rateshop/internal/core/domain/model/kernel"
	"rateshop/internal/pkg/errs"
	"rateshop/internal/pkg/guard"
)

// ErrQuoteIsNotConstructed is returned when a Quote instance was not created
// through the NewQuote factory method.
var ErrQuoteIsNotConstructed = errors.New("Quote must be created via NewQuote constructor")

// RawQuote is the ingestion shape of a quote as delivered by an upstream
// rate-shopping source, before any validation. Price travels as a decimal
// string; empty or malformed fields are legal here and cause the quote to be
// dropped during normalization rather than failing the batch.
type RawQuote struct {
	ID      string
	Carrier string
	Service string
	Price   string
	Source  string
}

// Quote is a validated rate quote for one carrier service.
//
// Two quotes are considered the same service offer when their service name
// and price (rounded to two decimals) match, irrespective of the upstream id
// or source that produced them; SameOffer implements that comparison and
// dedupKey is its map form.
//
// Quote is an immutable value object; use NewQuote to create instances.
type Quote struct { //nolint:recvcheck //using for validation
	id      string
	carrier string
	service string
	price   kernel.Price
	source  string

	guard guard.ConstructorGuard
}

// NewQuote creates a validated Quote. Carrier, service and a constructed
// price are required; the upstream id and source name are optional metadata.
func NewQuote(id, carrier, service string, price kernel.Price, source string) (Quote, error) {
	quote := Quote{
		id:     id,
		source: source,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		quote.setCarrier(carrier),
		quote.setService(service),
		quote.setPrice(price),
	); err != nil {
		return Quote{}, err
	}

	return quote, nil
}

// Validate ensures the Quote was created through NewQuote.
func (q Quote) Validate() error {
	return q.guard.Validate(ErrQuoteIsNotConstructed)
}

// ID returns the stable identifier issued by the upstream rate source.
// May be empty for sources that do not issue ids.
func (q Quote) ID() string {
	return q.id
}

// Carrier returns the carrier name, e.g. "UPS".
func (q Quote) Carrier() string {
	return q.carrier
}

// Service returns the carrier service level, e.g. "Ground".
func (q Quote) Service() string {
	return q.service
}

// Price returns the quoted price.
func (q Quote) Price() kernel.Price {
	return q.price
}

// Source returns the name of the upstream source that produced the quote.
func (q Quote) Source() string {
	return q.source
}

// SameOffer reports whether two quotes represent the same service offer:
// same service name and same price rounded to two decimals. Upstream id and
// source are deliberately ignored.
func (q Quote) SameOffer(other Quote) bool {
	return q.service == other.service && q.price.IsEqual(other.price)
}

// dedupKey is the within-carrier deduplication key.
func (q Quote) dedupKey() string {
	return q.service + "|" + q.price.Key()
}

func (q *Quote) setCarrier(carrier string) error {
	if carrier == "" {
		return errs.NewValueIsRequiredError("carrier")
	}

	q.carrier = carrier
	return nil
}

func (q *Quote) setService(service string) error {
	if service == "" {
		return errs.NewValueIsRequiredError("service")
	}

	q.service = service
	return nil
}

func (q *Quote) setPrice(price kernel.Price) error {
	if err := price.Validate(); err != nil {
		return err
	}

	q.price = price
	return nil
}
