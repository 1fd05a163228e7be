package order

import (
	"github.com/YaswanthBabuK/Swiggy-mcp-clone/internal/core/domain/model/schema"
	"github.com/YaswanthBabuK/Swiggy-mcp-clone/internal/pkg/errs"
	"github.com/YaswanthBabuK/Swiggy-mcp-clone/internal/pkg/guard"
)

// ErrDeliveryPartnerIsNotConstructed indicates a DeliveryPartner that
// bypassed its constructors.
var ErrDeliveryPartnerIsNotConstructed = errs.NewValueIsRequiredError(
	"DeliveryPartner must be created via NewDeliveryPartner or DeliveryPartnerFromMap")

// DeliveryPartner is the rider assigned to an order.
type DeliveryPartner struct {
	name   string
	rating float64
	phone  string
	guard  guard.ConstructorGuard
}

// NewDeliveryPartner creates a validated DeliveryPartner from typed values.
func NewDeliveryPartner(name string, rating float64, phone string) (DeliveryPartner, error) {
	var report schema.Errors
	report.Check(fieldRating, schema.FloatRange(0, 5)(fieldRating, rating))
	if err := report.Err(); err != nil {
		return DeliveryPartner{}, err
	}

	return DeliveryPartner{
		name:   name,
		rating: rating,
		phone:  phone,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// DeliveryPartnerFromMap constructs a DeliveryPartner from a raw mapping,
// collecting every field failure before reporting.
func DeliveryPartnerFromMap(raw map[string]any) (DeliveryPartner, error) {
	d := schema.NewDecoder(raw)
	name := d.String(fieldName)
	rating := d.Float(fieldRating, schema.FloatRange(0, 5))
	phone := d.String(fieldPhone)
	if err := d.Err(); err != nil {
		return DeliveryPartner{}, err
	}

	return DeliveryPartner{
		name:   name,
		rating: rating,
		phone:  phone,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// ToMap serializes the DeliveryPartner back to its raw mapping form.
func (p DeliveryPartner) ToMap() map[string]any {
	return map[string]any{
		fieldName:   p.name,
		fieldRating: p.rating,
		fieldPhone:  p.phone,
	}
}

// Validate ensures the DeliveryPartner was created through a constructor.
func (p DeliveryPartner) Validate() error {
	return p.guard.Validate(ErrDeliveryPartnerIsNotConstructed)
}

// Name returns the delivery partner's name.
func (p DeliveryPartner) Name() string {
	return p.name
}

// Rating returns the delivery partner rating, between 0 and 5 inclusive.
func (p DeliveryPartner) Rating() float64 {
	return p.rating
}

// Phone returns the contact number.
func (p DeliveryPartner) Phone() string {
	return p.phone
}
