package order

import (
	"github.com/YaswanthBabuK/Swiggy-mcp-clone/internal/core/domain/model/schema"
	"github.com/YaswanthBabuK/Swiggy-mcp-clone/internal/pkg/errs"
	"github.com/YaswanthBabuK/Swiggy-mcp-clone/internal/pkg/guard"
)

// ErrDeliveryAddressIsNotConstructed indicates a DeliveryAddress that
// bypassed its constructors.
var ErrDeliveryAddressIsNotConstructed = errs.NewValueIsRequiredError(
	"DeliveryAddress must be created via NewDeliveryAddress or DeliveryAddressFromMap")

// DeliveryAddress is the destination an order is delivered to. The pincode
// is exactly six characters.
type DeliveryAddress struct {
	label   string
	address string
	city    string
	pincode string
	guard   guard.ConstructorGuard
}

// NewDeliveryAddress creates a validated DeliveryAddress from typed values.
func NewDeliveryAddress(label, address, city, pincode string) (DeliveryAddress, error) {
	var report schema.Errors
	report.Check(fieldPincode, schema.ExactLength(pincodeLength)(fieldPincode, pincode))
	if err := report.Err(); err != nil {
		return DeliveryAddress{}, err
	}

	return DeliveryAddress{
		label:   label,
		address: address,
		city:    city,
		pincode: pincode,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// DeliveryAddressFromMap constructs a DeliveryAddress from a raw mapping,
// collecting every field failure before reporting.
func DeliveryAddressFromMap(raw map[string]any) (DeliveryAddress, error) {
	d := schema.NewDecoder(raw)
	label := d.String(fieldLabel)
	address := d.String(fieldAddress)
	city := d.String(fieldCity)
	pincode := d.String(fieldPincode, schema.ExactLength(pincodeLength))
	if err := d.Err(); err != nil {
		return DeliveryAddress{}, err
	}

	return DeliveryAddress{
		label:   label,
		address: address,
		city:    city,
		pincode: pincode,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// ToMap serializes the DeliveryAddress back to its raw mapping form.
func (a DeliveryAddress) ToMap() map[string]any {
	return map[string]any{
		fieldLabel:   a.label,
		fieldAddress: a.address,
		fieldCity:    a.city,
		fieldPincode: a.pincode,
	}
}

// Validate ensures the DeliveryAddress was created through a constructor.
func (a DeliveryAddress) Validate() error {
	return a.guard.Validate(ErrDeliveryAddressIsNotConstructed)
}

// Label returns the address label, e.g. Home or Work.
func (a DeliveryAddress) Label() string {
	return a.label
}

// Address returns the complete street address.
func (a DeliveryAddress) Address() string {
	return a.address
}

// City returns the city name.
func (a DeliveryAddress) City() string {
	return a.city
}

// Pincode returns the six-character postal code.
func (a DeliveryAddress) Pincode() string {
	return a.pincode
}
