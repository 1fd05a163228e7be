package order

import (
	"github.com/YaswanthBabuK/Swiggy-mcp-clone/internal/core/domain/model/schema"
	"github.com/YaswanthBabuK/Swiggy-mcp-clone/internal/pkg/errs"
	"github.com/YaswanthBabuK/Swiggy-mcp-clone/internal/pkg/guard"
)

// ErrItemIsNotConstructed indicates an Item that bypassed its constructors.
var ErrItemIsNotConstructed = errs.NewValueIsRequiredError(
	"Item must be created via NewItem or ItemFromMap")

// Item is one ordered line item. Quantity is at least one, price is never
// negative, and customizations default to a fresh empty sequence when
// absent.
type Item struct {
	name           string
	quantity       int
	price          float64
	customizations []string
	guard          guard.ConstructorGuard
}

// NewItem creates a validated Item from typed values. A nil customizations
// slice becomes a fresh empty sequence.
func NewItem(name string, quantity int, price float64, customizations []string) (Item, error) {
	var report schema.Errors
	report.Check(fieldQuantity, schema.IntMin(1)(fieldQuantity, quantity))
	report.Check(fieldPrice, schema.FloatMin(0)(fieldPrice, price))
	if err := report.Err(); err != nil {
		return Item{}, err
	}

	return Item{
		name:           name,
		quantity:       quantity,
		price:          price,
		customizations: copyStrings(customizations),
		guard:          guard.NewConstructorGuard(),
	}, nil
}

// ItemFromMap constructs an Item from a raw mapping, collecting every field
// failure before reporting.
func ItemFromMap(raw map[string]any) (Item, error) {
	d := schema.NewDecoder(raw)
	name := d.String(fieldName)
	quantity := d.Int(fieldQuantity, schema.IntMin(1))
	price := d.Float(fieldPrice, schema.FloatMin(0))
	customizations := d.Strings(fieldCustomizations)
	if err := d.Err(); err != nil {
		return Item{}, err
	}

	return Item{
		name:           name,
		quantity:       quantity,
		price:          price,
		customizations: customizations,
		guard:          guard.NewConstructorGuard(),
	}, nil
}

// ToMap serializes the Item back to its raw mapping form.
func (i Item) ToMap() map[string]any {
	return map[string]any{
		fieldName:           i.name,
		fieldQuantity:       i.quantity,
		fieldPrice:          i.price,
		fieldCustomizations: copyStrings(i.customizations),
	}
}

// Validate ensures the Item was created through a constructor.
func (i Item) Validate() error {
	return i.guard.Validate(ErrItemIsNotConstructed)
}

// Name returns the item name.
func (i Item) Name() string {
	return i.name
}

// Quantity returns the quantity ordered.
func (i Item) Quantity() int {
	return i.quantity
}

// Price returns the unit price.
func (i Item) Price() float64 {
	return i.price
}

// Customizations returns a copy of the custom requests.
func (i Item) Customizations() []string {
	return copyStrings(i.customizations)
}

// copyStrings clones a string sequence, turning nil into a fresh empty
// sequence so defaults are never shared between record instances.
func copyStrings(s []string) []string {
	out := make([]string, len(s))
	copy(out, s)
	return out
}
