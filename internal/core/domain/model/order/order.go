package order

import (
	"errors"

	"github.com/YaswanthBabuK/Swiggy-mcp-clone/internal/core/domain/model/kernel"
	"github.com/YaswanthBabuK/Swiggy-mcp-clone/internal/core/domain/model/schema"
)

// ErrOrderIsNotConstructed is returned when an Order instance was not
// created through NewOrder or OrderFromMap. This ensures all orders are
// properly validated.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or OrderFromMap")

// Order is the full order aggregate. It exclusively owns every nested
// record, is born fully validated or not born at all, and is never mutated
// after construction.
type Order struct {
	identity Identity
	orderCore

	// isConstructed ensures the order was created via a constructor
	isConstructed bool
}

// NewOrder assembles an Order from already constructed parts. Every part is
// re-checked for proper construction, and every failing part is reported,
// not just the first.
func NewOrder(identity Identity, orderDate kernel.Timestamp, status Status, restaurant Restaurant,
	items []Item, pricing Pricing, payment Payment, deliveryAddress DeliveryAddress,
	deliveryPartner DeliveryPartner, timeline Timeline, ratings Ratings) (*Order, error) {
	var report schema.Errors
	report.Merge(identity.Validate())

	core, err := newOrderCore(orderDate, status, restaurant, items,
		pricing, payment, deliveryAddress, deliveryPartner, timeline, ratings)
	report.Merge(err)

	if err := report.Err(); err != nil {
		return nil, err
	}

	return &Order{
		identity:      identity,
		orderCore:     core,
		isConstructed: true,
	}, nil
}

// OrderFromMap constructs an Order from a raw mapping. The identity fields
// live flat at the top level next to the shared fields; nested records are
// decoded recursively. All field failures across the whole aggregate are
// collected into one report, and no partial Order is ever returned.
func OrderFromMap(raw map[string]any) (*Order, error) {
	d := schema.NewDecoder(raw)

	identity, err := IdentityFromMap(raw)
	d.Merge(err)

	core := decodeOrderCore(d)

	if err := d.Err(); err != nil {
		return nil, err
	}

	return &Order{
		identity:      identity,
		orderCore:     core,
		isConstructed: true,
	}, nil
}

// ToMap serializes the Order back to its raw mapping form. Reconstructing
// the result yields an equal Order.
func (o *Order) ToMap() map[string]any {
	m := o.orderCore.toMap()
	for name, value := range o.identity.ToMap() {
		m[name] = value
	}
	return m
}

// Validate ensures the Order instance was properly constructed through a
// constructor. This prevents bypassing validation by directly instantiating
// the struct.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their order identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.identity.OrderID() == other.identity.OrderID()
}

// Identity returns the identification fragment of the order.
func (o *Order) Identity() Identity {
	return o.identity
}

// OrderID returns the order identifier.
func (o *Order) OrderID() string {
	return o.identity.OrderID()
}

// CustomerID returns the customer identifier.
func (o *Order) CustomerID() string {
	return o.identity.CustomerID()
}

// CustomerName returns the name of the customer who placed the order.
func (o *Order) CustomerName() string {
	return o.identity.CustomerName()
}
