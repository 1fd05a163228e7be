package order

import (
	"github.com/YaswanthBabuK/Swiggy-mcp-clone/internal/core/domain/model/kernel"
	"github.com/YaswanthBabuK/Swiggy-mcp-clone/internal/core/domain/model/schema"
	"github.com/YaswanthBabuK/Swiggy-mcp-clone/internal/pkg/errs"
	"github.com/YaswanthBabuK/Swiggy-mcp-clone/internal/pkg/guard"
)

// ErrRecentOrderIsNotConstructed indicates a RecentOrder that bypassed its
// constructors.
var ErrRecentOrderIsNotConstructed = errs.NewValueIsRequiredError(
	"RecentOrder must be created via NewRecentOrder or RecentOrderFromMap")

// RecentOrder is the order summary that appears in a customer's history. It
// is structurally parallel to Order minus the customer identification: only
// the order id remains.
type RecentOrder struct {
	orderID string
	orderCore
	guard guard.ConstructorGuard
}

// NewRecentOrder assembles a RecentOrder from already constructed parts.
func NewRecentOrder(orderID string, orderDate kernel.Timestamp, status Status, restaurant Restaurant,
	items []Item, pricing Pricing, payment Payment, deliveryAddress DeliveryAddress,
	deliveryPartner DeliveryPartner, timeline Timeline, ratings Ratings) (RecentOrder, error) {
	var report schema.Errors
	report.Check(fieldOrderID, schema.MinLength(identityMinLength)(fieldOrderID, orderID))

	core, err := newOrderCore(orderDate, status, restaurant, items,
		pricing, payment, deliveryAddress, deliveryPartner, timeline, ratings)
	report.Merge(err)

	if err := report.Err(); err != nil {
		return RecentOrder{}, err
	}

	return RecentOrder{
		orderID:   orderID,
		orderCore: core,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// RecentOrderFromMap constructs a RecentOrder from a raw mapping, collecting
// every field failure across the whole record before reporting.
func RecentOrderFromMap(raw map[string]any) (RecentOrder, error) {
	d := schema.NewDecoder(raw)

	orderID := d.String(fieldOrderID, schema.MinLength(identityMinLength))
	core := decodeOrderCore(d)

	if err := d.Err(); err != nil {
		return RecentOrder{}, err
	}

	return RecentOrder{
		orderID:   orderID,
		orderCore: core,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// ToMap serializes the RecentOrder back to its raw mapping form.
func (r RecentOrder) ToMap() map[string]any {
	m := r.orderCore.toMap()
	m[fieldOrderID] = r.orderID
	return m
}

// Validate ensures the RecentOrder was created through a constructor.
func (r RecentOrder) Validate() error {
	return r.guard.Validate(ErrRecentOrderIsNotConstructed)
}

// OrderID returns the order identifier.
func (r RecentOrder) OrderID() string {
	return r.orderID
}
