package order

import (
	"github.com/YaswanthBabuK/Swiggy-mcp-clone/internal/core/domain/model/schema"
	"github.com/YaswanthBabuK/Swiggy-mcp-clone/internal/pkg/errs"
	"github.com/YaswanthBabuK/Swiggy-mcp-clone/internal/pkg/guard"
)

// ErrIdentityIsNotConstructed indicates an Identity that bypassed its
// constructors.
var ErrIdentityIsNotConstructed = errs.NewValueIsRequiredError(
	"Identity must be created via NewIdentity or IdentityFromMap")

// Identity is the minimal identification fragment of an order: who ordered
// and under which order id. All three fields must carry at least five
// characters.
type Identity struct {
	orderID      string
	customerID   string
	customerName string
	guard        guard.ConstructorGuard
}

// NewIdentity creates a validated Identity from typed values.
func NewIdentity(orderID, customerID, customerName string) (Identity, error) {
	var report schema.Errors
	report.Check(fieldOrderID, schema.MinLength(identityMinLength)(fieldOrderID, orderID))
	report.Check(fieldCustomerID, schema.MinLength(identityMinLength)(fieldCustomerID, customerID))
	report.Check(fieldCustomerName, schema.MinLength(identityMinLength)(fieldCustomerName, customerName))
	if err := report.Err(); err != nil {
		return Identity{}, err
	}

	return Identity{
		orderID:      orderID,
		customerID:   customerID,
		customerName: customerName,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// IdentityFromMap constructs an Identity from a raw mapping, collecting
// every field failure before reporting.
func IdentityFromMap(raw map[string]any) (Identity, error) {
	d := schema.NewDecoder(raw)
	orderID := d.String(fieldOrderID, schema.MinLength(identityMinLength))
	customerID := d.String(fieldCustomerID, schema.MinLength(identityMinLength))
	customerName := d.String(fieldCustomerName, schema.MinLength(identityMinLength))
	if err := d.Err(); err != nil {
		return Identity{}, err
	}

	return Identity{
		orderID:      orderID,
		customerID:   customerID,
		customerName: customerName,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// ToMap serializes the Identity back to its raw mapping form.
func (i Identity) ToMap() map[string]any {
	return map[string]any{
		fieldOrderID:      i.orderID,
		fieldCustomerID:   i.customerID,
		fieldCustomerName: i.customerName,
	}
}

// Validate ensures the Identity was created through a constructor.
func (i Identity) Validate() error {
	return i.guard.Validate(ErrIdentityIsNotConstructed)
}

// OrderID returns the order identifier.
func (i Identity) OrderID() string {
	return i.orderID
}

// CustomerID returns the customer identifier.
func (i Identity) CustomerID() string {
	return i.customerID
}

// CustomerName returns the name of the customer who placed the order.
func (i Identity) CustomerName() string {
	return i.customerName
}
