package order

import (
	"github.com/YaswanthBabuK/Swiggy-mcp-clone/internal/core/domain/model/schema"
	"github.com/YaswanthBabuK/Swiggy-mcp-clone/internal/pkg/errs"
	"github.com/YaswanthBabuK/Swiggy-mcp-clone/internal/pkg/guard"
)

// ErrPaymentIsNotConstructed indicates a Payment that bypassed its
// constructors.
var ErrPaymentIsNotConstructed = errs.NewValueIsRequiredError(
	"Payment must be created via NewPayment or PaymentFromMap")

// Payment is the payment record of an order. The transaction id carries an
// explicit wire alias in the field-name table.
type Payment struct {
	method        string
	transactionID string
	status        string
	guard         guard.ConstructorGuard
}

// NewPayment creates a Payment from typed values.
func NewPayment(method, transactionID, status string) (Payment, error) {
	return Payment{
		method:        method,
		transactionID: transactionID,
		status:        status,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

// PaymentFromMap constructs a Payment from a raw mapping, collecting every
// field failure before reporting.
func PaymentFromMap(raw map[string]any) (Payment, error) {
	d := schema.NewDecoder(raw)
	method := d.String(fieldMethod)
	transactionID := d.String(fieldTransactionID)
	status := d.String(fieldStatus)
	if err := d.Err(); err != nil {
		return Payment{}, err
	}

	return Payment{
		method:        method,
		transactionID: transactionID,
		status:        status,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

// ToMap serializes the Payment back to its raw mapping form.
func (p Payment) ToMap() map[string]any {
	return map[string]any{
		fieldMethod:        p.method,
		fieldTransactionID: p.transactionID,
		fieldStatus:        p.status,
	}
}

// Validate ensures the Payment was created through a constructor.
func (p Payment) Validate() error {
	return p.guard.Validate(ErrPaymentIsNotConstructed)
}

// Method returns the payment method used.
func (p Payment) Method() string {
	return p.method
}

// TransactionID returns the unique transaction identifier.
func (p Payment) TransactionID() string {
	return p.transactionID
}

// Status returns the payment status.
func (p Payment) Status() string {
	return p.status
}
