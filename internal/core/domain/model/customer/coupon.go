package customer

import (
	"github.com/YaswanthBabuK/Swiggy-mcp-clone/internal/core/domain/model/kernel"
	"github.com/YaswanthBabuK/Swiggy-mcp-clone/internal/core/domain/model/schema"
	"github.com/YaswanthBabuK/Swiggy-mcp-clone/internal/pkg/errs"
	"github.com/YaswanthBabuK/Swiggy-mcp-clone/internal/pkg/guard"
)

// ErrCouponIsNotConstructed indicates a Coupon that bypassed its
// constructors.
var ErrCouponIsNotConstructed = errs.NewValueIsRequiredError(
	"Coupon must be created via NewCoupon or CouponFromMap")

// Coupon is a promotional code assigned to a customer. validUntil is a
// calendar date, not an instant.
type Coupon struct {
	code        string
	description string
	validUntil  kernel.Date
	guard       guard.ConstructorGuard
}

// NewCoupon creates a validated Coupon from typed values.
func NewCoupon(code, description string, validUntil kernel.Date) (Coupon, error) {
	var report schema.Errors
	report.Check(fieldValidUntil, validUntil.Validate())
	if err := report.Err(); err != nil {
		return Coupon{}, err
	}

	return Coupon{
		code:        code,
		description: description,
		validUntil:  validUntil,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// CouponFromMap constructs a Coupon from a raw mapping, collecting every
// field failure before reporting.
func CouponFromMap(raw map[string]any) (Coupon, error) {
	d := schema.NewDecoder(raw)
	code := d.String(fieldCode)
	description := d.String(fieldDescription)
	validUntil := d.Date(fieldValidUntil)
	if err := d.Err(); err != nil {
		return Coupon{}, err
	}

	return Coupon{
		code:        code,
		description: description,
		validUntil:  validUntil,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// ToMap serializes the Coupon back to its raw mapping form.
func (c Coupon) ToMap() map[string]any {
	return map[string]any{
		fieldCode:        c.code,
		fieldDescription: c.description,
		fieldValidUntil:  c.validUntil.String(),
	}
}

// Validate ensures the Coupon was created through a constructor.
func (c Coupon) Validate() error {
	return c.guard.Validate(ErrCouponIsNotConstructed)
}

// Code returns the coupon code.
func (c Coupon) Code() string {
	return c.code
}

// Description returns the coupon description.
func (c Coupon) Description() string {
	return c.description
}

// ValidUntil returns the expiry date.
func (c Coupon) ValidUntil() kernel.Date {
	return c.validUntil
}
