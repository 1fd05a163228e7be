package order

import (
	"github.com/YaswanthBabuK/Swiggy-mcp-clone/internal/core/domain/model/schema"
	"github.com/YaswanthBabuK/Swiggy-mcp-clone/internal/pkg/errs"
	"github.com/YaswanthBabuK/Swiggy-mcp-clone/internal/pkg/guard"
)

// ErrPricingIsNotConstructed indicates a Pricing that bypassed its
// constructors.
var ErrPricingIsNotConstructed = errs.NewValueIsRequiredError(
	"Pricing must be created via NewPricing or PricingFromMap")

// Pricing is the detailed price breakdown for an order. Every component is
// non-negative; no cross-field arithmetic is enforced, totalAmount arrives
// already computed.
type Pricing struct {
	itemTotal   float64
	deliveryFee float64
	platformFee float64
	gst         float64
	discount    float64
	totalAmount float64
	guard       guard.ConstructorGuard
}

// NewPricing creates a validated Pricing from typed values.
func NewPricing(itemTotal, deliveryFee, platformFee, gst, discount, totalAmount float64) (Pricing, error) {
	var report schema.Errors
	nonNegative := schema.FloatMin(0)
	report.Check(fieldItemTotal, nonNegative(fieldItemTotal, itemTotal))
	report.Check(fieldDeliveryFee, nonNegative(fieldDeliveryFee, deliveryFee))
	report.Check(fieldPlatformFee, nonNegative(fieldPlatformFee, platformFee))
	report.Check(fieldGST, nonNegative(fieldGST, gst))
	report.Check(fieldDiscount, nonNegative(fieldDiscount, discount))
	report.Check(fieldTotalAmount, nonNegative(fieldTotalAmount, totalAmount))
	if err := report.Err(); err != nil {
		return Pricing{}, err
	}

	return Pricing{
		itemTotal:   itemTotal,
		deliveryFee: deliveryFee,
		platformFee: platformFee,
		gst:         gst,
		discount:    discount,
		totalAmount: totalAmount,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// PricingFromMap constructs a Pricing from a raw mapping, collecting every
// field failure before reporting.
func PricingFromMap(raw map[string]any) (Pricing, error) {
	d := schema.NewDecoder(raw)
	itemTotal := d.Float(fieldItemTotal, schema.FloatMin(0))
	deliveryFee := d.Float(fieldDeliveryFee, schema.FloatMin(0))
	platformFee := d.Float(fieldPlatformFee, schema.FloatMin(0))
	gst := d.Float(fieldGST, schema.FloatMin(0))
	discount := d.Float(fieldDiscount, schema.FloatMin(0))
	totalAmount := d.Float(fieldTotalAmount, schema.FloatMin(0))
	if err := d.Err(); err != nil {
		return Pricing{}, err
	}

	return Pricing{
		itemTotal:   itemTotal,
		deliveryFee: deliveryFee,
		platformFee: platformFee,
		gst:         gst,
		discount:    discount,
		totalAmount: totalAmount,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// ToMap serializes the Pricing back to its raw mapping form.
func (p Pricing) ToMap() map[string]any {
	return map[string]any{
		fieldItemTotal:   p.itemTotal,
		fieldDeliveryFee: p.deliveryFee,
		fieldPlatformFee: p.platformFee,
		fieldGST:         p.gst,
		fieldDiscount:    p.discount,
		fieldTotalAmount: p.totalAmount,
	}
}

// Validate ensures the Pricing was created through a constructor.
func (p Pricing) Validate() error {
	return p.guard.Validate(ErrPricingIsNotConstructed)
}

// ItemTotal returns the total price of the items.
func (p Pricing) ItemTotal() float64 {
	return p.itemTotal
}

// DeliveryFee returns the delivery fee applied.
func (p Pricing) DeliveryFee() float64 {
	return p.deliveryFee
}

// PlatformFee returns the platform service fee.
func (p Pricing) PlatformFee() float64 {
	return p.platformFee
}

// GST returns the GST amount.
func (p Pricing) GST() float64 {
	return p.gst
}

// Discount returns the total discount applied.
func (p Pricing) Discount() float64 {
	return p.discount
}

// TotalAmount returns the final payable amount.
func (p Pricing) TotalAmount() float64 {
	return p.totalAmount
}
