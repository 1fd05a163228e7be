package order

import (
	"github.com/YaswanthBabuK/Swiggy-mcp-clone/internal/core/domain/model/schema"
	"github.com/YaswanthBabuK/Swiggy-mcp-clone/internal/pkg/errs"
	"github.com/YaswanthBabuK/Swiggy-mcp-clone/internal/pkg/guard"
)

// ErrRatingsIsNotConstructed indicates a Ratings that bypassed its
// constructors.
var ErrRatingsIsNotConstructed = errs.NewValueIsRequiredError(
	"Ratings must be created via NewRatings or RatingsFromMap")

// Ratings is the post-delivery feedback for an order. Both scores are whole
// numbers between 1 and 5 inclusive.
type Ratings struct {
	food     int
	delivery int
	review   string
	guard    guard.ConstructorGuard
}

// NewRatings creates a validated Ratings from typed values.
func NewRatings(food, delivery int, review string) (Ratings, error) {
	var report schema.Errors
	report.Check(fieldFood, schema.IntRange(1, 5)(fieldFood, food))
	report.Check(fieldDelivery, schema.IntRange(1, 5)(fieldDelivery, delivery))
	if err := report.Err(); err != nil {
		return Ratings{}, err
	}

	return Ratings{
		food:     food,
		delivery: delivery,
		review:   review,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// RatingsFromMap constructs a Ratings from a raw mapping, collecting every
// field failure before reporting.
func RatingsFromMap(raw map[string]any) (Ratings, error) {
	d := schema.NewDecoder(raw)
	food := d.Int(fieldFood, schema.IntRange(1, 5))
	delivery := d.Int(fieldDelivery, schema.IntRange(1, 5))
	review := d.String(fieldReview)
	if err := d.Err(); err != nil {
		return Ratings{}, err
	}

	return Ratings{
		food:     food,
		delivery: delivery,
		review:   review,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// ToMap serializes the Ratings back to its raw mapping form.
func (r Ratings) ToMap() map[string]any {
	return map[string]any{
		fieldFood:     r.food,
		fieldDelivery: r.delivery,
		fieldReview:   r.review,
	}
}

// Validate ensures the Ratings was created through a constructor.
func (r Ratings) Validate() error {
	return r.guard.Validate(ErrRatingsIsNotConstructed)
}

// Food returns the food quality score.
func (r Ratings) Food() int {
	return r.food
}

// Delivery returns the delivery service score.
func (r Ratings) Delivery() int {
	return r.delivery
}

// Review returns the written review text.
func (r Ratings) Review() string {
	return r.review
}
