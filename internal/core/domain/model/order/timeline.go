package order

import (
	"github.com/YaswanthBabuK/Swiggy-mcp-clone/internal/core/domain/model/kernel"
	"github.com/YaswanthBabuK/Swiggy-mcp-clone/internal/core/domain/model/schema"
	"github.com/YaswanthBabuK/Swiggy-mcp-clone/internal/pkg/errs"
	"github.com/YaswanthBabuK/Swiggy-mcp-clone/internal/pkg/guard"
)

// ErrTimelineIsNotConstructed indicates a Timeline that bypassed its
// constructors.
var ErrTimelineIsNotConstructed = errs.NewValueIsRequiredError(
	"Timeline must be created via NewTimeline or TimelineFromMap")

// Timeline carries the lifecycle timestamps of an order. Each field has its
// own wire alias; no ordering among the instants is enforced.
type Timeline struct {
	orderPlaced        kernel.Timestamp
	restaurantAccepted kernel.Timestamp
	foodReady          kernel.Timestamp
	outForDelivery     kernel.Timestamp
	delivered          kernel.Timestamp
	guard              guard.ConstructorGuard
}

// NewTimeline creates a validated Timeline from typed values. Every instant
// must be a properly constructed Timestamp.
func NewTimeline(orderPlaced, restaurantAccepted, foodReady, outForDelivery, delivered kernel.Timestamp) (Timeline, error) {
	var report schema.Errors
	report.Check(fieldOrderPlaced, orderPlaced.Validate())
	report.Check(fieldRestaurantAccepted, restaurantAccepted.Validate())
	report.Check(fieldFoodReady, foodReady.Validate())
	report.Check(fieldOutForDelivery, outForDelivery.Validate())
	report.Check(fieldDelivered, delivered.Validate())
	if err := report.Err(); err != nil {
		return Timeline{}, err
	}

	return Timeline{
		orderPlaced:        orderPlaced,
		restaurantAccepted: restaurantAccepted,
		foodReady:          foodReady,
		outForDelivery:     outForDelivery,
		delivered:          delivered,
		guard:              guard.NewConstructorGuard(),
	}, nil
}

// TimelineFromMap constructs a Timeline from a raw mapping, collecting every
// field failure before reporting.
func TimelineFromMap(raw map[string]any) (Timeline, error) {
	d := schema.NewDecoder(raw)
	orderPlaced := d.Timestamp(fieldOrderPlaced)
	restaurantAccepted := d.Timestamp(fieldRestaurantAccepted)
	foodReady := d.Timestamp(fieldFoodReady)
	outForDelivery := d.Timestamp(fieldOutForDelivery)
	delivered := d.Timestamp(fieldDelivered)
	if err := d.Err(); err != nil {
		return Timeline{}, err
	}

	return Timeline{
		orderPlaced:        orderPlaced,
		restaurantAccepted: restaurantAccepted,
		foodReady:          foodReady,
		outForDelivery:     outForDelivery,
		delivered:          delivered,
		guard:              guard.NewConstructorGuard(),
	}, nil
}

// ToMap serializes the Timeline back to its raw mapping form, instants in
// their wire representation.
func (t Timeline) ToMap() map[string]any {
	return map[string]any{
		fieldOrderPlaced:        t.orderPlaced.String(),
		fieldRestaurantAccepted: t.restaurantAccepted.String(),
		fieldFoodReady:          t.foodReady.String(),
		fieldOutForDelivery:     t.outForDelivery.String(),
		fieldDelivered:          t.delivered.String(),
	}
}

// Validate ensures the Timeline was created through a constructor.
func (t Timeline) Validate() error {
	return t.guard.Validate(ErrTimelineIsNotConstructed)
}

// OrderPlaced returns when the order was placed.
func (t Timeline) OrderPlaced() kernel.Timestamp {
	return t.orderPlaced
}

// RestaurantAccepted returns when the restaurant accepted the order.
func (t Timeline) RestaurantAccepted() kernel.Timestamp {
	return t.restaurantAccepted
}

// FoodReady returns when the food was prepared.
func (t Timeline) FoodReady() kernel.Timestamp {
	return t.foodReady
}

// OutForDelivery returns when the rider picked the order up.
func (t Timeline) OutForDelivery() kernel.Timestamp {
	return t.outForDelivery
}

// Delivered returns when the delivery was completed.
func (t Timeline) Delivered() kernel.Timestamp {
	return t.delivered
}
