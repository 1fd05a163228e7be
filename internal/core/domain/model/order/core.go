package order

import (
	"fmt"

	"github.com/YaswanthBabuK/Swiggy-mcp-clone/internal/core/domain/model/kernel"
	"github.com/YaswanthBabuK/Swiggy-mcp-clone/internal/core/domain/model/schema"
)

// orderCore holds the fields Order and RecentOrder share: everything except
// how the order is identified. Both aggregates embed it, so its getters are
// promoted onto each.
type orderCore struct {
	orderDate       kernel.Timestamp
	status          Status
	restaurant      Restaurant
	items           []Item
	pricing         Pricing
	payment         Payment
	deliveryAddress DeliveryAddress
	deliveryPartner DeliveryPartner
	timeline        Timeline
	ratings         Ratings
}

// newOrderCore assembles and validates the shared portion from typed values.
// Each part must already be a properly constructed record; the report
// collects every part that is not.
func newOrderCore(orderDate kernel.Timestamp, status Status, restaurant Restaurant, items []Item,
	pricing Pricing, payment Payment, deliveryAddress DeliveryAddress,
	deliveryPartner DeliveryPartner, timeline Timeline, ratings Ratings) (orderCore, error) {
	var report schema.Errors
	report.Check(fieldOrderDate, orderDate.Validate())
	report.Check(fieldStatus, status.Validate())
	report.Check(fieldRestaurant, restaurant.Validate())
	for i, item := range items {
		report.Check(fmt.Sprintf("%s[%d]", fieldItems, i), item.Validate())
	}
	report.Check(fieldPricing, pricing.Validate())
	report.Check(fieldPayment, payment.Validate())
	report.Check(fieldDeliveryAddress, deliveryAddress.Validate())
	report.Check(fieldDeliveryPartner, deliveryPartner.Validate())
	report.Check(fieldTimeline, timeline.Validate())
	report.Check(fieldRatings, ratings.Validate())
	if err := report.Err(); err != nil {
		return orderCore{}, err
	}

	return orderCore{
		orderDate:       orderDate,
		status:          status,
		restaurant:      restaurant,
		items:           copyItems(items),
		pricing:         pricing,
		payment:         payment,
		deliveryAddress: deliveryAddress,
		deliveryPartner: deliveryPartner,
		timeline:        timeline,
		ratings:         ratings,
	}, nil
}

// decodeOrderCore reads the shared portion out of an aggregate's raw
// mapping, recording every failure on the enclosing decoder. Nested record
// failures surface with full paths such as "restaurant.rating" and
// "items[0].price".
func decodeOrderCore(d *schema.Decoder) orderCore {
	var c orderCore

	c.orderDate = d.Timestamp(fieldOrderDate)

	statusStr := d.String(fieldStatus, schema.OneOf(StatusNames()...))
	if status, err := StatusFromString(statusStr); err == nil {
		c.status = status
	}

	if raw, ok := d.Map(fieldRestaurant); ok {
		restaurant, err := RestaurantFromMap(raw)
		if err != nil {
			d.Nest(fieldRestaurant, err)
		} else {
			c.restaurant = restaurant
		}
	}

	rawItems := d.Maps(fieldItems)
	c.items = make([]Item, 0, len(rawItems))
	for i, rawItem := range rawItems {
		item, err := ItemFromMap(rawItem)
		if err != nil {
			d.Nest(fmt.Sprintf("%s[%d]", fieldItems, i), err)
			continue
		}
		c.items = append(c.items, item)
	}

	if raw, ok := d.Map(fieldPricing); ok {
		pricing, err := PricingFromMap(raw)
		if err != nil {
			d.Nest(fieldPricing, err)
		} else {
			c.pricing = pricing
		}
	}

	if raw, ok := d.Map(fieldPayment); ok {
		payment, err := PaymentFromMap(raw)
		if err != nil {
			d.Nest(fieldPayment, err)
		} else {
			c.payment = payment
		}
	}

	if raw, ok := d.Map(fieldDeliveryAddress); ok {
		address, err := DeliveryAddressFromMap(raw)
		if err != nil {
			d.Nest(fieldDeliveryAddress, err)
		} else {
			c.deliveryAddress = address
		}
	}

	if raw, ok := d.Map(fieldDeliveryPartner); ok {
		partner, err := DeliveryPartnerFromMap(raw)
		if err != nil {
			d.Nest(fieldDeliveryPartner, err)
		} else {
			c.deliveryPartner = partner
		}
	}

	if raw, ok := d.Map(fieldTimeline); ok {
		timeline, err := TimelineFromMap(raw)
		if err != nil {
			d.Nest(fieldTimeline, err)
		} else {
			c.timeline = timeline
		}
	}

	if raw, ok := d.Map(fieldRatings); ok {
		ratings, err := RatingsFromMap(raw)
		if err != nil {
			d.Nest(fieldRatings, err)
		} else {
			c.ratings = ratings
		}
	}

	return c
}

// toMap serializes the shared portion into an aggregate's raw mapping.
func (c orderCore) toMap() map[string]any {
	items := make([]any, 0, len(c.items))
	for _, item := range c.items {
		items = append(items, item.ToMap())
	}

	return map[string]any{
		fieldOrderDate:       c.orderDate.String(),
		fieldStatus:          c.status.String(),
		fieldRestaurant:      c.restaurant.ToMap(),
		fieldItems:           items,
		fieldPricing:         c.pricing.ToMap(),
		fieldPayment:         c.payment.ToMap(),
		fieldDeliveryAddress: c.deliveryAddress.ToMap(),
		fieldDeliveryPartner: c.deliveryPartner.ToMap(),
		fieldTimeline:        c.timeline.ToMap(),
		fieldRatings:         c.ratings.ToMap(),
	}
}

// OrderDate returns the timestamp of the order.
func (c orderCore) OrderDate() kernel.Timestamp {
	return c.orderDate
}

// Status returns the lifecycle state of the order.
func (c orderCore) Status() Status {
	return c.status
}

// Restaurant returns the restaurant serving the order.
func (c orderCore) Restaurant() Restaurant {
	return c.restaurant
}

// Items returns a copy of the ordered line items.
func (c orderCore) Items() []Item {
	return copyItems(c.items)
}

// Pricing returns the price breakdown.
func (c orderCore) Pricing() Pricing {
	return c.pricing
}

// Payment returns the payment record.
func (c orderCore) Payment() Payment {
	return c.payment
}

// DeliveryAddress returns the delivery destination.
func (c orderCore) DeliveryAddress() DeliveryAddress {
	return c.deliveryAddress
}

// DeliveryPartner returns the assigned rider.
func (c orderCore) DeliveryPartner() DeliveryPartner {
	return c.deliveryPartner
}

// Timeline returns the lifecycle timestamps.
func (c orderCore) Timeline() Timeline {
	return c.timeline
}

// Ratings returns the post-delivery feedback.
func (c orderCore) Ratings() Ratings {
	return c.ratings
}

// copyItems clones an item sequence, turning nil into a fresh empty
// sequence so defaults are never shared between record instances.
func copyItems(items []Item) []Item {
	out := make([]Item, len(items))
	copy(out, items)
	return out
}
