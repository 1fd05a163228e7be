package order

import (
	"github.com/YaswanthBabuK/Swiggy-mcp-clone/internal/core/domain/model/schema"
	"github.com/YaswanthBabuK/Swiggy-mcp-clone/internal/pkg/errs"
	"github.com/YaswanthBabuK/Swiggy-mcp-clone/internal/pkg/guard"
)

// ErrRestaurantIsNotConstructed indicates a Restaurant that bypassed its
// constructors.
var ErrRestaurantIsNotConstructed = errs.NewValueIsRequiredError(
	"Restaurant must be created via NewRestaurant or RestaurantFromMap")

// Restaurant is the restaurant serving an order. The id and cuisine are
// optional: an absent value stays the explicit unset marker nil rather than
// defaulting to an empty string.
type Restaurant struct {
	restaurantID *string
	name         string
	location     string
	cuisine      *string
	rating       float64
	deliveryTime string
	guard        guard.ConstructorGuard
}

// NewRestaurant creates a validated Restaurant from typed values. Pass nil
// for restaurantID or cuisine to leave them unset.
func NewRestaurant(restaurantID *string, name, location string, cuisine *string, rating float64, deliveryTime string) (Restaurant, error) {
	var report schema.Errors
	report.Check(fieldName, schema.NonEmptyString()(fieldName, name))
	report.Check(fieldLocation, schema.NonEmptyString()(fieldLocation, location))
	report.Check(fieldRating, schema.FloatRange(0, 5)(fieldRating, rating))
	if err := report.Err(); err != nil {
		return Restaurant{}, err
	}

	return Restaurant{
		restaurantID: copyOptional(restaurantID),
		name:         name,
		location:     location,
		cuisine:      copyOptional(cuisine),
		rating:       rating,
		deliveryTime: deliveryTime,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// RestaurantFromMap constructs a Restaurant from a raw mapping, collecting
// every field failure before reporting.
func RestaurantFromMap(raw map[string]any) (Restaurant, error) {
	d := schema.NewDecoder(raw)
	restaurantID := d.OptionalString(fieldRestaurantID)
	name := d.String(fieldName, schema.NonEmptyString())
	location := d.String(fieldLocation, schema.NonEmptyString())
	cuisine := d.OptionalString(fieldCuisine)
	rating := d.Float(fieldRating, schema.FloatRange(0, 5))
	deliveryTime := d.String(fieldDeliveryTime)
	if err := d.Err(); err != nil {
		return Restaurant{}, err
	}

	return Restaurant{
		restaurantID: restaurantID,
		name:         name,
		location:     location,
		cuisine:      cuisine,
		rating:       rating,
		deliveryTime: deliveryTime,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// ToMap serializes the Restaurant back to its raw mapping form. Unset
// optional fields are omitted.
func (r Restaurant) ToMap() map[string]any {
	m := map[string]any{
		fieldName:         r.name,
		fieldLocation:     r.location,
		fieldRating:       r.rating,
		fieldDeliveryTime: r.deliveryTime,
	}
	if r.restaurantID != nil {
		m[fieldRestaurantID] = *r.restaurantID
	}
	if r.cuisine != nil {
		m[fieldCuisine] = *r.cuisine
	}
	return m
}

// Validate ensures the Restaurant was created through a constructor.
func (r Restaurant) Validate() error {
	return r.guard.Validate(ErrRestaurantIsNotConstructed)
}

// RestaurantID returns the restaurant identifier, or nil when unset.
func (r Restaurant) RestaurantID() *string {
	return copyOptional(r.restaurantID)
}

// Name returns the restaurant name.
func (r Restaurant) Name() string {
	return r.name
}

// Location returns the restaurant's physical address or locality.
func (r Restaurant) Location() string {
	return r.location
}

// Cuisine returns the optional cuisine description, or nil when unset.
func (r Restaurant) Cuisine() *string {
	return copyOptional(r.cuisine)
}

// Rating returns the restaurant rating, between 0 and 5 inclusive.
func (r Restaurant) Rating() float64 {
	return r.rating
}

// DeliveryTime returns the estimated delivery time text.
func (r Restaurant) DeliveryTime() string {
	return r.deliveryTime
}

// copyOptional clones an optional scalar so no caller can reach into a
// validated record through a shared pointer.
func copyOptional(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}
