// Package fixtures builds valid raw mappings for the domain records. Tests
// take a builder's output as a known-good baseline and break individual
// fields per case. Every call returns a fresh mapping, so mutating one
// fixture never leaks into another test.
//
// Unconstrained fields (names, emails, phones, review text) are faked;
// constrained fields (ratings, pincode, timestamps) stay fixed literals so
// a fixture can never drift outside the schema.
package fixtures

import (
	"github.com/google/uuid"
	"github.com/jaswdr/faker"
)

var fake = faker.New()

// OrderID returns a fresh order identifier.
func OrderID() string {
	return "ORD-" + uuid.NewString()
}

// CustomerID returns a fresh customer identifier.
func CustomerID() string {
	return "CUST-" + uuid.NewString()
}

// RestaurantMap returns a valid raw restaurant mapping with both optional
// fields set.
func RestaurantMap() map[string]any {
	return map[string]any{
		"restaurantId": "REST-" + uuid.NewString(),
		"name":         fake.Company().Name(),
		"location":     fake.Address().StreetName(),
		"cuisine":      "South Indian",
		"rating":       4.3,
		"deliveryTime": "25-30 mins",
	}
}

// ItemMap returns a valid raw line-item mapping.
func ItemMap() map[string]any {
	return map[string]any{
		"name":           fake.Lorem().Word(),
		"quantity":       2,
		"price":          249.0,
		"customizations": []any{"extra spicy", "no onion"},
	}
}

// PricingMap returns a valid raw pricing mapping.
func PricingMap() map[string]any {
	return map[string]any{
		"itemTotal":   498.0,
		"deliveryFee": 30.0,
		"platformFee": 5.0,
		"gst":         26.65,
		"discount":    50.0,
		"totalAmount": 509.65,
	}
}

// PaymentMap returns a valid raw payment mapping.
func PaymentMap() map[string]any {
	return map[string]any{
		"method":        "UPI",
		"transactionId": "TXN-" + uuid.NewString(),
		"status":        "success",
	}
}

// DeliveryAddressMap returns a valid raw delivery-address mapping.
func DeliveryAddressMap() map[string]any {
	return map[string]any{
		"label":   "Home",
		"address": fake.Address().StreetAddress(),
		"city":    fake.Address().City(),
		"pincode": "560001",
	}
}

// DeliveryPartnerMap returns a valid raw delivery-partner mapping.
func DeliveryPartnerMap() map[string]any {
	return map[string]any{
		"name":   fake.Person().Name(),
		"rating": 4.8,
		"phone":  fake.Phone().Number(),
	}
}

// TimelineMap returns a valid raw timeline mapping with ascending instants.
func TimelineMap() map[string]any {
	return map[string]any{
		"orderPlaced":        "2024-01-15T12:00:00Z",
		"restaurantAccepted": "2024-01-15T12:02:30Z",
		"foodReady":          "2024-01-15T12:20:00Z",
		"outForDelivery":     "2024-01-15T12:25:00Z",
		"delivered":          "2024-01-15T12:48:15Z",
	}
}

// RatingsMap returns a valid raw ratings mapping.
func RatingsMap() map[string]any {
	return map[string]any{
		"food":     5,
		"delivery": 4,
		"review":   fake.Lorem().Sentence(6),
	}
}

// OrderMap returns a valid raw order mapping assembled from the record
// builders above.
func OrderMap() map[string]any {
	return map[string]any{
		"orderId":         OrderID(),
		"customerId":      CustomerID(),
		"customerName":    fake.Person().Name(),
		"orderDate":       "2024-01-15T12:00:00Z",
		"status":          "delivered",
		"restaurant":      RestaurantMap(),
		"items":           []any{ItemMap()},
		"pricing":         PricingMap(),
		"payment":         PaymentMap(),
		"deliveryAddress": DeliveryAddressMap(),
		"deliveryPartner": DeliveryPartnerMap(),
		"timeline":        TimelineMap(),
		"ratings":         RatingsMap(),
	}
}

// RecentOrderMap returns a valid raw recent-order mapping: an order mapping
// without the customer identification.
func RecentOrderMap() map[string]any {
	m := OrderMap()
	delete(m, "customerId")
	delete(m, "customerName")
	return m
}

// ProfileMap returns a valid raw profile mapping.
func ProfileMap() map[string]any {
	return map[string]any{
		"name":        fake.Person().Name(),
		"email":       fake.Internet().Email(),
		"phone":       fake.Phone().Number(),
		"memberSince": "2022-03-10",
	}
}

// AccountStatsMap returns a valid raw account-stats mapping.
func AccountStatsMap() map[string]any {
	return map[string]any{
		"totalOrders":         42,
		"lifetimeValue":       21387.5,
		"averageOrderValue":   509.2,
		"favoriteRestaurants": []any{fake.Company().Name(), fake.Company().Name()},
		"preferredCuisines":   []any{"South Indian", "Chinese"},
		"savedAddresses":      3,
	}
}

// CouponMap returns a valid raw coupon mapping.
func CouponMap() map[string]any {
	return map[string]any{
		"code":        "WELCOME50",
		"description": "50% off on your first order",
		"validUntil":  "2025-12-31",
	}
}

// PreferencesMap returns a valid raw preferences mapping.
func PreferencesMap() map[string]any {
	return map[string]any{
		"dietaryRestrictions": []any{"vegetarian"},
		"favoriteItems":       []any{"masala dosa", "filter coffee"},
		"avoidIngredients":    []any{"peanuts"},
		"spiceLevel":          "Medium",
	}
}

// LoyaltyRewardsMap returns a valid raw loyalty-rewards mapping.
func LoyaltyRewardsMap() map[string]any {
	return map[string]any{
		"currentPoints":      320,
		"pointsToNextReward": 180,
		"couponsAvailable":   []any{CouponMap()},
	}
}

// CustomerMap returns a valid raw customer mapping assembled from the
// record builders above.
func CustomerMap() map[string]any {
	return map[string]any{
		"customerId":     CustomerID(),
		"profile":        ProfileMap(),
		"accountStats":   AccountStatsMap(),
		"recentOrders":   []any{RecentOrderMap()},
		"preferences":    PreferencesMap(),
		"loyaltyRewards": LoyaltyRewardsMap(),
	}
}
