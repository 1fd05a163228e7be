package customer

import (
	"errors"
	"fmt"

	"github.com/YaswanthBabuK/Swiggy-mcp-clone/internal/core/domain/model/order"
	"github.com/YaswanthBabuK/Swiggy-mcp-clone/internal/core/domain/model/schema"
)

// ErrCustomerIsNotConstructed is returned when a Customer instance was not
// created through NewCustomer or CustomerFromMap. This ensures all
// customers are properly validated.
var ErrCustomerIsNotConstructed = errors.New("Customer must be created via NewCustomer or CustomerFromMap")

// Customer is the full customer aggregate. It exclusively owns every nested
// record, is born fully validated or not born at all, and is never mutated
// after construction.
type Customer struct {
	customerID     string
	profile        Profile
	accountStats   AccountStats
	recentOrders   []order.RecentOrder
	preferences    Preferences
	loyaltyRewards LoyaltyRewards

	// isConstructed ensures the customer was created via a constructor
	isConstructed bool
}

// NewCustomer assembles a Customer from already constructed parts. Every
// part is re-checked for proper construction, and every failing part is
// reported, not just the first.
func NewCustomer(customerID string, profile Profile, accountStats AccountStats,
	recentOrders []order.RecentOrder, preferences Preferences, loyaltyRewards LoyaltyRewards) (*Customer, error) {
	var report schema.Errors
	report.Check(fieldCustomerID, schema.MinLength(customerIDMinLength)(fieldCustomerID, customerID))
	report.Check(fieldProfile, profile.Validate())
	report.Check(fieldAccountStats, accountStats.Validate())
	for i, recent := range recentOrders {
		report.Check(fmt.Sprintf("%s[%d]", fieldRecentOrders, i), recent.Validate())
	}
	report.Check(fieldPreferences, preferences.Validate())
	report.Check(fieldLoyaltyRewards, loyaltyRewards.Validate())
	if err := report.Err(); err != nil {
		return nil, err
	}

	return &Customer{
		customerID:     customerID,
		profile:        profile,
		accountStats:   accountStats,
		recentOrders:   copyRecentOrders(recentOrders),
		preferences:    preferences,
		loyaltyRewards: loyaltyRewards,
		isConstructed:  true,
	}, nil
}

// CustomerFromMap constructs a Customer from a raw mapping. Nested records
// are decoded recursively, recent orders per element. All field failures
// across the whole aggregate are collected into one report, and no partial
// Customer is ever returned.
func CustomerFromMap(raw map[string]any) (*Customer, error) {
	d := schema.NewDecoder(raw)

	customerID := d.String(fieldCustomerID, schema.MinLength(customerIDMinLength))

	var profile Profile
	if rawProfile, ok := d.Map(fieldProfile); ok {
		p, err := ProfileFromMap(rawProfile)
		if err != nil {
			d.Nest(fieldProfile, err)
		} else {
			profile = p
		}
	}

	var accountStats AccountStats
	if rawStats, ok := d.Map(fieldAccountStats); ok {
		s, err := AccountStatsFromMap(rawStats)
		if err != nil {
			d.Nest(fieldAccountStats, err)
		} else {
			accountStats = s
		}
	}

	rawRecents := d.Maps(fieldRecentOrders)
	recentOrders := make([]order.RecentOrder, 0, len(rawRecents))
	for i, rawRecent := range rawRecents {
		recent, err := order.RecentOrderFromMap(rawRecent)
		if err != nil {
			d.Nest(fmt.Sprintf("%s[%d]", fieldRecentOrders, i), err)
			continue
		}
		recentOrders = append(recentOrders, recent)
	}

	var preferences Preferences
	if rawPreferences, ok := d.Map(fieldPreferences); ok {
		p, err := PreferencesFromMap(rawPreferences)
		if err != nil {
			d.Nest(fieldPreferences, err)
		} else {
			preferences = p
		}
	}

	var loyaltyRewards LoyaltyRewards
	if rawLoyalty, ok := d.Map(fieldLoyaltyRewards); ok {
		l, err := LoyaltyRewardsFromMap(rawLoyalty)
		if err != nil {
			d.Nest(fieldLoyaltyRewards, err)
		} else {
			loyaltyRewards = l
		}
	}

	if err := d.Err(); err != nil {
		return nil, err
	}

	return &Customer{
		customerID:     customerID,
		profile:        profile,
		accountStats:   accountStats,
		recentOrders:   recentOrders,
		preferences:    preferences,
		loyaltyRewards: loyaltyRewards,
		isConstructed:  true,
	}, nil
}

// ToMap serializes the Customer back to its raw mapping form.
// Reconstructing the result yields an equal Customer.
func (c *Customer) ToMap() map[string]any {
	recents := make([]any, 0, len(c.recentOrders))
	for _, recent := range c.recentOrders {
		recents = append(recents, recent.ToMap())
	}

	return map[string]any{
		fieldCustomerID:     c.customerID,
		fieldProfile:        c.profile.ToMap(),
		fieldAccountStats:   c.accountStats.ToMap(),
		fieldRecentOrders:   recents,
		fieldPreferences:    c.preferences.ToMap(),
		fieldLoyaltyRewards: c.loyaltyRewards.ToMap(),
	}
}

// Validate ensures the Customer instance was properly constructed through a
// constructor. This prevents bypassing validation by directly instantiating
// the struct.
func (c *Customer) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrCustomerIsNotConstructed
	}
	return nil
}

// IsEqual compares two customers by their customer identifiers.
func (c *Customer) IsEqual(other *Customer) bool {
	return other != nil && c.customerID == other.customerID
}

// CustomerID returns the customer identifier.
func (c *Customer) CustomerID() string {
	return c.customerID
}

// Profile returns the personal profile.
func (c *Customer) Profile() Profile {
	return c.profile
}

// AccountStats returns the aggregated account metrics.
func (c *Customer) AccountStats() AccountStats {
	return c.accountStats
}

// RecentOrders returns a copy of the recent-order history.
func (c *Customer) RecentOrders() []order.RecentOrder {
	return copyRecentOrders(c.recentOrders)
}

// Preferences returns the food preferences.
func (c *Customer) Preferences() Preferences {
	return c.preferences
}

// LoyaltyRewards returns the points-and-coupons state.
func (c *Customer) LoyaltyRewards() LoyaltyRewards {
	return c.loyaltyRewards
}

// copyRecentOrders clones a recent-order sequence, turning nil into a fresh
// empty sequence so defaults are never shared between record instances.
func copyRecentOrders(recents []order.RecentOrder) []order.RecentOrder {
	out := make([]order.RecentOrder, len(recents))
	copy(out, recents)
	return out
}
