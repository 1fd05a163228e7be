package customer

import (
	"github.com/YaswanthBabuK/Swiggy-mcp-clone/internal/core/domain/model/schema"
	"github.com/YaswanthBabuK/Swiggy-mcp-clone/internal/pkg/errs"
	"github.com/YaswanthBabuK/Swiggy-mcp-clone/internal/pkg/guard"
)

// ErrAccountStatsIsNotConstructed indicates an AccountStats that bypassed
// its constructors.
var ErrAccountStatsIsNotConstructed = errs.NewValueIsRequiredError(
	"AccountStats must be created via NewAccountStats or AccountStatsFromMap")

// AccountStats is the aggregated metrics of a customer account. Counts and
// monetary values are never negative; the sequences default to fresh empty
// sequences when absent. Derived values arrive already computed.
type AccountStats struct {
	totalOrders         int
	lifetimeValue       float64
	averageOrderValue   float64
	favoriteRestaurants []string
	preferredCuisines   []string
	savedAddresses      int
	guard               guard.ConstructorGuard
}

// NewAccountStats creates a validated AccountStats from typed values. Nil
// sequences become fresh empty ones.
func NewAccountStats(totalOrders int, lifetimeValue, averageOrderValue float64,
	favoriteRestaurants, preferredCuisines []string, savedAddresses int) (AccountStats, error) {
	var report schema.Errors
	report.Check(fieldTotalOrders, schema.IntMin(0)(fieldTotalOrders, totalOrders))
	report.Check(fieldLifetimeValue, schema.FloatMin(0)(fieldLifetimeValue, lifetimeValue))
	report.Check(fieldAverageOrderValue, schema.FloatMin(0)(fieldAverageOrderValue, averageOrderValue))
	report.Check(fieldSavedAddresses, schema.IntMin(0)(fieldSavedAddresses, savedAddresses))
	if err := report.Err(); err != nil {
		return AccountStats{}, err
	}

	return AccountStats{
		totalOrders:         totalOrders,
		lifetimeValue:       lifetimeValue,
		averageOrderValue:   averageOrderValue,
		favoriteRestaurants: copyStrings(favoriteRestaurants),
		preferredCuisines:   copyStrings(preferredCuisines),
		savedAddresses:      savedAddresses,
		guard:               guard.NewConstructorGuard(),
	}, nil
}

// AccountStatsFromMap constructs an AccountStats from a raw mapping,
// collecting every field failure before reporting.
func AccountStatsFromMap(raw map[string]any) (AccountStats, error) {
	d := schema.NewDecoder(raw)
	totalOrders := d.Int(fieldTotalOrders, schema.IntMin(0))
	lifetimeValue := d.Float(fieldLifetimeValue, schema.FloatMin(0))
	averageOrderValue := d.Float(fieldAverageOrderValue, schema.FloatMin(0))
	favoriteRestaurants := d.Strings(fieldFavoriteRestaurants)
	preferredCuisines := d.Strings(fieldPreferredCuisines)
	savedAddresses := d.Int(fieldSavedAddresses, schema.IntMin(0))
	if err := d.Err(); err != nil {
		return AccountStats{}, err
	}

	return AccountStats{
		totalOrders:         totalOrders,
		lifetimeValue:       lifetimeValue,
		averageOrderValue:   averageOrderValue,
		favoriteRestaurants: favoriteRestaurants,
		preferredCuisines:   preferredCuisines,
		savedAddresses:      savedAddresses,
		guard:               guard.NewConstructorGuard(),
	}, nil
}

// ToMap serializes the AccountStats back to its raw mapping form.
func (s AccountStats) ToMap() map[string]any {
	return map[string]any{
		fieldTotalOrders:         s.totalOrders,
		fieldLifetimeValue:       s.lifetimeValue,
		fieldAverageOrderValue:   s.averageOrderValue,
		fieldFavoriteRestaurants: copyStrings(s.favoriteRestaurants),
		fieldPreferredCuisines:   copyStrings(s.preferredCuisines),
		fieldSavedAddresses:      s.savedAddresses,
	}
}

// Validate ensures the AccountStats was created through a constructor.
func (s AccountStats) Validate() error {
	return s.guard.Validate(ErrAccountStatsIsNotConstructed)
}

// TotalOrders returns the count of orders placed.
func (s AccountStats) TotalOrders() int {
	return s.totalOrders
}

// LifetimeValue returns the total money spent.
func (s AccountStats) LifetimeValue() float64 {
	return s.lifetimeValue
}

// AverageOrderValue returns the average spend per order.
func (s AccountStats) AverageOrderValue() float64 {
	return s.averageOrderValue
}

// FavoriteRestaurants returns a copy of the often-visited restaurants.
func (s AccountStats) FavoriteRestaurants() []string {
	return copyStrings(s.favoriteRestaurants)
}

// PreferredCuisines returns a copy of the selected cuisine types.
func (s AccountStats) PreferredCuisines() []string {
	return copyStrings(s.preferredCuisines)
}

// SavedAddresses returns the address count saved in the profile.
func (s AccountStats) SavedAddresses() int {
	return s.savedAddresses
}

// copyStrings clones a string sequence, turning nil into a fresh empty
// sequence so defaults are never shared between record instances.
func copyStrings(s []string) []string {
	out := make([]string, len(s))
	copy(out, s)
	return out
}
