// Package customer provides the validated domain records for a customer of
// the food-delivery platform: the Customer aggregate and every record it
// owns, from the personal profile to loyalty rewards and the recent-order
// history.
//
// The package includes:
//   - Customer: the aggregate assembled exclusively from validated parts
//   - SpiceLevel: the closed set of food-preference spice levels
//   - Leaf and mid records: Profile, AccountStats, Coupon, Preferences,
//     LoyaltyRewards
//
// Construction follows the same rules as package order: every record is
// born fully validated from a raw mapping or typed values, every field
// failure is collected into one aggregate report, and records stay
// immutable afterwards.
package customer
