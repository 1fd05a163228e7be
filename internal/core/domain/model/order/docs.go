// Package order provides the validated domain records for a food-delivery
// order. It implements the Order aggregate and every record it owns, plus
// the RecentOrder summary variant used inside customer histories.
//
// The package includes:
//   - Order / RecentOrder: aggregates assembled exclusively from validated parts
//   - Status: the closed order-lifecycle set with an explicit transition table
//   - Leaf records: Identity, Restaurant, Item, Pricing, Payment,
//     DeliveryAddress, DeliveryPartner, Timeline, Ratings
//
// Key rules:
//   - Every record is born fully validated or not born at all; construction
//     from a raw mapping collects every field failure into one report
//   - Records are immutable after construction: private fields, getters that
//     copy slices, and ToMap serialization that mirrors construction exactly
//   - Decoding validates Status membership only; lifecycle transition
//     legality is a separate, explicit API (Status.TransitionTo)
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure the record invariants
// hold everywhere downstream.
package order
