package order

import (
	"fmt"

	"github.com/YaswanthBabuK/Swiggy-mcp-clone/internal/pkg/errs"
)

// Status represents the lifecycle state of an order. It is a closed set:
// construction from a raw string accepts exactly the five wire values, case
// sensitively, and nothing else.
//
// Decoding an order validates membership only. Transition legality is a
// separate, explicit concern exposed through TransitionTo:
//
//	pending ──> preparing ──> out_for_delivery ──> delivered
//	   │            │
//	   └────────────┴──> cancelled
//
// delivered and cancelled are terminal.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status after the order is placed.
	Pending

	// Preparing indicates the restaurant has accepted and is cooking.
	Preparing

	// OutForDelivery indicates a delivery partner has picked the order up.
	OutForDelivery

	// Delivered indicates the order reached the customer. Terminal.
	Delivered

	// Cancelled indicates the order was cancelled before pickup. Terminal.
	Cancelled
)

// getValidStatuses returns every valid Status in declaration order.
// Unknown is intentionally excluded as it is invalid.
func getValidStatuses() []Status {
	return []Status{Pending, Preparing, OutForDelivery, Delivered, Cancelled}
}

// getStatusStrings returns a map of Status values to their wire strings.
// All statuses are included for string conversion.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:        "Unknown",
		Pending:        "pending",
		Preparing:      "preparing",
		OutForDelivery: "out_for_delivery",
		Delivered:      "delivered",
		Cancelled:      "cancelled",
	}
}

// getStatusTransitions returns the legal lifecycle edges. Statuses absent
// from the map are terminal.
func getStatusTransitions() map[Status][]Status {
	return map[Status][]Status{
		Pending:        {Preparing, Cancelled},
		Preparing:      {OutForDelivery, Cancelled},
		OutForDelivery: {Delivered},
	}
}

// StatusNames returns the wire strings of every valid Status in declaration
// order.
func StatusNames() []string {
	statuses := getValidStatuses()
	names := make([]string, 0, len(statuses))
	for _, s := range statuses {
		names = append(names, s.String())
	}
	return names
}

// StatusFromString constructs a Status from its wire string. Matching is
// exact and case-sensitive; anything else fails with the enum-membership
// error.
func StatusFromString(value string) (Status, error) {
	for _, s := range getValidStatuses() {
		if s.String() == value {
			return s, nil
		}
	}
	return Unknown, errs.NewInvalidEnumValueError(fieldStatus, value, StatusNames())
}

// Validate checks that the Status is a member of the closed set.
// Unknown (0) and any other values are invalid.
func (s Status) Validate() error {
	for _, valid := range getValidStatuses() {
		if s == valid {
			return nil
		}
	}
	return errs.NewInvalidEnumValueError(fieldStatus, s.String(), StatusNames())
}

// String returns the wire string of the status, or "Unknown" for invalid
// values. This method implements the fmt.Stringer interface and is safe to
// call on any Status value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsTerminal reports whether the status admits no further transitions.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Cancelled
}

// ValidateTransition checks whether moving from the current status to next
// is a legal lifecycle edge, without performing the transition.
func (s Status) ValidateTransition(next Status) error {
	if err := s.Validate(); err != nil {
		return err
	}
	if err := next.Validate(); err != nil {
		return err
	}

	for _, allowed := range getStatusTransitions()[s] {
		if next == allowed {
			return nil
		}
	}

	return errs.NewValueIsInvalidErrorWithCause(
		fieldStatus,
		fmt.Errorf("%s cannot transition to %s", s.String(), next.String()),
	)
}

// TransitionTo moves the status along a legal lifecycle edge.
//
// Returns:
//   - (next, nil) when the edge is legal
//   - (Unknown, error) when it is not
func (s Status) TransitionTo(next Status) (Status, error) {
	if err := s.ValidateTransition(next); err != nil {
		return Unknown, err
	}
	return next, nil
}
