package customer

import (
	"github.com/YaswanthBabuK/Swiggy-mcp-clone/internal/pkg/errs"
)

// SpiceLevel represents a customer's preferred spice level. It is a closed
// set: construction from a raw string accepts exactly the three wire
// values, case sensitively, and nothing else.
type SpiceLevel int

const (
	// SpiceUnknown represents an invalid or undefined spice level.
	// This value (0) helps catch uninitialized SpiceLevel values.
	SpiceUnknown SpiceLevel = iota

	// Mild is the lowest spice level.
	Mild

	// Medium is the middle spice level.
	Medium

	// Hot is the highest spice level.
	Hot
)

// getValidSpiceLevels returns every valid SpiceLevel in declaration order.
// SpiceUnknown is intentionally excluded as it is invalid.
func getValidSpiceLevels() []SpiceLevel {
	return []SpiceLevel{Mild, Medium, Hot}
}

// getSpiceLevelStrings returns a map of SpiceLevel values to their wire
// strings. All levels are included for string conversion.
func getSpiceLevelStrings() map[SpiceLevel]string {
	return map[SpiceLevel]string{
		SpiceUnknown: "Unknown",
		Mild:         "Mild",
		Medium:       "Medium",
		Hot:          "Hot",
	}
}

// SpiceLevelNames returns the wire strings of every valid SpiceLevel in
// declaration order.
func SpiceLevelNames() []string {
	levels := getValidSpiceLevels()
	names := make([]string, 0, len(levels))
	for _, level := range levels {
		names = append(names, level.String())
	}
	return names
}

// SpiceLevelFromString constructs a SpiceLevel from its wire string.
// Matching is exact and case-sensitive; anything else fails with the
// enum-membership error.
func SpiceLevelFromString(value string) (SpiceLevel, error) {
	for _, level := range getValidSpiceLevels() {
		if level.String() == value {
			return level, nil
		}
	}
	return SpiceUnknown, errs.NewInvalidEnumValueError(fieldSpiceLevel, value, SpiceLevelNames())
}

// Validate checks that the SpiceLevel is a member of the closed set.
func (s SpiceLevel) Validate() error {
	for _, valid := range getValidSpiceLevels() {
		if s == valid {
			return nil
		}
	}
	return errs.NewInvalidEnumValueError(fieldSpiceLevel, s.String(), SpiceLevelNames())
}

// String returns the wire string of the spice level, or "Unknown" for
// invalid values. Safe to call on any SpiceLevel value.
func (s SpiceLevel) String() string {
	if str, ok := getSpiceLevelStrings()[s]; ok {
		return str
	}
	return "Unknown"
}
