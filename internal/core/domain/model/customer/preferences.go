package customer

import (
	"github.com/YaswanthBabuK/Swiggy-mcp-clone/internal/core/domain/model/schema"
	"github.com/YaswanthBabuK/Swiggy-mcp-clone/internal/pkg/errs"
	"github.com/YaswanthBabuK/Swiggy-mcp-clone/internal/pkg/guard"
)

// ErrPreferencesIsNotConstructed indicates a Preferences that bypassed its
// constructors.
var ErrPreferencesIsNotConstructed = errs.NewValueIsRequiredError(
	"Preferences must be created via NewPreferences or PreferencesFromMap")

// Preferences is a customer's food preferences. The three sequences default
// to fresh empty sequences when absent; the spice level is a required
// member of the closed SpiceLevel set.
type Preferences struct {
	dietaryRestrictions []string
	favoriteItems       []string
	avoidIngredients    []string
	spiceLevel          SpiceLevel
	guard               guard.ConstructorGuard
}

// NewPreferences creates a validated Preferences from typed values. Nil
// sequences become fresh empty ones.
func NewPreferences(dietaryRestrictions, favoriteItems, avoidIngredients []string, spiceLevel SpiceLevel) (Preferences, error) {
	var report schema.Errors
	report.Check(fieldSpiceLevel, spiceLevel.Validate())
	if err := report.Err(); err != nil {
		return Preferences{}, err
	}

	return Preferences{
		dietaryRestrictions: copyStrings(dietaryRestrictions),
		favoriteItems:       copyStrings(favoriteItems),
		avoidIngredients:    copyStrings(avoidIngredients),
		spiceLevel:          spiceLevel,
		guard:               guard.NewConstructorGuard(),
	}, nil
}

// PreferencesFromMap constructs a Preferences from a raw mapping, collecting
// every field failure before reporting.
func PreferencesFromMap(raw map[string]any) (Preferences, error) {
	d := schema.NewDecoder(raw)
	dietaryRestrictions := d.Strings(fieldDietaryRestrictions)
	favoriteItems := d.Strings(fieldFavoriteItems)
	avoidIngredients := d.Strings(fieldAvoidIngredients)

	spiceLevel := SpiceUnknown
	spiceStr := d.String(fieldSpiceLevel, schema.OneOf(SpiceLevelNames()...))
	if level, err := SpiceLevelFromString(spiceStr); err == nil {
		spiceLevel = level
	}

	if err := d.Err(); err != nil {
		return Preferences{}, err
	}

	return Preferences{
		dietaryRestrictions: dietaryRestrictions,
		favoriteItems:       favoriteItems,
		avoidIngredients:    avoidIngredients,
		spiceLevel:          spiceLevel,
		guard:               guard.NewConstructorGuard(),
	}, nil
}

// ToMap serializes the Preferences back to its raw mapping form.
func (p Preferences) ToMap() map[string]any {
	return map[string]any{
		fieldDietaryRestrictions: copyStrings(p.dietaryRestrictions),
		fieldFavoriteItems:       copyStrings(p.favoriteItems),
		fieldAvoidIngredients:    copyStrings(p.avoidIngredients),
		fieldSpiceLevel:          p.spiceLevel.String(),
	}
}

// Validate ensures the Preferences was created through a constructor.
func (p Preferences) Validate() error {
	return p.guard.Validate(ErrPreferencesIsNotConstructed)
}

// DietaryRestrictions returns a copy of the dietary restrictions.
func (p Preferences) DietaryRestrictions() []string {
	return copyStrings(p.dietaryRestrictions)
}

// FavoriteItems returns a copy of the frequently ordered items.
func (p Preferences) FavoriteItems() []string {
	return copyStrings(p.favoriteItems)
}

// AvoidIngredients returns a copy of the ingredients to avoid.
func (p Preferences) AvoidIngredients() []string {
	return copyStrings(p.avoidIngredients)
}

// SpiceLevel returns the preferred spice level.
func (p Preferences) SpiceLevel() SpiceLevel {
	return p.spiceLevel
}
