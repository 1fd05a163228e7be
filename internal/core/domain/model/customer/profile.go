package customer

import (
	"github.com/YaswanthBabuK/Swiggy-mcp-clone/internal/core/domain/model/kernel"
	"github.com/YaswanthBabuK/Swiggy-mcp-clone/internal/core/domain/model/schema"
	"github.com/YaswanthBabuK/Swiggy-mcp-clone/internal/pkg/errs"
	"github.com/YaswanthBabuK/Swiggy-mcp-clone/internal/pkg/guard"
)

// ErrProfileIsNotConstructed indicates a Profile that bypassed its
// constructors.
var ErrProfileIsNotConstructed = errs.NewValueIsRequiredError(
	"Profile must be created via NewProfile or ProfileFromMap")

// Profile is a customer's personal profile. memberSince is a calendar date,
// not an instant.
type Profile struct {
	name        string
	email       string
	phone       string
	memberSince kernel.Date
	guard       guard.ConstructorGuard
}

// NewProfile creates a validated Profile from typed values.
func NewProfile(name, email, phone string, memberSince kernel.Date) (Profile, error) {
	var report schema.Errors
	report.Check(fieldMemberSince, memberSince.Validate())
	if err := report.Err(); err != nil {
		return Profile{}, err
	}

	return Profile{
		name:        name,
		email:       email,
		phone:       phone,
		memberSince: memberSince,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// ProfileFromMap constructs a Profile from a raw mapping, collecting every
// field failure before reporting.
func ProfileFromMap(raw map[string]any) (Profile, error) {
	d := schema.NewDecoder(raw)
	name := d.String(fieldName)
	email := d.String(fieldEmail)
	phone := d.String(fieldPhone)
	memberSince := d.Date(fieldMemberSince)
	if err := d.Err(); err != nil {
		return Profile{}, err
	}

	return Profile{
		name:        name,
		email:       email,
		phone:       phone,
		memberSince: memberSince,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// ToMap serializes the Profile back to its raw mapping form.
func (p Profile) ToMap() map[string]any {
	return map[string]any{
		fieldName:        p.name,
		fieldEmail:       p.email,
		fieldPhone:       p.phone,
		fieldMemberSince: p.memberSince.String(),
	}
}

// Validate ensures the Profile was created through a constructor.
func (p Profile) Validate() error {
	return p.guard.Validate(ErrProfileIsNotConstructed)
}

// Name returns the customer's full name.
func (p Profile) Name() string {
	return p.name
}

// Email returns the email address.
func (p Profile) Email() string {
	return p.email
}

// Phone returns the contact number.
func (p Profile) Phone() string {
	return p.phone
}

// MemberSince returns the date the customer joined the platform.
func (p Profile) MemberSince() kernel.Date {
	return p.memberSince
}
