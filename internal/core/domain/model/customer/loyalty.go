package customer

import (
	"fmt"

	"github.com/YaswanthBabuK/Swiggy-mcp-clone/internal/core/domain/model/schema"
	"github.com/YaswanthBabuK/Swiggy-mcp-clone/internal/pkg/errs"
	"github.com/YaswanthBabuK/Swiggy-mcp-clone/internal/pkg/guard"
)

// ErrLoyaltyRewardsIsNotConstructed indicates a LoyaltyRewards that bypassed
// its constructors.
var ErrLoyaltyRewardsIsNotConstructed = errs.NewValueIsRequiredError(
	"LoyaltyRewards must be created via NewLoyaltyRewards or LoyaltyRewardsFromMap")

// LoyaltyRewards is the points-and-coupons state of a customer account.
// Point counts are never negative; the coupon sequence defaults to a fresh
// empty sequence when absent.
type LoyaltyRewards struct {
	currentPoints      int
	pointsToNextReward int
	couponsAvailable   []Coupon
	guard              guard.ConstructorGuard
}

// NewLoyaltyRewards creates a validated LoyaltyRewards from typed values.
// Every coupon must already be a properly constructed record.
func NewLoyaltyRewards(currentPoints, pointsToNextReward int, couponsAvailable []Coupon) (LoyaltyRewards, error) {
	var report schema.Errors
	report.Check(fieldCurrentPoints, schema.IntMin(0)(fieldCurrentPoints, currentPoints))
	report.Check(fieldPointsToNextReward, schema.IntMin(0)(fieldPointsToNextReward, pointsToNextReward))
	for i, coupon := range couponsAvailable {
		report.Check(fmt.Sprintf("%s[%d]", fieldCouponsAvailable, i), coupon.Validate())
	}
	if err := report.Err(); err != nil {
		return LoyaltyRewards{}, err
	}

	return LoyaltyRewards{
		currentPoints:      currentPoints,
		pointsToNextReward: pointsToNextReward,
		couponsAvailable:   copyCoupons(couponsAvailable),
		guard:              guard.NewConstructorGuard(),
	}, nil
}

// LoyaltyRewardsFromMap constructs a LoyaltyRewards from a raw mapping,
// collecting every field failure before reporting. Coupon failures surface
// per element as couponsAvailable[i].
func LoyaltyRewardsFromMap(raw map[string]any) (LoyaltyRewards, error) {
	d := schema.NewDecoder(raw)
	currentPoints := d.Int(fieldCurrentPoints, schema.IntMin(0))
	pointsToNextReward := d.Int(fieldPointsToNextReward, schema.IntMin(0))

	rawCoupons := d.Maps(fieldCouponsAvailable)
	coupons := make([]Coupon, 0, len(rawCoupons))
	for i, rawCoupon := range rawCoupons {
		coupon, err := CouponFromMap(rawCoupon)
		if err != nil {
			d.Nest(fmt.Sprintf("%s[%d]", fieldCouponsAvailable, i), err)
			continue
		}
		coupons = append(coupons, coupon)
	}

	if err := d.Err(); err != nil {
		return LoyaltyRewards{}, err
	}

	return LoyaltyRewards{
		currentPoints:      currentPoints,
		pointsToNextReward: pointsToNextReward,
		couponsAvailable:   coupons,
		guard:              guard.NewConstructorGuard(),
	}, nil
}

// ToMap serializes the LoyaltyRewards back to its raw mapping form.
func (l LoyaltyRewards) ToMap() map[string]any {
	coupons := make([]any, 0, len(l.couponsAvailable))
	for _, coupon := range l.couponsAvailable {
		coupons = append(coupons, coupon.ToMap())
	}

	return map[string]any{
		fieldCurrentPoints:      l.currentPoints,
		fieldPointsToNextReward: l.pointsToNextReward,
		fieldCouponsAvailable:   coupons,
	}
}

// Validate ensures the LoyaltyRewards was created through a constructor.
func (l LoyaltyRewards) Validate() error {
	return l.guard.Validate(ErrLoyaltyRewardsIsNotConstructed)
}

// CurrentPoints returns the active loyalty points.
func (l LoyaltyRewards) CurrentPoints() int {
	return l.currentPoints
}

// PointsToNextReward returns the points needed for the next reward.
func (l LoyaltyRewards) PointsToNextReward() int {
	return l.pointsToNextReward
}

// CouponsAvailable returns a copy of the active coupons.
func (l LoyaltyRewards) CouponsAvailable() []Coupon {
	return copyCoupons(l.couponsAvailable)
}

// copyCoupons clones a coupon sequence, turning nil into a fresh empty
// sequence so defaults are never shared between record instances.
func copyCoupons(coupons []Coupon) []Coupon {
	out := make([]Coupon, len(coupons))
	copy(out, coupons)
	return out
}
