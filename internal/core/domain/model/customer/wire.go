package customer

// Wire field names for every record in the package, consulted by both
// XFromMap construction and ToMap serialization.
const (
	fieldCustomerID     = "customerId"
	fieldProfile        = "profile"
	fieldAccountStats   = "accountStats"
	fieldRecentOrders   = "recentOrders"
	fieldPreferences    = "preferences"
	fieldLoyaltyRewards = "loyaltyRewards"

	fieldName        = "name"
	fieldEmail       = "email"
	fieldPhone       = "phone"
	fieldMemberSince = "memberSince"

	fieldTotalOrders         = "totalOrders"
	fieldLifetimeValue       = "lifetimeValue"
	fieldAverageOrderValue   = "averageOrderValue"
	fieldFavoriteRestaurants = "favoriteRestaurants"
	fieldPreferredCuisines   = "preferredCuisines"
	fieldSavedAddresses      = "savedAddresses"

	fieldCode        = "code"
	fieldDescription = "description"
	fieldValidUntil  = "validUntil"

	fieldDietaryRestrictions = "dietaryRestrictions"
	fieldFavoriteItems       = "favoriteItems"
	fieldAvoidIngredients    = "avoidIngredients"
	fieldSpiceLevel          = "spiceLevel"

	fieldCurrentPoints      = "currentPoints"
	fieldPointsToNextReward = "pointsToNextReward"
	fieldCouponsAvailable   = "couponsAvailable"
)

// customerIDMinLength is the minimum character count for customerId.
const customerIDMinLength = 5
