package order

// Wire field names for every record in the package. XFromMap construction
// and ToMap serialization consult this single table, which keeps aliased
// fields symmetric: serializing a record and reconstructing it from the
// result always reproduces an equal record.
const (
	fieldOrderID      = "orderId"
	fieldCustomerID   = "customerId"
	fieldCustomerName = "customerName"

	fieldOrderDate       = "orderDate"
	fieldStatus          = "status"
	fieldRestaurant      = "restaurant"
	fieldItems           = "items"
	fieldPricing         = "pricing"
	fieldPayment         = "payment"
	fieldDeliveryAddress = "deliveryAddress"
	fieldDeliveryPartner = "deliveryPartner"
	fieldTimeline        = "timeline"
	fieldRatings         = "ratings"

	fieldRestaurantID = "restaurantId"
	fieldName         = "name"
	fieldLocation     = "location"
	fieldCuisine      = "cuisine"
	fieldRating       = "rating"
	fieldDeliveryTime = "deliveryTime"

	fieldQuantity       = "quantity"
	fieldPrice          = "price"
	fieldCustomizations = "customizations"

	fieldItemTotal   = "itemTotal"
	fieldDeliveryFee = "deliveryFee"
	fieldPlatformFee = "platformFee"
	fieldGST         = "gst"
	fieldDiscount    = "discount"
	fieldTotalAmount = "totalAmount"

	fieldMethod        = "method"
	fieldTransactionID = "transactionId"

	fieldLabel   = "label"
	fieldAddress = "address"
	fieldCity    = "city"
	fieldPincode = "pincode"

	fieldPhone = "phone"

	fieldOrderPlaced        = "orderPlaced"
	fieldRestaurantAccepted = "restaurantAccepted"
	fieldFoodReady          = "foodReady"
	fieldOutForDelivery     = "outForDelivery"
	fieldDelivered          = "delivered"

	fieldFood     = "food"
	fieldDelivery = "delivery"
	fieldReview   = "review"
)

// identityMinLength is the minimum character count for orderId, customerId
// and customerName.
const identityMinLength = 5

// pincodeLength is the exact character count of a delivery pincode.
const pincodeLength = 6
