package domain

// Order Statuses
const (
	OrderStatusPending   = "pending"
	OrderStatusConfirmed = "confirmed"
	OrderStatusShipped   = "shipped"
	OrderStatusDelivered = "delivered"
	OrderStatusCancelled = "cancelled"
)

// Payment Methods
const (
	PaymentMethodCOD          = "cash_on_delivery"
	PaymentMethodBankTransfer = "bank_transfer"
	PaymentMethodOnline       = "online_payment"
)

// Contact Statuses
const (
	ContactStatusNew     = "new"
	ContactStatusRead    = "read"
	ContactStatusReplied = "replied"
	ContactStatusClosed  = "closed"
)

// Contact Priorities
const (
	ContactPriorityLow    = "low"
	ContactPriorityMedium = "medium"
	ContactPriorityHigh   = "high"
	ContactPriorityUrgent = "urgent"
)

// Delivery rules. FreeDeliveryThreshold is inclusive: an order of exactly
// 5000 DZD ships free. ExpectedWilayaCount is the official number of Algerian
// wilayas used for the coverage statistic; it is a fixed reference constant,
// not derived from the embedded catalog.
const (
	FreeDeliveryThreshold = 5000
	ExpectedWilayaCount   = 58
)

// List Exports for API
var OrderStatuses = []string{
	OrderStatusPending,
	OrderStatusConfirmed,
	OrderStatusShipped,
	OrderStatusDelivered,
	OrderStatusCancelled,
}

var PaymentMethods = []string{
	PaymentMethodCOD,
	PaymentMethodBankTransfer,
	PaymentMethodOnline,
}

var ContactStatuses = []string{
	ContactStatusNew,
	ContactStatusRead,
	ContactStatusReplied,
	ContactStatusClosed,
}

var ContactPriorities = []string{
	ContactPriorityLow,
	ContactPriorityMedium,
	ContactPriorityHigh,
	ContactPriorityUrgent,
}
