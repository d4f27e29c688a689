package models

type CreateOrderRequest struct {
	CourseID int64 `json:"courseId"`
}

// Order is a payment-provider order created by the backend.
type Order struct {
	OrderID  string `json:"orderId"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	CourseID int64  `json:"courseId"`
}

// PaymentVerification is the provider callback payload relayed to the
// backend for signature checks. Field names follow the provider.
type PaymentVerification struct {
	OrderID   string `json:"razorpay_order_id"`
	PaymentID string `json:"razorpay_payment_id"`
	Signature string `json:"razorpay_signature"`
	CourseID  int64  `json:"courseId"`
}

type Payment struct {
	ID        int64  `json:"id"`
	OrderID   string `json:"orderId"`
	PaymentID string `json:"paymentId,omitempty"`
	CourseID  int64  `json:"courseId"`
	Amount    int64  `json:"amount"`
	Currency  string `json:"currency"`
	Status    string `json:"status"`
	CreatedAt string `json:"createdAt,omitempty"`
}
