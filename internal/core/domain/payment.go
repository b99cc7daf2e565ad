package domain

// PaymentStatus represents the status of a payment
type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusConfirmed PaymentStatus = "confirmed"
	PaymentStatusFailed    PaymentStatus = "failed"
)

// PaymentConfirmation represents an asynchronous confirmation message from
// the payment processor, correlated back to a payment row by CorrelationID
type PaymentConfirmation struct {
	CorrelationID string `json:"correlationId"`
	Status        string `json:"status"`
	UserID        int64  `json:"userId"`
}
