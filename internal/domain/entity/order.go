package entity

import (
	"time"

	"github.com/google/uuid"
)

// PaymentMethod is the payment channel declared at checkout.
type PaymentMethod string

const (
	PaymentMethodCashOnDelivery PaymentMethod = "cash_on_delivery"
	PaymentMethodElectronic     PaymentMethod = "electronic" // GCash-style wallet transfer
)

// PaymentStatus tracks verification of the declared payment.
type PaymentStatus string

const (
	// PaymentStatusUnpaid is the initial state for cash-on-delivery orders.
	PaymentStatusUnpaid PaymentStatus = "unpaid"
	// PaymentStatusPendingVerification is the initial state for electronic
	// payments, which always carry a proof-of-payment reference.
	PaymentStatusPendingVerification PaymentStatus = "pending_verification"
	PaymentStatusVerified            PaymentStatus = "verified"
)

// OrderItem is the single frozen line item of a design order.
type OrderItem struct {
	ID       uuid.UUID `json:"id"`
	OrderID  uuid.UUID `json:"order_id"`
	DesignID uuid.UUID `json:"design_id"` // The source design submission.
	Price    int64     `json:"price"`     // Frozen copy of the design's final price.
	Quantity int       `json:"quantity"`  // Always 1 for design orders.
}

// Order is the immutable record produced by converting an approved
// design submission. At most one order exists per submission; the
// submission's terminal ordered status acts as the mutex.
type Order struct {
	ID              uuid.UUID     `json:"id"`               // The Global Unique Identifier (GUID) for the order.
	BuyerID         uuid.UUID     `json:"buyer_id"`         // The buyer who placed the order.
	BakerID         uuid.UUID     `json:"baker_id"`         // The baker fulfilling it.
	Item            OrderItem     `json:"item"`             // The single frozen line item.
	ShippingFee     int64         `json:"shipping_fee"`     // Copied from the design at conversion time.
	TotalAmount     int64         `json:"total_amount"`     // FinalPrice + ShippingFee.
	AmountDeclared  int64         `json:"amount_declared"`  // Client-declared payment total; validated, never trusted.
	ShippingAddress string        `json:"shipping_address"` // Declared delivery address.
	PaymentMethod   PaymentMethod `json:"payment_method"`
	PaymentStatus   PaymentStatus `json:"payment_status"`
	ProofOfPayment  string        `json:"proof_of_payment"` // Upload URL; required for electronic payments.
	PaymentQRURL    string        `json:"payment_qr_url"`   // Generated payment reference QR for electronic orders.
	CreatedAt       time.Time     `json:"created_at"`       // Timestamp of when this order was created.
	UpdatedAt       time.Time     `json:"updated_at"`       // Timestamp of the last modification.
}
