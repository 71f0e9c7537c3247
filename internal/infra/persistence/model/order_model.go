package model

import (
	"time"

	"github.com/google/uuid"
)

// OrderModel is the GORM-specific struct for the 'orders' table.
type OrderModel struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	BuyerID         uuid.UUID `gorm:"type:uuid;not null;index"`
	BakerID         uuid.UUID `gorm:"type:uuid;not null;index"`
	ShippingFee     int64     `gorm:"not null;default:0"`
	TotalAmount     int64     `gorm:"not null"`
	AmountDeclared  int64     `gorm:"not null"`
	ShippingAddress string    `gorm:"type:text;not null"`
	PaymentMethod   string    `gorm:"type:text;not null"`
	PaymentStatus   string    `gorm:"type:text;not null"`
	ProofOfPayment  string    `gorm:"type:text"`
	PaymentQRURL    string    `gorm:"type:text"`
	CreatedAt       time.Time
	UpdatedAt       time.Time

	Item OrderItemModel `gorm:"foreignKey:OrderID"`
}

// TableName explicitly sets the table name for GORM.
func (OrderModel) TableName() string {
	return "orders"
}

// OrderItemModel is the GORM-specific struct for the 'order_items'
// table. The unique index on design_id is the database-level backstop
// for the at-most-one-order-per-design invariant.
type OrderItemModel struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	OrderID  uuid.UUID `gorm:"type:uuid;not null;index"`
	DesignID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
	Price    int64     `gorm:"not null"`
	Quantity int       `gorm:"not null;default:1"`
}

// TableName explicitly sets the table name for GORM.
func (OrderItemModel) TableName() string {
	return "order_items"
}
