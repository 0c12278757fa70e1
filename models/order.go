package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// OrderStatus is the lifecycle state of an order.
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusConfirmed OrderStatus = "confirmed"
	OrderStatusCancelled OrderStatus = "cancelled"
)

// OrderItem is a line item frozen into an order at checkout time. Prices
// are resolved numerics; the order never sees the flexible catalog form.
type OrderItem struct {
	ProductID     int     `bson:"product_id" json:"product_id"`
	Name          string  `bson:"name" json:"name"`
	Category      string  `bson:"category" json:"category"`
	Price         float64 `bson:"price" json:"price"`
	Quantity      int     `bson:"quantity" json:"quantity"`
	Image         string  `bson:"image" json:"image"`
	Discount      int     `bson:"discount" json:"discount"`
	OriginalPrice float64 `bson:"original_price,omitempty" json:"original_price,omitempty"`
}

// UserProfile is the customer snapshot embedded in an order. Fields the
// user never filled in carry the "N/A" sentinel.
type UserProfile struct {
	Name        string `bson:"name" json:"name"`
	Email       string `bson:"email" json:"email"`
	PhoneNumber string `bson:"phone_number" json:"phone_number"`
	Address     string `bson:"address" json:"address"`
	City        string `bson:"city" json:"city"`
	State       string `bson:"state" json:"state"`
	Pincode     string `bson:"pincode" json:"pincode"`
}

// Order is immutable once written. Invariant:
// Total = Subtotal + Tax - DiscountAmount, DiscountAmount >= 0.
type Order struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	UserID         primitive.ObjectID `bson:"user_id" json:"user_id"`
	UserEmail      string             `bson:"user_email" json:"user_email"`
	Items          []OrderItem        `bson:"items" json:"items"`
	Subtotal       float64            `bson:"subtotal" json:"subtotal"`
	Tax            float64            `bson:"tax" json:"tax"`
	PromoCode      string             `bson:"promo_code,omitempty" json:"promo_code,omitempty"`
	DiscountAmount float64            `bson:"discount_amount" json:"discount_amount"`
	Total          float64            `bson:"total" json:"total"`
	UserProfile    UserProfile        `bson:"user_profile" json:"user_profile"`
	Status         OrderStatus        `bson:"status" json:"status"`
	CreatedAt      time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt      time.Time          `bson:"updated_at" json:"updated_at"`
}
