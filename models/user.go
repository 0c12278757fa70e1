package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User represents a customer account. The profile fields feed the
// snapshot embedded in orders at checkout.
type User struct {
	ID                primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Name              string             `bson:"name" json:"name"`
	Email             string             `bson:"email" json:"email"`
	Password          string             `bson:"password,omitempty" json:"-"`
	PhoneNumber       string             `bson:"phone_number,omitempty" json:"phone_number,omitempty"`
	Address           string             `bson:"address,omitempty" json:"address,omitempty"`
	City              string             `bson:"city,omitempty" json:"city,omitempty"`
	State             string             `bson:"state,omitempty" json:"state,omitempty"`
	Pincode           string             `bson:"pincode,omitempty" json:"pincode,omitempty"`
	Role              string             `bson:"role" json:"role"`
	IsVerified        bool               `bson:"is_verified" json:"is_verified"`
	VerificationToken string             `bson:"verification_token,omitempty" json:"-"`
}
