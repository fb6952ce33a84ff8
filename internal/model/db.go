package model

import "time"

type Product struct {
	ID          string   `gorm:"primaryKey;size:64;not null" json:"id"`
	Name        string   `gorm:"size:128;not null" json:"name"`
	Description string   `json:"description"`
	Category    string   `gorm:"size:64;index" json:"category"`
	Price       float64  `gorm:"not null" json:"price"`      // displayed list price
	OfferPrice  float64  `gorm:"not null" json:"offerPrice"` // billing price, >= 0
	Stock       int64    `gorm:"not null" json:"stock"`
	Images      []string `gorm:"serializer:json" json:"images"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type User struct {
	ID    string `gorm:"primaryKey;size:64;not null" json:"id"`
	Name  string `gorm:"size:128" json:"name"`
	Email string `gorm:"size:128;index" json:"email"`
	// cart embedded in the user record, replaced wholesale on update
	CartItems map[string]int64 `gorm:"serializer:json" json:"cartItems"`
	CreatedAt time.Time        `json:"createdAt"`
	UpdatedAt time.Time        `json:"updatedAt"`
}

type Address struct {
	ID        string    `gorm:"primaryKey;size:64;not null" json:"id"`
	UserID    string    `gorm:"size:64;index;not null" json:"userId"`
	FirstName string    `gorm:"size:64" json:"firstName"`
	LastName  string    `gorm:"size:64" json:"lastName"`
	Email     string    `gorm:"size:128" json:"email"`
	Street    string    `gorm:"size:128" json:"street"`
	City      string    `gorm:"size:64" json:"city"`
	State     string    `gorm:"size:64" json:"state"`
	Zipcode   string    `gorm:"size:16" json:"zipcode"`
	Country   string    `gorm:"size:64" json:"country"`
	Phone     string    `gorm:"size:32" json:"phone"`
	CreatedAt time.Time `json:"createdAt"`
}

type Order struct {
	ID     string      `gorm:"primaryKey;size:64;not null" json:"id"`
	UserID string      `gorm:"size:64;index;not null" json:"userId"`
	Items  []OrderItem `gorm:"foreignKey:OrderID" json:"items"`
	// total amount including the 2% tax
	Amount      float64   `gorm:"not null" json:"amount"`
	AddressID   string    `gorm:"size:64;not null" json:"addressId"`
	Address     *Address  `gorm:"foreignKey:AddressID" json:"address,omitempty"`
	PaymentType string    `gorm:"size:16;index;not null" json:"paymentType"` // COD, Online
	IsPaid      bool      `gorm:"not null;default:false" json:"isPaid"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type OrderItem struct {
	ID uint `gorm:"primaryKey" json:"-"`
	// FK → order.id
	OrderID string `gorm:"size:64;index;not null" json:"-"`
	// FK → product.id
	ProductID string    `gorm:"size:64;index;not null" json:"productId"`
	Product   *Product  `gorm:"foreignKey:ProductID" json:"product,omitempty"`
	Quantity  int64     `gorm:"not null" json:"quantity"`
	CreatedAt time.Time `json:"-"`
}

type WebhookEvent struct {
	EventID     string `gorm:"primaryKey;size:128;uniqueIndex;not null"`
	EventType   string `gorm:"size:64;index"`
	ProcessedAt time.Time
	CreatedAt   time.Time
}

const (
	PaymentTypeCOD    = "COD"
	PaymentTypeOnline = "Online"
)
