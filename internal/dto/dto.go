package dto

import "greencart-api/internal/model"

// OrderItem is an input-supplied line item. Quantity is decoded as a
// float so a malformed value can be rejected explicitly instead of
// silently truncated.
type OrderItem struct {
	Product  string  `json:"product"`
	Quantity float64 `json:"quantity"`
}

type PlaceOrderRequest struct {
	UserID  string      `json:"userId"`
	Items   []OrderItem `json:"items"`
	Address string      `json:"address"`
}

type UpdateCartRequest struct {
	CartItems map[string]int64 `json:"cartItems"`
}

type AddProductRequest struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Category    string   `json:"category"`
	Price       float64  `json:"price"`
	OfferPrice  float64  `json:"offerPrice"`
	Stock       int64    `json:"stock"`
	Images      []string `json:"images"`
}

type ChangeStockRequest struct {
	ID    string `json:"id"`
	Stock int64  `json:"stock"`
}

type AddAddressRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Street    string `json:"street"`
	City      string `json:"city"`
	State     string `json:"state"`
	Zipcode   string `json:"zipcode"`
	Country   string `json:"country"`
	Phone     string `json:"phone"`
}

// Response is the plain JSON envelope.
type Response struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	URL     string `json:"url,omitempty"`
}

type OrdersResponse struct {
	Success bool           `json:"success"`
	Orders  []*model.Order `json:"orders"`
}

type ProductsResponse struct {
	Success  bool             `json:"success"`
	Products []*model.Product `json:"products"`
}

type ProductResponse struct {
	Success bool           `json:"success"`
	Product *model.Product `json:"product"`
}

type AddressesResponse struct {
	Success   bool             `json:"success"`
	Addresses []*model.Address `json:"addresses"`
}

type CartResponse struct {
	Success   bool             `json:"success"`
	CartItems map[string]int64 `json:"cartItems"`
}
