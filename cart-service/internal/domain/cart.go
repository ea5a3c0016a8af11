package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
)

const PaymentCashOnDelivery = "Cash on Delivery"

// ProductID identifies a product in the cart. Clients send it either as a
// JSON string or as a JSON number; both decode to the same textual form.
type ProductID string

func (id *ProductID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case bytes.Equal(data, []byte("null")):
		*id = ""
		return nil
	case len(data) > 0 && data[0] == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = ProductID(s)
		return nil
	default:
		var n json.Number
		if err := json.Unmarshal(data, &n); err != nil {
			return fmt.Errorf("productId must be a string or a number: %w", err)
		}
		*id = ProductID(n.String())
		return nil
	}
}

type CartItem struct {
	ProductID   ProductID `json:"productId"`
	ProductName string    `json:"productName"`
	Price       float64   `json:"price"`
}

// CartSummary is a point-in-time copy of the ledger.
type CartSummary struct {
	Items []CartItem `json:"cartItems"`
	Total float64    `json:"total"`
}

type Order struct {
	Items         []CartItem `json:"items"`
	TotalPrice    float64    `json:"totalPrice"`
	PaymentMethod string     `json:"paymentMethod"`
	OrderNumber   int        `json:"orderNumber"`
}

// TotalPrice is the plain sum of item prices.
func TotalPrice(items []CartItem) float64 {
	var total float64
	for _, item := range items {
		total += item.Price
	}
	return total
}

type RemoveOutcome int

const (
	RemoveNotFound RemoveOutcome = iota
	RemoveRemoved
)

func (o RemoveOutcome) String() string {
	if o == RemoveRemoved {
		return "removed"
	}
	return "not_found"
}
