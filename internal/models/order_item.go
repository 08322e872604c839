package models

// OrderItem is a purchase line. TotalPrice is always Quantity * UnitPrice,
// computed by the service, never supplied by the caller.
type OrderItem struct {
	ID         string  `json:"id"`
	ProductID  string  `json:"product_id"`
	Quantity   int     `json:"quantity"`
	UnitPrice  float64 `json:"unit_price"`
	TotalPrice float64 `json:"total_price"`
}
