package models

// Order statuses as reported by the backend.
const (
	OrderPending   = "pending"
	OrderPaid      = "paid"
	OrderActivated = "activated"
	OrderDeclined  = "declined"
	OrderCancelled = "cancelled"
)

// Order process actions accepted by PATCH /api/orders/:id/process.
const (
	OrderActionActivate    = "activate"
	OrderActionDecline     = "decline"
	OrderActionWrongSerial = "wrong_serial"
)

// Order is a purchase placed through the bot, processed manually by admins.
type Order struct {
	ID            int64   `json:"id"`
	CustomerID    int64   `json:"customerId"`
	CustomerName  string  `json:"customerName"`
	ProductID     int64   `json:"productId"`
	ProductName   string  `json:"productName"`
	SerialNumber  string  `json:"serialNumber"`
	Amount        float64 `json:"amount"`
	PaymentMethod string  `json:"paymentMethod"`
	Status        string  `json:"status"`
	Notes         string  `json:"notes"`
	CreatedAt     string  `json:"createdAt"`
	UpdatedAt     string  `json:"updatedAt"`
}

func (o Order) EntityID() int64 { return o.ID }

// OrderStats summarizes order counts per status.
type OrderStats struct {
	Total     int `json:"total"`
	Pending   int `json:"pending"`
	Paid      int `json:"paid"`
	Activated int `json:"activated"`
	Declined  int `json:"declined"`
}
