package models

// Payment statuses as reported by the backend.
const (
	PaymentPending   = "pending"
	PaymentCompleted = "completed"
	PaymentFailed    = "failed"
	PaymentRefunded  = "refunded"
)

// Payment methods.
const (
	MethodWallet = "wallet"
	MethodPaynow = "paynow"
)

// Payment is a settlement attached to an order. ProofPath, when set, points
// at an uploaded proof image served by the backend.
type Payment struct {
	ID           int64   `json:"id"`
	OrderID      int64   `json:"orderId"`
	CustomerID   int64   `json:"customerId"`
	CustomerName string  `json:"customerName"`
	Amount       float64 `json:"amount"`
	Method       string  `json:"method"`
	Status       string  `json:"status"`
	Reference    string  `json:"reference"`
	RefundReason string  `json:"refundReason"`
	Notes        string  `json:"notes"`
	ProofPath    string  `json:"proofPath"`
	CreatedAt    string  `json:"createdAt"`
	UpdatedAt    string  `json:"updatedAt"`
}

func (p Payment) EntityID() int64 { return p.ID }

// PaymentStats summarizes settlement volume.
type PaymentStats struct {
	Total     int     `json:"total"`
	Completed int     `json:"completed"`
	Refunded  int     `json:"refunded"`
	Volume    float64 `json:"volume"`
}

// Wallet holds a customer's prepaid balance. Keyed by customer, so its
// entity id is the owning customer's id.
type Wallet struct {
	CustomerID   int64   `json:"customerId"`
	CustomerName string  `json:"customerName"`
	Balance      float64 `json:"balance"`
	Frozen       bool    `json:"frozen"`
	UpdatedAt    string  `json:"updatedAt"`
}

func (w Wallet) EntityID() int64 { return w.CustomerID }

// WalletStats summarizes balances across all wallets.
type WalletStats struct {
	Total        int     `json:"total"`
	Frozen       int     `json:"frozen"`
	TotalBalance float64 `json:"totalBalance"`
}
