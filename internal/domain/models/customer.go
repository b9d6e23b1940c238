package models

// Customer is a bot user managed from the back office.
type Customer struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	Surname    string `json:"surname"`
	Email      string `json:"email"`
	IDNumber   string `json:"idNumber"`
	TelegramID string `json:"telegramId"`
	WhatsappID string `json:"whatsappId"`
	IsActive   bool   `json:"isActive"`
	IsVerified bool   `json:"isVerified"`
	CreatedAt  string `json:"createdAt"`
	UpdatedAt  string `json:"updatedAt"`
}

func (c Customer) EntityID() int64 { return c.ID }

// CustomerUpdate carries the editable subset of a customer record.
type CustomerUpdate struct {
	Name       string `json:"name"`
	Surname    string `json:"surname"`
	Email      string `json:"email"`
	IDNumber   string `json:"idNumber"`
	TelegramID string `json:"telegramId"`
	WhatsappID string `json:"whatsappId"`
	IsActive   bool   `json:"isActive"`
	IsVerified bool   `json:"isVerified"`
}

// CustomerStats summarizes the customer base.
type CustomerStats struct {
	Total    int `json:"total"`
	Active   int `json:"active"`
	Verified int `json:"verified"`
}

// Registration platforms.
const (
	PlatformTelegram = "telegram"
	PlatformWhatsapp = "whatsapp"
)

// Registration is a pending signup awaiting approval. The ID document image
// is fetched separately via its server-provided relative path.
type Registration struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	Surname      string `json:"surname"`
	Email        string `json:"email"`
	Platform     string `json:"platform"`
	DocumentPath string `json:"documentPath"`
	Status       string `json:"status"`
	CreatedAt    string `json:"createdAt"`
}

func (r Registration) EntityID() int64 { return r.ID }
