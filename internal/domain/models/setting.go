package models

// Setting is a key/value configuration entry managed from the back office.
// Settings are addressed by key, not by numeric id.
type Setting struct {
	Key         string `json:"key"`
	Value       string `json:"value"`
	Description string `json:"description"`
	UpdatedAt   string `json:"updatedAt"`
}

// PaynowConfig is the payment gateway configuration. The API key comes back
// masked from the server.
type PaynowConfig struct {
	Enabled     bool   `json:"enabled"`
	MerchantID  string `json:"merchantId"`
	APIKey      string `json:"apiKey"`
	CallbackURL string `json:"callbackUrl"`
}

// PaynowTestResult reports a connectivity check against the gateway.
type PaynowTestResult struct {
	OK      bool   `json:"ok"`
	Message string `json:"message"`
}
