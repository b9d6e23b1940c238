package mockapi

import (
	"sort"
	"strings"
	"sync"
	"time"

	"backoffice/internal/domain/models"

	"golang.org/x/crypto/bcrypt"
)

// adminAccount keeps the credential hash next to the public record.
type adminAccount struct {
	models.Admin
	PasswordHash []byte
}

// Store is the in-memory backing state for the mock API. Everything lives
// behind one mutex; the dataset is small and reseeded on every start.
type Store struct {
	mu sync.Mutex

	admins        []adminAccount
	customers     []models.Customer
	registrations []models.Registration
	orders        []models.Order
	payments      []models.Payment
	wallets       []models.Wallet
	products      []models.Product
	settings      []models.Setting
	paynow        models.PaynowConfig

	nextID map[string]int64
}

func nowStamp() string { return time.Now().UTC().Format(time.RFC3339) }

func mustHash(pw string) []byte {
	h, err := bcrypt.GenerateFromPassword([]byte(pw), bcrypt.DefaultCost)
	if err != nil {
		panic(err)
	}
	return h
}

// NewStore seeds a deterministic fixture set. Default credentials:
// superadmin/superadmin123 and admin/admin12345.
func NewStore() *Store {
	ts := nowStamp()
	s := &Store{
		nextID: map[string]int64{
			"admin": 3, "customer": 5, "order": 7, "payment": 5, "product": 5, "registration": 3,
		},
	}

	s.admins = []adminAccount{
		{
			Admin: models.Admin{
				ID: 1, Username: "superadmin", Email: "super@example.com",
				DisplayName: "Super Admin", Role: models.RoleSuperAdmin,
				IsActive: true, CreatedAt: ts,
			},
			PasswordHash: mustHash("superadmin123"),
		},
		{
			Admin: models.Admin{
				ID: 2, Username: "admin", Email: "admin@example.com",
				DisplayName: "Day Admin", Role: models.RoleAdmin,
				IsActive: true, CreatedAt: ts,
			},
			PasswordHash: mustHash("admin12345"),
		},
	}

	s.customers = []models.Customer{
		{ID: 1, Name: "Tendai", Surname: "Moyo", Email: "tendai@example.com", IDNumber: "63-123456A00", TelegramID: "100001", IsActive: true, IsVerified: true, CreatedAt: ts, UpdatedAt: ts},
		{ID: 2, Name: "Rudo", Surname: "Chirwa", Email: "rudo@example.com", IDNumber: "63-654321B00", WhatsappID: "263770000002", IsActive: true, IsVerified: true, CreatedAt: ts, UpdatedAt: ts},
		{ID: 3, Name: "Blessing", Surname: "Ncube", Email: "", TelegramID: "100003", IsActive: true, IsVerified: false, CreatedAt: ts, UpdatedAt: ts},
		{ID: 4, Name: "Farai", Surname: "Dube", Email: "farai@example.com", TelegramID: "100004", IsActive: false, IsVerified: true, CreatedAt: ts, UpdatedAt: ts},
	}

	s.registrations = []models.Registration{
		{ID: 1, Name: "Nyasha", Surname: "Gumbo", Email: "nyasha@example.com", Platform: models.PlatformTelegram, DocumentPath: "/uploads/docs/reg-1.jpg", Status: "pending", CreatedAt: ts},
		{ID: 2, Name: "Kudzai", Surname: "Mhlanga", Email: "kudzai@example.com", Platform: models.PlatformWhatsapp, DocumentPath: "/uploads/docs/reg-2.jpg", Status: "pending", CreatedAt: ts},
	}

	s.products = []models.Product{
		{ID: 1, Name: "Starter Bundle", Description: "Entry data bundle", Category: "bundles", BasePrice: 4.00, SellingPrice: 5.00, Stock: 120, IsActive: true, CreatedAt: ts, UpdatedAt: ts},
		{ID: 2, Name: "Family Bundle", Description: "Shared data bundle", Category: "bundles", BasePrice: 15.00, SellingPrice: 18.50, Stock: 40, IsActive: true, CreatedAt: ts, UpdatedAt: ts},
		{ID: 3, Name: "Streaming Pass", Description: "30-day streaming add-on", Category: "addons", BasePrice: 8.00, SellingPrice: 10.00, Stock: 0, IsActive: true, CreatedAt: ts, UpdatedAt: ts},
		{ID: 4, Name: "Legacy Top-up", Description: "Discontinued top-up", Category: "topups", BasePrice: 1.00, SellingPrice: 1.50, Stock: 10, IsActive: false, CreatedAt: ts, UpdatedAt: ts},
	}

	s.orders = []models.Order{
		{ID: 1, CustomerID: 1, CustomerName: "Tendai Moyo", ProductID: 1, ProductName: "Starter Bundle", SerialNumber: "SN-0001", Amount: 5.00, PaymentMethod: models.MethodWallet, Status: models.OrderPaid, CreatedAt: ts, UpdatedAt: ts},
		{ID: 2, CustomerID: 2, CustomerName: "Rudo Chirwa", ProductID: 2, ProductName: "Family Bundle", SerialNumber: "SN-0002", Amount: 18.50, PaymentMethod: models.MethodPaynow, Status: models.OrderPaid, CreatedAt: ts, UpdatedAt: ts},
		{ID: 3, CustomerID: 1, CustomerName: "Tendai Moyo", ProductID: 3, ProductName: "Streaming Pass", SerialNumber: "SN-0003", Amount: 10.00, PaymentMethod: models.MethodWallet, Status: models.OrderActivated, CreatedAt: ts, UpdatedAt: ts},
		{ID: 4, CustomerID: 3, CustomerName: "Blessing Ncube", ProductID: 1, ProductName: "Starter Bundle", Amount: 5.00, PaymentMethod: models.MethodPaynow, Status: models.OrderPending, CreatedAt: ts, UpdatedAt: ts},
		{ID: 5, CustomerID: 2, CustomerName: "Rudo Chirwa", ProductID: 1, ProductName: "Starter Bundle", SerialNumber: "SN-0005", Amount: 5.00, PaymentMethod: models.MethodWallet, Status: models.OrderDeclined, Notes: "Serial rejected by carrier", CreatedAt: ts, UpdatedAt: ts},
		{ID: 6, CustomerID: 4, CustomerName: "Farai Dube", ProductID: 2, ProductName: "Family Bundle", Amount: 18.50, PaymentMethod: models.MethodPaynow, Status: models.OrderCancelled, CreatedAt: ts, UpdatedAt: ts},
	}

	s.payments = []models.Payment{
		{ID: 1, OrderID: 1, CustomerID: 1, CustomerName: "Tendai Moyo", Amount: 5.00, Method: models.MethodWallet, Status: models.PaymentCompleted, Reference: "WAL-1", CreatedAt: ts, UpdatedAt: ts},
		{ID: 2, OrderID: 2, CustomerID: 2, CustomerName: "Rudo Chirwa", Amount: 18.50, Method: models.MethodPaynow, Status: models.PaymentCompleted, Reference: "PN-88421", ProofPath: "/uploads/proofs/pn-88421.jpg", CreatedAt: ts, UpdatedAt: ts},
		{ID: 3, OrderID: 3, CustomerID: 1, CustomerName: "Tendai Moyo", Amount: 10.00, Method: models.MethodWallet, Status: models.PaymentCompleted, Reference: "WAL-3", CreatedAt: ts, UpdatedAt: ts},
		{ID: 4, OrderID: 4, CustomerID: 3, CustomerName: "Blessing Ncube", Amount: 5.00, Method: models.MethodPaynow, Status: models.PaymentPending, Reference: "PN-90004", CreatedAt: ts, UpdatedAt: ts},
	}

	s.wallets = []models.Wallet{
		{CustomerID: 1, CustomerName: "Tendai Moyo", Balance: 42.75, UpdatedAt: ts},
		{CustomerID: 2, CustomerName: "Rudo Chirwa", Balance: 5.00, UpdatedAt: ts},
		{CustomerID: 3, CustomerName: "Blessing Ncube", Balance: 0, UpdatedAt: ts},
		{CustomerID: 4, CustomerName: "Farai Dube", Balance: 12.30, Frozen: true, UpdatedAt: ts},
	}

	s.settings = []models.Setting{
		{Key: "support_phone", Value: "+263 77 000 0000", Description: "Number shown to customers in the bot", UpdatedAt: ts},
		{Key: "order_auto_cancel_hours", Value: "24", Description: "Unpaid orders are cancelled after this many hours", UpdatedAt: ts},
		{Key: "maintenance_mode", Value: "false", Description: "Pause the bot while true", UpdatedAt: ts},
	}

	s.paynow = models.PaynowConfig{
		Enabled:     true,
		MerchantID:  "10001",
		APIKey:      "pk_test_seed",
		CallbackURL: "https://bot.example.com/paynow/callback",
	}

	return s
}

func (s *Store) allocID(kind string) int64 {
	id := s.nextID[kind]
	s.nextID[kind] = id + 1
	return id
}

func (s *Store) findAdminByUsername(username string) (adminAccount, bool) {
	for _, a := range s.admins {
		if strings.EqualFold(a.Username, username) {
			return a, true
		}
	}
	return adminAccount{}, false
}

func (s *Store) findAdmin(id int64) (int, bool) {
	for i, a := range s.admins {
		if a.ID == id {
			return i, true
		}
	}
	return 0, false
}

func (s *Store) settingsSorted() []models.Setting {
	out := make([]models.Setting, len(s.settings))
	copy(out, s.settings)
	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })
	return out
}
