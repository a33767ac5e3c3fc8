package domain

import "time"

type Category string

const (
	CategoryCoffee   Category = "coffee"
	CategoryTea      Category = "tea"
	CategoryPastry   Category = "pastry"
	CategorySandwich Category = "sandwich"
	CategoryCake     Category = "cake"
	CategoryCookie   Category = "cookie"
	CategoryBeverage Category = "beverage"
)

// Categories lists every category in menu display order.
func Categories() []Category {
	return []Category{
		CategoryCoffee, CategoryTea, CategoryPastry,
		CategorySandwich, CategoryCake, CategoryCookie, CategoryBeverage,
	}
}

func (c Category) Valid() bool {
	switch c {
	case CategoryCoffee, CategoryTea, CategoryPastry, CategorySandwich,
		CategoryCake, CategoryCookie, CategoryBeverage:
		return true
	}
	return false
}

type OrderStatus string

const (
	StatusPending   OrderStatus = "pending"
	StatusConfirmed OrderStatus = "confirmed"
	StatusPreparing OrderStatus = "preparing"
	StatusReady     OrderStatus = "ready"
	StatusCompleted OrderStatus = "completed"
	StatusCancelled OrderStatus = "cancelled"
)

func (s OrderStatus) Valid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusPreparing,
		StatusReady, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// Next returns the natural forward transition for admin triage.
// Terminal statuses return themselves.
func (s OrderStatus) Next() OrderStatus {
	switch s {
	case StatusPending:
		return StatusConfirmed
	case StatusConfirmed:
		return StatusPreparing
	case StatusPreparing:
		return StatusReady
	case StatusReady:
		return StatusCompleted
	default:
		return s
	}
}

type Role string

const (
	RoleCustomer Role = "customer"
	RoleAdmin    Role = "admin"
)

type Product struct {
	ID          string         `json:"id"`
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Price       float64        `json:"price"`
	Category    Category       `json:"category"`
	ImageURL    string         `json:"image_url"`
	Available   bool           `json:"available"`
	Ingredients []string       `json:"ingredients,omitempty"`
	Nutritional map[string]any `json:"nutritional_info,omitempty"`
	CreatedAt   time.Time      `json:"created_at"`
}

type User struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Role      Role      `json:"role"`
	Phone     string    `json:"phone,omitempty"`
	Address   string    `json:"address,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// OrderLine is a snapshot of a product at order time. Later catalog edits
// never change a placed order.
type OrderLine struct {
	ProductID   string  `json:"product_id"`
	Quantity    int     `json:"quantity"`
	Price       float64 `json:"price"`
	ProductName string  `json:"product_name"`
}

type Order struct {
	ID            string      `json:"id"`
	UserID        string      `json:"user_id"`
	Items         []OrderLine `json:"items"`
	TotalAmount   float64     `json:"total_amount"`
	Status        OrderStatus `json:"status"`
	PaymentMethod string      `json:"payment_method"`
	DeliveryAddr  string      `json:"delivery_address,omitempty"`
	Instructions  string      `json:"special_instructions,omitempty"`
	CreatedAt     time.Time   `json:"created_at"`
	UpdatedAt     time.Time   `json:"updated_at"`
}

type Review struct {
	ID        string    `json:"id"`
	ProductID string    `json:"product_id"`
	UserID    string    `json:"user_id"`
	UserName  string    `json:"user_name"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"created_at"`
}

type DashboardStats struct {
	TotalProducts int `json:"total_products"`
	TotalOrders   int `json:"total_orders"`
	TotalUsers    int `json:"total_users"`
	PendingOrders int `json:"pending_orders"`
}
