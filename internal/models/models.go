package models

const (
	RoleAdmin   = "admin"
	RoleManager = "manager"
	RoleClient  = "client"
)

func ValidRole(role string) bool {
	return role == RoleAdmin || role == RoleManager || role == RoleClient
}

type User struct {
	ID           uint    `gorm:"primaryKey;autoIncrement" json:"id"`
	Name         string  `gorm:"not null"                 json:"name"`
	Login        *string `gorm:"unique"                   json:"login"`
	PasswordHash string  `gorm:"not null"                 json:"-"`
	Role         string  `gorm:"not null"                 json:"role"`
}

type Product struct {
	ID          uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string `gorm:"not null"                 json:"name"`
	Description string `json:"description"`
}

type Order struct {
	ID            uint           `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID        uint           `gorm:"index;not null"           json:"user_id"`
	PaymentStatus string         `gorm:"not null;default:unpaid"  json:"payment_status"`
	Products      []OrderProduct `gorm:"foreignKey:OrderID"       json:"products"`
}

type OrderProduct struct {
	ID        uint `gorm:"primaryKey"        json:"id"`
	OrderID   uint `gorm:"index;not null"    json:"order_id"`
	ProductID uint `gorm:"not null"          json:"product_id"`
	Quantity  uint `gorm:"check:quantity>0"  json:"quantity"`
}
