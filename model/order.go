package model

import "time"

type Order struct {
	DTO
	PublicCode string      `gorm:"uniqueIndex;size:20" json:"publicCode"`
	UserId     uint        `gorm:"not null;index" json:"userId"`
	Email      string      `gorm:"type:varchar(255);not null" json:"email"`
	Total      float64     `json:"total"`
	Items      []OrderItem `gorm:"foreignKey:OrderId" json:"items"`
}

type Orders []Order

type OrderItem struct {
	DTO
	MovieId uint    `gorm:"not null;index" json:"movieId"`
	Movie   Movie   `gorm:"foreignKey:MovieId" json:"movie"`
	Amount  int     `gorm:"not null" json:"amount"`
	Price   float64 `gorm:"not null" json:"price"` // unit price at purchase time
	OrderId uint    `gorm:"not null;index" json:"orderId"`
}

// ShoppingCartItem is one pre-checkout cart line, scoped to a session id.
// Rows are deleted on checkout or by the expiry sweep.
type ShoppingCartItem struct {
	DTO
	ShoppingCartId string `gorm:"type:varchar(40);not null;index" json:"shoppingCartId"`
	MovieId        uint   `gorm:"not null;index" json:"movieId"`
	Movie          Movie  `gorm:"foreignKey:MovieId" json:"movie"`
	Amount         int    `gorm:"not null" json:"amount"`
}

// OrderEvent is what gets published on the orders channel for the admin feed.
type OrderEvent struct {
	PublicCode string    `json:"publicCode"`
	Email      string    `json:"email"`
	Total      float64   `json:"total"`
	ItemCount  int       `json:"itemCount"`
	CreatedAt  time.Time `json:"createdAt"`
}
