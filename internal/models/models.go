package models

import (
	"time"
)

type User struct {
	ID           uint       `gorm:"primaryKey;autoIncrement" json:"id"`
	Email        string     `gorm:"uniqueIndex;size:120;not null" json:"email"`
	Username     string     `gorm:"uniqueIndex;size:80;not null"  json:"username"`
	PasswordHash string     `gorm:"size:255;not null"             json:"-"`
	FullName     string     `gorm:"size:120"                      json:"full_name"`
	CreatedAt    time.Time  `json:"created_at"`
	Favorites    []Favorite `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

type Product struct {
	ID          uint       `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string     `gorm:"size:120;not null" json:"name"`
	Description string     `gorm:"type:text"         json:"description"`
	Price       float64    `gorm:"not null"          json:"price"`
	Category    *string    `gorm:"size:80;index"     json:"category"`
	ModelPath   string     `gorm:"size:255"          json:"model_path"`
	ImageURL    string     `gorm:"size:255"          json:"image_url"`
	Material    string     `gorm:"size:120"          json:"material"`
	Color       string     `gorm:"size:80"           json:"color"`
	Dimensions  Dimensions `gorm:"type:json"         json:"dimensions"`
	InStock     bool       `gorm:"default:true"      json:"in_stock"`
	CreatedAt   time.Time  `json:"created_at"`
}

// Favorite links a user to a product. The composite unique index keeps the
// pair unique at the storage layer, so the second of two concurrent inserts
// fails with a duplicate-key error instead of creating a double row.
type Favorite struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID    uint      `gorm:"not null;uniqueIndex:idx_user_product" json:"user_id"`
	ProductID uint      `gorm:"not null;uniqueIndex:idx_user_product" json:"product_id"`
	AddedAt   time.Time `gorm:"autoCreateTime" json:"added_at"`
	User      *User     `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"    json:"-"`
	Product   *Product  `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE" json:"product,omitempty"`
}
