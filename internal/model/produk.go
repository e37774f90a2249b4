package model

import "time"

// Produk is a catalog entry. KodeProduk is the externally meaningful product
// code (the business key); ID stays internal and never leaves the API except
// as an opaque number.
type Produk struct {
	ID         uint   `gorm:"primaryKey"`
	KodeProduk string `gorm:"uniqueIndex;not null"`
	Nama       string `gorm:"index;not null"`
	Kategori   *string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// TableName keeps the Indonesian singular table name (GORM would pluralize).
func (Produk) TableName() string { return "produk" }
