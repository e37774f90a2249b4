package model

import "time"

// Stok holds one row per product code. NamaProduk is a denormalized copy of
// the product name; product renames must rewrite it (see ProdukService).
// The FK to produk.kode_produk cascades on delete so removing a product
// removes its stock row in the same statement.
type Stok struct {
	ID         uint   `gorm:"primaryKey"`
	KodeProduk string `gorm:"uniqueIndex;not null"`
	NamaProduk string `gorm:"not null"`
	Jumlah     int    `gorm:"not null;default:0"`
	CreatedAt  time.Time
	UpdatedAt  time.Time

	Produk *Produk `gorm:"foreignKey:KodeProduk;references:KodeProduk;constraint:OnDelete:CASCADE"`
}

func (Stok) TableName() string { return "stok" }
