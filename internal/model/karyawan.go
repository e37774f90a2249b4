package model

import "time"

// Karyawan is an employee record, independent of the product/stock tables.
type Karyawan struct {
	ID        uint   `gorm:"primaryKey"`
	Nama      string `gorm:"not null"`
	Posisi    string `gorm:"not null"`
	Email     *string
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Karyawan) TableName() string { return "karyawan" }
