package repository

import (
	"context"

	"inventaris/internal/dto"
	"inventaris/internal/model"

	"gorm.io/gorm"
)

// ProdukRepository defines the data access contract for products.
// Services depend on this interface, not on the concrete GORM implementation,
// enabling clean unit testing via fakes.
type ProdukRepository interface {
	Create(ctx context.Context, p *model.Produk) error
	FindByKode(ctx context.Context, kode string) (*model.Produk, error)
	List(ctx context.Context, filter dto.ProdukFilter) ([]model.Produk, error)
	Delete(ctx context.Context, kode string) (int64, error)
	Count(ctx context.Context) (int64, error)

	// Used inside transactions — callers must pass the tx instance.
	// Returns rows affected; 0 means the product vanished under the caller.
	UpdateTx(tx *gorm.DB, kode string, nama string, kategori *string) (int64, error)

	// Transaction runs fn atomically. Keeping it on the interface lets fakes
	// run service tests without a live database.
	Transaction(ctx context.Context, fn func(tx *gorm.DB) error) error
}

type produkRepo struct{ db *gorm.DB }

func NewProdukRepository(db *gorm.DB) ProdukRepository { return &produkRepo{db: db} }

func (r *produkRepo) Create(ctx context.Context, p *model.Produk) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *produkRepo) FindByKode(ctx context.Context, kode string) (*model.Produk, error) {
	var p model.Produk
	err := r.db.WithContext(ctx).Where("kode_produk = ?", kode).First(&p).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *produkRepo) List(ctx context.Context, filter dto.ProdukFilter) ([]model.Produk, error) {
	var produk []model.Produk

	q := r.db.WithContext(ctx).Model(&model.Produk{})
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		q = q.Where("nama ILIKE ? OR kategori ILIKE ? OR kode_produk ILIKE ?", pattern, pattern, pattern)
	}

	// Newest first
	err := q.Order("id DESC").Find(&produk).Error
	return produk, err
}

func (r *produkRepo) Delete(ctx context.Context, kode string) (int64, error) {
	res := r.db.WithContext(ctx).Where("kode_produk = ?", kode).Delete(&model.Produk{})
	return res.RowsAffected, res.Error
}

func (r *produkRepo) Count(ctx context.Context) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&model.Produk{}).Count(&total).Error
	return total, err
}

func (r *produkRepo) UpdateTx(tx *gorm.DB, kode string, nama string, kategori *string) (int64, error) {
	res := tx.Model(&model.Produk{}).Where("kode_produk = ?", kode).Updates(map[string]interface{}{
		"nama":     nama,
		"kategori": kategori,
	})
	return res.RowsAffected, res.Error
}

func (r *produkRepo) Transaction(ctx context.Context, fn func(tx *gorm.DB) error) error {
	return r.db.WithContext(ctx).Transaction(fn)
}
