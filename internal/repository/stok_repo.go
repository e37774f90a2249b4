package repository

import (
	"context"

	"inventaris/internal/dto"
	"inventaris/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// StokRow is the read shape for stock: the stok columns plus the product
// category from a LEFT JOIN, so rows survive even without the product side.
type StokRow struct {
	model.Stok
	Kategori *string
}

// StokRepository defines the data access contract for stock rows.
type StokRepository interface {
	// Upsert inserts the row, or on a kode_produk conflict adds Jumlah to the
	// existing quantity and refreshes the denormalized name. The caller must
	// re-read the row to observe the accumulated quantity.
	Upsert(ctx context.Context, s *model.Stok) error
	FindByKode(ctx context.Context, kode string) (*StokRow, error)
	List(ctx context.Context, filter dto.StokFilter) ([]StokRow, error)
	UpdateJumlah(ctx context.Context, kode string, jumlah int) (int64, error)
	Delete(ctx context.Context, kode string) (int64, error)
	SumJumlah(ctx context.Context) (int64, error)

	// UpdateNamaTx rewrites the denormalized product name inside a caller-owned
	// transaction (product rename propagation). Zero rows is not an error: the
	// product may simply have no stock row yet.
	UpdateNamaTx(tx *gorm.DB, kode string, nama string) error
}

type stokRepo struct{ db *gorm.DB }

func NewStokRepository(db *gorm.DB) StokRepository { return &stokRepo{db: db} }

func (r *stokRepo) Upsert(ctx context.Context, s *model.Stok) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "kode_produk"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"jumlah":      gorm.Expr("stok.jumlah + EXCLUDED.jumlah"),
			"nama_produk": gorm.Expr("EXCLUDED.nama_produk"),
			"updated_at":  gorm.Expr("EXCLUDED.updated_at"),
		}),
	}).Create(s).Error
}

func (r *stokRepo) FindByKode(ctx context.Context, kode string) (*StokRow, error) {
	var row StokRow
	err := r.db.WithContext(ctx).Model(&model.Stok{}).
		Select("stok.*, produk.kategori AS kategori").
		Joins("LEFT JOIN produk ON produk.kode_produk = stok.kode_produk").
		Where("stok.kode_produk = ?", kode).
		First(&row).Error
	if err != nil {
		return nil, err
	}
	return &row, nil
}

func (r *stokRepo) List(ctx context.Context, filter dto.StokFilter) ([]StokRow, error) {
	var rows []StokRow

	q := r.db.WithContext(ctx).Model(&model.Stok{}).
		Select("stok.*, produk.kategori AS kategori").
		Joins("LEFT JOIN produk ON produk.kode_produk = stok.kode_produk")
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		q = q.Where("stok.nama_produk ILIKE ? OR stok.kode_produk ILIKE ?", pattern, pattern)
	}

	err := q.Order("stok.id DESC").Find(&rows).Error
	return rows, err
}

func (r *stokRepo) UpdateJumlah(ctx context.Context, kode string, jumlah int) (int64, error) {
	res := r.db.WithContext(ctx).Model(&model.Stok{}).
		Where("kode_produk = ?", kode).
		Update("jumlah", jumlah)
	return res.RowsAffected, res.Error
}

func (r *stokRepo) Delete(ctx context.Context, kode string) (int64, error) {
	res := r.db.WithContext(ctx).Where("kode_produk = ?", kode).Delete(&model.Stok{})
	return res.RowsAffected, res.Error
}

func (r *stokRepo) SumJumlah(ctx context.Context) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&model.Stok{}).
		Select("COALESCE(SUM(jumlah), 0)").
		Scan(&total).Error
	return total, err
}

func (r *stokRepo) UpdateNamaTx(tx *gorm.DB, kode string, nama string) error {
	return tx.Model(&model.Stok{}).Where("kode_produk = ?", kode).
		Update("nama_produk", nama).Error
}
