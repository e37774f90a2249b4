package repository

import (
	"context"

	"inventaris/internal/dto"
	"inventaris/internal/model"

	"gorm.io/gorm"
)

// KaryawanRepository defines CRUD operations for employees.
type KaryawanRepository interface {
	Create(ctx context.Context, k *model.Karyawan) error
	FindByID(ctx context.Context, id uint) (*model.Karyawan, error)
	List(ctx context.Context, filter dto.KaryawanFilter) ([]model.Karyawan, error)
	Update(ctx context.Context, k *model.Karyawan) error
	Delete(ctx context.Context, id uint) (int64, error)
	Count(ctx context.Context) (int64, error)
}

type karyawanRepo struct{ db *gorm.DB }

func NewKaryawanRepository(db *gorm.DB) KaryawanRepository { return &karyawanRepo{db: db} }

func (r *karyawanRepo) Create(ctx context.Context, k *model.Karyawan) error {
	return r.db.WithContext(ctx).Create(k).Error
}

func (r *karyawanRepo) FindByID(ctx context.Context, id uint) (*model.Karyawan, error) {
	var k model.Karyawan
	err := r.db.WithContext(ctx).First(&k, id).Error
	if err != nil {
		return nil, err
	}
	return &k, nil
}

func (r *karyawanRepo) List(ctx context.Context, filter dto.KaryawanFilter) ([]model.Karyawan, error) {
	var karyawan []model.Karyawan

	q := r.db.WithContext(ctx).Model(&model.Karyawan{})
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		q = q.Where("nama ILIKE ? OR posisi ILIKE ? OR email ILIKE ?", pattern, pattern, pattern)
	}

	err := q.Order("id DESC").Find(&karyawan).Error
	return karyawan, err
}

func (r *karyawanRepo) Update(ctx context.Context, k *model.Karyawan) error {
	return r.db.WithContext(ctx).Save(k).Error
}

func (r *karyawanRepo) Delete(ctx context.Context, id uint) (int64, error) {
	res := r.db.WithContext(ctx).Delete(&model.Karyawan{}, id)
	return res.RowsAffected, res.Error
}

func (r *karyawanRepo) Count(ctx context.Context) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&model.Karyawan{}).Count(&total).Error
	return total, err
}
