package service

import (
	"context"
	"errors"

	"inventaris/internal/apierror"
	"inventaris/internal/dto"
	"inventaris/internal/model"
	"inventaris/internal/repository"

	"gorm.io/gorm"
)

// StokService defines the business logic contract for stock rows.
//
// Create follows the upsert-accumulate policy: the product is looked up first
// (its name is the source of the denormalized copy), and a repeated create for
// the same product code ADDS to the existing quantity instead of failing.
type StokService interface {
	Create(ctx context.Context, req dto.CreateStokRequest) (dto.StokResponse, error)
	List(ctx context.Context, filter dto.StokFilter) ([]dto.StokResponse, error)
	Update(ctx context.Context, kode string, req dto.UpdateStokRequest) (dto.StokResponse, error)
	Delete(ctx context.Context, kode string) (dto.StokResponse, error)
}

type stokService struct {
	repo       repository.StokRepository
	produkRepo repository.ProdukRepository
	cache      *DashboardCache
}

func NewStokService(repo repository.StokRepository, produkRepo repository.ProdukRepository, cache *DashboardCache) StokService {
	return &stokService{repo: repo, produkRepo: produkRepo, cache: cache}
}

func mapStok(row repository.StokRow) dto.StokResponse {
	return dto.StokResponse{
		ID:         row.ID,
		KodeProduk: row.KodeProduk,
		NamaProduk: row.NamaProduk,
		Jumlah:     row.Jumlah,
		Kategori:   row.Kategori,
	}
}

func (s *stokService) Create(ctx context.Context, req dto.CreateStokRequest) (dto.StokResponse, error) {
	p, err := s.produkRepo.FindByKode(ctx, req.KodeProduk)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.StokResponse{}, apierror.NotFound("produk tidak ditemukan")
		}
		return dto.StokResponse{}, apierror.Internal("gagal mengambil produk: " + err.Error())
	}

	row := &model.Stok{
		KodeProduk: p.KodeProduk,
		NamaProduk: p.Nama,
		Jumlah:     *req.Jumlah,
	}
	if err := s.repo.Upsert(ctx, row); err != nil {
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			// Product deleted between the lookup and the insert
			return dto.StokResponse{}, apierror.Referential("produk tidak valid")
		}
		return dto.StokResponse{}, apierror.Internal("gagal menyimpan stok: " + err.Error())
	}

	// Re-read to observe the accumulated quantity and joined category.
	current, err := s.repo.FindByKode(ctx, p.KodeProduk)
	if err != nil {
		return dto.StokResponse{}, apierror.Internal("gagal mengambil stok: " + err.Error())
	}
	s.cache.Invalidate(ctx)
	return mapStok(*current), nil
}

func (s *stokService) List(ctx context.Context, filter dto.StokFilter) ([]dto.StokResponse, error) {
	rows, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, apierror.Internal("gagal mengambil daftar stok: " + err.Error())
	}
	result := make([]dto.StokResponse, 0, len(rows))
	for _, row := range rows {
		result = append(result, mapStok(row))
	}
	return result, nil
}

func (s *stokService) Update(ctx context.Context, kode string, req dto.UpdateStokRequest) (dto.StokResponse, error) {
	rows, err := s.repo.UpdateJumlah(ctx, kode, *req.Jumlah)
	if err != nil {
		return dto.StokResponse{}, apierror.Internal("gagal memperbarui stok: " + err.Error())
	}
	if rows == 0 {
		return dto.StokResponse{}, apierror.NotFound("stok tidak ditemukan")
	}

	current, err := s.repo.FindByKode(ctx, kode)
	if err != nil {
		return dto.StokResponse{}, apierror.Internal("gagal mengambil stok: " + err.Error())
	}
	s.cache.Invalidate(ctx)
	return mapStok(*current), nil
}

func (s *stokService) Delete(ctx context.Context, kode string) (dto.StokResponse, error) {
	row, err := s.repo.FindByKode(ctx, kode)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.StokResponse{}, apierror.NotFound("stok tidak ditemukan")
		}
		return dto.StokResponse{}, apierror.Internal("gagal mengambil stok: " + err.Error())
	}

	rows, err := s.repo.Delete(ctx, kode)
	if err != nil {
		return dto.StokResponse{}, apierror.Internal("gagal menghapus stok: " + err.Error())
	}
	if rows == 0 {
		return dto.StokResponse{}, apierror.NotFound("stok tidak ditemukan")
	}
	s.cache.Invalidate(ctx)
	return mapStok(*row), nil
}
