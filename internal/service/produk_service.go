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

// ProdukService defines the business logic contract for products.
type ProdukService interface {
	Create(ctx context.Context, req dto.CreateProdukRequest) (dto.ProdukResponse, error)
	List(ctx context.Context, filter dto.ProdukFilter) ([]dto.ProdukResponse, error)
	Update(ctx context.Context, kode string, req dto.UpdateProdukRequest) (dto.ProdukResponse, error)
	Delete(ctx context.Context, kode string) (dto.ProdukResponse, error)
}

type produkService struct {
	repo     repository.ProdukRepository
	stokRepo repository.StokRepository
	cache    *DashboardCache
}

func NewProdukService(repo repository.ProdukRepository, stokRepo repository.StokRepository, cache *DashboardCache) ProdukService {
	return &produkService{repo: repo, stokRepo: stokRepo, cache: cache}
}

func mapProduk(p model.Produk) dto.ProdukResponse {
	return dto.ProdukResponse{
		ID:         p.ID,
		KodeProduk: p.KodeProduk,
		Nama:       p.Nama,
		Kategori:   p.Kategori,
	}
}

func (s *produkService) Create(ctx context.Context, req dto.CreateProdukRequest) (dto.ProdukResponse, error) {
	p := &model.Produk{
		KodeProduk: req.KodeProduk,
		Nama:       req.Nama,
		Kategori:   req.Kategori,
	}
	if err := s.repo.Create(ctx, p); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return dto.ProdukResponse{}, apierror.Conflict("kode produk sudah terdaftar")
		}
		return dto.ProdukResponse{}, apierror.Internal("gagal menyimpan produk: " + err.Error())
	}
	s.cache.Invalidate(ctx)
	return mapProduk(*p), nil
}

func (s *produkService) List(ctx context.Context, filter dto.ProdukFilter) ([]dto.ProdukResponse, error) {
	list, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, apierror.Internal("gagal mengambil daftar produk: " + err.Error())
	}
	result := make([]dto.ProdukResponse, 0, len(list))
	for _, p := range list {
		result = append(result, mapProduk(p))
	}
	return result, nil
}

// Update replaces name/category and rewrites the denormalized name on the
// stock row inside one transaction, so a stock read after this call always
// sees the new name.
func (s *produkService) Update(ctx context.Context, kode string, req dto.UpdateProdukRequest) (dto.ProdukResponse, error) {
	p, err := s.repo.FindByKode(ctx, kode)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.ProdukResponse{}, apierror.NotFound("produk tidak ditemukan")
		}
		return dto.ProdukResponse{}, apierror.Internal("gagal mengambil produk: " + err.Error())
	}

	err = s.repo.Transaction(ctx, func(tx *gorm.DB) error {
		rows, err := s.repo.UpdateTx(tx, kode, req.Nama, req.Kategori)
		if err != nil {
			return err
		}
		if rows == 0 {
			// Deleted between the read above and this statement
			return gorm.ErrRecordNotFound
		}
		return s.stokRepo.UpdateNamaTx(tx, kode, req.Nama)
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.ProdukResponse{}, apierror.NotFound("produk tidak ditemukan")
		}
		return dto.ProdukResponse{}, apierror.Internal("gagal memperbarui produk: " + err.Error())
	}

	p.Nama = req.Nama
	p.Kategori = req.Kategori
	s.cache.Invalidate(ctx)
	return mapProduk(*p), nil
}

// Delete removes the product; the FK cascade removes its stock row in the
// same statement.
func (s *produkService) Delete(ctx context.Context, kode string) (dto.ProdukResponse, error) {
	p, err := s.repo.FindByKode(ctx, kode)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.ProdukResponse{}, apierror.NotFound("produk tidak ditemukan")
		}
		return dto.ProdukResponse{}, apierror.Internal("gagal mengambil produk: " + err.Error())
	}

	rows, err := s.repo.Delete(ctx, kode)
	if err != nil {
		return dto.ProdukResponse{}, apierror.Internal("gagal menghapus produk: " + err.Error())
	}
	if rows == 0 {
		return dto.ProdukResponse{}, apierror.NotFound("produk tidak ditemukan")
	}
	s.cache.Invalidate(ctx)
	return mapProduk(*p), nil
}
