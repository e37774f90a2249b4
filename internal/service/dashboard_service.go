package service

import (
	"context"

	"inventaris/internal/apierror"
	"inventaris/internal/dto"
	"inventaris/internal/repository"
)

// DashboardService aggregates the read-only summary for the front end.
type DashboardService interface {
	Summary(ctx context.Context) (dto.DashboardResponse, error)
}

type dashboardService struct {
	produkRepo   repository.ProdukRepository
	stokRepo     repository.StokRepository
	karyawanRepo repository.KaryawanRepository
	cache        *DashboardCache
}

func NewDashboardService(
	produkRepo repository.ProdukRepository,
	stokRepo repository.StokRepository,
	karyawanRepo repository.KaryawanRepository,
	cache *DashboardCache,
) DashboardService {
	return &dashboardService{
		produkRepo:   produkRepo,
		stokRepo:     stokRepo,
		karyawanRepo: karyawanRepo,
		cache:        cache,
	}
}

func (s *dashboardService) Summary(ctx context.Context) (dto.DashboardResponse, error) {
	if cached, ok := s.cache.Get(ctx); ok {
		return *cached, nil
	}

	totalProduk, err := s.produkRepo.Count(ctx)
	if err != nil {
		return dto.DashboardResponse{}, apierror.Internal("gagal menghitung produk: " + err.Error())
	}
	totalStok, err := s.stokRepo.SumJumlah(ctx)
	if err != nil {
		return dto.DashboardResponse{}, apierror.Internal("gagal menjumlahkan stok: " + err.Error())
	}
	totalKaryawan, err := s.karyawanRepo.Count(ctx)
	if err != nil {
		return dto.DashboardResponse{}, apierror.Internal("gagal menghitung karyawan: " + err.Error())
	}

	resp := dto.DashboardResponse{
		TotalProduk:   totalProduk,
		TotalStokUnit: totalStok,
		TotalKaryawan: totalKaryawan,
	}
	s.cache.Set(ctx, resp)
	return resp, nil
}
