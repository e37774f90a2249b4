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

// KaryawanService defines business operations for employees. No cross-entity
// effects: employees are independent of products and stock.
type KaryawanService interface {
	Create(ctx context.Context, req dto.CreateKaryawanRequest) (dto.KaryawanResponse, error)
	List(ctx context.Context, filter dto.KaryawanFilter) ([]dto.KaryawanResponse, error)
	Update(ctx context.Context, id uint, req dto.UpdateKaryawanRequest) (dto.KaryawanResponse, error)
	Delete(ctx context.Context, id uint) (dto.KaryawanResponse, error)
}

type karyawanService struct {
	repo  repository.KaryawanRepository
	cache *DashboardCache
}

func NewKaryawanService(repo repository.KaryawanRepository, cache *DashboardCache) KaryawanService {
	return &karyawanService{repo: repo, cache: cache}
}

func mapKaryawan(k model.Karyawan) dto.KaryawanResponse {
	return dto.KaryawanResponse{
		ID:     k.ID,
		Nama:   k.Nama,
		Posisi: k.Posisi,
		Email:  k.Email,
	}
}

func (s *karyawanService) Create(ctx context.Context, req dto.CreateKaryawanRequest) (dto.KaryawanResponse, error) {
	k := &model.Karyawan{
		Nama:   req.Nama,
		Posisi: req.Posisi,
		Email:  req.Email,
	}
	if err := s.repo.Create(ctx, k); err != nil {
		return dto.KaryawanResponse{}, apierror.Internal("gagal menyimpan karyawan: " + err.Error())
	}
	s.cache.Invalidate(ctx)
	return mapKaryawan(*k), nil
}

func (s *karyawanService) List(ctx context.Context, filter dto.KaryawanFilter) ([]dto.KaryawanResponse, error) {
	list, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, apierror.Internal("gagal mengambil daftar karyawan: " + err.Error())
	}
	result := make([]dto.KaryawanResponse, 0, len(list))
	for _, k := range list {
		result = append(result, mapKaryawan(k))
	}
	return result, nil
}

func (s *karyawanService) Update(ctx context.Context, id uint, req dto.UpdateKaryawanRequest) (dto.KaryawanResponse, error) {
	k, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.KaryawanResponse{}, apierror.NotFound("karyawan tidak ditemukan")
		}
		return dto.KaryawanResponse{}, apierror.Internal("gagal mengambil karyawan: " + err.Error())
	}

	k.Nama = req.Nama
	k.Posisi = req.Posisi
	k.Email = req.Email
	if err := s.repo.Update(ctx, k); err != nil {
		return dto.KaryawanResponse{}, apierror.Internal("gagal memperbarui karyawan: " + err.Error())
	}
	return mapKaryawan(*k), nil
}

func (s *karyawanService) Delete(ctx context.Context, id uint) (dto.KaryawanResponse, error) {
	k, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.KaryawanResponse{}, apierror.NotFound("karyawan tidak ditemukan")
		}
		return dto.KaryawanResponse{}, apierror.Internal("gagal mengambil karyawan: " + err.Error())
	}

	rows, err := s.repo.Delete(ctx, id)
	if err != nil {
		return dto.KaryawanResponse{}, apierror.Internal("gagal menghapus karyawan: " + err.Error())
	}
	if rows == 0 {
		return dto.KaryawanResponse{}, apierror.NotFound("karyawan tidak ditemukan")
	}
	s.cache.Invalidate(ctx)
	return mapKaryawan(*k), nil
}
