package service_test

import (
	"context"
	"sort"
	"strings"

	"inventaris/internal/dto"
	"inventaris/internal/model"
	"inventaris/internal/repository"

	"gorm.io/gorm"
)

// In-memory repository fakes implementing the same query contract as the
// GORM-backed ones, including the schema rules the database enforces
// (unique product code, FK cascade from stok to produk).

type stubState struct {
	produk   map[string]*model.Produk
	stok     map[string]*model.Stok
	karyawan map[uint]*model.Karyawan

	nextProdukID   uint
	nextStokID     uint
	nextKaryawanID uint
}

func newStubState() *stubState {
	return &stubState{
		produk:   make(map[string]*model.Produk),
		stok:     make(map[string]*model.Stok),
		karyawan: make(map[uint]*model.Karyawan),
	}
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}

// ── ProdukRepository fake ────────────────────────────────────────────────────

type stubProdukRepo struct{ st *stubState }

func (r *stubProdukRepo) Create(_ context.Context, p *model.Produk) error {
	if _, ok := r.st.produk[p.KodeProduk]; ok {
		return gorm.ErrDuplicatedKey
	}
	r.st.nextProdukID++
	p.ID = r.st.nextProdukID
	r.st.produk[p.KodeProduk] = p
	return nil
}

func (r *stubProdukRepo) FindByKode(_ context.Context, kode string) (*model.Produk, error) {
	p, ok := r.st.produk[kode]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *p
	return &cp, nil
}

func (r *stubProdukRepo) List(_ context.Context, filter dto.ProdukFilter) ([]model.Produk, error) {
	var result []model.Produk
	for _, p := range r.st.produk {
		if filter.Search != "" {
			kategori := ""
			if p.Kategori != nil {
				kategori = *p.Kategori
			}
			if !containsFold(p.Nama, filter.Search) &&
				!containsFold(kategori, filter.Search) &&
				!containsFold(p.KodeProduk, filter.Search) {
				continue
			}
		}
		result = append(result, *p)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID > result[j].ID })
	return result, nil
}

func (r *stubProdukRepo) Delete(_ context.Context, kode string) (int64, error) {
	if _, ok := r.st.produk[kode]; !ok {
		return 0, nil
	}
	delete(r.st.produk, kode)
	// FK ON DELETE CASCADE
	delete(r.st.stok, kode)
	return 1, nil
}

func (r *stubProdukRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.st.produk)), nil
}

func (r *stubProdukRepo) UpdateTx(_ *gorm.DB, kode string, nama string, kategori *string) (int64, error) {
	p, ok := r.st.produk[kode]
	if !ok {
		return 0, nil
	}
	p.Nama = nama
	p.Kategori = kategori
	return 1, nil
}

func (r *stubProdukRepo) Transaction(_ context.Context, fn func(tx *gorm.DB) error) error {
	return fn(nil)
}

// ── StokRepository fake ──────────────────────────────────────────────────────

type stubStokRepo struct{ st *stubState }

func (r *stubStokRepo) row(s *model.Stok) repository.StokRow {
	var kategori *string
	if p, ok := r.st.produk[s.KodeProduk]; ok {
		kategori = p.Kategori
	}
	return repository.StokRow{Stok: *s, Kategori: kategori}
}

func (r *stubStokRepo) Upsert(_ context.Context, s *model.Stok) error {
	if _, ok := r.st.produk[s.KodeProduk]; !ok {
		return gorm.ErrForeignKeyViolated
	}
	if existing, ok := r.st.stok[s.KodeProduk]; ok {
		existing.Jumlah += s.Jumlah
		existing.NamaProduk = s.NamaProduk
		return nil
	}
	r.st.nextStokID++
	s.ID = r.st.nextStokID
	r.st.stok[s.KodeProduk] = s
	return nil
}

func (r *stubStokRepo) FindByKode(_ context.Context, kode string) (*repository.StokRow, error) {
	s, ok := r.st.stok[kode]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	row := r.row(s)
	return &row, nil
}

func (r *stubStokRepo) List(_ context.Context, filter dto.StokFilter) ([]repository.StokRow, error) {
	var rows []repository.StokRow
	for _, s := range r.st.stok {
		if filter.Search != "" &&
			!containsFold(s.NamaProduk, filter.Search) &&
			!containsFold(s.KodeProduk, filter.Search) {
			continue
		}
		rows = append(rows, r.row(s))
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].ID > rows[j].ID })
	return rows, nil
}

func (r *stubStokRepo) UpdateJumlah(_ context.Context, kode string, jumlah int) (int64, error) {
	s, ok := r.st.stok[kode]
	if !ok {
		return 0, nil
	}
	s.Jumlah = jumlah
	return 1, nil
}

func (r *stubStokRepo) Delete(_ context.Context, kode string) (int64, error) {
	if _, ok := r.st.stok[kode]; !ok {
		return 0, nil
	}
	delete(r.st.stok, kode)
	return 1, nil
}

func (r *stubStokRepo) SumJumlah(_ context.Context) (int64, error) {
	var total int64
	for _, s := range r.st.stok {
		total += int64(s.Jumlah)
	}
	return total, nil
}

func (r *stubStokRepo) UpdateNamaTx(_ *gorm.DB, kode string, nama string) error {
	if s, ok := r.st.stok[kode]; ok {
		s.NamaProduk = nama
	}
	return nil
}

// ── KaryawanRepository fake ──────────────────────────────────────────────────

type stubKaryawanRepo struct{ st *stubState }

func (r *stubKaryawanRepo) Create(_ context.Context, k *model.Karyawan) error {
	r.st.nextKaryawanID++
	k.ID = r.st.nextKaryawanID
	r.st.karyawan[k.ID] = k
	return nil
}

func (r *stubKaryawanRepo) FindByID(_ context.Context, id uint) (*model.Karyawan, error) {
	k, ok := r.st.karyawan[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *k
	return &cp, nil
}

func (r *stubKaryawanRepo) List(_ context.Context, filter dto.KaryawanFilter) ([]model.Karyawan, error) {
	var result []model.Karyawan
	for _, k := range r.st.karyawan {
		if filter.Search != "" {
			email := ""
			if k.Email != nil {
				email = *k.Email
			}
			if !containsFold(k.Nama, filter.Search) &&
				!containsFold(k.Posisi, filter.Search) &&
				!containsFold(email, filter.Search) {
				continue
			}
		}
		result = append(result, *k)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID > result[j].ID })
	return result, nil
}

func (r *stubKaryawanRepo) Update(_ context.Context, k *model.Karyawan) error {
	r.st.karyawan[k.ID] = k
	return nil
}

func (r *stubKaryawanRepo) Delete(_ context.Context, id uint) (int64, error) {
	if _, ok := r.st.karyawan[id]; !ok {
		return 0, nil
	}
	delete(r.st.karyawan, id)
	return 1, nil
}

func (r *stubKaryawanRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.st.karyawan)), nil
}
