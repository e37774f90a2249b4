package service_test

import (
	"context"
	"net/http"
	"testing"

	"inventaris/internal/dto"
	"inventaris/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStokFixture() (service.StokService, service.ProdukService, *stubState) {
	st := newStubState()
	cache := service.NewDashboardCache(nil, 0)
	produkRepo := &stubProdukRepo{st: st}
	stokRepo := &stubStokRepo{st: st}
	return service.NewStokService(stokRepo, produkRepo, cache),
		service.NewProdukService(produkRepo, stokRepo, cache),
		st
}

func TestStokCreateCopiesNamaFromProduk(t *testing.T) {
	svc, produkSvc, _ := newStokFixture()
	ctx := context.Background()

	_, err := produkSvc.Create(ctx, dto.CreateProdukRequest{KodeProduk: "P1", Nama: "Widget", Kategori: strPtr("Alat")})
	require.NoError(t, err)

	created, err := svc.Create(ctx, dto.CreateStokRequest{KodeProduk: "P1", Jumlah: intPtr(5)})
	require.NoError(t, err)
	assert.Equal(t, "Widget", created.NamaProduk)
	assert.Equal(t, 5, created.Jumlah)
	require.NotNil(t, created.Kategori)
	assert.Equal(t, "Alat", *created.Kategori)
}

func TestStokUpsertAccumulatesJumlah(t *testing.T) {
	svc, produkSvc, _ := newStokFixture()
	ctx := context.Background()

	_, err := produkSvc.Create(ctx, dto.CreateProdukRequest{KodeProduk: "P1", Nama: "Widget"})
	require.NoError(t, err)

	_, err = svc.Create(ctx, dto.CreateStokRequest{KodeProduk: "P1", Jumlah: intPtr(5)})
	require.NoError(t, err)
	second, err := svc.Create(ctx, dto.CreateStokRequest{KodeProduk: "P1", Jumlah: intPtr(3)})
	require.NoError(t, err)

	// Accumulation, not replacement
	assert.Equal(t, 8, second.Jumlah)

	rows, err := svc.List(ctx, dto.StokFilter{})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, 8, rows[0].Jumlah)
}

func TestStokCreateMissingProdukNotFoundAndNoRow(t *testing.T) {
	svc, _, st := newStokFixture()

	_, err := svc.Create(context.Background(), dto.CreateStokRequest{KodeProduk: "GHOST", Jumlah: intPtr(5)})
	requireAPIError(t, err, http.StatusNotFound)
	assert.Empty(t, st.stok)
}

func TestStokUpdateReplacesJumlah(t *testing.T) {
	svc, produkSvc, _ := newStokFixture()
	ctx := context.Background()

	_, err := produkSvc.Create(ctx, dto.CreateProdukRequest{KodeProduk: "P1", Nama: "Widget"})
	require.NoError(t, err)
	_, err = svc.Create(ctx, dto.CreateStokRequest{KodeProduk: "P1", Jumlah: intPtr(5)})
	require.NoError(t, err)

	updated, err := svc.Update(ctx, "P1", dto.UpdateStokRequest{Jumlah: intPtr(2)})
	require.NoError(t, err)
	assert.Equal(t, 2, updated.Jumlah)
}

func TestStokUpdateMissingNotFound(t *testing.T) {
	svc, _, _ := newStokFixture()

	_, err := svc.Update(context.Background(), "GHOST", dto.UpdateStokRequest{Jumlah: intPtr(2)})
	requireAPIError(t, err, http.StatusNotFound)
}

func TestStokDeleteReturnsRow(t *testing.T) {
	svc, produkSvc, st := newStokFixture()
	ctx := context.Background()

	_, err := produkSvc.Create(ctx, dto.CreateProdukRequest{KodeProduk: "P1", Nama: "Widget"})
	require.NoError(t, err)
	_, err = svc.Create(ctx, dto.CreateStokRequest{KodeProduk: "P1", Jumlah: intPtr(5)})
	require.NoError(t, err)

	deleted, err := svc.Delete(ctx, "P1")
	require.NoError(t, err)
	assert.Equal(t, 5, deleted.Jumlah)
	assert.Empty(t, st.stok)
	// The product itself survives
	assert.Len(t, st.produk, 1)
}

func TestStokDeleteMissingNotFound(t *testing.T) {
	svc, _, _ := newStokFixture()

	_, err := svc.Delete(context.Background(), "GHOST")
	requireAPIError(t, err, http.StatusNotFound)
}

func TestStokListSearchMatchesSubstring(t *testing.T) {
	svc, produkSvc, _ := newStokFixture()
	ctx := context.Background()

	_, err := produkSvc.Create(ctx, dto.CreateProdukRequest{KodeProduk: "P1", Nama: "Kabel HDMI"})
	require.NoError(t, err)
	_, err = produkSvc.Create(ctx, dto.CreateProdukRequest{KodeProduk: "P2", Nama: "Mouse"})
	require.NoError(t, err)
	_, err = svc.Create(ctx, dto.CreateStokRequest{KodeProduk: "P1", Jumlah: intPtr(1)})
	require.NoError(t, err)
	_, err = svc.Create(ctx, dto.CreateStokRequest{KodeProduk: "P2", Jumlah: intPtr(1)})
	require.NoError(t, err)

	rows, err := svc.List(ctx, dto.StokFilter{Search: "hdmi"})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "P1", rows[0].KodeProduk)
}
