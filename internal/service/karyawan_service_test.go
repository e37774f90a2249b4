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

func newKaryawanFixture() (service.KaryawanService, *stubState) {
	st := newStubState()
	cache := service.NewDashboardCache(nil, 0)
	return service.NewKaryawanService(&stubKaryawanRepo{st: st}, cache), st
}

func TestKaryawanCreateAndList(t *testing.T) {
	svc, _ := newKaryawanFixture()
	ctx := context.Background()

	created, err := svc.Create(ctx, dto.CreateKaryawanRequest{Nama: "Budi", Posisi: "Gudang", Email: strPtr("budi@example.com")})
	require.NoError(t, err)
	assert.Equal(t, uint(1), created.ID)

	list, err := svc.List(ctx, dto.KaryawanFilter{})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, created, list[0])
}

func TestKaryawanListSearchAcrossFields(t *testing.T) {
	svc, _ := newKaryawanFixture()
	ctx := context.Background()

	_, err := svc.Create(ctx, dto.CreateKaryawanRequest{Nama: "Budi", Posisi: "Gudang"})
	require.NoError(t, err)
	_, err = svc.Create(ctx, dto.CreateKaryawanRequest{Nama: "Sari", Posisi: "Kasir", Email: strPtr("sari@toko.id")})
	require.NoError(t, err)

	list, err := svc.List(ctx, dto.KaryawanFilter{Search: "GUDANG"})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Budi", list[0].Nama)

	list, err = svc.List(ctx, dto.KaryawanFilter{Search: "toko.id"})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Sari", list[0].Nama)
}

func TestKaryawanUpdateReplacesFields(t *testing.T) {
	svc, _ := newKaryawanFixture()
	ctx := context.Background()

	created, err := svc.Create(ctx, dto.CreateKaryawanRequest{Nama: "Budi", Posisi: "Gudang"})
	require.NoError(t, err)

	updated, err := svc.Update(ctx, created.ID, dto.UpdateKaryawanRequest{Nama: "Budi Santoso", Posisi: "Supervisor"})
	require.NoError(t, err)
	assert.Equal(t, "Budi Santoso", updated.Nama)
	assert.Equal(t, "Supervisor", updated.Posisi)
	assert.Nil(t, updated.Email)
}

func TestKaryawanUpdateMissingNotFound(t *testing.T) {
	svc, _ := newKaryawanFixture()

	_, err := svc.Update(context.Background(), 99, dto.UpdateKaryawanRequest{Nama: "X", Posisi: "Y"})
	requireAPIError(t, err, http.StatusNotFound)
}

func TestKaryawanDeleteRemovesRow(t *testing.T) {
	svc, st := newKaryawanFixture()
	ctx := context.Background()

	created, err := svc.Create(ctx, dto.CreateKaryawanRequest{Nama: "Budi", Posisi: "Gudang"})
	require.NoError(t, err)

	deleted, err := svc.Delete(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, deleted)
	assert.Empty(t, st.karyawan)
}

func TestKaryawanDeleteMissingNotFound(t *testing.T) {
	svc, _ := newKaryawanFixture()

	_, err := svc.Delete(context.Background(), 99)
	requireAPIError(t, err, http.StatusNotFound)
}
