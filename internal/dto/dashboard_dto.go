package dto

// DashboardResponse is the read-only summary shown on the inventory front end.
// TotalStokUnit is the sum of all stock quantities, zero when no rows exist.
type DashboardResponse struct {
	TotalProduk   int64 `json:"total_produk"`
	TotalStokUnit int64 `json:"total_stok_unit"`
	TotalKaryawan int64 `json:"total_karyawan"`
}
