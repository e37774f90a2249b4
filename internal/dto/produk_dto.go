package dto

// ─── Request DTOs ────────────────────────────────────────────────────────────

type CreateProdukRequest struct {
	KodeProduk string  `json:"id_produk"       validate:"required"`
	Nama       string  `json:"nama_produk"     validate:"required"`
	Kategori   *string `json:"kategori_produk"`
}

type UpdateProdukRequest struct {
	Nama     string  `json:"nama_produk"     validate:"required"`
	Kategori *string `json:"kategori_produk"`
}

// ─── Filter ──────────────────────────────────────────────────────────────────

// ProdukFilter matches a single search term against name, category and
// product code (case-insensitive substring, OR semantics).
type ProdukFilter struct {
	Search string `form:"search"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type ProdukResponse struct {
	ID         uint    `json:"id"`
	KodeProduk string  `json:"id_produk"`
	Nama       string  `json:"nama_produk"`
	Kategori   *string `json:"kategori_produk"`
}
