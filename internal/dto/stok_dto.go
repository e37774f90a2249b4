package dto

// Jumlah is a pointer so that an explicit 0 survives the `required` check.
type CreateStokRequest struct {
	KodeProduk string `json:"id_produk"   validate:"required"`
	Jumlah     *int   `json:"jumlah_stok" validate:"required,min=0"`
}

type UpdateStokRequest struct {
	Jumlah *int `json:"jumlah_stok" validate:"required,min=0"`
}

type StokFilter struct {
	Search string `form:"search"`
}

// StokResponse carries the product category joined from the produk table;
// it stays null when the product side is missing (left join).
type StokResponse struct {
	ID         uint    `json:"id"`
	KodeProduk string  `json:"id_produk"`
	NamaProduk string  `json:"nama_produk"`
	Jumlah     int     `json:"jumlah_stok"`
	Kategori   *string `json:"kategori_produk"`
}
