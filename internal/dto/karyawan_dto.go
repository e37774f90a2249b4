package dto

type CreateKaryawanRequest struct {
	Nama   string  `json:"nama"   validate:"required"`
	Posisi string  `json:"posisi" validate:"required"`
	Email  *string `json:"email"  validate:"omitempty,email"`
}

type UpdateKaryawanRequest struct {
	Nama   string  `json:"nama"   validate:"required"`
	Posisi string  `json:"posisi" validate:"required"`
	Email  *string `json:"email"  validate:"omitempty,email"`
}

type KaryawanFilter struct {
	Search string `form:"search"`
}

type KaryawanResponse struct {
	ID     uint    `json:"id"`
	Nama   string  `json:"nama"`
	Posisi string  `json:"posisi"`
	Email  *string `json:"email"`
}
