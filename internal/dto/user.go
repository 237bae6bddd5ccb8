package dto

type ProfileRequestDTO struct {
	Name     string  `json:"name" example:"Alice"`
	Email    string  `json:"email" example:"alice@example.org"`
	ZAddress *string `json:"z_address,omitempty" example:"zs1..."`
}

type VerifyAddressRequestDTO struct {
	Address string `json:"address" example:"t1Hsc1LR8yKnbbe3twRp88p6vFfC5t7DLbs"`
}

type VerifyAddressResponseDTO struct {
	Address string `json:"address"`
	Valid   bool   `json:"valid"`
}
