package user

type UpdateProfileDTO struct {
	Name       *string `json:"name" validate:"omitempty,min=1,max=120"`
	Department *string `json:"department" validate:"omitempty,max=120"`
	JobTitle   *string `json:"job_title" validate:"omitempty,max=120"`
	Phone      *string `json:"phone" validate:"omitempty,max=32"`
	Timezone   *string `json:"timezone" validate:"omitempty,timezone"`
}
