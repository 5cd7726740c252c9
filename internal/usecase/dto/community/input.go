package communitydto

type SubscribeInput struct {
	Email string `json:"email" validate:"required,email"`
}

type VolunteerInput struct {
	Name   string `json:"name" validate:"min=2"`
	Email  string `json:"email" validate:"required,email"`
	Phone  string `json:"phone"`
	Skills string `json:"skills"`
	Notes  string `json:"notes"`
}

type UpdateVolunteerStatusInput struct {
	VolunteerID string `json:"-" validate:"required"`
	Status      string `json:"status" validate:"required,max=32"`
}
