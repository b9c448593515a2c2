package request

type CreateUserRequest struct {
	FirstName   string `json:"first_name" validate:"required,max=100"`
	LastName    string `json:"last_name" validate:"required,max=100"`
	ProfileName string `json:"profile_name" validate:"required,max=100"`
}

type UpdateUserRequest struct {
	FirstName   string `json:"first_name" validate:"required,max=100"`
	LastName    string `json:"last_name" validate:"required,max=100"`
	ProfileName string `json:"profile_name" validate:"required,max=100"`
}
