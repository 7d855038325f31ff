package request

type CreateUserRequest struct {
	Username   string  `json:"username" binding:"required,min=3"`
	Email      string  `json:"email" binding:"required,email"`
	Password   string  `json:"password" binding:"required,min=8"`
	FirstName  string  `json:"first_name" binding:"required"`
	MiddleName *string `json:"middle_name,omitempty"`
	LastName   string  `json:"last_name" binding:"required"`
	Role       string  `json:"role" binding:"required,oneof=employee admin"`
}

type ChangePasswordRequest struct {
	CurrentPassword *string `json:"current_password,omitempty"`
	NewPassword     string  `json:"new_password" binding:"required,min=8"`
}
