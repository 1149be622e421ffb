package request

// Bodies arrive wrapped under a "user" key: {"user": {...}}

type RegisterRequest struct {
	User RegisterUser `json:"user" validate:"required"`
}

type RegisterUser struct {
	FirstName string `json:"first_name" validate:"required,min=3,max=50,excludesall=0x20"`
	LastName  string `json:"last_name" validate:"required,min=3,max=50,excludesall=0x20"`
	Password  string `json:"password" validate:"required,min=4,max=20"`
	Role      string `json:"role" validate:"required,oneof=admin dev"`
}

type LoginRequest struct {
	User LoginUser `json:"user" validate:"required"`
}

type LoginUser struct {
	FirstName string `json:"first_name" validate:"required,min=3,max=50,excludesall=0x20"`
	LastName  string `json:"last_name" validate:"required,min=3,max=50,excludesall=0x20"`
	Password  string `json:"password" validate:"required,min=4,max=20"`
}
