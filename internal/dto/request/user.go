package request

import "account-service/internal/data/entity"

type UpdateRequest struct {
	User UpdateUser `json:"user" validate:"required"`
}

// UpdateUser is a partial update, absent fields stay untouched
type UpdateUser struct {
	FirstName *string `json:"first_name,omitempty" validate:"omitempty,min=3,max=50,excludesall=0x20"`
	LastName  *string `json:"last_name,omitempty" validate:"omitempty,min=3,max=50,excludesall=0x20"`
	Password  *string `json:"password,omitempty" validate:"omitempty,min=4,max=20"`
	Role      *string `json:"role,omitempty" validate:"omitempty,oneof=admin dev"`
}

// ToEntityUpdate converts the payload into the store's update descriptor
func (u *UpdateUser) ToEntityUpdate() *entity.UserUpdate {
	return &entity.UserUpdate{
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Password:  u.Password,
		Role:      u.Role,
	}
}
