package model

import "time"

// User is a storefront customer, deduplicated by phone number.
type User struct {
	ID        int        `json:"id" db:"id"`
	Name      string     `json:"name" db:"name"`
	Phone     string     `json:"phone" db:"phone"`
	Email     *string    `json:"email,omitempty" db:"email"`
	District  *string    `json:"district,omitempty" db:"district"`
	CreatedAt time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt time.Time  `json:"updated_at" db:"updated_at"`
	DeletedAt *time.Time `json:"deleted_at,omitempty" db:"deleted_at"`
}

func (u *User) IsDeleted() bool {
	return u.DeletedAt != nil
}

type CreateUserRequest struct {
	Name     string  `json:"name" binding:"required"`
	Phone    string  `json:"phone" binding:"required"`
	Email    *string `json:"email"`
	District *string `json:"district"`
}

type UpdateUserParams struct {
	Name     *string `json:"name"`
	Email    *string `json:"email"`
	District *string `json:"district"`
}
