package model

// User is the persisted user record in the users table.
type User struct {
	FileKey   string `json:"-"`
	UETR      string `json:"uetr"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	UserID    string `json:"userId"`
	CreatedBy string `json:"createdBy"`
	CreatedAt string `json:"createdAt"`
}

// SaveUserRequest for storing user information
type SaveUserRequest struct {
	Name   string `json:"name" validate:"required"`
	Email  string `json:"email" validate:"required,email"`
	Phone  string `json:"phone"`
	UserID string `json:"userId" validate:"required"`
}

type SaveUserResponse struct {
	Message  string `json:"message"`
	UserID   string `json:"userId"`
	FileName string `json:"fileName"`
}

// UserSnapshot is the JSON document uploaded alongside the record.
type UserSnapshot struct {
	Name      string `json:"name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	UserID    string `json:"userId"`
	UETR      string `json:"uetr"`
	CreatedAt string `json:"createdAt"`
}

type UserListResponse struct {
	Users []User `json:"users"`
	Count int    `json:"count"`
}

type ProcessUETRResponse struct {
	Message      string `json:"message"`
	ExecutionArn string `json:"executionArn"`
}
