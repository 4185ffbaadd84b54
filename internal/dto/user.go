package dto

import "github.com/noah-isme/school-registry-api/internal/models"

// UserRequest is the payload for creating a user. The password is hashed before storage.
type UserRequest struct {
	Name     string `json:"name"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// UserResponse never carries password material.
type UserResponse struct {
	ID   int64           `json:"id"`
	Name string          `json:"name"`
	Role models.UserRole `json:"role"`
}

// UserFromModel projects a user without password data.
func UserFromModel(u models.User) UserResponse {
	return UserResponse{ID: u.ID, Name: u.Name, Role: u.Role}
}

// UsersFromModels projects every user.
func UsersFromModels(users []models.User) []UserResponse {
	return mapAll(users, UserFromModel)
}
