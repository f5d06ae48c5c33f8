package employee

import "time"

type SaveInput struct {
	Name        string
	Email       string
	Designation string
}

type EmployeeDTO struct {
	ID          uint64    `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Designation string    `json:"designation"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
