package dto

import "time"

type CreatePersonRequest struct {
	Firstname      string     `json:"firstname" binding:"required,min=2,max=100"`
	Lastname       string     `json:"lastname" binding:"required,min=2,max=100"`
	Address        string     `json:"address" binding:"max=255"`
	Phone          string     `json:"phone" binding:"max=30"`
	Birthdate      time.Time  `json:"birthdate" binding:"required"`
	BaptismDate    *time.Time `json:"baptismDate"`
	ConvertionDate *time.Time `json:"convertionDate"`
	Gender         string     `json:"gender" binding:"required,oneof=MASCULINO FEMENINO"`
}

type UpdatePersonRequest struct {
	Firstname      *string    `json:"firstname" binding:"omitempty,min=2,max=100"`
	Lastname       *string    `json:"lastname" binding:"omitempty,min=2,max=100"`
	Address        *string    `json:"address" binding:"omitempty,max=255"`
	Phone          *string    `json:"phone" binding:"omitempty,max=30"`
	Birthdate      *time.Time `json:"birthdate"`
	BaptismDate    *time.Time `json:"baptismDate"`
	ConvertionDate *time.Time `json:"convertionDate"`
	Gender         *string    `json:"gender" binding:"omitempty,oneof=MASCULINO FEMENINO"`
}

type PersonFilter struct {
	Search string `form:"search"`
}
