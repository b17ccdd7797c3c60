package model

import "time"

const (
	GenderMasculino = "MASCULINO"
	GenderFemenino  = "FEMENINO"
)

type Person struct {
	ID             uint       `gorm:"primaryKey" json:"id"`
	Firstname      string     `gorm:"size:100;not null" json:"firstname"`
	Lastname       string     `gorm:"size:100;not null" json:"lastname"`
	Address        string     `gorm:"size:255" json:"address"`
	Phone          string     `gorm:"size:30" json:"phone"`
	Birthdate      time.Time  `json:"birthdate"`
	BaptismDate    *time.Time `json:"baptismDate,omitempty"`
	ConvertionDate *time.Time `json:"convertionDate,omitempty"`
	Gender         string     `gorm:"size:20;not null" json:"gender"`
	CreatedAt      time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
}
