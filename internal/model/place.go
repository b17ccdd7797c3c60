package model

import "time"

type Place struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"size:100;not null" json:"name"`
	Description string    `gorm:"type:text" json:"description"`
	Address     string    `gorm:"size:255" json:"address"`
	Phones      string    `gorm:"size:100" json:"phones"`
	Email       string    `gorm:"size:100" json:"email"`
	PhotoURL    string    `gorm:"type:text" json:"photoUrl"`
	Rooms       int       `json:"rooms"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}
