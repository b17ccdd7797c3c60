package dto

type CreatePlaceRequest struct {
	Name        string `json:"name" binding:"required,min=2,max=100"`
	Description string `json:"description"`
	Address     string `json:"address" binding:"max=255"`
	Phones      string `json:"phones" binding:"max=100"`
	Email       string `json:"email" binding:"omitempty,email"`
	PhotoURL    string `json:"photoUrl"`
	Rooms       int    `json:"rooms" binding:"omitempty,min=0"`
}

type UpdatePlaceRequest struct {
	Name        *string `json:"name" binding:"omitempty,min=2,max=100"`
	Description *string `json:"description"`
	Address     *string `json:"address" binding:"omitempty,max=255"`
	Phones      *string `json:"phones" binding:"omitempty,max=100"`
	Email       *string `json:"email" binding:"omitempty,email"`
	PhotoURL    *string `json:"photoUrl"`
	Rooms       *int    `json:"rooms" binding:"omitempty,min=0"`
}
