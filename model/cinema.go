package model

type Cinema struct {
	DTO
	Name        string  `gorm:"type:varchar(255);not null;index" validate:"required" json:"name"`
	Logo        string  `gorm:"type:varchar(255);not null" validate:"required,url" json:"logo"`
	Description string  `gorm:"type:text;not null" validate:"required" json:"description"`
	Movies      []Movie `gorm:"foreignKey:CinemaId" json:"movies,omitempty"`
}

type Cinemas []Cinema

type CreateCinemaInput struct {
	Name        string `json:"name" validate:"required"`
	Logo        string `json:"logo" validate:"required,url"`
	Description string `json:"description" validate:"required"`
}

type EditCinemaInput struct {
	Name        *string `json:"name" validate:"omitempty"`
	Logo        *string `json:"logo" validate:"omitempty,url"`
	Description *string `json:"description" validate:"omitempty"`
}

type FilterCinema struct {
	Pagination
	Search string `query:"search"`
}
