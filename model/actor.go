package model

type Actor struct {
	DTO
	FullName          string `gorm:"type:varchar(255);not null;index" validate:"required,min=3,max=50" json:"fullName"`
	ProfilePictureURL string `gorm:"type:varchar(255);not null" validate:"required,url" json:"profilePictureUrl"`
	Bio               string `gorm:"type:text;not null" validate:"required,min=25" json:"bio"`
}

type Actors []Actor

type CreateActorInput struct {
	FullName          string `json:"fullName" validate:"required,min=3,max=50"`
	ProfilePictureURL string `json:"profilePictureUrl" validate:"required,url"`
	Bio               string `json:"bio" validate:"required,min=25"`
}

type EditActorInput struct {
	FullName          *string `json:"fullName" validate:"omitempty,min=3,max=50"`
	ProfilePictureURL *string `json:"profilePictureUrl" validate:"omitempty,url"`
	Bio               *string `json:"bio" validate:"omitempty,min=25"`
}

type FilterActor struct {
	Pagination
	Search string `query:"search"`
}
