package model

type Producer struct {
	DTO
	FullName          string  `gorm:"type:varchar(255);not null;index" validate:"required,min=3,max=50" json:"fullName"`
	ProfilePictureURL string  `gorm:"type:varchar(255);not null" validate:"required,url" json:"profilePictureUrl"`
	Bio               string  `gorm:"type:text;not null" validate:"required,min=25" json:"bio"`
	Movies            []Movie `gorm:"foreignKey:ProducerId" json:"movies,omitempty"`
}

type Producers []Producer

type CreateProducerInput struct {
	FullName          string `json:"fullName" validate:"required,min=3,max=50"`
	ProfilePictureURL string `json:"profilePictureUrl" validate:"required,url"`
	Bio               string `json:"bio" validate:"required,min=25"`
}

type EditProducerInput struct {
	FullName          *string `json:"fullName" validate:"omitempty,min=3,max=50"`
	ProfilePictureURL *string `json:"profilePictureUrl" validate:"omitempty,url"`
	Bio               *string `json:"bio" validate:"omitempty,min=25"`
}

type FilterProducer struct {
	Pagination
	Search string `query:"search"`
}
