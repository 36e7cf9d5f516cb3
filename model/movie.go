package model

import "time"

const (
	MOVIE_COMING_SOON = "COMING_SOON"
	MOVIE_NOW_SHOWING = "NOW_SHOWING"
	MOVIE_ENDED       = "ENDED"
)

type Movie struct {
	DTO
	Name        string    `gorm:"type:varchar(255);not null;index" validate:"required" json:"name"`
	Description string    `gorm:"type:text;not null" validate:"required" json:"description"`
	Price       float64   `gorm:"not null" validate:"required,gt=0" json:"price"`
	ImageURL    string    `gorm:"type:varchar(255);not null" validate:"required,url" json:"imageUrl"`
	StartDate   time.Time `gorm:"not null" validate:"required" json:"startDate"`
	EndDate     time.Time `gorm:"not null" validate:"required" json:"endDate"`
	Category    string    `gorm:"type:varchar(30);not null;index" validate:"required,oneof=ACTION COMEDY DRAMA DOCUMENTARY HORROR CARTOON" json:"category"`
	Status      string    `gorm:"type:varchar(20);not null;default:COMING_SOON" json:"status"`
	Slug        string    `gorm:"uniqueIndex" json:"slug"`

	CinemaId   uint     `gorm:"not null;index" json:"cinemaId"`
	Cinema     Cinema   `gorm:"foreignKey:CinemaId" json:"cinema"`
	ProducerId uint     `gorm:"not null;index" json:"producerId"`
	Producer   Producer `gorm:"foreignKey:ProducerId" json:"producer"`

	ActorsMovies []MovieActor `gorm:"foreignKey:MovieId" json:"actorsMovies,omitempty"`
}

type Movies []Movie

// MovieActor is the many-to-many link between movies and actors. The pair is
// the whole identity, hence the composite primary key.
type MovieActor struct {
	ActorId uint  `gorm:"primaryKey;autoIncrement:false" json:"actorId"`
	MovieId uint  `gorm:"primaryKey;autoIncrement:false" json:"movieId"`
	Actor   Actor `gorm:"foreignKey:ActorId" json:"actor,omitempty"`
	Movie   Movie `gorm:"foreignKey:MovieId" json:"movie,omitempty"`
}

type CreateMovieInput struct {
	Name        string    `json:"name" validate:"required"`
	Description string    `json:"description" validate:"required"`
	Price       float64   `json:"price" validate:"required,gt=0"`
	ImageURL    string    `json:"imageUrl" validate:"required,url"`
	StartDate   time.Time `json:"startDate" validate:"required"`
	EndDate     time.Time `json:"endDate" validate:"required,gtfield=StartDate"`
	Category    string    `json:"category" validate:"required,oneof=ACTION COMEDY DRAMA DOCUMENTARY HORROR CARTOON"`
	CinemaId    uint      `json:"cinemaId" validate:"required"`
	ProducerId  uint      `json:"producerId" validate:"required"`
	ActorIds    []uint    `json:"actorIds" validate:"required,min=1,dive,required"`
}

type EditMovieInput struct {
	Id          uint       `json:"id" validate:"required"`
	Name        *string    `json:"name"`
	Description *string    `json:"description"`
	Price       *float64   `json:"price" validate:"omitempty,gt=0"`
	ImageURL    *string    `json:"imageUrl" validate:"omitempty,url"`
	StartDate   *time.Time `json:"startDate"`
	EndDate     *time.Time `json:"endDate"`
	Category    *string    `json:"category" validate:"omitempty,oneof=ACTION COMEDY DRAMA DOCUMENTARY HORROR CARTOON"`
	CinemaId    *uint      `json:"cinemaId"`
	ProducerId  *uint      `json:"producerId"`
	ActorIds    *[]uint    `json:"actorIds" validate:"omitempty,min=1,dive,required"`
}

// NewMovieDropdowns carries every selectable relation for the create/edit form.
type NewMovieDropdowns struct {
	Cinemas   []Cinema   `json:"cinemas"`
	Producers []Producer `json:"producers"`
	Actors    []Actor    `json:"actors"`
}

type FilterMovieInput struct {
	Pagination
	SearchString string `query:"searchString"`
}
