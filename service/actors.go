package service

import (
	"etickets/model"
	"etickets/repository"

	"gorm.io/gorm"
)

// ActorsService is a named specialization of the generic repository so
// handlers depend on the entity service, not the generic type.
type ActorsService struct {
	*repository.Repository[model.Actor]
}

func NewActorsService(db *gorm.DB) *ActorsService {
	return &ActorsService{repository.New[model.Actor](db)}
}
