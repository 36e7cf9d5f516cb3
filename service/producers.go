package service

import (
	"etickets/model"
	"etickets/repository"

	"gorm.io/gorm"
)

type ProducersService struct {
	*repository.Repository[model.Producer]
}

func NewProducersService(db *gorm.DB) *ProducersService {
	return &ProducersService{repository.New[model.Producer](db)}
}
