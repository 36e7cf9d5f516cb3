package service

import (
	"etickets/model"
	"etickets/repository"

	"gorm.io/gorm"
)

type CinemasService struct {
	*repository.Repository[model.Cinema]
}

func NewCinemasService(db *gorm.DB) *CinemasService {
	return &CinemasService{repository.New[model.Cinema](db)}
}
