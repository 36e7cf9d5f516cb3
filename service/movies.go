package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"etickets/model"
	"etickets/repository"

	"github.com/jinzhu/copier"
	"gorm.io/gorm"
)

type MoviesService struct {
	*repository.Repository[model.Movie]
}

func NewMoviesService(db *gorm.DB) *MoviesService {
	return &MoviesService{repository.New[model.Movie](db)}
}

// GetMovieByID loads a movie with its cinema, producer and actor links
// resolved. Returns (nil, nil) when the id is unknown.
func (s *MoviesService) GetMovieByID(ctx context.Context, id uint) (*model.Movie, error) {
	return s.GetByIDWith(ctx, id, "Cinema", "Producer", "ActorsMovies.Actor")
}

func (s *MoviesService) GetMovieBySlug(ctx context.Context, slug string) (*model.Movie, error) {
	var movie model.Movie
	err := s.DB().WithContext(ctx).
		Preload("Cinema").
		Preload("Producer").
		Preload("ActorsMovies.Actor").
		Where("slug = ?", slug).
		First(&movie).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &movie, nil
}

// GetNewMovieDropdownsValues fetches the full set of cinemas, producers and
// actors for populating the create/edit form. Always a full scan of all three.
func (s *MoviesService) GetNewMovieDropdownsValues(ctx context.Context) (*model.NewMovieDropdowns, error) {
	db := s.DB().WithContext(ctx)
	dropdowns := new(model.NewMovieDropdowns)

	if err := db.Order("name").Find(&dropdowns.Cinemas).Error; err != nil {
		return nil, err
	}
	if err := db.Order("full_name").Find(&dropdowns.Producers).Error; err != nil {
		return nil, err
	}
	if err := db.Order("full_name").Find(&dropdowns.Actors).Error; err != nil {
		return nil, err
	}
	return dropdowns, nil
}

// AddNewMovie persists the movie and one actor link per selected actor inside
// a single transaction, so a failed link insert rolls the movie back too.
func (s *MoviesService) AddNewMovie(ctx context.Context, input model.CreateMovieInput) (*model.Movie, error) {
	movie := new(model.Movie)
	copier.Copy(movie, &input)
	movie.Status = StatusForDates(input.StartDate, input.EndDate, time.Now())

	err := s.DB().WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		movie.Slug = GenerateUniqueMovieSlug(tx, input.Name)
		if err := tx.Create(movie).Error; err != nil {
			return err
		}
		links := make([]model.MovieActor, 0, len(input.ActorIds))
		for _, actorId := range input.ActorIds {
			links = append(links, model.MovieActor{MovieId: movie.ID, ActorId: actorId})
		}
		return tx.Create(&links).Error
	})
	if err != nil {
		return nil, err
	}
	return movie, nil
}

// UpdateMovie updates the scalar fields and reconciles the actor links as a
// full replace: delete every existing link, reinsert the submitted set.
func (s *MoviesService) UpdateMovie(ctx context.Context, input model.EditMovieInput) (*model.Movie, error) {
	var movie model.Movie

	err := s.DB().WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&movie, input.Id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return repository.ErrRecordNotFound
			}
			return err
		}

		if input.Name != nil && *input.Name != movie.Name {
			movie.Name = *input.Name
			movie.Slug = GenerateUniqueMovieSlug(tx, movie.Name)
		}
		if input.Description != nil {
			movie.Description = *input.Description
		}
		if input.Price != nil {
			movie.Price = *input.Price
		}
		if input.ImageURL != nil {
			movie.ImageURL = *input.ImageURL
		}
		if input.StartDate != nil {
			movie.StartDate = *input.StartDate
		}
		if input.EndDate != nil {
			movie.EndDate = *input.EndDate
		}
		if input.Category != nil {
			movie.Category = *input.Category
		}
		if input.CinemaId != nil {
			movie.CinemaId = *input.CinemaId
		}
		if input.ProducerId != nil {
			movie.ProducerId = *input.ProducerId
		}
		movie.Status = StatusForDates(movie.StartDate, movie.EndDate, time.Now())

		if err := tx.Save(&movie).Error; err != nil {
			return err
		}

		if input.ActorIds != nil {
			if err := tx.Where("movie_id = ?", movie.ID).Delete(&model.MovieActor{}).Error; err != nil {
				return err
			}
			links := make([]model.MovieActor, 0, len(*input.ActorIds))
			for _, actorId := range *input.ActorIds {
				links = append(links, model.MovieActor{MovieId: movie.ID, ActorId: actorId})
			}
			if err := tx.Create(&links).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &movie, nil
}

// Filter fetches the full movie list and applies the search in memory, the
// way the storefront always has.
func (s *MoviesService) Filter(ctx context.Context, searchString string) ([]model.Movie, error) {
	movies, err := s.GetAllWith(ctx, "Cinema")
	if err != nil {
		return nil, err
	}
	return FilterMovies(movies, searchString), nil
}

// FilterMovies is a case-sensitive substring match on name or description.
// An empty query returns the list unchanged.
func FilterMovies(movies []model.Movie, searchString string) []model.Movie {
	if searchString == "" {
		return movies
	}
	filtered := make([]model.Movie, 0, len(movies))
	for _, movie := range movies {
		if strings.Contains(movie.Name, searchString) || strings.Contains(movie.Description, searchString) {
			filtered = append(filtered, movie)
		}
	}
	return filtered
}

// StatusForDates derives the showing status from the run dates.
func StatusForDates(start, end, now time.Time) string {
	switch {
	case now.Before(start):
		return model.MOVIE_COMING_SOON
	case now.After(end):
		return model.MOVIE_ENDED
	default:
		return model.MOVIE_NOW_SHOWING
	}
}

// RefreshStatuses walks every movie and applies the date-driven status
// transitions. Run daily by the scheduler.
func (s *MoviesService) RefreshStatuses(ctx context.Context) error {
	movies, err := s.GetAll(ctx)
	if err != nil {
		return err
	}

	now := time.Now()
	for _, movie := range movies {
		status := StatusForDates(movie.StartDate, movie.EndDate, now)
		if status == movie.Status {
			continue
		}
		movie.Status = status
		if err := s.DB().WithContext(ctx).Save(&movie).Error; err != nil {
			return err
		}
	}
	return nil
}
