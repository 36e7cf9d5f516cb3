package handler

import (
	"errors"

	"etickets/constants"
	"etickets/database"
	"etickets/model"
	"etickets/repository"
	"etickets/service"
	"etickets/utils"

	"github.com/gofiber/fiber/v2"
)

// GetMovies lists every movie with its cinema resolved.
func GetMovies(c *fiber.Ctx) error {
	svc := service.NewMoviesService(database.DB)

	movies, err := svc.GetAllWith(c.Context(), "Cinema")
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, movies)
}

// FilterMovies narrows the listing by ?searchString=. An empty query returns
// the full list.
func FilterMovies(c *fiber.Ctx) error {
	svc := service.NewMoviesService(database.DB)
	searchString := c.Query("searchString")

	movies, err := svc.Filter(c.Context(), searchString)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, movies)
}

func GetMovieById(c *fiber.Ctx) error {
	svc := service.NewMoviesService(database.DB)
	movieId := c.Locals("inputId").(int)

	movie, err := svc.GetMovieByID(c.Context(), uint(movieId))
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	if movie == nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.NOT_FOUND_RECORDS, errors.New("movie not found"))
	}
	return utils.SuccessResponse(c, fiber.StatusOK, movie)
}

func GetMovieBySlug(c *fiber.Ctx) error {
	svc := service.NewMoviesService(database.DB)
	slug := c.Params("slug")

	movie, err := svc.GetMovieBySlug(c.Context(), slug)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	if movie == nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.NOT_FOUND_RECORDS, errors.New("movie not found"))
	}
	return utils.SuccessResponse(c, fiber.StatusOK, movie)
}

// GetNewMovieDropdowns feeds the create/edit form with every selectable
// cinema, producer and actor.
func GetNewMovieDropdowns(c *fiber.Ctx) error {
	svc := service.NewMoviesService(database.DB)

	dropdowns, err := svc.GetNewMovieDropdownsValues(c.Context())
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, dropdowns)
}

func CreateMovie(c *fiber.Ctx) error {
	svc := service.NewMoviesService(database.DB)

	input, ok := c.Locals("inputCreateMovie").(model.CreateMovieInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("parse data to locals fail"))
	}

	movie, err := svc.AddNewMovie(c.Context(), input)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_CREATE, err)
	}
	return utils.SuccessResponse(c, fiber.StatusCreated, movie)
}

func EditMovie(c *fiber.Ctx) error {
	svc := service.NewMoviesService(database.DB)

	input, ok := c.Locals("inputEditMovie").(model.EditMovieInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("parse data to locals fail"))
	}

	movie, err := svc.UpdateMovie(c.Context(), input)
	if err != nil {
		if errors.Is(err, repository.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.NOT_FOUND_RECORDS, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_EDIT, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, movie)
}

func DeleteMovie(c *fiber.Ctx) error {
	svc := service.NewMoviesService(database.DB)
	movieId := c.Locals("inputId").(int)

	if err := svc.Delete(c.Context(), uint(movieId)); err != nil {
		if errors.Is(err, repository.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.NOT_FOUND_RECORDS, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_DELETE, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"deleted": movieId})
}

// UploadMoviePoster stores the Cloudinary URL produced by the validate layer
// as the movie's poster.
func UploadMoviePoster(c *fiber.Ctx) error {
	svc := service.NewMoviesService(database.DB)
	movieId := c.Locals("inputId").(int)
	posterUrl, ok := c.Locals("posterUrl").(string)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("poster url missing"))
	}

	movie, err := svc.GetByID(c.Context(), uint(movieId))
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	if movie == nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.NOT_FOUND_RECORDS, errors.New("movie not found"))
	}

	movie.ImageURL = posterUrl
	if err := svc.Update(c.Context(), movie.ID, movie); err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_EDIT, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, movie)
}
