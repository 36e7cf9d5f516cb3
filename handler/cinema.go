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
	"github.com/jinzhu/copier"
)

func GetCinemas(c *fiber.Ctx) error {
	svc := service.NewCinemasService(database.DB)

	cinemas, err := svc.GetAll(c.Context())
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, cinemas)
}

// GetCinemaById resolves the cinema with its movies, for the details page.
func GetCinemaById(c *fiber.Ctx) error {
	svc := service.NewCinemasService(database.DB)
	cinemaId := c.Locals("inputId").(int)

	cinema, err := svc.GetByIDWith(c.Context(), uint(cinemaId), "Movies")
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	if cinema == nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.NOT_FOUND_RECORDS, errors.New("cinema not found"))
	}
	return utils.SuccessResponse(c, fiber.StatusOK, cinema)
}

func CreateCinema(c *fiber.Ctx) error {
	svc := service.NewCinemasService(database.DB)

	input, ok := c.Locals("inputCreateCinema").(model.CreateCinemaInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("parse data to locals fail"))
	}

	newCinema := new(model.Cinema)
	copier.Copy(newCinema, &input)

	if err := svc.Add(c.Context(), newCinema); err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_CREATE, err)
	}
	return utils.SuccessResponse(c, fiber.StatusCreated, newCinema)
}

func EditCinema(c *fiber.Ctx) error {
	svc := service.NewCinemasService(database.DB)
	cinemaId := c.Locals("inputId").(int)
	input := c.Locals("inputEditCinema").(model.EditCinemaInput)

	cinema, err := svc.GetByID(c.Context(), uint(cinemaId))
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	if cinema == nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.NOT_FOUND_RECORDS, errors.New("cinema not found"))
	}

	if input.Name != nil {
		cinema.Name = *input.Name
	}
	if input.Logo != nil {
		cinema.Logo = *input.Logo
	}
	if input.Description != nil {
		cinema.Description = *input.Description
	}

	if err := svc.Update(c.Context(), cinema.ID, cinema); err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_EDIT, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, cinema)
}

func DeleteCinema(c *fiber.Ctx) error {
	svc := service.NewCinemasService(database.DB)
	cinemaId := c.Locals("inputId").(int)

	if err := svc.Delete(c.Context(), uint(cinemaId)); err != nil {
		if errors.Is(err, repository.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.NOT_FOUND_RECORDS, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_DELETE, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"deleted": cinemaId})
}
