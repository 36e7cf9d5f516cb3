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

func GetProducers(c *fiber.Ctx) error {
	svc := service.NewProducersService(database.DB)

	producers, err := svc.GetAll(c.Context())
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, producers)
}

func GetProducerById(c *fiber.Ctx) error {
	svc := service.NewProducersService(database.DB)
	producerId := c.Locals("inputId").(int)

	producer, err := svc.GetByIDWith(c.Context(), uint(producerId), "Movies")
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	if producer == nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.NOT_FOUND_RECORDS, errors.New("producer not found"))
	}
	return utils.SuccessResponse(c, fiber.StatusOK, producer)
}

func CreateProducer(c *fiber.Ctx) error {
	svc := service.NewProducersService(database.DB)

	input, ok := c.Locals("inputCreateProducer").(model.CreateProducerInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("parse data to locals fail"))
	}

	newProducer := new(model.Producer)
	copier.Copy(newProducer, &input)

	if err := svc.Add(c.Context(), newProducer); err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_CREATE, err)
	}
	return utils.SuccessResponse(c, fiber.StatusCreated, newProducer)
}

func EditProducer(c *fiber.Ctx) error {
	svc := service.NewProducersService(database.DB)
	producerId := c.Locals("inputId").(int)
	input := c.Locals("inputEditProducer").(model.EditProducerInput)

	producer, err := svc.GetByID(c.Context(), uint(producerId))
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	if producer == nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.NOT_FOUND_RECORDS, errors.New("producer not found"))
	}

	if input.FullName != nil {
		producer.FullName = *input.FullName
	}
	if input.ProfilePictureURL != nil {
		producer.ProfilePictureURL = *input.ProfilePictureURL
	}
	if input.Bio != nil {
		producer.Bio = *input.Bio
	}

	if err := svc.Update(c.Context(), producer.ID, producer); err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_EDIT, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, producer)
}

func DeleteProducer(c *fiber.Ctx) error {
	svc := service.NewProducersService(database.DB)
	producerId := c.Locals("inputId").(int)

	if err := svc.Delete(c.Context(), uint(producerId)); err != nil {
		if errors.Is(err, repository.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.NOT_FOUND_RECORDS, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_DELETE, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"deleted": producerId})
}
