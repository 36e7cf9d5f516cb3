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

// GetActors lists every actor. Anonymous-readable.
func GetActors(c *fiber.Ctx) error {
	svc := service.NewActorsService(database.DB)

	actors, err := svc.GetAll(c.Context())
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, actors)
}

func GetActorById(c *fiber.Ctx) error {
	svc := service.NewActorsService(database.DB)
	actorId := c.Locals("inputId").(int)

	actor, err := svc.GetByID(c.Context(), uint(actorId))
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	if actor == nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.NOT_FOUND_RECORDS, errors.New("actor not found"))
	}
	return utils.SuccessResponse(c, fiber.StatusOK, actor)
}

func CreateActor(c *fiber.Ctx) error {
	svc := service.NewActorsService(database.DB)

	input, ok := c.Locals("inputCreateActor").(model.CreateActorInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("parse data to locals fail"))
	}

	newActor := new(model.Actor)
	copier.Copy(newActor, &input)

	if err := svc.Add(c.Context(), newActor); err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_CREATE, err)
	}
	return utils.SuccessResponse(c, fiber.StatusCreated, newActor)
}

func EditActor(c *fiber.Ctx) error {
	svc := service.NewActorsService(database.DB)
	actorId := c.Locals("inputId").(int)
	input := c.Locals("inputEditActor").(model.EditActorInput)

	actor, err := svc.GetByID(c.Context(), uint(actorId))
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	if actor == nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.NOT_FOUND_RECORDS, errors.New("actor not found"))
	}

	if input.FullName != nil {
		actor.FullName = *input.FullName
	}
	if input.ProfilePictureURL != nil {
		actor.ProfilePictureURL = *input.ProfilePictureURL
	}
	if input.Bio != nil {
		actor.Bio = *input.Bio
	}

	if err := svc.Update(c.Context(), actor.ID, actor); err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_EDIT, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, actor)
}

func DeleteActor(c *fiber.Ctx) error {
	svc := service.NewActorsService(database.DB)
	actorId := c.Locals("inputId").(int)

	if err := svc.Delete(c.Context(), uint(actorId)); err != nil {
		if errors.Is(err, repository.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.NOT_FOUND_RECORDS, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_DELETE, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"deleted": actorId})
}
