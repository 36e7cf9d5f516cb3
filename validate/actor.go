package validate

import (
	"etickets/model"
	"etickets/utils"

	"github.com/gofiber/fiber/v2"
)

func CreateActor() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CreateActorInput

		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid body", err)
		}

		if err := validate.Struct(input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, err.Error(), err)
		}

		c.Locals("inputCreateActor", input)
		return c.Next()
	}
}

func EditActor(key string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.EditActorInput

		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid body", err)
		}

		if err := validate.Struct(input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, err.Error(), err)
		}

		c.Locals("inputEditActor", input)
		return GetById(key)(c)
	}
}
