package validate

import (
	"etickets/model"
	"etickets/utils"

	"github.com/gofiber/fiber/v2"
)

func CreateCinema() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CreateCinemaInput

		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid body", err)
		}

		if err := validate.Struct(input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, err.Error(), err)
		}

		c.Locals("inputCreateCinema", input)
		return c.Next()
	}
}

func EditCinema(key string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.EditCinemaInput

		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid body", err)
		}

		if err := validate.Struct(input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, err.Error(), err)
		}

		c.Locals("inputEditCinema", input)
		return GetById(key)(c)
	}
}
