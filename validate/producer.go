package validate

import (
	"etickets/model"
	"etickets/utils"

	"github.com/gofiber/fiber/v2"
)

func CreateProducer() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CreateProducerInput

		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid body", err)
		}

		if err := validate.Struct(input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, err.Error(), err)
		}

		c.Locals("inputCreateProducer", input)
		return c.Next()
	}
}

func EditProducer(key string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.EditProducerInput

		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid body", err)
		}

		if err := validate.Struct(input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, err.Error(), err)
		}

		c.Locals("inputEditProducer", input)
		return GetById(key)(c)
	}
}
