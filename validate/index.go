package validate

import (
	"errors"
	"strconv"

	"etickets/constants"
	"etickets/helper"
	"etickets/utils"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

func GetById(key string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		params := c.Params(key)
		valueKey, err := strconv.Atoi(params)
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.DATA_INPUT_IS_NOT_NUMBER, errors.New("params invalid"))
		}

		// Save input to context locals
		c.Locals("inputId", valueKey)

		// Continue to next handler
		return c.Next()
	}
}

// AdminOnly gates the admin CRUD surface. Runs after Protected().
func AdminOnly() fiber.Handler {
	return func(c *fiber.Ctx) error {
		_, _, isAdmin := helper.GetInfoUserFromToken(c)
		if !isAdmin {
			return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_ADMIN, errors.New("permission denied"))
		}
		return c.Next()
	}
}
