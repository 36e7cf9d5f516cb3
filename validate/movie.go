package validate

import (
	"context"
	"fmt"
	"path/filepath"
	"strconv"
	"time"

	"etickets/helper"
	"etickets/model"
	"etickets/utils"

	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/gofiber/fiber/v2"
)

func CreateMovie() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CreateMovieInput

		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid body", err)
		}

		if err := validate.Struct(input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, err.Error(), err)
		}

		c.Locals("inputCreateMovie", input)
		return c.Next()
	}
}

func EditMovie(key string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.EditMovieInput

		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid body", err)
		}

		idParam, err := strconv.Atoi(c.Params(key))
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid movie id", err)
		}
		input.Id = uint(idParam)

		if err := validate.Struct(input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, err.Error(), err)
		}

		c.Locals("inputEditMovie", input)
		return c.Next()
	}
}

// UploadMoviePoster pushes the multipart poster to Cloudinary and hands the
// hosted URL to the handler.
func UploadMoviePoster(key string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		idParam, err := strconv.Atoi(c.Params(key))
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid movie id", err)
		}

		file, err := c.FormFile("poster")
		if err != nil {
			return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "Poster file is required", err, "poster")
		}

		ext := filepath.Ext(file.Filename)
		if ext != ".png" && ext != ".jpg" && ext != ".jpeg" {
			return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "Unsupported file format (PNG, JPG, JPEG only)", fmt.Errorf("invalid file format"), "poster")
		}

		fileReader, err := file.Open()
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Could not read poster file", err)
		}
		defer fileReader.Close()

		cld := helper.InitCloudinary()
		uploadResult, err := cld.Upload.Upload(context.Background(), fileReader, uploader.UploadParams{
			Folder:       "movie_posters",
			PublicID:     fmt.Sprintf("poster_%d_%d", idParam, time.Now().Unix()),
			ResourceType: "image",
		})
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Could not upload to Cloudinary", err)
		}

		c.Locals("inputId", idParam)
		c.Locals("posterUrl", uploadResult.SecureURL)
		return c.Next()
	}
}
