package handler

import (
	"errors"
	"time"

	"etickets/constants"
	"etickets/database"
	"etickets/helper"
	"etickets/model"
	"etickets/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"gorm.io/gorm"
)

func setAuthCookies(c *fiber.Ctx, accessToken, refreshToken string) {
	c.Cookie(&fiber.Cookie{
		Name:     "access_token",
		Value:    accessToken,
		Expires:  time.Now().Add(time.Minute * 60),
		HTTPOnly: true,
		SameSite: "Lax",
		Secure:   false,
		Path:     "/",
	})
	c.Cookie(&fiber.Cookie{
		Name:     "refresh_token",
		Value:    refreshToken,
		Expires:  time.Now().Add(time.Hour * 24 * 7),
		HTTPOnly: true,
		SameSite: "Lax",
		Secure:   false,
		Path:     "/",
	})
}

// Login checks the credentials and sets the token pair as HTTPOnly cookies.
// Unknown emails and wrong passwords get the same message on purpose.
func Login(c *fiber.Ctx) error {
	input, ok := c.Locals("inputLogin").(model.LoginInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("parse data to locals fail"))
	}

	user, err := helper.GetUserByEmail(input.EmailAddress)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	if user == nil {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.WRONG_CREDENTIALS, errors.New("email not registered"))
	}

	if !helper.CheckPasswordHash(input.Password, user.Password) {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.WRONG_CREDENTIALS, errors.New("password does not match email"))
	}

	if !user.Active {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.ACCOUNT_NOT_ACTIVE, errors.New("active false"))
	}

	tokenClaim := model.TokenClaim{
		UserId:   user.ID,
		Email:    user.Email,
		FullName: user.FullName,
	}

	accessToken, err := helper.GenerateAccessToken(tokenClaim)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	refreshToken, err := helper.GenerateRefreshToken(tokenClaim)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	setAuthCookies(c, accessToken, refreshToken)

	return c.JSON(fiber.Map{
		"message": "login success",
		"account": fiber.Map{
			"id":       user.ID,
			"fullName": user.FullName,
			"email":    user.Email,
			"role":     user.Role,
		},
	})
}

// Register creates a USER account. Duplicate emails are rejected before any
// hashing work happens.
func Register(c *fiber.Ctx) error {
	input, ok := c.Locals("inputRegister").(model.RegisterInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("parse data to locals fail"))
	}

	existing, err := helper.GetUserByEmail(input.EmailAddress)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	if existing != nil {
		return utils.ErrorResponse(c, fiber.StatusConflict, constants.EMAIL_ALREADY_IN_USE, errors.New("email already registered"))
	}

	hashed, err := helper.HashPassword(input.Password)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.CAN_NOT_HASH_PASSWORD, err)
	}

	user := model.User{
		FullName: input.FullName,
		Email:    input.EmailAddress,
		Password: hashed,
		Role:     constants.ROLE_USER,
		Active:   true,
	}
	if err := database.DB.Create(&user).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_CREATE, err)
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, user)
}

// RefreshToken rotates the cookie pair from a valid refresh token.
func RefreshToken(c *fiber.Ctx) error {
	refreshCookie := c.Cookies("refresh_token")
	if refreshCookie == "" {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Refresh token not found", nil)
	}

	token, err := helper.ParseToken(refreshCookie)
	if err != nil || !token.Valid {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Invalid refresh token", err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Invalid token claims", nil)
	}

	userIdFloat, ok := claims["userId"].(float64)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Invalid userId in payload", nil)
	}

	var user model.User
	if err := database.DB.First(&user, uint(userIdFloat)).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Account no longer exists", err)
	}
	if !user.Active {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.ACCOUNT_NOT_ACTIVE, errors.New("active false"))
	}

	tokenClaim := model.TokenClaim{
		UserId:   user.ID,
		Email:    user.Email,
		FullName: user.FullName,
	}

	newAccessToken, err := helper.GenerateAccessToken(tokenClaim)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	newRefreshToken, err := helper.GenerateRefreshToken(tokenClaim)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	setAuthCookies(c, newAccessToken, newRefreshToken)

	return c.JSON(fiber.Map{"message": "refresh success"})
}

// Logout expires both auth cookies.
func Logout(c *fiber.Ctx) error {
	for _, name := range []string{"access_token", "refresh_token"} {
		c.Cookie(&fiber.Cookie{
			Name:     name,
			Value:    "",
			Expires:  time.Now().Add(-time.Hour),
			HTTPOnly: true,
			SameSite: "Lax",
			Path:     "/",
		})
	}
	return c.JSON(fiber.Map{"message": "logout success"})
}

// Me returns the account behind the current token.
func Me(c *fiber.Ctx) error {
	_, user, _ := helper.GetInfoUserFromToken(c)
	if user == nil {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Please log in", nil)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, user)
}

// GetUsers is the admin account listing, paginated with ?limit= and ?page=.
func GetUsers(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 0)
	page := c.QueryInt("page", 0)

	query := database.DB.Model(&model.User{}).Order("created_at desc")
	query = utils.ApplyPagination(query, utils.Ptr(limit), utils.Ptr(page))

	var users model.Users
	if err := query.Find(&users).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, users)
}

// ForgotPassword always answers the same way so the endpoint does not reveal
// which emails are registered.
func ForgotPassword(c *fiber.Ctx) error {
	input, ok := c.Locals("inputForgotPassword").(model.ForgotPasswordInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("parse data to locals fail"))
	}

	user, err := helper.GetUserByEmail(input.EmailAddress)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	if user != nil {
		resetToken, err := helper.NewPasswordResetToken(user.ID)
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
		}
		helper.SendPasswordResetEmail(user.Email, resetToken.Token)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"message": "If that email is registered, a reset link has been sent",
	})
}

// ResetPassword consumes a token minted by ForgotPassword.
func ResetPassword(c *fiber.Ctx) error {
	input, ok := c.Locals("inputResetPassword").(model.ResetPasswordInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("parse data to locals fail"))
	}

	var resetToken model.PasswordResetToken
	err := database.DB.Where(&model.PasswordResetToken{Token: input.Token}).First(&resetToken).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid or expired reset token", errors.New("token not found"))
	}
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	if resetToken.Used || time.Now().After(resetToken.ExpiresAt) {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid or expired reset token", errors.New("token used or expired"))
	}

	hashed, err := helper.HashPassword(input.NewPassword)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.CAN_NOT_HASH_PASSWORD, err)
	}

	err = database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&model.User{}).Where("id = ?", resetToken.UserId).Update("password", hashed).Error; err != nil {
			return err
		}
		return tx.Model(&resetToken).Update("used", true).Error
	})
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_EDIT, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"message": "password updated"})
}
