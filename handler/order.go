package handler

import (
	"encoding/base64"
	"errors"
	"fmt"
	"log"
	"time"

	"etickets/cart"
	"etickets/constants"
	"etickets/database"
	"etickets/helper"
	"etickets/model"
	"etickets/service"
	"etickets/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// cartSessionId scopes the cart: authenticated users are keyed by their user
// id so the cart follows the account, guests get a cookie-backed uuid. A
// guest cart left behind by the cookie session is merged into the user cart
// on the first authenticated request, so logging in to check out never
// strands the lines added before login.
func cartSessionId(c *fiber.Ctx) string {
	claim, user, _ := helper.GetInfoUserFromToken(c)
	if user != nil {
		userKey := fmt.Sprintf("user-%d", claim.UserId)

		if sid := c.Cookies(cart.SessionCookie); sid != "" {
			sc := cart.New(database.DB, userKey)
			if err := sc.MergeFrom(c.Context(), sid); err != nil {
				log.Printf("merging guest cart %s into %s failed: %v", sid, userKey, err)
			} else {
				c.Cookie(&fiber.Cookie{
					Name:     cart.SessionCookie,
					Value:    "",
					HTTPOnly: true,
					SameSite: "Lax",
					Path:     "/",
					Expires:  time.Now().Add(-time.Hour),
				})
			}
		}
		return userKey
	}

	sid := c.Cookies(cart.SessionCookie)
	if sid == "" {
		sid = uuid.New().String()
		c.Cookie(&fiber.Cookie{
			Name:     cart.SessionCookie,
			Value:    sid,
			HTTPOnly: true,
			SameSite: "Lax",
			Path:     "/",
			Expires:  time.Now().Add(cart.SessionTTL),
		})
	}
	return sid
}

// GetOrders lists orders: all of them for admins, own orders otherwise.
func GetOrders(c *fiber.Ctx) error {
	claim, user, _ := helper.GetInfoUserFromToken(c)
	if user == nil {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Please log in", nil)
	}

	svc := service.NewOrdersService(database.DB)
	orders, err := svc.GetOrdersByUserIDAndRole(c.Context(), claim.UserId, user.Role)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, orders)
}

// GetOrderByCode returns one order with a QR of its public code, for the
// confirmation page.
func GetOrderByCode(c *fiber.Ctx) error {
	claim, user, isAdmin := helper.GetInfoUserFromToken(c)
	if user == nil {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Please log in", nil)
	}

	svc := service.NewOrdersService(database.DB)
	order, err := svc.GetOrderByPublicCode(c.Context(), c.Params("publicCode"))
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	if order == nil || (!isAdmin && order.UserId != claim.UserId) {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.NOT_FOUND_RECORDS, errors.New("order not found"))
	}

	qrBase64 := ""
	qrBytes, err := utils.GenerateQRCode(order.PublicCode, 400)
	if err != nil {
		log.Printf("QR generation for order %s failed: %v", order.PublicCode, err)
	} else {
		qrBase64 = "data:image/png;base64," + base64.StdEncoding.EncodeToString(qrBytes)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"order":  order,
		"qrCode": qrBase64,
	})
}

// GetShoppingCart returns the current lines and their total.
func GetShoppingCart(c *fiber.Ctx) error {
	sc := cart.New(database.DB, cartSessionId(c))

	items, err := sc.GetItems(c.Context())
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"items": items,
		"total": cart.Total(items),
	})
}

// AddItemToShoppingCart looks the movie up first; unknown ids leave the cart
// untouched.
func AddItemToShoppingCart(c *fiber.Ctx) error {
	movieId := c.Locals("inputId").(int)

	movies := service.NewMoviesService(database.DB)
	movie, err := movies.GetMovieByID(c.Context(), uint(movieId))
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	if movie == nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.NOT_FOUND_RECORDS, errors.New("movie not found"))
	}

	sc := cart.New(database.DB, cartSessionId(c))
	if err := sc.AddItem(c.Context(), movie); err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	return GetShoppingCart(c)
}

func RemoveItemFromShoppingCart(c *fiber.Ctx) error {
	movieId := c.Locals("inputId").(int)

	movies := service.NewMoviesService(database.DB)
	movie, err := movies.GetMovieByID(c.Context(), uint(movieId))
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	if movie == nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.NOT_FOUND_RECORDS, errors.New("movie not found"))
	}

	sc := cart.New(database.DB, cartSessionId(c))
	if err := sc.RemoveItem(c.Context(), movie); err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	return GetShoppingCart(c)
}

// CompleteOrder turns the cart into a durable order, clears the cart, mails
// the confirmation and notifies the admin feed.
func CompleteOrder(c *fiber.Ctx) error {
	claim, user, _ := helper.GetInfoUserFromToken(c)
	if user == nil {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Please log in", nil)
	}

	sc := cart.New(database.DB, cartSessionId(c))
	items, err := sc.GetItems(c.Context())
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	if len(items) == 0 {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Shopping cart is empty", errors.New("no items"))
	}

	svc := service.NewOrdersService(database.DB)
	order, err := svc.StoreOrder(c.Context(), items, claim.UserId, user.Email)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_CREATE, err)
	}

	if err := sc.Clear(c.Context()); err != nil {
		log.Printf("clearing cart %s after order %s failed: %v", sc.ID, order.PublicCode, err)
	}

	mailData := utils.OrderConfirmationData{
		OrderCode: order.PublicCode,
		Total:     order.Total,
	}
	for _, item := range items {
		mailData.Items = append(mailData.Items, utils.OrderConfirmationItem{
			MovieName: item.Movie.Name,
			Amount:    item.Amount,
			Price:     item.Movie.Price,
		})
	}
	utils.SendOrderConfirmationEmail(user.Email, mailData)

	PublishOrderEvent(model.OrderEvent{
		PublicCode: order.PublicCode,
		Email:      order.Email,
		Total:      order.Total,
		ItemCount:  len(order.Items),
		CreatedAt:  order.CreatedAt,
	})

	return utils.SuccessResponse(c, fiber.StatusCreated, order)
}
