package router

import (
	"etickets/handler"
	"etickets/middleware"
	"etickets/validate"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func SetupRoutes(app *fiber.App) {
	api := app.Group("/api", logger.New())
	v1 := api.Group("/v1", logger.New())

	account := v1.Group("/account")
	account.Post("/login", validate.Login(), handler.Login)
	account.Post("/register", validate.Register(), handler.Register)
	account.Post("/refresh-token", handler.RefreshToken)
	account.Post("/logout", handler.Logout)
	account.Post("/forgot-password", validate.ForgotPassword(), handler.ForgotPassword)
	account.Post("/reset-password", validate.ResetPassword(), handler.ResetPassword)
	account.Get("/me", middleware.Protected(), handler.Me)
	account.Get("/users", middleware.Protected(), validate.AdminOnly(), handler.GetUsers)

	actor := v1.Group("/actor", logger.New())
	actor.Get("/", handler.GetActors)
	actor.Get("/:actorId", validate.GetById("actorId"), handler.GetActorById)
	actor.Post("/", middleware.Protected(), validate.AdminOnly(), validate.CreateActor(), handler.CreateActor)
	actor.Put("/:actorId", middleware.Protected(), validate.AdminOnly(), validate.EditActor("actorId"), handler.EditActor)
	actor.Delete("/:actorId", middleware.Protected(), validate.AdminOnly(), validate.GetById("actorId"), handler.DeleteActor)

	cinema := v1.Group("/cinema", logger.New())
	cinema.Get("/", handler.GetCinemas)
	cinema.Get("/:cinemaId", validate.GetById("cinemaId"), handler.GetCinemaById)
	cinema.Post("/", middleware.Protected(), validate.AdminOnly(), validate.CreateCinema(), handler.CreateCinema)
	cinema.Put("/:cinemaId", middleware.Protected(), validate.AdminOnly(), validate.EditCinema("cinemaId"), handler.EditCinema)
	cinema.Delete("/:cinemaId", middleware.Protected(), validate.AdminOnly(), validate.GetById("cinemaId"), handler.DeleteCinema)

	producer := v1.Group("/producer", logger.New())
	producer.Get("/", handler.GetProducers)
	producer.Get("/:producerId", validate.GetById("producerId"), handler.GetProducerById)
	producer.Post("/", middleware.Protected(), validate.AdminOnly(), validate.CreateProducer(), handler.CreateProducer)
	producer.Put("/:producerId", middleware.Protected(), validate.AdminOnly(), validate.EditProducer("producerId"), handler.EditProducer)
	producer.Delete("/:producerId", middleware.Protected(), validate.AdminOnly(), validate.GetById("producerId"), handler.DeleteProducer)

	movie := v1.Group("/movie", logger.New())
	movie.Get("/", handler.GetMovies)
	movie.Get("/filter", handler.FilterMovies)
	movie.Get("/dropdowns", middleware.Protected(), validate.AdminOnly(), handler.GetNewMovieDropdowns)
	movie.Get("/slug/:slug", handler.GetMovieBySlug)
	movie.Get("/:movieId", validate.GetById("movieId"), handler.GetMovieById)
	movie.Post("/", middleware.Protected(), validate.AdminOnly(), validate.CreateMovie(), handler.CreateMovie)
	movie.Put("/:movieId", middleware.Protected(), validate.AdminOnly(), validate.EditMovie("movieId"), handler.EditMovie)
	movie.Delete("/:movieId", middleware.Protected(), validate.AdminOnly(), validate.GetById("movieId"), handler.DeleteMovie)
	movie.Post("/:movieId/poster", middleware.Protected(), validate.AdminOnly(), validate.UploadMoviePoster("movieId"), handler.UploadMoviePoster)

	// The shopping cart works for guests too, the session cookie carries it.
	order := v1.Group("/order", logger.New())
	order.Get("/", middleware.Protected(), handler.GetOrders)
	order.Get("/shopping-cart", middleware.OptionalJWT(), handler.GetShoppingCart)
	order.Post("/shopping-cart/:movieId", middleware.OptionalJWT(), validate.GetById("movieId"), handler.AddItemToShoppingCart)
	order.Delete("/shopping-cart/:movieId", middleware.OptionalJWT(), validate.GetById("movieId"), handler.RemoveItemFromShoppingCart)
	order.Post("/complete", middleware.Protected(), handler.CompleteOrder)
	order.Get("/:publicCode", middleware.Protected(), handler.GetOrderByCode)

	ws := app.Group("/ws")
	ws.Use(func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return fiber.ErrUpgradeRequired
	})
	ws.Get("/orders", websocket.New(handler.OrdersFeed))
}
