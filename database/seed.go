package database

import (
	"etickets/constants"
	"etickets/model"
	"log"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func parseDate(dateStr string) time.Time {
	t, _ := time.Parse("2006-01-02", dateStr)
	return t
}

func SeedData(db *gorm.DB) {
	bytes, err := bcrypt.GenerateFromPassword([]byte("Coding@1234?"), 10)
	hashPassword := string(bytes)
	if err != nil {
		log.Println("failed to hash seed password:", err)
		return
	}

	users := []model.User{
		{FullName: "Admin User", Email: "admin@etickets.com", Password: hashPassword, Role: constants.ROLE_ADMIN, Active: true},
		{FullName: "Application User", Email: "user@etickets.com", Password: hashPassword, Role: constants.ROLE_USER, Active: true},
	}
	for _, user := range users {
		if err := db.Where(model.User{Email: user.Email}).FirstOrCreate(&user).Error; err != nil {
			log.Println("failed to seed user:", user.Email, "error:", err)
		}
	}

	var cinemaCount int64
	db.Model(&model.Cinema{}).Count(&cinemaCount)
	if cinemaCount > 0 {
		return
	}

	cinemas := []model.Cinema{
		{Name: "Cinema 1", Logo: "https://dotnethow.net/images/cinemas/cinema-1.jpeg", Description: "This is the description of the first cinema"},
		{Name: "Cinema 2", Logo: "https://dotnethow.net/images/cinemas/cinema-2.jpeg", Description: "This is the description of the second cinema"},
		{Name: "Cinema 3", Logo: "https://dotnethow.net/images/cinemas/cinema-3.jpeg", Description: "This is the description of the third cinema"},
	}
	if err := db.Create(&cinemas).Error; err != nil {
		log.Println("failed to seed cinemas:", err)
		return
	}

	actors := []model.Actor{
		{FullName: "Actor 1", ProfilePictureURL: "https://dotnethow.net/images/actors/actor-1.jpeg", Bio: "This is the bio of the first actor in the catalog"},
		{FullName: "Actor 2", ProfilePictureURL: "https://dotnethow.net/images/actors/actor-2.jpeg", Bio: "This is the bio of the second actor in the catalog"},
		{FullName: "Actor 3", ProfilePictureURL: "https://dotnethow.net/images/actors/actor-3.jpeg", Bio: "This is the bio of the third actor in the catalog"},
	}
	if err := db.Create(&actors).Error; err != nil {
		log.Println("failed to seed actors:", err)
		return
	}

	producers := []model.Producer{
		{FullName: "Producer 1", ProfilePictureURL: "https://dotnethow.net/images/producers/producer-1.jpeg", Bio: "This is the bio of the first producer in the catalog"},
		{FullName: "Producer 2", ProfilePictureURL: "https://dotnethow.net/images/producers/producer-2.jpeg", Bio: "This is the bio of the second producer in the catalog"},
	}
	if err := db.Create(&producers).Error; err != nil {
		log.Println("failed to seed producers:", err)
		return
	}

	movies := []model.Movie{
		{
			Name:        "Life",
			Description: "This is the Life movie description",
			Price:       39.50,
			ImageURL:    "https://dotnethow.net/images/movies/movie-3.jpeg",
			StartDate:   parseDate("2026-08-21"),
			EndDate:     parseDate("2026-09-10"),
			Category:    "DOCUMENTARY",
			Status:      model.MOVIE_NOW_SHOWING,
			Slug:        "life",
			CinemaId:    cinemas[2].ID,
			ProducerId:  producers[0].ID,
		},
		{
			Name:        "The Shawshank Redemption",
			Description: "This is the Shawshank Redemption description",
			Price:       29.50,
			ImageURL:    "https://dotnethow.net/images/movies/movie-1.jpeg",
			StartDate:   parseDate("2026-08-25"),
			EndDate:     parseDate("2026-09-20"),
			Category:    "ACTION",
			Status:      model.MOVIE_NOW_SHOWING,
			Slug:        "the-shawshank-redemption",
			CinemaId:    cinemas[0].ID,
			ProducerId:  producers[1].ID,
		},
		{
			Name:        "Ghost",
			Description: "This is the Ghost movie description",
			Price:       39.50,
			ImageURL:    "https://dotnethow.net/images/movies/movie-4.jpeg",
			StartDate:   parseDate("2026-09-15"),
			EndDate:     parseDate("2026-10-02"),
			Category:    "HORROR",
			Status:      model.MOVIE_COMING_SOON,
			Slug:        "ghost",
			CinemaId:    cinemas[1].ID,
			ProducerId:  producers[0].ID,
		},
	}
	if err := db.Create(&movies).Error; err != nil {
		log.Println("failed to seed movies:", err)
		return
	}

	links := []model.MovieActor{
		{MovieId: movies[0].ID, ActorId: actors[0].ID},
		{MovieId: movies[0].ID, ActorId: actors[1].ID},
		{MovieId: movies[1].ID, ActorId: actors[1].ID},
		{MovieId: movies[1].ID, ActorId: actors[2].ID},
		{MovieId: movies[2].ID, ActorId: actors[0].ID},
		{MovieId: movies[2].ID, ActorId: actors[2].ID},
	}
	if err := db.Create(&links).Error; err != nil {
		log.Println("failed to seed movie actors:", err)
	}
}
