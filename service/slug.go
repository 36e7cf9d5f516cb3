package service

import (
	"fmt"

	"etickets/model"

	"github.com/gosimple/slug"
	"gorm.io/gorm"
)

// GenerateUniqueMovieSlug derives a URL slug from the movie name, suffixing a
// counter until it is free within the transaction.
func GenerateUniqueMovieSlug(tx *gorm.DB, name string) string {
	base := slug.Make(name)
	result := base
	i := 1

	for {
		var count int64
		tx.Model(&model.Movie{}).
			Where("slug = ?", result).
			Count(&count)

		if count == 0 {
			break
		}
		result = fmt.Sprintf("%s-%d", base, i)
		i++
	}

	return result
}
