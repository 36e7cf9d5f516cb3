package cart

import (
	"context"
	"errors"
	"hash/fnv"
	"sync"
	"time"

	"etickets/model"

	"gorm.io/gorm"
)

// SessionCookie carries the cart session id for guests. Authenticated users
// are keyed by their user id instead, so a cart follows the account.
const SessionCookie = "cart_session"

// Stale carts are swept after this much inactivity.
const SessionTTL = 48 * time.Hour

// Fixed-size stripe array, so the lock table stays bounded no matter how many
// guest sessions a long-running process sees.
var sessionLocks [64]sync.Mutex

func stripeIndex(id string) uint32 {
	h := fnv.New32a()
	h.Write([]byte(id))
	return h.Sum32() % uint32(len(sessionLocks))
}

// lockSession maps the session id onto its stripe. All cart mutations for a
// session run under it, so two concurrent adds cannot both read the same
// pre-increment quantity.
func lockSession(id string) *sync.Mutex {
	return &sessionLocks[stripeIndex(id)]
}

// ShoppingCart is the session-scoped cart aggregate. One instance is built
// per request from the session id; the lines live in the database.
type ShoppingCart struct {
	db *gorm.DB
	ID string
}

func New(db *gorm.DB, sessionId string) *ShoppingCart {
	return &ShoppingCart{db: db, ID: sessionId}
}

// AddItem merges by movie identity: an existing line gets its quantity
// incremented, otherwise a new line starts at one.
func (sc *ShoppingCart) AddItem(ctx context.Context, movie *model.Movie) error {
	lock := lockSession(sc.ID)
	lock.Lock()
	defer lock.Unlock()

	var item model.ShoppingCartItem
	err := sc.db.WithContext(ctx).
		Where("shopping_cart_id = ? AND movie_id = ?", sc.ID, movie.ID).
		First(&item).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		item = model.ShoppingCartItem{
			ShoppingCartId: sc.ID,
			MovieId:        movie.ID,
			Amount:         1,
		}
		return sc.db.WithContext(ctx).Create(&item).Error
	}
	if err != nil {
		return err
	}

	item.Amount++
	return sc.db.WithContext(ctx).Save(&item).Error
}

// RemoveItem decrements the matching line and drops it once the quantity
// reaches zero. Removing a movie that is not in the cart is a no-op.
func (sc *ShoppingCart) RemoveItem(ctx context.Context, movie *model.Movie) error {
	lock := lockSession(sc.ID)
	lock.Lock()
	defer lock.Unlock()

	var item model.ShoppingCartItem
	err := sc.db.WithContext(ctx).
		Where("shopping_cart_id = ? AND movie_id = ?", sc.ID, movie.ID).
		First(&item).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil
	}
	if err != nil {
		return err
	}

	if item.Amount > 1 {
		item.Amount--
		return sc.db.WithContext(ctx).Save(&item).Error
	}
	return sc.db.WithContext(ctx).Delete(&item).Error
}

// MergeFrom moves every line of the other session into this cart, adding
// quantities together for movies present in both. Used when a guest who
// filled a cookie-keyed cart logs in, so nothing is stranded on the old
// session id.
func (sc *ShoppingCart) MergeFrom(ctx context.Context, otherId string) error {
	if otherId == "" || otherId == sc.ID {
		return nil
	}

	// Both stripes are taken in index order so two merges in opposite
	// directions cannot deadlock.
	i, j := stripeIndex(sc.ID), stripeIndex(otherId)
	if i == j {
		sessionLocks[i].Lock()
		defer sessionLocks[i].Unlock()
	} else {
		if i > j {
			i, j = j, i
		}
		sessionLocks[i].Lock()
		defer sessionLocks[i].Unlock()
		sessionLocks[j].Lock()
		defer sessionLocks[j].Unlock()
	}

	return sc.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var otherItems []model.ShoppingCartItem
		if err := tx.Where("shopping_cart_id = ?", otherId).Find(&otherItems).Error; err != nil {
			return err
		}

		for _, otherItem := range otherItems {
			var item model.ShoppingCartItem
			err := tx.
				Where("shopping_cart_id = ? AND movie_id = ?", sc.ID, otherItem.MovieId).
				First(&item).Error

			if errors.Is(err, gorm.ErrRecordNotFound) {
				otherItem.ShoppingCartId = sc.ID
				if err := tx.Save(&otherItem).Error; err != nil {
					return err
				}
				continue
			}
			if err != nil {
				return err
			}

			item.Amount += otherItem.Amount
			if err := tx.Save(&item).Error; err != nil {
				return err
			}
			if err := tx.Delete(&otherItem).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// GetItems returns the current lines with their movies resolved.
func (sc *ShoppingCart) GetItems(ctx context.Context) ([]model.ShoppingCartItem, error) {
	var items []model.ShoppingCartItem
	err := sc.db.WithContext(ctx).
		Preload("Movie").
		Where("shopping_cart_id = ?", sc.ID).
		Order("id").
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

// Total sums unit price times quantity over the given lines.
func Total(items []model.ShoppingCartItem) float64 {
	var total float64
	for _, item := range items {
		total += item.Movie.Price * float64(item.Amount)
	}
	return total
}

func (sc *ShoppingCart) GetTotal(ctx context.Context) (float64, error) {
	items, err := sc.GetItems(ctx)
	if err != nil {
		return 0, err
	}
	return Total(items), nil
}

// Clear removes every line for this session. Called after checkout succeeds.
func (sc *ShoppingCart) Clear(ctx context.Context) error {
	lock := lockSession(sc.ID)
	lock.Lock()
	defer lock.Unlock()

	return sc.db.WithContext(ctx).
		Where("shopping_cart_id = ?", sc.ID).
		Delete(&model.ShoppingCartItem{}).Error
}

// SweepExpired deletes cart lines untouched for longer than the session TTL.
func SweepExpired(db *gorm.DB) (int64, error) {
	cutoff := time.Now().Add(-SessionTTL)
	result := db.
		Where("updated_at < ?", cutoff).
		Delete(&model.ShoppingCartItem{})
	return result.RowsAffected, result.Error
}
