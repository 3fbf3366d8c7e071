package favorite

import "time"

// Favorite is keyed by (user, restaurant); adding the same pair twice is a no-op.
type Favorite struct {
	userID       int64
	restaurantID int64
	createdAt    time.Time
}

func NewFavorite(userID, restaurantID int64, now time.Time) *Favorite {
	return &Favorite{userID: userID, restaurantID: restaurantID, createdAt: now}
}

func (f *Favorite) UserID() int64        { return f.userID }
func (f *Favorite) OwnerID() int64       { return f.userID }
func (f *Favorite) RestaurantID() int64  { return f.restaurantID }
func (f *Favorite) CreatedAt() time.Time { return f.createdAt }
