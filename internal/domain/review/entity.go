package review

import (
	"time"

	"nagoyameshi/internal/pkg/errs"
)

type Review struct {
	id           int64
	userID       int64
	restaurantID int64
	score        Score
	content      Content
	createdAt    time.Time
	updatedAt    time.Time
}

// NewReview validates input; a member may post any number of reviews per restaurant.
func NewReview(userID, restaurantID int64, scoreValue float64, contentText string, now time.Time) (*Review, error) {
	score, content, err := validate(scoreValue, contentText)
	if err != nil {
		return nil, err
	}
	return &Review{
		userID:       userID,
		restaurantID: restaurantID,
		score:        score,
		content:      content,
		createdAt:    now,
		updatedAt:    now,
	}, nil
}

func ReconstructReview(id, userID, restaurantID int64, score float64, content string, createdAt, updatedAt time.Time) *Review {
	return &Review{
		id:           id,
		userID:       userID,
		restaurantID: restaurantID,
		score:        Score{value: score},
		content:      Content{text: content},
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}
}

// Edit changes score and content. Author and restaurant are fixed at creation.
func (r *Review) Edit(scoreValue float64, contentText string, now time.Time) error {
	score, content, err := validate(scoreValue, contentText)
	if err != nil {
		return err
	}
	r.score = score
	r.content = content
	r.updatedAt = now
	return nil
}

func validate(scoreValue float64, contentText string) (Score, Content, error) {
	score, err := NewScore(scoreValue)
	if err != nil {
		return Score{}, Content{}, errs.Invalid("score", err)
	}
	content, err := NewContent(contentText)
	if err != nil {
		return Score{}, Content{}, errs.Invalid("content", err)
	}
	return score, content, nil
}

func (r *Review) ID() int64            { return r.id }
func (r *Review) UserID() int64        { return r.userID }
func (r *Review) OwnerID() int64       { return r.userID }
func (r *Review) RestaurantID() int64  { return r.restaurantID }
func (r *Review) Score() Score         { return r.score }
func (r *Review) Content() Content     { return r.content }
func (r *Review) CreatedAt() time.Time { return r.createdAt }
func (r *Review) UpdatedAt() time.Time { return r.updatedAt }
