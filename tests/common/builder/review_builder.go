//go:build unit || e2e

package builder

import (
	"time"

	domreview "nagoyameshi/internal/domain/review"
	reqdto "nagoyameshi/internal/handler/dto/request"
	"nagoyameshi/internal/usecase/commands"
	"nagoyameshi/internal/usecase/queries"
)

type ReviewBuilder struct {
	ID           int64
	UserID       int64
	UserName     string
	RestaurantID int64
	Score        float64
	Content      string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func NewReviewBuilder() *ReviewBuilder {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	return &ReviewBuilder{
		ID:           10,
		UserID:       1,
		UserName:     "侍 太郎",
		RestaurantID: 100,
		Score:        5,
		Content:      "味噌カツが絶品でした",
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

func (r *ReviewBuilder) With(mutate func(*ReviewBuilder)) *ReviewBuilder {
	mutate(r)
	return r
}

// Build methods
func (r *ReviewBuilder) BuildDomain() (*domreview.Review, error) {
	return domreview.NewReview(r.UserID, r.RestaurantID, r.Score, r.Content, r.CreatedAt)
}

func (r *ReviewBuilder) BuildReconstructed() *domreview.Review {
	return domreview.ReconstructReview(r.ID, r.UserID, r.RestaurantID, r.Score, r.Content, r.CreatedAt, r.UpdatedAt)
}

func (r *ReviewBuilder) BuildRequestDTO() reqdto.ReviewRequest {
	return reqdto.ReviewRequest{
		Score:   r.Score,
		Content: r.Content,
	}
}

func (r *ReviewBuilder) BuildInput() commands.ReviewInput {
	return commands.ReviewInput{Score: r.Score, Content: r.Content}
}

func (r *ReviewBuilder) BuildView() *queries.ReviewView {
	return &queries.ReviewView{
		ID:           r.ID,
		Score:        r.Score,
		Content:      r.Content,
		RestaurantID: r.RestaurantID,
		UserID:       r.UserID,
		UserName:     r.UserName,
		CreatedAt:    r.CreatedAt,
		UpdatedAt:    r.UpdatedAt,
	}
}

// Fluent builder methods
func (r *ReviewBuilder) WithID(id int64) *ReviewBuilder {
	r.ID = id
	return r
}

func (r *ReviewBuilder) WithUserID(userID int64) *ReviewBuilder {
	r.UserID = userID
	return r
}

func (r *ReviewBuilder) WithRestaurantID(restaurantID int64) *ReviewBuilder {
	r.RestaurantID = restaurantID
	return r
}

func (r *ReviewBuilder) WithScore(score float64) *ReviewBuilder {
	r.Score = score
	return r
}

func (r *ReviewBuilder) WithContent(content string) *ReviewBuilder {
	r.Content = content
	return r
}

func (r *ReviewBuilder) AsPoorScore() *ReviewBuilder {
	r.Score = 1
	r.Content = "期待外れでした"
	return r
}
