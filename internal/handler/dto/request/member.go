package request

import (
	"nagoyameshi/internal/domain/reservation"
	"nagoyameshi/internal/domain/restaurant"
	"nagoyameshi/internal/usecase/commands"
	"nagoyameshi/internal/usecase/queries"
)

type ReviewRequest struct {
	Score   float64 `json:"score" binding:"required,min=1,max=5"`
	Content string  `json:"content" binding:"required"`
}

func (r *ReviewRequest) ToInput() commands.ReviewInput {
	return commands.ReviewInput{Score: r.Score, Content: r.Content}
}

type CreateReservationRequest struct {
	ReservationDate string `json:"reservation_date" binding:"required"`
	ReservationTime string `json:"reservation_time" binding:"required"`
	NumberOfPeople  int    `json:"number_of_people" binding:"required,min=1,max=50"`
}

func (r *CreateReservationRequest) ToDomain() reservation.Request {
	return reservation.Request{
		Date:           r.ReservationDate,
		Time:           r.ReservationTime,
		NumberOfPeople: r.NumberOfPeople,
	}
}

type PaymentMethodRequest struct {
	PaymentMethodID string `json:"payment_method_id" binding:"required"`
}

type PageQuery struct {
	Page int `form:"page"`
}

type KeywordQuery struct {
	Keyword string `form:"keyword"`
	Page    int    `form:"page"`
}

type RestaurantSearchQuery struct {
	Keyword    string `form:"keyword"`
	CategoryID *int64 `form:"category_id"`
	Price      *int   `form:"price"`
	Sort       string `form:"sort"`
	Page       int    `form:"page"`
}

func (q *RestaurantSearchQuery) ToSearch() queries.RestaurantSearch {
	return queries.RestaurantSearch{
		Keyword:    q.Keyword,
		CategoryID: q.CategoryID,
		MaxPrice:   q.Price,
		Sort:       restaurant.ParseSortKey(q.Sort),
		Page:       q.Page,
	}
}
