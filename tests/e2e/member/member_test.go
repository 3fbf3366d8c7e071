//go:build e2e

package member_test

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	reqdto "nagoyameshi/internal/handler/dto/request"
	"nagoyameshi/internal/usecase/queries"
	"nagoyameshi/tests/common/authtest"
	"nagoyameshi/tests/common/dbtest"
	"nagoyameshi/tests/common/httptest"
	"nagoyameshi/tests/e2e"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/suite"
)

type memberSuite struct {
	e2e.SharedSuite
}

func TestMemberSuite(t *testing.T) {
	suite.Run(t, new(memberSuite))
}

func (s *memberSuite) restaurant() int64 {
	cat := dbtest.CreateCategory(s.T(), s.DB, "和食")
	return dbtest.CreateRestaurant(s.T(), s.DB, "ひつまぶし 栄店", 2000, 4000, cat)
}

// premium returns a browser for a freshly subscribed member.
func (s *memberSuite) premium(email string) (*httptest.Browser, int64) {
	b, id := authtest.MemberBrowser(s.T(), s.DB, s.Handler, email)
	dbtest.CreateActiveSubscription(s.T(), s.DB, id)
	return b, id
}

func (s *memberSuite) TestPremiumGate() {
	s.Run("free member is sent to subscription onboarding", func() {
		restaurantID := s.restaurant()
		b, _ := authtest.MemberBrowser(s.T(), s.DB, s.Handler, "free@example.com")

		paths := []string{
			fmt.Sprintf("/restaurants/%d/reservations/create", restaurantID),
			fmt.Sprintf("/restaurants/%d/reviews/create", restaurantID),
			"/reservations",
			"/favorites",
			"/subscription/edit",
		}
		for _, path := range paths {
			body := httptest.AssertRedirect(s.T(), b.Do(http.MethodGet, path, nil), "/subscription/create")
			s.Equal("insufficient_entitlement", body.Reason, path)
		}
	})

	s.Run("premium member is kept out of onboarding", func() {
		b, _ := s.premium("premium@example.com")

		httptest.AssertRedirect(s.T(), b.Do(http.MethodGet, "/subscription/create", nil), "/subscription/edit")
	})

	s.Run("entitlement follows the subscription row on the next request", func() {
		restaurantID := s.restaurant()
		b, id := authtest.MemberBrowser(s.T(), s.DB, s.Handler, "upgrade@example.com")
		path := fmt.Sprintf("/restaurants/%d/reservations/create", restaurantID)
		httptest.AssertRedirect(s.T(), b.Do(http.MethodGet, path, nil), "/subscription/create")

		dbtest.CreateActiveSubscription(s.T(), s.DB, id)

		s.Equal(http.StatusOK, b.Do(http.MethodGet, path, nil).Code)
	})
}

func (s *memberSuite) TestReservations() {
	s.Run("premium member books a table", func() {
		restaurantID := s.restaurant()
		b, id := s.premium("a@example.com")

		w := b.Do(http.MethodPost, fmt.Sprintf("/restaurants/%d/reservations", restaurantID), reqdto.CreateReservationRequest{
			ReservationDate: "2024-01-01",
			ReservationTime: "00:00",
			NumberOfPeople:  10,
		})

		var body struct {
			RedirectTo string `json:"redirect_to"`
		}
		httptest.AssertSuccessResponse(s.T(), w, http.StatusCreated, &body)
		s.Equal("/reservations", body.RedirectTo)
		s.Equal(1, dbtest.CountRows(s.T(), s.DB, "reservations",
			"user_id = $1 AND restaurant_id = $2 AND number_of_people = 10 AND reserved_datetime = '2024-01-01 00:00:00+09'",
			id, restaurantID))

		var listing struct {
			Data queries.Page[queries.ReservationView] `json:"data"`
		}
		httptest.AssertSuccessResponse(s.T(), b.Do(http.MethodGet, "/reservations", nil), http.StatusOK, &listing)
		jst := time.FixedZone("JST", 9*60*60)
		expected := []queries.ReservationView{{
			RestaurantID:   restaurantID,
			RestaurantName: "ひつまぶし 栄店",
			ReservedAt:     time.Date(2024, 1, 1, 0, 0, 0, 0, jst),
			NumberOfPeople: 10,
		}}
		opts := cmp.Options{cmpopts.IgnoreFields(queries.ReservationView{}, "ID", "RestaurantImage", "CreatedAt")}
		if diff := cmp.Diff(expected, listing.Data.Items, opts...); diff != "" {
			s.T().Errorf("reservations mismatch (-want +got):\n%s", diff)
		}
	})

	s.Run("another member cannot cancel it", func() {
		restaurantID := s.restaurant()
		_, ownerID := s.premium("a@example.com")
		reservationID := dbtest.CreateReservation(s.T(), s.DB, ownerID, restaurantID,
			time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), 10)
		other, _ := s.premium("b@example.com")

		w := other.Do(http.MethodDelete, fmt.Sprintf("/reservations/%d", reservationID), nil)

		body := httptest.AssertRedirect(s.T(), w, "/reservations")
		s.Equal("not_owner", body.Reason)
		s.Equal(1, dbtest.CountRows(s.T(), s.DB, "reservations", "id = $1", reservationID))
	})

	s.Run("owner cancels it", func() {
		restaurantID := s.restaurant()
		b, ownerID := s.premium("a@example.com")
		reservationID := dbtest.CreateReservation(s.T(), s.DB, ownerID, restaurantID,
			time.Date(2030, 1, 1, 9, 0, 0, 0, time.UTC), 2)

		w := b.Do(http.MethodDelete, fmt.Sprintf("/reservations/%d", reservationID), nil)

		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, nil)
		s.Equal(0, dbtest.CountRows(s.T(), s.DB, "reservations", "id = $1", reservationID))
	})

	s.Run("party size outside 1..50 is rejected", func() {
		restaurantID := s.restaurant()
		b, _ := s.premium("a@example.com")

		w := b.Do(http.MethodPost, fmt.Sprintf("/restaurants/%d/reservations", restaurantID), reqdto.CreateReservationRequest{
			ReservationDate: "2030-01-01",
			ReservationTime: "18:00",
			NumberOfPeople:  51,
		})

		httptest.AssertErrorResponse(s.T(), w, http.StatusUnprocessableEntity, "")
		s.Equal(0, dbtest.CountRows(s.T(), s.DB, "reservations", "restaurant_id = $1", restaurantID))
	})
}

func (s *memberSuite) TestReviews() {
	s.Run("author deletes their review", func() {
		restaurantID := s.restaurant()
		b, id := s.premium("a@example.com")
		reviewID := dbtest.CreateReview(s.T(), s.DB, id, restaurantID, 4, "味噌カツが最高でした")

		w := b.Do(http.MethodDelete, fmt.Sprintf("/restaurants/%d/reviews/%d", restaurantID, reviewID), nil)

		var body struct {
			RedirectTo string `json:"redirect_to"`
		}
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &body)
		s.Equal(fmt.Sprintf("/restaurants/%d/reviews", restaurantID), body.RedirectTo)
		s.Equal(0, dbtest.CountRows(s.T(), s.DB, "reviews", "id = $1", reviewID))
	})

	s.Run("another member cannot edit or delete it", func() {
		restaurantID := s.restaurant()
		_, authorID := s.premium("a@example.com")
		reviewID := dbtest.CreateReview(s.T(), s.DB, authorID, restaurantID, 4, "味噌カツが最高でした")
		other, _ := s.premium("b@example.com")
		reviews := fmt.Sprintf("/restaurants/%d/reviews", restaurantID)

		httptest.AssertRedirect(s.T(), other.Do(http.MethodGet, fmt.Sprintf("%s/%d/edit", reviews, reviewID), nil), reviews)
		httptest.AssertRedirect(s.T(), other.Do(http.MethodDelete, fmt.Sprintf("%s/%d", reviews, reviewID), nil), reviews)
		s.Equal(1, dbtest.CountRows(s.T(), s.DB, "reviews", "id = $1", reviewID))
	})

	s.Run("free member sees only the latest reviews", func() {
		restaurantID := s.restaurant()
		authorID := dbtest.CreateMember(s.T(), s.DB, "author@example.com")
		for i := 0; i < 5; i++ {
			dbtest.CreateReview(s.T(), s.DB, authorID, restaurantID, 3, fmt.Sprintf("review %d", i))
		}
		free, _ := authtest.MemberBrowser(s.T(), s.DB, s.Handler, "free@example.com")
		premium, _ := s.premium("premium@example.com")
		path := fmt.Sprintf("/restaurants/%d/reviews", restaurantID)

		var freePage struct {
			Data queries.ReviewListing `json:"data"`
		}
		httptest.AssertSuccessResponse(s.T(), free.Do(http.MethodGet, path, nil), http.StatusOK, &freePage)
		s.True(freePage.Data.Limited)
		s.Len(freePage.Data.Reviews.Items, queries.FreeReviewLimit)

		var premiumPage struct {
			Data queries.ReviewListing `json:"data"`
		}
		httptest.AssertSuccessResponse(s.T(), premium.Do(http.MethodGet, path, nil), http.StatusOK, &premiumPage)
		s.False(premiumPage.Data.Limited)
		s.EqualValues(5, premiumPage.Data.Reviews.Total)
	})

	s.Run("premium member posts a review", func() {
		restaurantID := s.restaurant()
		b, id := s.premium("a@example.com")

		w := b.Do(http.MethodPost, fmt.Sprintf("/restaurants/%d/reviews", restaurantID),
			reqdto.ReviewRequest{Score: 5, Content: "きしめんが絶品"})

		httptest.AssertSuccessResponse(s.T(), w, http.StatusCreated, nil)
		s.Equal(1, dbtest.CountRows(s.T(), s.DB, "reviews", "user_id = $1 AND restaurant_id = $2 AND score = 5", id, restaurantID))
	})

	s.Run("half point scores are stored as given", func() {
		restaurantID := s.restaurant()
		b, id := s.premium("a@example.com")
		path := fmt.Sprintf("/restaurants/%d/reviews", restaurantID)

		w := b.Do(http.MethodPost, path, reqdto.ReviewRequest{Score: 4.5, Content: "good"})
		httptest.AssertSuccessResponse(s.T(), w, http.StatusCreated, nil)
		s.Equal(1, dbtest.CountRows(s.T(), s.DB, "reviews", "user_id = $1 AND score = 4.5", id))

		w = b.Do(http.MethodPost, path, reqdto.ReviewRequest{Score: 5.5, Content: "too good"})
		httptest.AssertErrorResponse(s.T(), w, http.StatusUnprocessableEntity, "")
		s.Equal(1, dbtest.CountRows(s.T(), s.DB, "reviews", "restaurant_id = $1", restaurantID))
	})

	s.Run("edit page checks the restaurant in the path", func() {
		restaurantID := s.restaurant()
		b, id := s.premium("a@example.com")
		reviewID := dbtest.CreateReview(s.T(), s.DB, id, restaurantID, 4, "味噌カツが最高でした")

		w := b.Do(http.MethodGet, fmt.Sprintf("/restaurants/%d/reviews/%d/edit", restaurantID+1000, reviewID), nil)

		s.Equal(http.StatusNotFound, w.Code, w.Body.String())
	})
}

func (s *memberSuite) TestFavorites() {
	s.Run("adding twice keeps one favorite", func() {
		restaurantID := s.restaurant()
		b, id := s.premium("a@example.com")
		path := fmt.Sprintf("/favorites/%d", restaurantID)

		httptest.AssertSuccessResponse(s.T(), b.Do(http.MethodPost, path, nil), http.StatusOK, nil)
		httptest.AssertSuccessResponse(s.T(), b.Do(http.MethodPost, path, nil), http.StatusOK, nil)
		s.Equal(1, dbtest.CountRows(s.T(), s.DB, "favorites", "user_id = $1", id))

		httptest.AssertSuccessResponse(s.T(), b.Do(http.MethodDelete, path, nil), http.StatusOK, nil)
		s.Equal(0, dbtest.CountRows(s.T(), s.DB, "favorites", "user_id = $1", id))
	})
}
