package api

import (
	reqdto "nagoyameshi/internal/handler/dto/request"
	resdto "nagoyameshi/internal/handler/dto/response"
	"nagoyameshi/internal/handler/httperr"
	"nagoyameshi/internal/handler/middleware"
	"nagoyameshi/internal/handler/respond"
	"nagoyameshi/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type RestaurantHandler struct {
	q       queries.RestaurantQueries
	site    queries.SiteQueries
	respond *respond.Responder
}

func NewRestaurantHandler(q queries.RestaurantQueries, site queries.SiteQueries, responder *respond.Responder) *RestaurantHandler {
	return &RestaurantHandler{q: q, site: site, respond: responder}
}

// @Summary Home page
// @Description Highly rated and newest restaurants plus every category
// @Tags restaurants
// @Produce json
// @Success 200 {object} respond.PageBody{data=queries.HomeView}
// @Failure 302 {object} respond.RedirectBody
// @Router / [get]
func (h *RestaurantHandler) Home(c *gin.Context) {
	view, err := h.q.Home(c.Request.Context())
	if err != nil {
		h.respond.Error(c, err)
		return
	}
	h.respond.Page(c, view)
}

// @Summary Search restaurants
// @Description Keyword, category and price filters with one sort order, 15 per page
// @Tags restaurants
// @Produce json
// @Param keyword query string false "Matches name, address and category name"
// @Param category_id query int false "Category ID"
// @Param price query int false "Upper bound on the lowest price"
// @Param sort query string false "created_at desc | lowest_price asc | rating desc | popular desc"
// @Param page query int false "Page number"
// @Success 200 {object} respond.PageBody{data=resdto.RestaurantIndexResponse}
// @Failure 400 {object} httperr.Response
// @Router /restaurants [get]
func (h *RestaurantHandler) Index(c *gin.Context) {
	var q reqdto.RestaurantSearchQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.BindFailed(c, err)
		return
	}
	search := q.ToSearch()
	page, err := h.q.Search(c.Request.Context(), search)
	if err != nil {
		h.respond.Error(c, err)
		return
	}
	categories, err := h.q.AllCategories(c.Request.Context())
	if err != nil {
		h.respond.Error(c, err)
		return
	}
	h.respond.Page(c, &resdto.RestaurantIndexResponse{
		Restaurants: page,
		Categories:  categories,
		Keyword:     search.Keyword,
		CategoryID:  search.CategoryID,
		Price:       search.MaxPrice,
		Sort:        string(search.Sort),
	})
}

// @Summary Restaurant detail
// @Tags restaurants
// @Produce json
// @Param id path int true "Restaurant ID"
// @Success 200 {object} respond.PageBody{data=queries.RestaurantDetail}
// @Failure 404 {object} httperr.Response
// @Router /restaurants/{id} [get]
func (h *RestaurantHandler) Show(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	view, err := h.q.Detail(c.Request.Context(), middleware.GetPrincipal(c), id)
	if err != nil {
		h.respond.Error(c, err)
		return
	}
	h.respond.Page(c, view)
}

// @Summary Company profile
// @Tags site
// @Produce json
// @Success 200 {object} respond.PageBody{data=resdto.CompanyResponse}
// @Router /company [get]
func (h *RestaurantHandler) Company(c *gin.Context) {
	view, err := h.site.Company(c.Request.Context())
	if err != nil {
		h.respond.Error(c, err)
		return
	}
	res, err := resdto.FromCompanyView(view)
	if err != nil {
		h.respond.Error(c, err)
		return
	}
	h.respond.Page(c, res)
}

// @Summary Terms of service
// @Tags site
// @Produce json
// @Success 200 {object} respond.PageBody{data=queries.TermsView}
// @Router /terms [get]
func (h *RestaurantHandler) Terms(c *gin.Context) {
	view, err := h.site.Terms(c.Request.Context())
	if err != nil {
		h.respond.Error(c, err)
		return
	}
	h.respond.Page(c, view)
}
