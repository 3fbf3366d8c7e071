package api

import (
	"net/http"

	"nagoyameshi/internal/domain/access"
	reqdto "nagoyameshi/internal/handler/dto/request"
	resdto "nagoyameshi/internal/handler/dto/response"
	"nagoyameshi/internal/handler/httperr"
	"nagoyameshi/internal/handler/middleware"
	"nagoyameshi/internal/handler/respond"
	"nagoyameshi/internal/usecase/commands"
	"nagoyameshi/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

// CatalogHandler is the admin side of restaurants, categories and the static pages.
type CatalogHandler struct {
	restaurants queries.RestaurantQueries
	site        queries.SiteQueries
	cmds        commands.CatalogCommands
	respond     *respond.Responder
}

func NewCatalogHandler(restaurants queries.RestaurantQueries, site queries.SiteQueries, cmds commands.CatalogCommands, responder *respond.Responder) *CatalogHandler {
	return &CatalogHandler{restaurants: restaurants, site: site, cmds: cmds, respond: responder}
}

// @Summary Admin restaurant list
// @Tags admin
// @Produce json
// @Param keyword query string false "Matches name"
// @Param page query int false "Page number"
// @Success 200 {object} respond.PageBody{data=queries.Page[queries.RestaurantSummary]}
// @Failure 302 {object} respond.RedirectBody
// @Router /admin/restaurants [get]
func (h *CatalogHandler) Restaurants(c *gin.Context) {
	var q reqdto.KeywordQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.BindFailed(c, err)
		return
	}
	page, err := h.restaurants.AdminSearch(c.Request.Context(), q.Keyword, q.Page)
	if err != nil {
		h.respond.Error(c, err)
		return
	}
	h.respond.Page(c, page)
}

// @Summary Admin restaurant detail
// @Tags admin
// @Produce json
// @Param id path int true "Restaurant ID"
// @Success 200 {object} respond.PageBody{data=resdto.RestaurantFormResponse}
// @Failure 302 {object} respond.RedirectBody
// @Failure 404 {object} httperr.Response
// @Router /admin/restaurants/{id} [get]
func (h *CatalogHandler) Restaurant(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	detail, err := h.restaurants.Detail(c.Request.Context(), middleware.GetPrincipal(c), id)
	if err != nil {
		h.respond.Error(c, err)
		return
	}
	h.restaurantForm(c, detail)
}

// @Summary Restaurant form options
// @Description Every category and regular holiday an admin can pick from
// @Tags admin
// @Produce json
// @Success 200 {object} respond.PageBody{data=resdto.RestaurantFormResponse}
// @Failure 302 {object} respond.RedirectBody
// @Router /admin/restaurants/create [get]
func (h *CatalogHandler) NewRestaurant(c *gin.Context) {
	h.restaurantForm(c, nil)
}

func (h *CatalogHandler) restaurantForm(c *gin.Context, detail *queries.RestaurantDetail) {
	ctx := c.Request.Context()
	categories, err := h.restaurants.AllCategories(ctx)
	if err != nil {
		h.respond.Error(c, err)
		return
	}
	holidays, err := h.restaurants.Holidays(ctx)
	if err != nil {
		h.respond.Error(c, err)
		return
	}
	h.respond.Page(c, &resdto.RestaurantFormResponse{
		Restaurant:      detail,
		Categories:      categories,
		RegularHolidays: holidays,
	})
}

// @Summary Register restaurant
// @Tags admin
// @Accept json
// @Produce json
// @Param request body reqdto.RestaurantRequest true "Restaurant"
// @Success 201 {object} respond.DoneBody{data=resdto.CreatedResponse}
// @Failure 302 {object} respond.RedirectBody
// @Failure 422 {object} httperr.Response
// @Router /admin/restaurants [post]
func (h *CatalogHandler) StoreRestaurant(c *gin.Context) {
	var req reqdto.RestaurantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BindFailed(c, err)
		return
	}
	id, err := h.cmds.CreateRestaurant(c.Request.Context(), req.ToDomain())
	if err != nil {
		h.respond.Error(c, err)
		return
	}
	c.Header("Location", "/admin/restaurants/"+itoa(id))
	h.respond.Done(c, http.StatusCreated, access.Target{}, "店舗を登録しました。", &resdto.CreatedResponse{ID: id})
}

// @Summary Update restaurant
// @Description Category and regular holiday associations are replaced in the same transaction.
// @Tags admin
// @Accept json
// @Produce json
// @Param id path int true "Restaurant ID"
// @Param request body reqdto.RestaurantRequest true "Restaurant"
// @Success 200 {object} respond.DoneBody
// @Failure 302 {object} respond.RedirectBody
// @Failure 404 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /admin/restaurants/{id} [patch]
func (h *CatalogHandler) UpdateRestaurant(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	var req reqdto.RestaurantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BindFailed(c, err)
		return
	}
	if err := h.cmds.UpdateRestaurant(c.Request.Context(), id, req.ToDomain()); err != nil {
		h.respond.Error(c, err)
		return
	}
	h.respond.Done(c, http.StatusOK, access.Target{}, "店舗を編集しました。", nil)
}

// @Summary Delete restaurant
// @Tags admin
// @Produce json
// @Param id path int true "Restaurant ID"
// @Success 200 {object} respond.DoneBody
// @Failure 302 {object} respond.RedirectBody
// @Failure 404 {object} httperr.Response
// @Router /admin/restaurants/{id} [delete]
func (h *CatalogHandler) DestroyRestaurant(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	if err := h.cmds.DeleteRestaurant(c.Request.Context(), id); err != nil {
		h.respond.Error(c, err)
		return
	}
	h.respond.Done(c, http.StatusOK, access.Target{}, "店舗を削除しました。", nil)
}

// @Summary Category list
// @Tags admin
// @Produce json
// @Param keyword query string false "Matches name"
// @Param page query int false "Page number"
// @Success 200 {object} respond.PageBody{data=queries.Page[queries.CategoryView]}
// @Failure 302 {object} respond.RedirectBody
// @Router /admin/categories [get]
func (h *CatalogHandler) Categories(c *gin.Context) {
	var q reqdto.KeywordQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.BindFailed(c, err)
		return
	}
	page, err := h.restaurants.Categories(c.Request.Context(), q.Keyword, q.Page)
	if err != nil {
		h.respond.Error(c, err)
		return
	}
	h.respond.Page(c, page)
}

// @Summary Register category
// @Tags admin
// @Accept json
// @Produce json
// @Param request body reqdto.CategoryRequest true "Category"
// @Success 201 {object} respond.DoneBody{data=resdto.CreatedResponse}
// @Failure 302 {object} respond.RedirectBody
// @Failure 422 {object} httperr.Response
// @Router /admin/categories [post]
func (h *CatalogHandler) StoreCategory(c *gin.Context) {
	var req reqdto.CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BindFailed(c, err)
		return
	}
	id, err := h.cmds.CreateCategory(c.Request.Context(), req.Name)
	if err != nil {
		h.respond.Error(c, err)
		return
	}
	h.respond.Done(c, http.StatusCreated, access.Target{}, "カテゴリを登録しました。", &resdto.CreatedResponse{ID: id})
}

// @Summary Update category
// @Tags admin
// @Accept json
// @Produce json
// @Param id path int true "Category ID"
// @Param request body reqdto.CategoryRequest true "Category"
// @Success 200 {object} respond.DoneBody
// @Failure 302 {object} respond.RedirectBody
// @Failure 404 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /admin/categories/{id} [patch]
func (h *CatalogHandler) UpdateCategory(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	var req reqdto.CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BindFailed(c, err)
		return
	}
	if err := h.cmds.UpdateCategory(c.Request.Context(), id, req.Name); err != nil {
		h.respond.Error(c, err)
		return
	}
	h.respond.Done(c, http.StatusOK, access.Target{}, "カテゴリを編集しました。", nil)
}

// @Summary Delete category
// @Tags admin
// @Produce json
// @Param id path int true "Category ID"
// @Success 200 {object} respond.DoneBody
// @Failure 302 {object} respond.RedirectBody
// @Failure 404 {object} httperr.Response
// @Router /admin/categories/{id} [delete]
func (h *CatalogHandler) DestroyCategory(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	if err := h.cmds.DeleteCategory(c.Request.Context(), id); err != nil {
		h.respond.Error(c, err)
		return
	}
	h.respond.Done(c, http.StatusOK, access.Target{}, "カテゴリを削除しました。", nil)
}

// @Summary Company profile (admin)
// @Description Serves both the show and edit pages.
// @Tags admin
// @Produce json
// @Success 200 {object} respond.PageBody{data=queries.CompanyView}
// @Failure 302 {object} respond.RedirectBody
// @Router /admin/company [get]
func (h *CatalogHandler) Company(c *gin.Context) {
	view, err := h.site.Company(c.Request.Context())
	if err != nil {
		h.respond.Error(c, err)
		return
	}
	h.respond.Page(c, view)
}

// @Summary Update company profile
// @Tags admin
// @Accept json
// @Produce json
// @Param request body reqdto.CompanyRequest true "Company"
// @Success 200 {object} respond.DoneBody
// @Failure 302 {object} respond.RedirectBody
// @Failure 422 {object} httperr.Response
// @Router /admin/company [patch]
func (h *CatalogHandler) UpdateCompany(c *gin.Context) {
	var req reqdto.CompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BindFailed(c, err)
		return
	}
	company, err := req.ToDomain()
	if err != nil {
		h.respond.Error(c, err)
		return
	}
	if err := h.cmds.UpdateCompany(c.Request.Context(), company); err != nil {
		h.respond.Error(c, err)
		return
	}
	h.respond.Done(c, http.StatusOK, access.Target{}, "会社概要を編集しました。", nil)
}

// @Summary Terms (admin)
// @Description Serves both the show and edit pages.
// @Tags admin
// @Produce json
// @Success 200 {object} respond.PageBody{data=queries.TermsView}
// @Failure 302 {object} respond.RedirectBody
// @Router /admin/terms [get]
func (h *CatalogHandler) Terms(c *gin.Context) {
	view, err := h.site.Terms(c.Request.Context())
	if err != nil {
		h.respond.Error(c, err)
		return
	}
	h.respond.Page(c, view)
}

// @Summary Update terms
// @Tags admin
// @Accept json
// @Produce json
// @Param request body reqdto.TermsRequest true "Terms"
// @Success 200 {object} respond.DoneBody
// @Failure 302 {object} respond.RedirectBody
// @Failure 422 {object} httperr.Response
// @Router /admin/terms [patch]
func (h *CatalogHandler) UpdateTerms(c *gin.Context) {
	var req reqdto.TermsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BindFailed(c, err)
		return
	}
	if err := h.cmds.UpdateTerms(c.Request.Context(), req.Content); err != nil {
		h.respond.Error(c, err)
		return
	}
	h.respond.Done(c, http.StatusOK, access.Target{}, "利用規約を編集しました。", nil)
}
