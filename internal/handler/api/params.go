package api

import (
	"net/http"
	"strconv"

	"nagoyameshi/internal/handler/httperr"
	"nagoyameshi/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

var errInvalidID = errs.New("invalid id")

// idParam reads a positive integer path parameter, aborting with 400 otherwise.
func idParam(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		if err == nil {
			err = errInvalidID
		}
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return 0, false
	}
	return id, true
}

func itoa(id int64) string {
	return strconv.FormatInt(id, 10)
}
