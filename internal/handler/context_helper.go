package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	appErrors "github.com/noah-isme/school-registry-api/pkg/errors"
	"github.com/noah-isme/school-registry-api/pkg/response"
)

// pathID reads the :id parameter. On failure it has already answered 400.
func pathID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "id must be a positive integer"))
		return 0, false
	}
	return id, true
}

// bindJSON decodes the body into dest. On failure it has already answered 400.
func bindJSON(c *gin.Context, dest interface{}, entity string) bool {
	if err := c.ShouldBindJSON(dest); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid "+entity+" payload"))
		return false
	}
	return true
}

// respondMutation answers a successful write, or a business rejection, with the current collection.
// Any other error is answered through response.Error.
func respondMutation(c *gin.Context, err error, list func() (interface{}, error)) {
	if err != nil && !appErrors.IsRejection(err) {
		response.Error(c, err)
		return
	}
	data, listErr := list()
	if listErr != nil {
		response.Error(c, listErr)
		return
	}
	if err != nil {
		response.Rejected(c, err, data)
		return
	}
	response.OK(c, data)
}
