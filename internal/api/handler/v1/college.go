package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type CollegeHandler struct {
	colleges map[string]string
}

func NewCollegeHandler(colleges map[string]string) *CollegeHandler {
	return &CollegeHandler{
		colleges: colleges,
	}
}

// HandleGetCollegeMapping godoc
// @Summary      Get the college id to name mapping
// @Tags         college
// @Produce      json
// @Success      200 {object} map[string]string
// @Router       /college-mapping [get]
func (h *CollegeHandler) HandleGetCollegeMapping(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, h.colleges)
}
