package v1

import (
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/digitpainter/vote-v4/internal/api/handler/v1/response"
	"github.com/digitpainter/vote-v4/internal/domain"
	"github.com/digitpainter/vote-v4/internal/service"
)

var errMissingFile = errors.New("file field is required")

type ImageStore interface {
	SaveImage(header *multipart.FileHeader) (string, error)
}

type UploadHandler struct {
	store ImageStore
	logs  AdminLogRecorder
}

func NewUploadHandler(store ImageStore, logs AdminLogRecorder) *UploadHandler {
	return &UploadHandler{
		store: store,
		logs:  logs,
	}
}

// HandleUploadImage godoc
// @Summary      Upload a candidate image
// @Tags         upload
// @Security     BearerAuth
// @Accept       multipart/form-data
// @Produce      json
// @Param        file     formData  file true "image file"
// @Success      200      {object}  response.UploadResponse
// @Failure      400      {object}  response.Err
// @Failure      413      {object}  response.Err
// @Router       /admin/upload/image [post]
func (h *UploadHandler) HandleUploadImage(ctx *gin.Context) {
	session, ok := sessionOrAbort(ctx)
	if !ok {
		return
	}

	header, err := ctx.FormFile("file")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(errMissingFile))

		return
	}

	url, err := h.store.SaveImage(header)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrImageTooLarge):
			response.RenderErr(ctx, response.NewErr(http.StatusRequestEntityTooLarge, err))
		case errors.Is(err, service.ErrImageTypeInvalid):
			response.RenderErr(ctx, response.ErrBadRequest(err))
		default:
			err = fmt.Errorf("v1.HandleUploadImage -> h.store.SaveImage -> %w", err)
			response.RenderErr(ctx, response.ErrInternalServerError(err))
		}

		return
	}

	h.logs.Record(ctx.Request.Context(), session, requestMeta(ctx),
		domain.ActionCreate, "image", "",
		fmt.Sprintf("uploaded image %q", header.Filename))

	ctx.JSON(http.StatusOK, response.UploadResponse{URL: url})
}
