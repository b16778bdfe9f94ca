package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vorolab/site/internal/api/constants"
	"github.com/vorolab/site/internal/api/dto/common"
	inquirydto "github.com/vorolab/site/internal/api/dto/v1/inquiry"
	"github.com/vorolab/site/internal/inquiry"
	"github.com/vorolab/site/internal/service"
	"github.com/vorolab/site/internal/utils"
)

// InquirySubmitter relays a single inquiry
type InquirySubmitter interface {
	Submit(ctx context.Context, in inquiry.Inquiry) error
}

type InquiryHandler struct {
	inquiryService InquirySubmitter
}

func NewInquiryHandler(inquiryService InquirySubmitter) *InquiryHandler {
	return &InquiryHandler{
		inquiryService: inquiryService,
	}
}

func (h *InquiryHandler) Submit(c *gin.Context) {
	// Get inquiry data from context (set by validation middleware)
	data, exists := c.Get(constants.ContextKeyInquiry)
	if !exists {
		utils.HandleAPIError(c, errors.New("inquiry not found in context"), http.StatusInternalServerError, common.MsgInternalServer)
		return
	}

	req, ok := data.(*inquirydto.InquiryRequest)
	if !ok {
		utils.HandleAPIError(c, errors.New("invalid inquiry data format"), http.StatusInternalServerError, common.MsgInternalServer)
		return
	}

	// A client disconnect must not abort a dispatch that already started
	ctx := context.WithoutCancel(c.Request.Context())

	if err := h.inquiryService.Submit(ctx, req.ToInquiry()); err != nil {
		status, message := errorResponse(err)
		utils.HandleAPIError(c, err, status, message)
		return
	}

	utils.HandleSuccess(c)
}

// errorResponse maps a relay error to its status code and public message
func errorResponse(err error) (int, string) {
	switch {
	case errors.Is(err, service.ErrMissingFields):
		return http.StatusBadRequest, common.MsgMissingFields
	case errors.Is(err, service.ErrBotNotConfigured):
		return http.StatusInternalServerError, common.MsgBotNotConfigured
	case errors.Is(err, service.ErrChatNotConfigured):
		return http.StatusInternalServerError, common.MsgChatNotConfigured
	case errors.Is(err, service.ErrDispatch):
		return http.StatusInternalServerError, common.MsgDispatchFailed
	default:
		return http.StatusInternalServerError, common.MsgInternalServer
	}
}
