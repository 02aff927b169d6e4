package handler

import (
	"github.com/labstack/echo/v4"

	"piramida/internal/usecase"
	"piramida/pkg/response"
)

type InquiryHandler struct {
	inquiryUseCase *usecase.InquiryUseCase
}

func NewInquiryHandler(inquiryUseCase *usecase.InquiryUseCase) *InquiryHandler {
	return &InquiryHandler{
		inquiryUseCase: inquiryUseCase,
	}
}

// CreateInquiry accepts the contact form on a property detail page.
func (h *InquiryHandler) CreateInquiry(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return response.Error(c, err)
	}

	var req usecase.CreateInquiryInput
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	req.PropertyID = id

	inquiry, err := h.inquiryUseCase.CreateInquiry(c.Request().Context(), req)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Created(c, inquiry)
}

func (h *InquiryHandler) ListInquiries(c echo.Context) error {
	inquiries, err := h.inquiryUseCase.ListInquiries(c.Request().Context())
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, inquiries)
}
