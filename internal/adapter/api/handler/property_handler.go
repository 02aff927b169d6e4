package handler

import (
	"strconv"

	"github.com/labstack/echo/v4"

	"piramida/internal/usecase"
	"piramida/pkg/errors"
	"piramida/pkg/response"
	"piramida/pkg/utils"
)

type PropertyHandler struct {
	feedUseCase    *usecase.FeedUseCase
	inquiryUseCase *usecase.InquiryUseCase
}

func NewPropertyHandler(feedUseCase *usecase.FeedUseCase, inquiryUseCase *usecase.InquiryUseCase) *PropertyHandler {
	return &PropertyHandler{
		feedUseCase:    feedUseCase,
		inquiryUseCase: inquiryUseCase,
	}
}

// ListProperties serves the public feed. Filters arrive as query parameters
// and combine conjunctively.
func (h *PropertyHandler) ListProperties(c echo.Context) error {
	minPrice, _ := strconv.Atoi(c.QueryParam("minPrice"))
	maxPrice, _ := strconv.Atoi(c.QueryParam("maxPrice"))

	filter := usecase.FeedFilter{
		ListingType:  c.QueryParam("type"),
		City:         c.QueryParam("city"),
		PropertyType: c.QueryParam("propertyType"),
		Query:        c.QueryParam("search"),
		MinPrice:     minPrice,
		MaxPrice:     maxPrice,
	}

	properties, err := h.feedUseCase.ListProperties(c.Request().Context(), filter)
	if err != nil {
		return response.Error(c, err)
	}

	pagination := utils.GetPaginationParams(c)
	total := int64(len(properties))

	start := pagination.Offset
	if start > len(properties) {
		start = len(properties)
	}
	end := start + pagination.PageSize
	if end > len(properties) {
		end = len(properties)
	}

	return response.Paginated(c, properties[start:end], total, pagination.Page, pagination.PageSize)
}

// GetProperty serves a property detail page and counts the view.
func (h *PropertyHandler) GetProperty(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return response.Error(c, errors.BadRequest("Invalid property ID", err))
	}

	property, err := h.feedUseCase.GetProperty(c.Request().Context(), id)
	if err != nil {
		return response.Error(c, err)
	}

	if err := h.inquiryUseCase.RecordView(c.Request().Context(), id); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, property)
}
