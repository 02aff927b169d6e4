package handler

import (
	"strconv"

	"github.com/labstack/echo/v4"

	"piramida/internal/domain/entity"
	"piramida/internal/usecase"
	"piramida/pkg/errors"
	"piramida/pkg/response"
)

type AdminHandler struct {
	submissionUseCase *usecase.SubmissionUseCase
	moderationUseCase *usecase.ModerationUseCase
	adminUseCase      *usecase.AdminUseCase
}

func NewAdminHandler(
	submissionUseCase *usecase.SubmissionUseCase,
	moderationUseCase *usecase.ModerationUseCase,
	adminUseCase *usecase.AdminUseCase,
) *AdminHandler {
	return &AdminHandler{
		submissionUseCase: submissionUseCase,
		moderationUseCase: moderationUseCase,
		adminUseCase:      adminUseCase,
	}
}

func parseIDParam(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return 0, errors.BadRequest("Invalid ID", err)
	}
	return id, nil
}

func (h *AdminHandler) ListSubmissions(c echo.Context) error {
	var (
		submissions []*entity.Submission
		err         error
	)
	if c.QueryParam("status") == entity.SubmissionStatusPending {
		submissions, err = h.submissionUseCase.ListPending(c.Request().Context())
	} else {
		submissions, err = h.submissionUseCase.ListAll(c.Request().Context())
	}
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, submissions)
}

func (h *AdminHandler) ApproveSubmission(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return response.Error(c, err)
	}

	listing, err := h.moderationUseCase.ApproveSubmission(c.Request().Context(), id)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, listing)
}

func (h *AdminHandler) RejectSubmission(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return response.Error(c, err)
	}

	if err := h.moderationUseCase.RejectSubmission(c.Request().Context(), id); err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, map[string]string{"message": "Submission rejected"})
}

func (h *AdminHandler) ListListings(c echo.Context) error {
	listings, err := h.moderationUseCase.ListListings(c.Request().Context())
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, listings)
}

func (h *AdminHandler) CreateListing(c echo.Context) error {
	var req usecase.CreateListingInput
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	listing, err := h.moderationUseCase.CreateListing(c.Request().Context(), req)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Created(c, listing)
}

func (h *AdminHandler) UpdateListing(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return response.Error(c, err)
	}

	var listing entity.Listing
	if err := c.Bind(&listing); err != nil {
		return response.Error(c, err)
	}
	listing.ID = id

	if err := h.moderationUseCase.UpdateListing(c.Request().Context(), &listing); err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, listing)
}

func (h *AdminHandler) DuplicateListing(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return response.Error(c, err)
	}

	duplicate, err := h.moderationUseCase.DuplicateListing(c.Request().Context(), id)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Created(c, duplicate)
}

func (h *AdminHandler) DeleteListing(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return response.Error(c, err)
	}

	if err := h.moderationUseCase.DeleteListing(c.Request().Context(), id); err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, map[string]string{"message": "Listing deleted"})
}

func (h *AdminHandler) ListAdmins(c echo.Context) error {
	admins, err := h.adminUseCase.ListAdmins(c.Request().Context())
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, admins)
}

func (h *AdminHandler) AddAdmin(c echo.Context) error {
	var req usecase.AddAdminInput
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	admin, err := h.adminUseCase.AddAdmin(c.Request().Context(), req)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Created(c, admin)
}

func (h *AdminHandler) DeleteAdmin(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return response.Error(c, err)
	}

	if err := h.adminUseCase.DeleteAdmin(c.Request().Context(), id); err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, map[string]string{"message": "Admin deleted"})
}

// GetPricing is served on both the public and the admin surface; the pricing
// page shows plans to property owners before they pay.
func (h *AdminHandler) GetPricing(c echo.Context) error {
	settings, err := h.adminUseCase.GetPricing(c.Request().Context())
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, settings)
}

func (h *AdminHandler) UpdatePricing(c echo.Context) error {
	var settings entity.PricingSettings
	if err := c.Bind(&settings); err != nil {
		return response.Error(c, err)
	}

	if err := h.adminUseCase.UpdatePricing(c.Request().Context(), &settings); err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, settings)
}
