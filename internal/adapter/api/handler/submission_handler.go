package handler

import (
	"github.com/labstack/echo/v4"

	"piramida/internal/usecase"
	"piramida/pkg/response"
)

type SubmissionHandler struct {
	submissionUseCase *usecase.SubmissionUseCase
}

func NewSubmissionHandler(submissionUseCase *usecase.SubmissionUseCase) *SubmissionHandler {
	return &SubmissionHandler{
		submissionUseCase: submissionUseCase,
	}
}

// SubmitProperty accepts the public listing form.
func (h *SubmissionHandler) SubmitProperty(c echo.Context) error {
	var req usecase.SubmitPropertyInput
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	submission, err := h.submissionUseCase.SubmitProperty(c.Request().Context(), req)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, submission)
}
