package handler

import (
	"github.com/labstack/echo/v4"

	"piramida/internal/usecase"
	"piramida/pkg/response"
)

type WorkflowHandler struct {
	workflowUseCase *usecase.WorkflowUseCase
}

func NewWorkflowHandler(workflowUseCase *usecase.WorkflowUseCase) *WorkflowHandler {
	return &WorkflowHandler{
		workflowUseCase: workflowUseCase,
	}
}

func (h *WorkflowHandler) ListWorkflows(c echo.Context) error {
	workflows, err := h.workflowUseCase.ListWorkflows(c.Request().Context())
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, workflows)
}

func (h *WorkflowHandler) GetWorkflow(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return response.Error(c, err)
	}

	workflow, err := h.workflowUseCase.GetWorkflow(c.Request().Context(), id)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, workflow)
}

type selectPlanRequest struct {
	Plan string `json:"plan" validate:"required,oneof=basic featured premium"`
}

func (h *WorkflowHandler) SelectPlan(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return response.Error(c, err)
	}

	var req selectPlanRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	workflow, err := h.workflowUseCase.SelectPlan(c.Request().Context(), id, req.Plan)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, workflow)
}

func (h *WorkflowHandler) CompletePayment(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return response.Error(c, err)
	}

	var req usecase.PaymentInput
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	workflow, err := h.workflowUseCase.CompletePayment(c.Request().Context(), id, req)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, workflow)
}
