package usecase

import (
	"context"
	"strconv"
	"time"

	"piramida/internal/domain/entity"
	"piramida/internal/domain/repository"
	"piramida/internal/domain/service"
	"piramida/internal/infrastructure/sync"
	"piramida/pkg/errors"
	"piramida/pkg/logger"
)

const (
	StepStatusPending    = "pending"
	StepStatusInProgress = "in-progress"
	StepStatusCompleted  = "completed"
	StepStatusRejected   = "rejected"
)

// WorkflowStep is one rung of the fixed 5-stage ladder. Its status is derived
// from the submission, never stored.
type WorkflowStep struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Status      string `json:"status"`
}

// PropertyWorkflow is the ladder view of one submission.
type PropertyWorkflow struct {
	ID            int64          `json:"id"`
	PropertyTitle string         `json:"propertyTitle"`
	OwnerName     string         `json:"ownerName"`
	OwnerEmail    string         `json:"ownerEmail"`
	SubmittedAt   time.Time      `json:"submittedAt"`
	CurrentStep   int            `json:"currentStep"`
	SelectedPlan  string         `json:"selectedPlan,omitempty"`
	PaymentStatus string         `json:"paymentStatus"`
	Steps         []WorkflowStep `json:"steps"`
}

type WorkflowUseCase struct {
	submissionRepo repository.SubmissionRepository
	moderation     *ModerationUseCase
	paymentService service.PaymentGatewayService
	notifier       *sync.Notifier
}

func NewWorkflowUseCase(
	submissionRepo repository.SubmissionRepository,
	moderation *ModerationUseCase,
	paymentService service.PaymentGatewayService,
	notifier *sync.Notifier,
) *WorkflowUseCase {
	return &WorkflowUseCase{
		submissionRepo: submissionRepo,
		moderation:     moderation,
		paymentService: paymentService,
		notifier:       notifier,
	}
}

// deriveSteps computes the ladder: Submitted is complete once the record
// exists, Reviewed follows the moderation status, Plan and Payment follow the
// workflow fields, and Live mirrors payment completion.
func deriveSteps(sub *entity.Submission) []WorkflowStep {
	reviewStatus := StepStatusInProgress
	switch sub.Status {
	case entity.SubmissionStatusApproved:
		reviewStatus = StepStatusCompleted
	case entity.SubmissionStatusRejected:
		reviewStatus = StepStatusRejected
	}

	planStatus := StepStatusPending
	if sub.SelectedPlan != "" {
		planStatus = StepStatusCompleted
	} else if sub.Status == entity.SubmissionStatusApproved {
		planStatus = StepStatusInProgress
	}

	paymentStatus := StepStatusPending
	if sub.PaymentStatus == entity.PaymentStatusCompleted {
		paymentStatus = StepStatusCompleted
	} else if sub.SelectedPlan != "" {
		paymentStatus = StepStatusInProgress
	}

	liveStatus := StepStatusPending
	if sub.PaymentStatus == entity.PaymentStatusCompleted {
		liveStatus = StepStatusCompleted
	}

	return []WorkflowStep{
		{ID: "submit", Title: "Property Submitted", Description: "Property details submitted for review", Status: StepStatusCompleted},
		{ID: "review", Title: "Admin Review", Description: "Property under admin review", Status: reviewStatus},
		{ID: "plan", Title: "Select Plan", Description: "Choose your listing package", Status: planStatus},
		{ID: "payment", Title: "Payment", Description: "Complete payment for selected plan", Status: paymentStatus},
		{ID: "live", Title: "Property Live", Description: "Property published and live on website", Status: liveStatus},
	}
}

func workflowFromSubmission(sub *entity.Submission) PropertyWorkflow {
	paymentStatus := sub.PaymentStatus
	if paymentStatus == "" {
		paymentStatus = entity.PaymentStatusPending
	}
	return PropertyWorkflow{
		ID:            sub.ID,
		PropertyTitle: sub.Title,
		OwnerName:     sub.OwnerName,
		OwnerEmail:    sub.OwnerEmail,
		SubmittedAt:   sub.SubmittedAt,
		CurrentStep:   sub.WorkflowStep,
		SelectedPlan:  sub.SelectedPlan,
		PaymentStatus: paymentStatus,
		Steps:         deriveSteps(sub),
	}
}

// ListWorkflows projects every submission into its ladder view.
func (uc *WorkflowUseCase) ListWorkflows(ctx context.Context) ([]PropertyWorkflow, error) {
	submissions, err := uc.submissionRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	workflows := make([]PropertyWorkflow, 0, len(submissions))
	for _, sub := range submissions {
		workflows = append(workflows, workflowFromSubmission(sub))
	}
	return workflows, nil
}

// GetWorkflow returns the ladder view of one submission.
func (uc *WorkflowUseCase) GetWorkflow(ctx context.Context, id int64) (*PropertyWorkflow, error) {
	sub, err := uc.submissionRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	workflow := workflowFromSubmission(sub)
	return &workflow, nil
}

// SelectPlan records the chosen listing package and advances the ladder.
func (uc *WorkflowUseCase) SelectPlan(ctx context.Context, id int64, plan string) (*PropertyWorkflow, error) {
	switch plan {
	case entity.PlanBasic, entity.PlanFeatured, entity.PlanPremium:
	default:
		return nil, errors.BadRequest("Unknown listing plan", nil)
	}

	sub, err := uc.submissionRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	sub.SelectedPlan = plan
	sub.WorkflowStep = 3
	if err := uc.submissionRepo.Update(ctx, sub); err != nil {
		return nil, err
	}

	logger.Info("Submission %d selected plan %s", id, plan)
	uc.notifier.Publish(sync.CollectionSubmissions)

	workflow := workflowFromSubmission(sub)
	return &workflow, nil
}

type PaymentInput struct {
	CardNumber string `json:"cardNumber"`
	ExpiryDate string `json:"expiryDate"`
	CVV        string `json:"cvv"`
	CardName   string `json:"cardName"`
}

// CompletePayment charges the selected plan through the gateway, marks the
// submission paid, and takes the property live. The listing is created through
// the same idempotent path as moderation approval, so paying for an
// already-approved-and-published submission never duplicates it.
func (uc *WorkflowUseCase) CompletePayment(ctx context.Context, id int64, input PaymentInput) (*PropertyWorkflow, error) {
	fieldErrors := make(map[string]string)
	if input.CardNumber == "" {
		fieldErrors["cardNumber"] = "Card number is required"
	}
	if input.ExpiryDate == "" {
		fieldErrors["expiryDate"] = "Expiry date is required"
	}
	if input.CVV == "" {
		fieldErrors["cvv"] = "CVV is required"
	}
	if input.CardName == "" {
		fieldErrors["cardName"] = "Cardholder name is required"
	}
	if len(fieldErrors) > 0 {
		return nil, errors.Validation(fieldErrors)
	}

	sub, err := uc.submissionRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if sub.SelectedPlan == "" {
		return nil, errors.BadRequest("Select a plan before paying", nil)
	}

	if _, err := uc.paymentService.ProcessPayment(ctx, service.PaymentRequest{
		OrderID:    strconv.FormatInt(sub.ID, 10),
		Plan:       sub.SelectedPlan,
		CardNumber: input.CardNumber,
		ExpiryDate: input.ExpiryDate,
		CVV:        input.CVV,
		CardName:   input.CardName,
	}); err != nil {
		return nil, errors.Internal("Payment processing failed", err)
	}

	sub.PaymentStatus = entity.PaymentStatusCompleted
	sub.WorkflowStep = 4
	if err := uc.submissionRepo.Update(ctx, sub); err != nil {
		return nil, err
	}

	featured := sub.SelectedPlan != entity.PlanBasic
	certified := sub.SelectedPlan == entity.PlanPremium
	listing := listingFromSubmission(sub, sub.SelectedPlan, 0, 0, featured, certified)
	if err := uc.moderation.ensureListing(ctx, listing); err != nil {
		return nil, err
	}

	logger.Info("Submission %d paid, property live", id)
	uc.notifier.Publish(sync.CollectionSubmissions)
	uc.notifier.Publish(sync.CollectionListings)

	workflow := workflowFromSubmission(sub)
	return &workflow, nil
}
