package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	adapterrepo "piramida/internal/adapter/repository"
	"piramida/internal/domain/entity"
	"piramida/internal/domain/service"
	"piramida/internal/infrastructure/sync"
)

func newWorkflowFixture() (*SubmissionUseCase, *ModerationUseCase, *WorkflowUseCase) {
	submissionRepo := adapterrepo.NewMemorySubmissionRepository()
	listingRepo := adapterrepo.NewMemoryListingRepository()
	notifier := sync.NewNotifier()

	submissionUC := NewSubmissionUseCase(submissionRepo, notifier)
	moderationUC := NewModerationUseCase(submissionRepo, listingRepo, notifier)
	paymentService := service.NewSimulatedPaymentService(time.Millisecond)
	workflowUC := NewWorkflowUseCase(submissionRepo, moderationUC, paymentService, notifier)
	return submissionUC, moderationUC, workflowUC
}

func stepByID(t *testing.T, workflow *PropertyWorkflow, id string) WorkflowStep {
	t.Helper()
	for _, step := range workflow.Steps {
		if step.ID == id {
			return step
		}
	}
	t.Fatalf("no step %q", id)
	return WorkflowStep{}
}

func TestWorkflowLadderForFreshSubmission(t *testing.T) {
	submissionUC, _, workflowUC := newWorkflowFixture()
	ctx := context.Background()

	sub := submitTestProperty(t, submissionUC, "City Apartment", "1000", entity.PriceTypeRent)

	workflow, err := workflowUC.GetWorkflow(ctx, sub.ID)
	require.NoError(t, err)

	assert.Equal(t, StepStatusCompleted, stepByID(t, workflow, "submit").Status)
	assert.Equal(t, StepStatusInProgress, stepByID(t, workflow, "review").Status)
	assert.Equal(t, StepStatusPending, stepByID(t, workflow, "plan").Status)
	assert.Equal(t, StepStatusPending, stepByID(t, workflow, "payment").Status)
	assert.Equal(t, StepStatusPending, stepByID(t, workflow, "live").Status)
}

func TestWorkflowLadderAfterRejection(t *testing.T) {
	submissionUC, moderationUC, workflowUC := newWorkflowFixture()
	ctx := context.Background()

	sub := submitTestProperty(t, submissionUC, "Old House", "40000", entity.PriceTypeSale)
	require.NoError(t, moderationUC.RejectSubmission(ctx, sub.ID))

	workflow, err := workflowUC.GetWorkflow(ctx, sub.ID)
	require.NoError(t, err)
	assert.Equal(t, StepStatusRejected, stepByID(t, workflow, "review").Status)
	assert.Equal(t, StepStatusPending, stepByID(t, workflow, "plan").Status)
}

func TestSelectPlanAdvancesLadder(t *testing.T) {
	submissionUC, moderationUC, workflowUC := newWorkflowFixture()
	ctx := context.Background()

	sub := submitTestProperty(t, submissionUC, "City Apartment", "1000", entity.PriceTypeRent)
	_, err := moderationUC.ApproveSubmission(ctx, sub.ID)
	require.NoError(t, err)

	workflow, err := workflowUC.SelectPlan(ctx, sub.ID, entity.PlanPremium)
	require.NoError(t, err)

	assert.Equal(t, entity.PlanPremium, workflow.SelectedPlan)
	assert.Equal(t, 3, workflow.CurrentStep)
	assert.Equal(t, StepStatusCompleted, stepByID(t, workflow, "plan").Status)
	assert.Equal(t, StepStatusInProgress, stepByID(t, workflow, "payment").Status)
}

func TestSelectPlanRejectsUnknownPlan(t *testing.T) {
	submissionUC, _, workflowUC := newWorkflowFixture()
	ctx := context.Background()

	sub := submitTestProperty(t, submissionUC, "City Apartment", "1000", entity.PriceTypeRent)

	_, err := workflowUC.SelectPlan(ctx, sub.ID, "platinum")
	assert.Error(t, err)
}

func TestCompletePaymentTakesPropertyLive(t *testing.T) {
	submissionUC, moderationUC, workflowUC := newWorkflowFixture()
	ctx := context.Background()

	sub := submitTestProperty(t, submissionUC, "City Apartment", "1000", entity.PriceTypeRent)
	_, err := workflowUC.SelectPlan(ctx, sub.ID, entity.PlanBasic)
	require.NoError(t, err)

	workflow, err := workflowUC.CompletePayment(ctx, sub.ID, PaymentInput{
		CardNumber: "4111111111111111",
		ExpiryDate: "12/27",
		CVV:        "123",
		CardName:   "Arben Krasniqi",
	})
	require.NoError(t, err)

	assert.Equal(t, entity.PaymentStatusCompleted, workflow.PaymentStatus)
	assert.Equal(t, 4, workflow.CurrentStep)
	assert.Equal(t, StepStatusCompleted, stepByID(t, workflow, "payment").Status)
	assert.Equal(t, StepStatusCompleted, stepByID(t, workflow, "live").Status)

	listings, err := moderationUC.ListListings(ctx)
	require.NoError(t, err)
	require.Len(t, listings, 1)
	assert.Equal(t, sub.ID, listings[0].ID)
	// Basic plan listings are neither featured nor certified.
	assert.False(t, listings[0].Featured)
	assert.False(t, listings[0].Certified)
	assert.Zero(t, listings[0].Views)
}

func TestCompletePaymentAfterApprovalDoesNotDuplicate(t *testing.T) {
	submissionUC, moderationUC, workflowUC := newWorkflowFixture()
	ctx := context.Background()

	sub := submitTestProperty(t, submissionUC, "City Apartment", "1000", entity.PriceTypeRent)
	_, err := moderationUC.ApproveSubmission(ctx, sub.ID)
	require.NoError(t, err)

	_, err = workflowUC.SelectPlan(ctx, sub.ID, entity.PlanFeatured)
	require.NoError(t, err)

	_, err = workflowUC.CompletePayment(ctx, sub.ID, PaymentInput{
		CardNumber: "4111111111111111",
		ExpiryDate: "12/27",
		CVV:        "123",
		CardName:   "Arben Krasniqi",
	})
	require.NoError(t, err)

	listings, err := moderationUC.ListListings(ctx)
	require.NoError(t, err)
	assert.Len(t, listings, 1)
}

func TestCompletePaymentValidation(t *testing.T) {
	submissionUC, _, workflowUC := newWorkflowFixture()
	ctx := context.Background()

	sub := submitTestProperty(t, submissionUC, "City Apartment", "1000", entity.PriceTypeRent)

	_, err := workflowUC.CompletePayment(ctx, sub.ID, PaymentInput{})
	assert.Error(t, err)

	// Payment before plan selection is refused.
	_, err = workflowUC.CompletePayment(ctx, sub.ID, PaymentInput{
		CardNumber: "4111111111111111",
		ExpiryDate: "12/27",
		CVV:        "123",
		CardName:   "Arben Krasniqi",
	})
	assert.Error(t, err)
}

func TestListWorkflowsCoversEverySubmission(t *testing.T) {
	submissionUC, moderationUC, workflowUC := newWorkflowFixture()
	ctx := context.Background()

	submitTestProperty(t, submissionUC, "First", "100", entity.PriceTypeRent)
	second := submitTestProperty(t, submissionUC, "Second", "200", entity.PriceTypeSale)
	require.NoError(t, moderationUC.RejectSubmission(ctx, second.ID))

	workflows, err := workflowUC.ListWorkflows(ctx)
	require.NoError(t, err)
	assert.Len(t, workflows, 2)
}
