package handler

import (
	"piramida/internal/usecase"
)

var (
	authHandler       *AuthHandler
	propertyHandler   *PropertyHandler
	submissionHandler *SubmissionHandler
	adminHandler      *AdminHandler
	workflowHandler   *WorkflowHandler
	inquiryHandler    *InquiryHandler
)

func Setup(
	authUseCase *usecase.AuthUseCase,
	feedUseCase *usecase.FeedUseCase,
	submissionUseCase *usecase.SubmissionUseCase,
	moderationUseCase *usecase.ModerationUseCase,
	adminUseCase *usecase.AdminUseCase,
	workflowUseCase *usecase.WorkflowUseCase,
	inquiryUseCase *usecase.InquiryUseCase,
) {
	authHandler = NewAuthHandler(authUseCase)
	propertyHandler = NewPropertyHandler(feedUseCase, inquiryUseCase)
	submissionHandler = NewSubmissionHandler(submissionUseCase)
	adminHandler = NewAdminHandler(submissionUseCase, moderationUseCase, adminUseCase)
	workflowHandler = NewWorkflowHandler(workflowUseCase)
	inquiryHandler = NewInquiryHandler(inquiryUseCase)
}

func GetAuthHandler() *AuthHandler {
	return authHandler
}

func GetPropertyHandler() *PropertyHandler {
	return propertyHandler
}

func GetSubmissionHandler() *SubmissionHandler {
	return submissionHandler
}

func GetAdminHandler() *AdminHandler {
	return adminHandler
}

func GetWorkflowHandler() *WorkflowHandler {
	return workflowHandler
}

func GetInquiryHandler() *InquiryHandler {
	return inquiryHandler
}
