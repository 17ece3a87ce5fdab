package handlers

import (
	"errors"
	"log"
	"net/http"

	"renova_contracts/internal/adapter/http/dto/request"
	"renova_contracts/internal/adapter/http/dto/response"
	"renova_contracts/internal/adapter/http/middleware"
	"renova_contracts/internal/usecase"

	"github.com/gin-gonic/gin"
)

// WorkflowHandler serves the post-generation mutations: signatures,
// milestones, payments and variations.

type WorkflowHandler struct {
	signatures usecase.ISignatureUseCase
	milestones usecase.IMilestonePaymentUseCase
	variations usecase.IVariationUseCase
}

func NewWorkflowHandler(signatures usecase.ISignatureUseCase, milestones usecase.IMilestonePaymentUseCase, variations usecase.IVariationUseCase) *WorkflowHandler {
	return &WorkflowHandler{signatures: signatures, milestones: milestones, variations: variations}
}

// RequestSignature issues a signature invitation. The response carries the
// signing link; the verification code travels to the signer out of band and
// is never returned here.
func (h *WorkflowHandler) RequestSignature(c *gin.Context) {
	requestID := middleware.GetRequestID(c)

	var payload request.RequestSignatureRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidContractPayload.HTTPStatus, response.Failure(requestID, errInvalidContractPayload))
		return
	}

	result, err := h.signatures.RequestSignature(c.Request.Context(), c.Param("contract_id"), payload.ToInput())
	if err != nil {
		h.renderError(c, requestID, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(requestID, response.SignatureRequestedResponse{
		Contract:    response.FromContract(result.Contract),
		SignatureID: result.SignatureID,
		SigningLink: result.SigningLink,
	}))
}

// ProcessSignature verifies and records a signer's submission. The client
// IP and user agent are captured for the audit trail.
func (h *WorkflowHandler) ProcessSignature(c *gin.Context) {
	requestID := middleware.GetRequestID(c)

	var payload request.ProcessSignatureRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidContractPayload.HTTPStatus, response.Failure(requestID, errInvalidContractPayload))
		return
	}

	contract, err := h.signatures.ProcessSignature(c.Request.Context(), c.Param("contract_id"), c.Param("signature_id"), usecase.ProcessSignatureInput{
		SignatureData:    payload.SignatureData,
		VerificationCode: payload.VerificationCode,
		IP:               c.ClientIP(),
		UserAgent:        c.Request.UserAgent(),
	})
	if err != nil {
		log.Printf("[signature][handler] process failed contract_id=%s err=%v", c.Param("contract_id"), err)
		h.renderError(c, requestID, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(requestID, response.FromContract(contract)))
}

func (h *WorkflowHandler) CompleteMilestone(c *gin.Context) {
	requestID := middleware.GetRequestID(c)

	var payload request.CompleteMilestoneRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidContractPayload.HTTPStatus, response.Failure(requestID, errInvalidContractPayload))
		return
	}

	contract, err := h.milestones.CompleteMilestone(c.Request.Context(), c.Param("contract_id"), c.Param("milestone_id"), payload.CompletedBy, payload.Notes)
	if err != nil {
		h.renderError(c, requestID, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(requestID, response.FromContract(contract)))
}

func (h *WorkflowHandler) RecordPayment(c *gin.Context) {
	requestID := middleware.GetRequestID(c)

	var payload request.RecordPaymentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidContractPayload.HTTPStatus, response.Failure(requestID, errInvalidContractPayload))
		return
	}

	contract, payment, err := h.milestones.RecordPayment(c.Request.Context(), c.Param("contract_id"), payload.ToInput(), payload.RecordedBy)
	if err != nil {
		log.Printf("[payment][handler] record failed contract_id=%s err=%v", c.Param("contract_id"), err)
		h.renderError(c, requestID, err)
		return
	}

	c.JSON(http.StatusCreated, response.Success(requestID, response.PaymentRecordedResponse{
		Contract: response.FromContract(contract),
		Payment:  payment,
	}))
}

func (h *WorkflowHandler) AddVariation(c *gin.Context) {
	requestID := middleware.GetRequestID(c)

	var payload request.AddVariationRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidContractPayload.HTTPStatus, response.Failure(requestID, errInvalidContractPayload))
		return
	}

	contract, variation, err := h.variations.AddVariation(c.Request.Context(), c.Param("contract_id"), payload.ToInput(), payload.RequestedBy)
	if err != nil {
		h.renderError(c, requestID, err)
		return
	}

	c.JSON(http.StatusCreated, response.Success(requestID, response.VariationAddedResponse{
		Contract:  response.FromContract(contract),
		Variation: variation,
	}))
}

func (h *WorkflowHandler) ApproveVariation(c *gin.Context) {
	requestID := middleware.GetRequestID(c)

	var payload request.TransitionRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidContractPayload.HTTPStatus, response.Failure(requestID, errInvalidContractPayload))
		return
	}

	contract, err := h.variations.ApproveVariation(c.Request.Context(), c.Param("contract_id"), c.Param("variation_id"), payload.Actor)
	if err != nil {
		h.renderError(c, requestID, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(requestID, response.FromContract(contract)))
}

func (h *WorkflowHandler) renderError(c *gin.Context, requestID string, err error) {
	var ve *usecase.ValidationError
	if errors.As(err, &ve) {
		c.JSON(http.StatusBadRequest, response.ValidationFailure(requestID, ve.Messages))
		return
	}
	appErr := mapContractError(err)
	c.JSON(appErr.HTTPStatus, response.Failure(requestID, appErr))
}
