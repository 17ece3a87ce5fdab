package handlers

import (
	"errors"
	"log"
	"net/http"

	"renova_contracts/internal/adapter/http/dto/request"
	"renova_contracts/internal/adapter/http/dto/response"
	"renova_contracts/internal/adapter/http/middleware"
	"renova_contracts/internal/domain/entities"
	"renova_contracts/internal/usecase"
	"renova_contracts/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidContractPayload = pkg.NewDomainErrorSimple("INVALID_CONTRACT_INPUT", "Invalid contract payload", http.StatusBadRequest)

// ContractHandler serves contract generation, lifecycle and reporting.

type ContractHandler struct {
	generation usecase.IContractGenerationUseCase
	lifecycle  usecase.IContractLifecycleUseCase
}

func NewContractHandler(generation usecase.IContractGenerationUseCase, lifecycle usecase.IContractLifecycleUseCase) *ContractHandler {
	return &ContractHandler{generation: generation, lifecycle: lifecycle}
}

// GenerateContract assembles a draft contract from a selected quote.
func (h *ContractHandler) GenerateContract(c *gin.Context) {
	requestID := middleware.GetRequestID(c)

	var payload request.GenerateContractRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidContractPayload.HTTPStatus, response.Failure(requestID, errInvalidContractPayload))
		return
	}

	created, recs, err := h.generation.Generate(c.Request.Context(), payload.ToCommand())
	if err != nil {
		var ve *usecase.ValidationError
		if errors.As(err, &ve) {
			c.JSON(http.StatusBadRequest, response.ValidationFailure(requestID, ve.Messages))
			return
		}
		log.Printf("[contract][handler] generate failed err=%v", err)
		appErr := mapContractError(err)
		c.JSON(appErr.HTTPStatus, response.Failure(requestID, appErr))
		return
	}

	c.JSON(http.StatusCreated, response.Success(requestID, response.GeneratedContractResponse{
		Contract:        response.FromContract(created),
		Recommendations: recs,
	}))
}

func (h *ContractHandler) GetContract(c *gin.Context) {
	requestID := middleware.GetRequestID(c)

	contract, err := h.lifecycle.GetContract(c.Request.Context(), c.Param("contract_id"))
	if err != nil {
		appErr := mapContractError(err)
		c.JSON(appErr.HTTPStatus, response.Failure(requestID, appErr))
		return
	}
	c.JSON(http.StatusOK, response.Success(requestID, response.FromContract(contract)))
}

// ListContracts returns a party's contracts, newest first, optionally
// filtered to a status prefix.
func (h *ContractHandler) ListContracts(c *gin.Context) {
	requestID := middleware.GetRequestID(c)

	role := entities.PartyRole(c.DefaultQuery("role", string(entities.PartyRoleHomeowner)))
	contracts, err := h.lifecycle.ListByParty(c.Request.Context(), c.Query("partyId"), role, c.Query("status"))
	if err != nil {
		h.renderError(c, requestID, err)
		return
	}

	out := make([]response.ContractResponse, 0, len(contracts))
	for _, contract := range contracts {
		out = append(out, response.FromContract(contract))
	}
	c.JSON(http.StatusOK, response.Success(requestID, out))
}

func (h *ContractHandler) GetStatistics(c *gin.Context) {
	requestID := middleware.GetRequestID(c)

	role := entities.PartyRole(c.DefaultQuery("role", string(entities.PartyRoleHomeowner)))
	stats, err := h.lifecycle.GetStatistics(c.Request.Context(), c.Query("partyId"), role)
	if err != nil {
		h.renderError(c, requestID, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(requestID, stats))
}

// ActivateContract moves a fully signed contract to active and flips the
// linked project to active.
func (h *ContractHandler) ActivateContract(c *gin.Context) {
	requestID := middleware.GetRequestID(c)

	var payload request.TransitionRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidContractPayload.HTTPStatus, response.Failure(requestID, errInvalidContractPayload))
		return
	}

	contract, err := h.lifecycle.Activate(c.Request.Context(), c.Param("contract_id"), payload.Actor)
	if err != nil {
		h.renderError(c, requestID, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(requestID, response.FromContract(contract)))
}

// CancelContract soft-deletes: the contract transitions to cancelled and
// stays queryable.
func (h *ContractHandler) CancelContract(c *gin.Context) {
	requestID := middleware.GetRequestID(c)

	var payload request.TransitionRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidContractPayload.HTTPStatus, response.Failure(requestID, errInvalidContractPayload))
		return
	}

	contract, err := h.lifecycle.Transition(c.Request.Context(), c.Param("contract_id"), entities.ContractStatusCancelled, payload.Actor, payload.Reason)
	if err != nil {
		h.renderError(c, requestID, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(requestID, response.FromContract(contract)))
}

func (h *ContractHandler) GetAuditTrail(c *gin.Context) {
	requestID := middleware.GetRequestID(c)

	entries, err := h.lifecycle.GetAuditTrail(c.Request.Context(), c.Param("contract_id"), 100)
	if err != nil {
		h.renderError(c, requestID, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(requestID, entries))
}

func (h *ContractHandler) renderError(c *gin.Context, requestID string, err error) {
	var ve *usecase.ValidationError
	if errors.As(err, &ve) {
		c.JSON(http.StatusBadRequest, response.ValidationFailure(requestID, ve.Messages))
		return
	}
	appErr := mapContractError(err)
	c.JSON(appErr.HTTPStatus, response.Failure(requestID, appErr))
}
