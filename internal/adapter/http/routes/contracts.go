package routes

import (
	"renova_contracts/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathContracts = "/contracts"
)

func addContractRoutes(rg *gin.RouterGroup, contractHandler *handlers.ContractHandler, workflowHandler *handlers.WorkflowHandler) {
	contracts := rg.Group(PathContracts)
	{
		contracts.POST("", contractHandler.GenerateContract)
		contracts.GET("", contractHandler.ListContracts)
		contracts.GET("/statistics", contractHandler.GetStatistics)
		contracts.GET("/:contract_id", contractHandler.GetContract)
		contracts.POST("/:contract_id/activate", contractHandler.ActivateContract)
		contracts.POST("/:contract_id/cancel", contractHandler.CancelContract)
		contracts.GET("/:contract_id/audit", contractHandler.GetAuditTrail)

		contracts.POST("/:contract_id/signatures/request", workflowHandler.RequestSignature)
		contracts.POST("/:contract_id/signatures/:signature_id/process", workflowHandler.ProcessSignature)
		contracts.POST("/:contract_id/milestones/:milestone_id/complete", workflowHandler.CompleteMilestone)
		contracts.POST("/:contract_id/payments", workflowHandler.RecordPayment)
		contracts.POST("/:contract_id/variations", workflowHandler.AddVariation)
		contracts.POST("/:contract_id/variations/:variation_id/approve", workflowHandler.ApproveVariation)
	}
}
