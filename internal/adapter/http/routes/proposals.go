package routes

import (
	"consultoria_xpto/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const PathProposals = "/proposals"

func addProposalRoutes(rg *gin.RouterGroup, proposalHandler *handlers.ProposalHandler) {
	proposals := rg.Group(PathProposals)
	{
		proposals.POST("", proposalHandler.CreateProposal)
		proposals.GET("", proposalHandler.ListProposals)
		proposals.GET("/:id", proposalHandler.GetProposal)
		proposals.PATCH("/:id", proposalHandler.UpdateProposal)
		proposals.DELETE("/:id", proposalHandler.DeleteProposal)

		proposals.POST("/:id/items", proposalHandler.AddItem)
		proposals.PATCH("/:id/items/:item_id", proposalHandler.UpdateItem)
		proposals.DELETE("/:id/items/:item_id", proposalHandler.RemoveItem)

		// Repair hatch: forces the stored total back in sync with the items.
		proposals.POST("/:id/recalculate", proposalHandler.RecalculateTotal)
	}
}
