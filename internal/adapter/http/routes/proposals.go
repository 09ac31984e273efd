package routes

import (
	"crm_xpto/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathProposals = "/proposals"
	PathWizard    = "/proposals/wizard"
	PathPortal    = "/portal"
	PathCatalog   = "/catalog"
	PathClients   = "/clients"
	PathSellers   = "/sellers"
	PathLookups   = "/lookups"
)

func addProposalRoutes(rg *gin.RouterGroup, wizardHandler *handlers.WizardHandler, proposalHandler *handlers.ProposalHandler) {
	wizard := rg.Group(PathWizard)
	{
		wizard.POST("", wizardHandler.OpenWizard)
		wizard.GET("/:session_id", wizardHandler.GetWizard)
		wizard.PATCH("/:session_id", wizardHandler.UpdateDraft)
		wizard.DELETE("/:session_id", wizardHandler.CancelWizard)
		wizard.POST("/:session_id/next", wizardHandler.NextStep)
		wizard.POST("/:session_id/back", wizardHandler.BackStep)
		wizard.POST("/:session_id/items", wizardHandler.AddLineItem)
		wizard.PATCH("/:session_id/items/:index", wizardHandler.UpdateLineItem)
		wizard.DELETE("/:session_id/items/:index", wizardHandler.RemoveLineItem)
		wizard.POST("/:session_id/submit", wizardHandler.SubmitWizard)
	}

	proposals := rg.Group(PathProposals)
	{
		proposals.GET("/:id", proposalHandler.GetProposal)
		proposals.PATCH("/:id/accept", proposalHandler.AcceptProposal)
		proposals.PATCH("/:id/reject", proposalHandler.RejectProposal)
		proposals.PATCH("/:id/cancel", proposalHandler.CancelProposal)
	}

	// Portal do cliente: somente leitura, chave = access token.
	rg.GET(PathPortal+"/:token", proposalHandler.GetProposalByToken)

	rg.GET(PathCatalog, wizardHandler.ListCatalog)
	rg.GET(PathClients, wizardHandler.ListClients)
	rg.GET(PathSellers, wizardHandler.ListSellers)
	rg.POST(PathLookups+"/refresh", wizardHandler.RefreshLookups)
}
