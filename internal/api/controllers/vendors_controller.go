package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Desire4travels/Chatbot/internal/models/request_models"
	"github.com/Desire4travels/Chatbot/internal/models/response_models"
	"github.com/Desire4travels/Chatbot/internal/models/vendors"
	"github.com/Desire4travels/Chatbot/internal/services"
	"github.com/Desire4travels/Chatbot/pkg/utils"
)

type VendorsController struct {
	retrievalService services.RetrievalServiceInterface
	ingestService    services.IngestServiceInterface
}

func NewVendorsController(
	retrievalService services.RetrievalServiceInterface,
	ingestService services.IngestServiceInterface,
) *VendorsController {
	return &VendorsController{
		retrievalService: retrievalService,
		ingestService:    ingestService,
	}
}

func (v *VendorsController) SearchVendorsHandler(c *gin.Context) {
	var req request_models.VendorSearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	destinations, err := utils.NormalizeCities(req.DestinationCities...)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	origin := utils.NormalizeCity(req.PickupCity)

	grounding, err := v.retrievalService.SearchVendors(c.Request.Context(), req.FreeText, origin, destinations)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	resp := response_models.VendorSearchResponse{
		Recommendations: []vendors.Recommendation{},
	}
	if grounding != nil {
		resp.Context = grounding.Text
		resp.Recommendations = grounding.Recommendations
		resp.TotalResults = len(grounding.Recommendations)
	}

	utils.RespondSuccess(c, resp, "Vendor search completed")
}

func (v *VendorsController) UpsertVendorHandler(c *gin.Context) {
	var req request_models.VendorUpsertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := v.ingestService.UpsertVendor(c.Request.Context(), req); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Vendor stored")
}

func (v *VendorsController) SyncVendorsHandler(c *gin.Context) {
	var req request_models.VendorSyncRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.FeedURL == "" {
		utils.RespondError(c, http.StatusBadRequest, "feed_url is required")
		return
	}

	summary, err := v.ingestService.SyncFromFeed(c.Request.Context(), req.FeedURL)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, summary, "Vendor sync completed")
}
