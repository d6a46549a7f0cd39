package companies

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"companydir/pkg/response"
)

type CompanyHandler struct {
	service CompanyService
}

func NewCompanyHandler(service CompanyService) *CompanyHandler {
	return &CompanyHandler{service: service}
}

func (h *CompanyHandler) RegisterRoutes(router gin.IRoutes) {
	router.GET("/companies", h.listCompanies)
	router.GET("/company/:id", h.getCompanyByID)
	router.GET("/insights/valuation", h.listByValuation)
	router.GET("/insights/rank", h.listByRank)
	router.GET("/insights/investors", h.listByInvestorCount)
	router.GET("/healthz", h.health)
}

// @Summary      List all companies
// @Description  Returns every company row in store order, without filtering or pagination
// @Tags         companies
// @Produce      json
// @Success      200  {object}  response.APIResponse{data=[]Company} "Companies retrieved successfully"
// @Failure      500  {object}  response.APIResponse "Internal server error"
// @Router       /companies [get]
func (h *CompanyHandler) listCompanies(c *gin.Context) {
	companies, err := h.service.ListCompanies(c.Request.Context())
	if err != nil {
		response.SendError(c, http.StatusInternalServerError, err)
		return
	}

	response.SendAPIResponse(c, http.StatusOK, true, "companies listed", companies)
}

// @Summary      Get company by ID
// @Description  Retrieves a single company by its ID
// @Tags         companies
// @Produce      json
// @Param        id   path      int  true  "Company ID"
// @Success      200  {object}  response.APIResponse{data=Company} "Company retrieved successfully"
// @Failure      400  {object}  response.APIResponse "Invalid company ID"
// @Failure      404  {object}  response.APIResponse "Company not found"
// @Failure      500  {object}  response.APIResponse "Internal server error"
// @Router       /company/{id} [get]
func (h *CompanyHandler) getCompanyByID(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.SendAPIResponse(c, http.StatusBadRequest, false, "invalid company id", nil)
		return
	}

	company, err := h.service.GetCompanyByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, ErrCompanyNotFound) {
			response.SendAPIResponse(c, http.StatusNotFound, false, "company not found", nil)
			return
		}
		response.SendError(c, http.StatusInternalServerError, err)
		return
	}

	response.SendAPIResponse(c, http.StatusOK, true, "company fetched", company)
}

// @Summary      Companies by valuation
// @Description  Returns name and value_usd ordered by valuation descending, null valuations last
// @Tags         insights
// @Produce      json
// @Success      200  {object}  response.APIResponse{data=[]Valuation} "Valuations retrieved successfully"
// @Failure      500  {object}  response.APIResponse "Internal server error"
// @Router       /insights/valuation [get]
func (h *CompanyHandler) listByValuation(c *gin.Context) {
	valuations, err := h.service.ListByValuation(c.Request.Context())
	if err != nil {
		response.SendError(c, http.StatusInternalServerError, err)
		return
	}

	response.SendAPIResponse(c, http.StatusOK, true, "valuations listed", valuations)
}

// @Summary      Companies by rank
// @Description  Returns id, name and cb_rank ordered by rank ascending, unranked companies last
// @Tags         insights
// @Produce      json
// @Success      200  {object}  response.APIResponse{data=[]RankedCompany} "Ranks retrieved successfully"
// @Failure      500  {object}  response.APIResponse "Internal server error"
// @Router       /insights/rank [get]
func (h *CompanyHandler) listByRank(c *gin.Context) {
	ranked, err := h.service.ListByRank(c.Request.Context())
	if err != nil {
		response.SendError(c, http.StatusInternalServerError, err)
		return
	}

	response.SendAPIResponse(c, http.StatusOK, true, "ranks listed", ranked)
}

// @Summary      Companies by investor count
// @Description  Returns companies ordered by the number of investors they list, most first
// @Tags         insights
// @Produce      json
// @Success      200  {object}  response.APIResponse{data=[]InvestorCount} "Investor counts retrieved successfully"
// @Failure      500  {object}  response.APIResponse "Internal server error"
// @Router       /insights/investors [get]
func (h *CompanyHandler) listByInvestorCount(c *gin.Context) {
	counts, err := h.service.ListByInvestorCount(c.Request.Context())
	if err != nil {
		response.SendError(c, http.StatusInternalServerError, err)
		return
	}

	response.SendAPIResponse(c, http.StatusOK, true, "investor counts listed", counts)
}

// @Summary      Health check
// @Tags         health
// @Produce      json
// @Success      200  {object}  response.APIResponse "Store reachable"
// @Failure      503  {object}  response.APIResponse "Store unreachable"
// @Router       /healthz [get]
func (h *CompanyHandler) health(c *gin.Context) {
	if err := h.service.Ping(c.Request.Context()); err != nil {
		response.SendError(c, http.StatusServiceUnavailable, err)
		return
	}

	response.SendAPIResponse(c, http.StatusOK, true, "ok", gin.H{"status": "ok"})
}
