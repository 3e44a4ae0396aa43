package api

import (
	"errors"
	"net/http"

	"courtbook/internal/domain/court"
	"courtbook/internal/domain/pricing"
	reqdto "courtbook/internal/handler/dto/request"
	resdto "courtbook/internal/handler/dto/response"
	"courtbook/internal/handler/middleware"
	"courtbook/internal/usecase/commands"
	"courtbook/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type CourtHandler struct {
	courtUseCase   commands.CourtUseCase
	pricingUseCase commands.PricingUseCase
	courtQueries   queries.CourtQueries
	pricingQueries queries.PricingQueries
}

func NewCourtHandler(
	courtUseCase commands.CourtUseCase,
	pricingUseCase commands.PricingUseCase,
	courtQueries queries.CourtQueries,
	pricingQueries queries.PricingQueries,
) *CourtHandler {
	return &CourtHandler{
		courtUseCase:   courtUseCase,
		pricingUseCase: pricingUseCase,
		courtQueries:   courtQueries,
		pricingQueries: pricingQueries,
	}
}

// @Summary Create court
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateCourtRequest true "Court"
// @Success 201 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /admin/courts [post]
func (h *CourtHandler) CreateCourt(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	var req reqdto.CreateCourtRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	id, err := h.courtUseCase.Create(c.Request.Context(), actor, commands.CreateCourtInput{
		Name:      req.Name,
		OpenHour:  req.OpenHour,
		CloseHour: req.CloseHour,
	})
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrAdminOnly):
			c.JSON(http.StatusForbidden, gin.H{
				"error": "Insufficient permissions",
			})
		case errors.Is(err, court.ErrEmptyName),
			errors.Is(err, court.ErrInvalidOperatingHours):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": err.Error(),
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": id.String()})
}

// @Summary List courts
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.CourtResponse
// @Failure 401 {object} map[string]string
// @Router /admin/courts [get]
func (h *CourtHandler) ListCourts(c *gin.Context) {
	courts, err := h.courtQueries.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	responses := make([]*resdto.CourtResponse, 0, len(courts))
	for _, view := range courts {
		responses = append(responses, resdto.FromCourtView(view))
	}
	c.JSON(http.StatusOK, responses)
}

// @Summary Deactivate court
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "Court ID"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /admin/courts/{id} [delete]
func (h *CourtHandler) DeactivateCourt(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid court ID format",
		})
		return
	}

	if err := h.courtUseCase.Deactivate(c.Request.Context(), actor, id); err != nil {
		switch {
		case errors.Is(err, commands.ErrAdminOnly):
			c.JSON(http.StatusForbidden, gin.H{
				"error": "Insufficient permissions",
			})
		case errors.Is(err, commands.ErrCourtNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Court not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "deactivated"})
}

// @Summary Create pricing rule
// @Description Add a pricing rule for a court; overlapping rules are rejected
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Court ID"
// @Param request body reqdto.CreateRuleRequest true "Pricing rule"
// @Success 201 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /admin/courts/{id}/pricing-rules [post]
func (h *CourtHandler) CreatePricingRule(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	courtID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid court ID format",
		})
		return
	}

	var req reqdto.CreateRuleRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	id, err := h.pricingUseCase.CreateRule(c.Request.Context(), actor, commands.CreateRuleInput{
		CourtID:   courtID,
		StartDay:  req.StartDay,
		EndDay:    req.EndDay,
		StartHour: req.StartHour,
		EndHour:   req.EndHour,
		Rate:      req.Rate,
	})
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrAdminOnly):
			c.JSON(http.StatusForbidden, gin.H{
				"error": "Insufficient permissions",
			})
		case errors.Is(err, commands.ErrCourtNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Court not found",
			})
		case errors.Is(err, pricing.ErrOverlappingRule):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Rule overlaps an existing rule",
			})
		case errors.Is(err, pricing.ErrInvalidDayRange),
			errors.Is(err, pricing.ErrInvalidHourRange),
			errors.Is(err, pricing.ErrNegativeRate):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": err.Error(),
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": id.String()})
}

// @Summary List pricing rules
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "Court ID"
// @Success 200 {array} resdto.RuleResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /admin/courts/{id}/pricing-rules [get]
func (h *CourtHandler) ListPricingRules(c *gin.Context) {
	courtID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid court ID format",
		})
		return
	}

	rules, err := h.pricingQueries.ListByCourt(c.Request.Context(), courtID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	responses := make([]*resdto.RuleResponse, 0, len(rules))
	for _, rule := range rules {
		responses = append(responses, resdto.FromRuleView(rule))
	}
	c.JSON(http.StatusOK, responses)
}

// @Summary Delete pricing rule
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "Court ID"
// @Param ruleId path string true "Rule ID"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /admin/courts/{id}/pricing-rules/{ruleId} [delete]
func (h *CourtHandler) DeletePricingRule(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	courtID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid court ID format",
		})
		return
	}
	ruleID, err := uuid.Parse(c.Param("ruleId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid rule ID format",
		})
		return
	}

	if err := h.pricingUseCase.DeleteRule(c.Request.Context(), actor, courtID, ruleID); err != nil {
		switch {
		case errors.Is(err, commands.ErrAdminOnly):
			c.JSON(http.StatusForbidden, gin.H{
				"error": "Insufficient permissions",
			})
		case errors.Is(err, commands.ErrRuleNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Pricing rule not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}
