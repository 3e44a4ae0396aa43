package api

import (
	"errors"
	"net/http"
	"time"

	"courtbook/internal/domain/court"
	"courtbook/internal/domain/reservation"
	reqdto "courtbook/internal/handler/dto/request"
	resdto "courtbook/internal/handler/dto/response"
	"courtbook/internal/handler/middleware"
	"courtbook/internal/usecase/commands"
	"courtbook/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ReservationHandler struct {
	reservationUseCase commands.ReservationUseCase
	reservationQueries queries.ReservationQueries
	loc                *time.Location
}

func NewReservationHandler(
	reservationUseCase commands.ReservationUseCase,
	reservationQueries queries.ReservationQueries,
	loc *time.Location,
) *ReservationHandler {
	return &ReservationHandler{
		reservationUseCase: reservationUseCase,
		reservationQueries: reservationQueries,
		loc:                loc,
	}
}

// @Summary Create reservation
// @Description Book one or more hour slots on a court and open the pending payment
// @Tags reservations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateReservationRequest true "Reservation request"
// @Success 201 {object} resdto.ReservationResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /reservations [post]
func (h *ReservationHandler) CreateReservation(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	var req reqdto.CreateReservationRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	date, err := req.ParseDate(h.loc)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid date, expected YYYY-MM-DD",
		})
		return
	}

	result, err := h.reservationUseCase.Create(c.Request.Context(), actor, commands.CreateReservationInput{
		CourtID:         req.CourtID,
		Date:            date,
		Slots:           req.Slots,
		PaymentMethodID: req.PaymentMethodID,
		CustomerName:    req.CustomerName,
		CustomerEmail:   req.CustomerEmail,
	})
	if err != nil {
		h.mapCreateError(c, err)
		return
	}

	response := resdto.FromReservationView(result.Reservation)
	response.CheckoutURL = result.CheckoutURL
	c.JSON(http.StatusCreated, response)
}

func (h *ReservationHandler) mapCreateError(c *gin.Context, err error) {
	var noRate *reservation.NoRateError
	switch {
	case errors.Is(err, commands.ErrSlotAlreadyBooked):
		c.JSON(http.StatusConflict, gin.H{
			"error": "One or more slots are already booked",
		})
	case errors.Is(err, commands.ErrCourtNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Court not found",
		})
	case errors.Is(err, commands.ErrPaymentMethodNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Payment method not found",
		})
	case errors.Is(err, commands.ErrPaymentMethodInactive):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Payment method is inactive",
		})
	case errors.As(err, &noRate):
		c.JSON(http.StatusBadRequest, gin.H{
			"error":  "No pricing rule covers a requested slot",
			"detail": gin.H{"hour": noRate.Hour},
		})
	case errors.Is(err, reservation.ErrNoSlots),
		errors.Is(err, reservation.ErrInvalidHour),
		errors.Is(err, reservation.ErrOutsideHours),
		errors.Is(err, reservation.ErrOutsideOperatingHours):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid slot selection",
		})
	case errors.Is(err, court.ErrInactive):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Court is inactive",
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
	}
}

// @Summary Get reservation
// @Description Get reservation by ID
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Success 200 {object} resdto.ReservationResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /reservations/{id} [get]
func (h *ReservationHandler) GetReservation(c *gin.Context) {
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
			"error": "Invalid reservation ID format",
		})
		return
	}

	view, err := h.reservationQueries.GetByID(c.Request.Context(), actor, id)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrReservationNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Reservation not found",
			})
		case errors.Is(err, queries.ErrForbidden):
			c.JSON(http.StatusForbidden, gin.H{
				"error": "Not allowed to view this reservation",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromReservationView(view))
}

// @Summary List own reservations
// @Description List the authenticated user's reservations, newest first
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.ReservationListResponse
// @Failure 401 {object} map[string]string
// @Router /reservations [get]
func (h *ReservationHandler) GetUserReservations(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	items, err := h.reservationQueries.ListByUser(c.Request.Context(), actor.UserID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	responses := make([]*resdto.ReservationListResponse, 0, len(items))
	for _, item := range items {
		responses = append(responses, resdto.FromReservationListItem(item))
	}
	c.JSON(http.StatusOK, responses)
}

// @Summary Update reservation status
// @Description Transition a reservation; customers may only cancel their own unpaid reservation
// @Tags reservations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Param request body reqdto.UpdateReservationStatusRequest true "Target status"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /reservations/{id} [patch]
func (h *ReservationHandler) UpdateReservationStatus(c *gin.Context) {
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
			"error": "Invalid reservation ID format",
		})
		return
	}

	var req reqdto.UpdateReservationStatusRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	err = h.reservationUseCase.UpdateStatus(c.Request.Context(), actor, id, reservation.Status(req.Status))
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrReservationNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Reservation not found",
			})
		case errors.Is(err, reservation.ErrNotOwner),
			errors.Is(err, reservation.ErrCustomerForbidden):
			c.JSON(http.StatusForbidden, gin.H{
				"error": "Not allowed to perform this transition",
			})
		case errors.Is(err, reservation.ErrInvalidStatus),
			errors.Is(err, reservation.ErrIllegalTransition):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Illegal status transition",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": req.Status})
}

// @Summary Check in a reservation
// @Description Staff-side QR scan; refuses once the booked window has passed
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /reservations/{id}/check-in [post]
func (h *ReservationHandler) CheckIn(c *gin.Context) {
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
			"error": "Invalid reservation ID format",
		})
		return
	}

	if err := h.reservationUseCase.CheckIn(c.Request.Context(), actor, id); err != nil {
		switch {
		case errors.Is(err, commands.ErrAdminOnly):
			c.JSON(http.StatusForbidden, gin.H{
				"error": "Insufficient permissions",
			})
		case errors.Is(err, commands.ErrReservationNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Reservation not found",
			})
		case errors.Is(err, reservation.ErrCheckInNotPaid):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Reservation is not paid",
			})
		case errors.Is(err, reservation.ErrCheckInWindowClosed):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Check-in window has closed",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": reservation.StatusCheckedIn.String()})
}
