package response

import (
	"time"

	"courtbook/internal/usecase/queries"

	"github.com/google/uuid"
)

type PaymentResponse struct {
	ID        uuid.UUID `json:"id"`
	Amount    int64     `json:"amount"`
	Fee       int64     `json:"fee"`
	Status    string    `json:"status"`
	Reference string    `json:"reference"`
	Notes     *string   `json:"notes,omitempty"`
}

type ReservationResponse struct {
	ID          uuid.UUID        `json:"id"`
	UserID      uuid.UUID        `json:"userId"`
	CourtID     uuid.UUID        `json:"courtId"`
	CourtName   string           `json:"courtName"`
	Date        string           `json:"date"`
	Slots       []int            `json:"slots"`
	Status      string           `json:"status"`
	TotalAmount int64            `json:"totalAmount"`
	QRCodeID    *string          `json:"qrCodeId,omitempty"`
	Payment     *PaymentResponse `json:"payment,omitempty"`
	CheckoutURL string           `json:"checkoutUrl,omitempty"`
	CreatedAt   time.Time        `json:"createdAt"`
	UpdatedAt   time.Time        `json:"updatedAt"`
}

type ReservationListResponse struct {
	ID          uuid.UUID `json:"id"`
	CourtID     uuid.UUID `json:"courtId"`
	CourtName   string    `json:"courtName"`
	Date        string    `json:"date"`
	Slots       []int     `json:"slots"`
	Status      string    `json:"status"`
	TotalAmount int64     `json:"totalAmount"`
	CreatedAt   time.Time `json:"createdAt"`
}

func FromReservationView(rm *queries.ReservationView) *ReservationResponse {
	resp := &ReservationResponse{
		ID:          rm.ID,
		UserID:      rm.UserID,
		CourtID:     rm.CourtID,
		CourtName:   rm.CourtName,
		Date:        rm.Date.Format("2006-01-02"),
		Slots:       rm.Slots,
		Status:      rm.Status,
		TotalAmount: rm.TotalAmount,
		QRCodeID:    rm.QRCodeID,
		CreatedAt:   rm.CreatedAt,
		UpdatedAt:   rm.UpdatedAt,
	}
	if rm.Payment != nil {
		resp.Payment = &PaymentResponse{
			ID:        rm.Payment.ID,
			Amount:    rm.Payment.Amount,
			Fee:       rm.Payment.Fee,
			Status:    rm.Payment.Status,
			Reference: rm.Payment.Reference,
			Notes:     rm.Payment.Notes,
		}
	}
	return resp
}

func FromReservationListItem(rm *queries.ReservationListItem) *ReservationListResponse {
	return &ReservationListResponse{
		ID:          rm.ID,
		CourtID:     rm.CourtID,
		CourtName:   rm.CourtName,
		Date:        rm.Date.Format("2006-01-02"),
		Slots:       rm.Slots,
		Status:      rm.Status,
		TotalAmount: rm.TotalAmount,
		CreatedAt:   rm.CreatedAt,
	}
}
