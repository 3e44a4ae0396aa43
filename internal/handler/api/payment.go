package api

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	reqdto "courtbook/internal/handler/dto/request"
	"courtbook/internal/infra/gateway/tripay"
	"courtbook/internal/pkg/config"
	"courtbook/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

const callbackSignatureHeader = "X-Callback-Signature"

type PaymentHandler struct {
	callbackUseCase commands.CallbackUseCase
	tripayCfg       config.TripayConfig
}

func NewPaymentHandler(callbackUseCase commands.CallbackUseCase, tripayCfg config.TripayConfig) *PaymentHandler {
	return &PaymentHandler{
		callbackUseCase: callbackUseCase,
		tripayCfg:       tripayCfg,
	}
}

// @Summary Payment gateway callback
// @Description Reconcile a payment status notification from the gateway
// @Tags payments
// @Accept json
// @Produce json
// @Param X-Callback-Signature header string false "HMAC signature of the raw body"
// @Param request body reqdto.CallbackRequest true "Callback payload"
// @Success 200 {object} map[string]bool
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /payments/callback [post]
func (h *PaymentHandler) HandleCallback(c *gin.Context) {
	// The raw body is both the signature input and the audit payload, so
	// it is read once before any decoding.
	rawBody, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Unable to read request body",
		})
		return
	}

	if h.tripayCfg.PrivateKey != "" {
		signature := c.GetHeader(callbackSignatureHeader)
		if !tripay.VerifyCallbackSignature(rawBody, signature, h.tripayCfg.PrivateKey) {
			c.JSON(http.StatusForbidden, gin.H{
				"error": "Invalid callback signature",
			})
			return
		}
	}

	var req reqdto.CallbackRequest
	if err := json.Unmarshal(rawBody, &req); err != nil || req.MerchantRef == "" || req.Status == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid callback payload",
		})
		return
	}

	result, err := h.callbackUseCase.Apply(c.Request.Context(), commands.CallbackInput{
		MerchantRef:   req.MerchantRef,
		GatewayStatus: req.Status,
		RawPayload:    rawBody,
	})
	if err != nil {
		if errors.Is(err, commands.ErrPaymentNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Unknown merchant reference",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	// Replays and manual-review payloads still acknowledge with 200 so the
	// gateway stops redelivering.
	c.JSON(http.StatusOK, gin.H{"success": true, "applied": result.Applied})
}
