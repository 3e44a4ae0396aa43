package request

// CallbackRequest is the subset of the gateway payload the reconciler
// keys on. The raw body is stored verbatim alongside; unknown fields are
// not an error.
type CallbackRequest struct {
	MerchantRef string `json:"merchant_ref" binding:"required"`
	Status      string `json:"status" binding:"required"`
}
