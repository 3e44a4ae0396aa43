package tripay

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"courtbook/internal/pkg/config"
	"courtbook/internal/pkg/errs"
)

var ErrGatewayUnavailable = errs.New("payment gateway unavailable")

// Client talks to the Tripay-style gateway. Its HTTP contract is an
// external collaborator: consumed, not redesigned.
type Client struct {
	baseURL      string
	merchantCode string
	apiKey       string
	privateKey   string
	httpClient   *http.Client
}

func NewClient(cfg config.TripayConfig) *Client {
	return &Client{
		baseURL:      cfg.BaseURL,
		merchantCode: cfg.MerchantCode,
		apiKey:       cfg.APIKey,
		privateKey:   cfg.PrivateKey,
		httpClient:   &http.Client{Timeout: cfg.Timeout},
	}
}

type TransactionInput struct {
	MerchantRef   string
	MethodCode    string
	Amount        int64
	CustomerName  string
	CustomerEmail string
}

type Transaction struct {
	Reference   string `json:"reference"`
	CheckoutURL string `json:"checkout_url"`
	Status      string `json:"status"`
}

type apiEnvelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// CreateTransaction registers the payment with the gateway under the
// merchant reference and returns the checkout handle.
func (c *Client) CreateTransaction(ctx context.Context, in TransactionInput) (*Transaction, error) {
	body := map[string]any{
		"method":         in.MethodCode,
		"merchant_ref":   in.MerchantRef,
		"amount":         in.Amount,
		"customer_name":  in.CustomerName,
		"customer_email": in.CustomerEmail,
		"signature":      Signature(c.merchantCode, in.MerchantRef, in.Amount, c.privateKey),
	}

	var tx Transaction
	if err := c.post(ctx, "/transaction/create", body, &tx); err != nil {
		return nil, err
	}
	return &tx, nil
}

// CalculateFee asks the gateway what the method charges for an amount.
func (c *Client) CalculateFee(ctx context.Context, methodCode string, amount int64) (int64, error) {
	endpoint := fmt.Sprintf("%s/merchant/fee-calculator?%s", c.baseURL, url.Values{
		"code":   {methodCode},
		"amount": {strconv.FormatInt(amount, 10)},
	}.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return 0, errs.Wrap(err, "failed to build fee request")
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	var fee struct {
		Total int64 `json:"total_fee"`
	}
	if err := c.do(req, &fee); err != nil {
		return 0, err
	}
	return fee.Total, nil
}

func (c *Client) post(ctx context.Context, path string, body any, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return errs.Wrap(err, "failed to encode gateway request")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return errs.Wrap(err, "failed to build gateway request")
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	return c.do(req, out)
}

func (c *Client) do(req *http.Request, out any) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errs.Mark(err, ErrGatewayUnavailable)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return errs.Mark(err, ErrGatewayUnavailable)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return errs.Mark(errs.Newf("gateway returned status %d", resp.StatusCode), ErrGatewayUnavailable)
	}

	var envelope apiEnvelope
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return errs.Mark(errs.Wrap(err, "failed to decode gateway response"), ErrGatewayUnavailable)
	}
	if !envelope.Success {
		return errs.Mark(errs.Newf("gateway rejected request: %s", envelope.Message), ErrGatewayUnavailable)
	}
	if out != nil {
		if err := json.Unmarshal(envelope.Data, out); err != nil {
			return errs.Mark(errs.Wrap(err, "failed to decode gateway data"), ErrGatewayUnavailable)
		}
	}
	return nil
}
