//go:build e2e

package e2e

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"courtbook/internal/domain/user"
	resdto "courtbook/internal/handler/dto/response"
	"courtbook/internal/infra/gateway/tripay"
	"courtbook/internal/pkg/config"
	"courtbook/tests/common/authtest"
	"courtbook/tests/common/dbtest"
	commonhttp "courtbook/tests/common/httptest"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const stubFee int64 = 2500

// newTripayStub emulates the two gateway endpoints the application calls.
func newTripayStub(t *testing.T) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("/merchant/fee-calculator", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprintf(w, `{"success":true,"data":{"total_fee":%d}}`, stubFee)
	})
	mux.HandleFunc("/transaction/create", func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			MerchantRef string `json:"merchant_ref"`
		}
		_ = json.NewDecoder(r.Body).Decode(&body)

		w.Header().Set("Content-Type", "application/json")
		fmt.Fprintf(w, `{"success":true,"data":{"reference":"T%s","checkout_url":"https://checkout.example/%s","status":"UNPAID"}}`,
			body.MerchantRef, body.MerchantRef)
	})

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server
}

// bookingDate picks a calendar day far enough out that wall-clock expiry
// can never interfere with the scenario.
func bookingDate(t *testing.T) string {
	t.Helper()

	loc, err := time.LoadLocation(config.NewTestConfig().Booking.TimeZone)
	require.NoError(t, err)
	return time.Now().In(loc).AddDate(0, 0, 7).Format("2006-01-02")
}

func signedCallback(t *testing.T, merchantRef, status string) ([]byte, map[string]string) {
	t.Helper()

	body := []byte(fmt.Sprintf(`{"merchant_ref":%q,"status":%q}`, merchantRef, status))
	key := config.NewTestConfig().Tripay.PrivateKey
	return body, map[string]string{
		"X-Callback-Signature": tripay.CallbackSignature(body, key),
	}
}

func TestBookingLifecycle(t *testing.T) {
	stub := newTripayStub(t)
	pool, router := SetupE2EEnvironment(t, stub.URL)

	courtID, err := dbtest.CreateCourt(pool, "Court A", 8, 22)
	require.NoError(t, err)
	_, err = dbtest.CreateRule(pool, courtID, 0, 6, 8, 22, 150000)
	require.NoError(t, err)

	customerToken := authtest.Token(t, dbtest.CustomerID, user.RoleCustomer)
	adminToken := authtest.Token(t, dbtest.AdminID, user.RoleAdmin)
	date := bookingDate(t)

	availabilityURL := fmt.Sprintf("/api/courts/%s/availability?date=%s", courtID, date)

	t.Run("availability exposes the priced grid", func(t *testing.T) {
		rec := commonhttp.PerformRequest(t, router, http.MethodGet, availabilityURL, nil, "")
		require.Equal(t, http.StatusOK, rec.Code)

		var grid resdto.AvailabilityResponse
		commonhttp.DecodeResponseBody(t, rec.Body, &grid)
		require.Len(t, grid.Slots, 24)

		assert.False(t, grid.Slots[7].Available, "hour before the rule window must be unpriced")
		assert.Zero(t, grid.Slots[7].Rate)
		assert.True(t, grid.Slots[10].Available)
		assert.Equal(t, int64(150000), grid.Slots[10].Rate)
	})

	var reservationID uuid.UUID
	var merchantRef string

	t.Run("booking creates an unpaid reservation with a checkout handle", func(t *testing.T) {
		rec := commonhttp.PerformRequest(t, router, http.MethodPost, "/api/reservations", map[string]any{
			"court_id":          courtID,
			"date":              date,
			"slots":             []int{10, 11},
			"payment_method_id": dbtest.MethodID,
			"customer_name":     "Customer",
			"customer_email":    "customer@example.com",
		}, customerToken)
		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

		var res resdto.ReservationResponse
		commonhttp.DecodeResponseBody(t, rec.Body, &res)
		assert.Equal(t, "UNPAID", res.Status)
		assert.Equal(t, []int{10, 11}, res.Slots)
		assert.Equal(t, int64(300000), res.TotalAmount)
		assert.NotEmpty(t, res.CheckoutURL)
		require.NotNil(t, res.Payment)
		assert.Equal(t, "PENDING", res.Payment.Status)
		assert.Equal(t, stubFee, res.Payment.Fee)
		assert.NotEmpty(t, res.Payment.Reference)

		reservationID = res.ID
		merchantRef = res.Payment.Reference
	})

	t.Run("booked hours drop out of availability", func(t *testing.T) {
		rec := commonhttp.PerformRequest(t, router, http.MethodGet, availabilityURL, nil, "")
		require.Equal(t, http.StatusOK, rec.Code)

		var grid resdto.AvailabilityResponse
		commonhttp.DecodeResponseBody(t, rec.Body, &grid)
		assert.False(t, grid.Slots[10].Available)
		assert.False(t, grid.Slots[11].Available)
		assert.True(t, grid.Slots[12].Available)
	})

	t.Run("concurrent booking of the same slot loses exactly once", func(t *testing.T) {
		payload := map[string]any{
			"court_id":          courtID,
			"date":              date,
			"slots":             []int{15},
			"payment_method_id": dbtest.MethodID,
		}

		codes := make([]int, 2)
		var wg sync.WaitGroup
		for i := range codes {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				rec := commonhttp.PerformRequest(t, router, http.MethodPost, "/api/reservations", payload, customerToken)
				codes[i] = rec.Code
			}(i)
		}
		wg.Wait()

		assert.ElementsMatch(t, []int{http.StatusCreated, http.StatusConflict}, codes)
	})

	t.Run("gateway PAID callback settles the reservation", func(t *testing.T) {
		body, headers := signedCallback(t, merchantRef, "PAID")
		rec := commonhttp.PerformRawRequest(t, router, http.MethodPost, "/api/payments/callback", body, headers)
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

		rec = commonhttp.PerformRequest(t, router, http.MethodGet, "/api/reservations/"+reservationID.String(), nil, customerToken)
		require.Equal(t, http.StatusOK, rec.Code)

		var res resdto.ReservationResponse
		commonhttp.DecodeResponseBody(t, rec.Body, &res)
		assert.Equal(t, "PAID", res.Status)
		require.NotNil(t, res.Payment)
		assert.Equal(t, "COMPLETED", res.Payment.Status)
		require.NotNil(t, res.QRCodeID)
		assert.NotEmpty(t, *res.QRCodeID)
	})

	t.Run("callback redelivery acknowledges without reapplying", func(t *testing.T) {
		body, headers := signedCallback(t, merchantRef, "PAID")
		rec := commonhttp.PerformRawRequest(t, router, http.MethodPost, "/api/payments/callback", body, headers)
		require.Equal(t, http.StatusOK, rec.Code)

		var resp map[string]bool
		commonhttp.DecodeResponseBody(t, rec.Body, &resp)
		assert.True(t, resp["success"])
		assert.False(t, resp["applied"])
	})

	t.Run("unsigned callback is refused", func(t *testing.T) {
		body, _ := signedCallback(t, merchantRef, "PAID")
		rec := commonhttp.PerformRawRequest(t, router, http.MethodPost, "/api/payments/callback", body, map[string]string{
			"X-Callback-Signature": "deadbeef",
		})
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("admin checks the paid reservation in", func(t *testing.T) {
		url := "/api/reservations/" + reservationID.String() + "/check-in"

		rec := commonhttp.PerformRequest(t, router, http.MethodPost, url, nil, customerToken)
		assert.Equal(t, http.StatusForbidden, rec.Code, "customers cannot operate the check-in desk")

		rec = commonhttp.PerformRequest(t, router, http.MethodPost, url, nil, adminToken)
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

		rec = commonhttp.PerformRequest(t, router, http.MethodGet, "/api/reservations/"+reservationID.String(), nil, customerToken)
		var res resdto.ReservationResponse
		commonhttp.DecodeResponseBody(t, rec.Body, &res)
		assert.Equal(t, "CHECKED_IN", res.Status)
	})

	t.Run("checked-in slots stay booked", func(t *testing.T) {
		rec := commonhttp.PerformRequest(t, router, http.MethodGet, availabilityURL, nil, "")
		var grid resdto.AvailabilityResponse
		commonhttp.DecodeResponseBody(t, rec.Body, &grid)
		assert.False(t, grid.Slots[10].Available)
	})
}

func TestCancellationFreesSlots(t *testing.T) {
	stub := newTripayStub(t)
	pool, router := SetupE2EEnvironment(t, stub.URL)

	courtID, err := dbtest.CreateCourt(pool, "Court B", 8, 22)
	require.NoError(t, err)
	_, err = dbtest.CreateRule(pool, courtID, 0, 6, 8, 22, 100000)
	require.NoError(t, err)

	customerToken := authtest.Token(t, dbtest.CustomerID, user.RoleCustomer)
	adminToken := authtest.Token(t, dbtest.AdminID, user.RoleAdmin)
	date := bookingDate(t)

	book := func(t *testing.T, slot int) resdto.ReservationResponse {
		rec := commonhttp.PerformRequest(t, router, http.MethodPost, "/api/reservations", map[string]any{
			"court_id":          courtID,
			"date":              date,
			"slots":             []int{slot},
			"payment_method_id": dbtest.MethodID,
		}, customerToken)
		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

		var res resdto.ReservationResponse
		commonhttp.DecodeResponseBody(t, rec.Body, &res)
		return res
	}

	slotAvailable := func(t *testing.T, hour int) bool {
		url := fmt.Sprintf("/api/courts/%s/availability?date=%s", courtID, date)
		rec := commonhttp.PerformRequest(t, router, http.MethodGet, url, nil, "")
		require.Equal(t, http.StatusOK, rec.Code)

		var grid resdto.AvailabilityResponse
		commonhttp.DecodeResponseBody(t, rec.Body, &grid)
		return grid.Slots[hour].Available
	}

	t.Run("customer cancels an unpaid reservation", func(t *testing.T) {
		res := book(t, 9)
		require.False(t, slotAvailable(t, 9))

		rec := commonhttp.PerformRequest(t, router, http.MethodPatch,
			"/api/reservations/"+res.ID.String(), map[string]string{"status": "CANCELLED"}, customerToken)
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

		assert.True(t, slotAvailable(t, 9), "cancellation must release the slot")
	})

	t.Run("customer cannot cancel a paid reservation", func(t *testing.T) {
		res := book(t, 13)

		body, headers := signedCallback(t, res.Payment.Reference, "PAID")
		rec := commonhttp.PerformRawRequest(t, router, http.MethodPost, "/api/payments/callback", body, headers)
		require.Equal(t, http.StatusOK, rec.Code)

		rec = commonhttp.PerformRequest(t, router, http.MethodPatch,
			"/api/reservations/"+res.ID.String(), map[string]string{"status": "CANCELLED"}, customerToken)
		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.False(t, slotAvailable(t, 13))
	})

	t.Run("gateway FAILED callback expires and releases", func(t *testing.T) {
		res := book(t, 17)

		body, headers := signedCallback(t, res.Payment.Reference, "FAILED")
		rec := commonhttp.PerformRawRequest(t, router, http.MethodPost, "/api/payments/callback", body, headers)
		require.Equal(t, http.StatusOK, rec.Code)

		rec = commonhttp.PerformRequest(t, router, http.MethodGet, "/api/reservations/"+res.ID.String(), nil, customerToken)
		var after resdto.ReservationResponse
		commonhttp.DecodeResponseBody(t, rec.Body, &after)
		assert.Equal(t, "EXPIRED", after.Status)
		assert.True(t, slotAvailable(t, 17))
	})

	t.Run("booking an inactive court is refused", func(t *testing.T) {
		inactiveID, err := dbtest.CreateCourt(pool, "Court C", 8, 22)
		require.NoError(t, err)
		_, err = dbtest.CreateRule(pool, inactiveID, 0, 6, 8, 22, 100000)
		require.NoError(t, err)

		rec := commonhttp.PerformRequest(t, router, http.MethodDelete,
			"/api/admin/courts/"+inactiveID.String(), nil, adminToken)
		require.Equal(t, http.StatusOK, rec.Code)

		rec = commonhttp.PerformRequest(t, router, http.MethodPost, "/api/reservations", map[string]any{
			"court_id":          inactiveID,
			"date":              date,
			"slots":             []int{10},
			"payment_method_id": dbtest.MethodID,
		}, customerToken)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("other customers cannot read the reservation", func(t *testing.T) {
		res := book(t, 19)

		strangerToken := authtest.Token(t, dbtest.AdminID, user.RoleCustomer)
		rec := commonhttp.PerformRequest(t, router, http.MethodGet,
			"/api/reservations/"+res.ID.String(), nil, strangerToken)
		assert.Equal(t, http.StatusForbidden, rec.Code)

		rec = commonhttp.PerformRequest(t, router, http.MethodGet,
			"/api/reservations/"+res.ID.String(), nil, adminToken)
		assert.Equal(t, http.StatusOK, rec.Code, "admins may read any reservation")
	})
}

func TestAdminCourtManagement(t *testing.T) {
	stub := newTripayStub(t)
	_, router := SetupE2EEnvironment(t, stub.URL)

	customerToken := authtest.Token(t, dbtest.CustomerID, user.RoleCustomer)
	adminToken := authtest.Token(t, dbtest.AdminID, user.RoleAdmin)

	t.Run("customers cannot reach the admin surface", func(t *testing.T) {
		rec := commonhttp.PerformRequest(t, router, http.MethodPost, "/api/admin/courts", map[string]any{
			"name": "Court D", "open_hour": 8, "close_hour": 22,
		}, customerToken)
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	var courtID string

	t.Run("admin creates a court", func(t *testing.T) {
		rec := commonhttp.PerformRequest(t, router, http.MethodPost, "/api/admin/courts", map[string]any{
			"name": "Court D", "open_hour": 8, "close_hour": 22,
		}, adminToken)
		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

		var resp map[string]string
		commonhttp.DecodeResponseBody(t, rec.Body, &resp)
		require.NotEmpty(t, resp["id"])
		courtID = resp["id"]
	})

	t.Run("court listing includes the new court", func(t *testing.T) {
		rec := commonhttp.PerformRequest(t, router, http.MethodGet, "/api/admin/courts", nil, adminToken)
		require.Equal(t, http.StatusOK, rec.Code)

		var courts []resdto.CourtResponse
		commonhttp.DecodeResponseBody(t, rec.Body, &courts)
		require.Len(t, courts, 1)
		assert.Equal(t, "Court D", courts[0].Name)
		assert.True(t, courts[0].IsActive)
	})

	t.Run("pricing rules reject overlap", func(t *testing.T) {
		url := "/api/admin/courts/" + courtID + "/pricing-rules"

		rec := commonhttp.PerformRequest(t, router, http.MethodPost, url, map[string]any{
			"start_day": 0, "end_day": 4, "start_hour": 8, "end_hour": 22, "rate": 100000,
		}, adminToken)
		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

		rec = commonhttp.PerformRequest(t, router, http.MethodPost, url, map[string]any{
			"start_day": 4, "end_day": 6, "start_hour": 17, "end_hour": 22, "rate": 150000,
		}, adminToken)
		assert.Equal(t, http.StatusConflict, rec.Code, "day 4 evening is already priced")

		rec = commonhttp.PerformRequest(t, router, http.MethodPost, url, map[string]any{
			"start_day": 5, "end_day": 6, "start_hour": 8, "end_hour": 22, "rate": 150000,
		}, adminToken)
		assert.Equal(t, http.StatusCreated, rec.Code)
	})

	t.Run("rule listing and deletion", func(t *testing.T) {
		url := "/api/admin/courts/" + courtID + "/pricing-rules"

		rec := commonhttp.PerformRequest(t, router, http.MethodGet, url, nil, adminToken)
		require.Equal(t, http.StatusOK, rec.Code)

		var rules []resdto.RuleResponse
		commonhttp.DecodeResponseBody(t, rec.Body, &rules)
		require.Len(t, rules, 2)

		rec = commonhttp.PerformRequest(t, router, http.MethodDelete,
			url+"/"+rules[1].ID.String(), nil, adminToken)
		require.Equal(t, http.StatusOK, rec.Code)

		rec = commonhttp.PerformRequest(t, router, http.MethodGet, url, nil, adminToken)
		commonhttp.DecodeResponseBody(t, rec.Body, &rules)
		assert.Len(t, rules, 1)
	})
}
