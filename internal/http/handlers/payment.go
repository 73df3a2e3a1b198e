package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"aidforpaws/internal/domain"
	"aidforpaws/internal/service"
)

// flexAmount accepts a JSON number or a numeric string.
type flexAmount struct {
	value float64
	set   bool
}

func (f *flexAmount) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err != nil {
			return errors.New("amount is not numeric")
		}
		f.value, f.set = v, true
		return nil
	}
	var v float64
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	f.value, f.set = v, true
	return nil
}

type createOrderRequest struct {
	Amount flexAmount `json:"amount"`
}

type verifyPaymentRequest struct {
	OrderID    string  `json:"razorpay_order_id"`
	PaymentID  string  `json:"razorpay_payment_id"`
	Signature  string  `json:"razorpay_signature"`
	DonorName  string  `json:"donorName"`
	DonorEmail string  `json:"donorEmail"`
	AnimalID   string  `json:"animalId"`
	Amount     float64 `json:"amount"`
}

type verifyPaymentResponse struct {
	Success   bool             `json:"success"`
	Donation  *domain.Donation `json:"donation"`
	Duplicate bool             `json:"duplicate,omitempty"`
}

// PaymentCreateOrder opens a gateway order. Invalid amounts never reach the gateway.
func (a *App) PaymentCreateOrder(w http.ResponseWriter, r *http.Request) {
	var req createOrderRequest
	if err := decodeJSON(w, r, &req); err != nil {
		a.error(w, http.StatusBadRequest, "Invalid amount")
		return
	}
	if !req.Amount.set || !domain.ValidAmount(req.Amount.value) {
		a.error(w, http.StatusBadRequest, "Invalid amount")
		return
	}
	order, err := a.Payments.CreateOrder(r.Context(), req.Amount.value)
	if err != nil {
		var verr *domain.ValidationError
		if errors.As(err, &verr) {
			a.error(w, http.StatusBadRequest, "Invalid amount")
			return
		}
		a.fail(w, r, err, "Order", "Failed to create order")
		return
	}
	a.json(w, http.StatusOK, order)
}

// PaymentVerify records a donation for a checkout whose signature checks out.
func (a *App) PaymentVerify(w http.ResponseWriter, r *http.Request) {
	var req verifyPaymentRequest
	if err := decodeJSON(w, r, &req); err != nil {
		a.badPayload(w, err)
		return
	}
	res, err := a.Payments.Verify(r.Context(), service.VerifyRequest{
		OrderID:    req.OrderID,
		PaymentID:  req.PaymentID,
		Signature:  req.Signature,
		DonorName:  req.DonorName,
		DonorEmail: req.DonorEmail,
		AnimalID:   req.AnimalID,
		Amount:     req.Amount,
	})
	if err != nil {
		a.fail(w, r, err, "Donation", "Payment verification failed")
		return
	}
	status := http.StatusCreated
	if res.Duplicate {
		status = http.StatusOK
	}
	a.json(w, status, verifyPaymentResponse{Success: true, Donation: res.Donation, Duplicate: res.Duplicate})
}
