package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"aidforpaws/internal/domain"
)

func (a *App) DonationsList(w http.ResponseWriter, r *http.Request) {
	items, err := a.Donations.List(r.Context())
	if err != nil {
		a.fail(w, r, err, "Donations", "Failed to fetch donations")
		return
	}
	a.json(w, http.StatusOK, items)
}

func (a *App) DonationsGet(w http.ResponseWriter, r *http.Request) {
	donation, err := a.Donations.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		a.fail(w, r, err, "Donation", "Failed to fetch donation")
		return
	}
	a.json(w, http.StatusOK, donation)
}

// DonationsCreate records a donation directly, bypassing the payment flow.
func (a *App) DonationsCreate(w http.ResponseWriter, r *http.Request) {
	var in domain.DonationInput
	if err := decodeJSON(w, r, &in); err != nil {
		a.badPayload(w, err)
		return
	}
	donation, err := a.Donations.Create(r.Context(), in)
	if err != nil {
		a.fail(w, r, err, "Donation", "Failed to create donation")
		return
	}
	a.json(w, http.StatusCreated, donation)
}
