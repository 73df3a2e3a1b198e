package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"aidforpaws/internal/domain"
)

func (a *App) AnimalsList(w http.ResponseWriter, r *http.Request) {
	items, err := a.Animals.List(r.Context())
	if err != nil {
		a.fail(w, r, err, "Animals", "Failed to fetch animals")
		return
	}
	a.json(w, http.StatusOK, items)
}

func (a *App) AnimalsGet(w http.ResponseWriter, r *http.Request) {
	animal, err := a.Animals.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		a.fail(w, r, err, "Animal", "Failed to fetch animal")
		return
	}
	a.json(w, http.StatusOK, animal)
}

func (a *App) AnimalsCreate(w http.ResponseWriter, r *http.Request) {
	var in domain.AnimalInput
	if err := decodeJSON(w, r, &in); err != nil {
		a.badPayload(w, err)
		return
	}
	animal, err := a.Animals.Create(r.Context(), in)
	if err != nil {
		a.fail(w, r, err, "Animal", "Failed to create animal")
		return
	}
	a.json(w, http.StatusCreated, animal)
}

func (a *App) AnimalsUpdate(w http.ResponseWriter, r *http.Request) {
	var in domain.AnimalInput
	if err := decodeJSON(w, r, &in); err != nil {
		a.badPayload(w, err)
		return
	}
	animal, err := a.Animals.Update(r.Context(), chi.URLParam(r, "id"), in)
	if err != nil {
		a.fail(w, r, err, "Animal", "Failed to update animal")
		return
	}
	a.json(w, http.StatusOK, animal)
}

func (a *App) AnimalsDelete(w http.ResponseWriter, r *http.Request) {
	if err := a.Animals.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		a.fail(w, r, err, "Animal", "Failed to delete animal")
		return
	}
	a.json(w, http.StatusOK, map[string]string{"message": "Animal deleted"})
}
