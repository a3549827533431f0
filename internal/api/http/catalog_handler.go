package http

import (
	"net/http"

	"locadora-admin/internal/service"

	"github.com/gorilla/mux"
)

type catalogHandler[T any] struct {
	svc service.CatalogService[T]
}

// registerCatalog mounts get/create/update/delete for path, and the collection GET when withList is set.
func registerCatalog[T any](router *mux.Router, path string, svc service.CatalogService[T], withList bool) {
	h := &catalogHandler[T]{svc: svc}
	if withList {
		router.HandleFunc(path, h.list).Methods(http.MethodGet)
	}
	router.HandleFunc(path, h.create).Methods(http.MethodPost)
	router.HandleFunc(path+"/{id}", h.get).Methods(http.MethodGet)
	router.HandleFunc(path+"/{id}", h.update).Methods(http.MethodPut)
	router.HandleFunc(path+"/{id}", h.delete).Methods(http.MethodDelete)
}

func (h *catalogHandler[T]) list(w http.ResponseWriter, r *http.Request) {
	items, err := h.svc.List(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

func (h *catalogHandler[T]) get(w http.ResponseWriter, r *http.Request) {
	item, err := h.svc.Get(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, item)
}

func (h *catalogHandler[T]) create(w http.ResponseWriter, r *http.Request) {
	item := new(T)
	if err := decodeJSON(r, item); err != nil {
		writeError(w, r, err)
		return
	}
	created, err := h.svc.Create(r.Context(), item)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (h *catalogHandler[T]) update(w http.ResponseWriter, r *http.Request) {
	item := new(T)
	if err := decodeJSON(r, item); err != nil {
		writeError(w, r, err)
		return
	}
	updated, err := h.svc.Update(r.Context(), mux.Vars(r)["id"], item)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func (h *catalogHandler[T]) delete(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Delete(r.Context(), mux.Vars(r)["id"]); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
