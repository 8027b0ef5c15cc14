package handlers

import (
	"errors"
	"net/http"

	"github.com/pprado/futsal-league/middleware"
	"github.com/pprado/futsal-league/models"
	"github.com/pprado/futsal-league/services"
)

type EntryHandler struct {
	entryService services.EntryService
}

func NewEntryHandler(entryService services.EntryService) *EntryHandler {
	return &EntryHandler{entryService: entryService}
}

type registerTeamRequest struct {
	TeamID int `json:"team_id"`
}

// RegisterTeam enters a team into a tournament. Captain only; the entry
// starts pending until the tournament creator decides it.
func (h *EntryHandler) RegisterTeam(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		unauthorizedResponse(w, r, err.Error())
		return
	}

	tournamentID, err := getIDFromURL(r, "tournamentID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	var input registerTeamRequest
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}
	if input.TeamID <= 0 {
		badRequestResponse(w, r, errors.New("team_id must be a positive integer"))
		return
	}

	entry, err := h.entryService.RegisterTeam(r.Context(), userID, tournamentID, input.TeamID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, entry, nil)
}

// ListEntries returns the tournament's entries, optionally filtered by
// ?status=pending|confirmed|rejected.
func (h *EntryHandler) ListEntries(w http.ResponseWriter, r *http.Request) {
	tournamentID, err := getIDFromURL(r, "tournamentID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	var status *models.EntryStatus
	if v := r.URL.Query().Get("status"); v != "" {
		s := models.EntryStatus(v)
		switch s {
		case models.EntryPending, models.EntryConfirmed, models.EntryRejected:
			status = &s
		default:
			badRequestResponse(w, r, errInvalidQueryParam("status"))
			return
		}
	}

	entries, err := h.entryService.ListEntries(r.Context(), tournamentID, status)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, jsonResponse{"entries": entries}, nil)
}

type decideEntryRequest struct {
	Approve bool `json:"approve"`
}

// DecideEntry confirms or rejects a pending entry. Tournament creator only.
func (h *EntryHandler) DecideEntry(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		unauthorizedResponse(w, r, err.Error())
		return
	}

	entryID, err := getIDFromURL(r, "entryID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	var input decideEntryRequest
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	entry, err := h.entryService.DecideEntry(r.Context(), userID, entryID, input.Approve)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, entry, nil)
}

func (h *EntryHandler) WithdrawEntry(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		unauthorizedResponse(w, r, err.Error())
		return
	}

	entryID, err := getIDFromURL(r, "entryID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	if err := h.entryService.WithdrawEntry(r.Context(), userID, entryID); err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
