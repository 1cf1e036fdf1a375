package httpapi

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	sonic "github.com/bytedance/sonic"
	"github.com/riskibarqy/hockey-roster/internal/domain/player"
	"github.com/riskibarqy/hockey-roster/internal/usecase"
)

const maxRosterBodyBytes = 1 << 20

// ListPlayers serves GET /v1/players?name=&number=. A number that does not
// parse is ignored.
func (h *Handler) ListPlayers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListPlayers")
	defer span.End()

	query := r.URL.Query()
	terms := player.NewSearchTerms(query.Get("name"), nil).WithNumberInput(query.Get("number"))

	roster, err := h.rosterService.Search(ctx, terms)
	if err != nil {
		h.logger.WarnContext(ctx, "list players failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, rosterToListDTO(roster))
}

func (h *Handler) GetPlayer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetPlayer")
	defer span.End()

	raw := strings.TrimSpace(r.PathValue("playerID"))
	id, err := strconv.Atoi(raw)
	if err != nil {
		writeError(ctx, w, fmt.Errorf("%w: player id must be an integer", usecase.ErrInvalidInput))
		return
	}

	p, err := h.rosterService.GetPlayer(ctx, id)
	if err != nil {
		h.logger.WarnContext(ctx, "get player failed", "player_id", id, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, playerToDTO(p))
}

// ReplacePlayers serves PUT /v1/players and swaps the whole roster.
func (h *Handler) ReplacePlayers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ReplacePlayers")
	defer span.End()

	var req replaceRosterRequest
	dec := sonic.ConfigDefault.NewDecoder(http.MaxBytesReader(w, r.Body, maxRosterBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		writeError(ctx, w, fmt.Errorf("%w: invalid JSON body: %v", usecase.ErrInvalidInput, err))
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	roster := req.toRoster()
	if err := h.rosterService.Save(ctx, roster); err != nil {
		h.logger.WarnContext(ctx, "replace players failed", "players", len(roster), "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, rosterToListDTO(roster))
}

// ResetPlayers serves POST /v1/players/reset.
func (h *Handler) ResetPlayers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ResetPlayers")
	defer span.End()

	roster, err := h.rosterService.Reset(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "reset players failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, rosterToListDTO(roster))
}
