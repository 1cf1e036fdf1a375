package httpapi

import "net/http"

// Healthz reports "ok" unless a configured store fails its check.
func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	if h.stores == nil {
		writeSuccess(ctx, w, http.StatusOK, storeHealthDTO{Status: "ok"})
		return
	}

	stores := h.stores.Check(ctx)
	status := "ok"
	for _, s := range stores {
		if !s.Healthy {
			status = "degraded"
			break
		}
	}

	writeSuccess(ctx, w, http.StatusOK, storeHealthDTO{Status: status, Stores: stores})
}
