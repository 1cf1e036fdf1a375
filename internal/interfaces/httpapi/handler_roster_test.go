package httpapi

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	sonic "github.com/bytedance/sonic"
	"github.com/riskibarqy/hockey-roster/internal/domain/player"
	"github.com/riskibarqy/hockey-roster/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/hockey-roster/internal/infrastructure/repository/mirror"
	"github.com/riskibarqy/hockey-roster/internal/observability"
	"github.com/riskibarqy/hockey-roster/internal/platform/logging"
	"github.com/riskibarqy/hockey-roster/internal/usecase"
)

type listEnvelope struct {
	APIVersion string        `json:"apiVersion"`
	Data       playerListDTO `json:"data"`
}

type playerEnvelope struct {
	APIVersion string    `json:"apiVersion"`
	Data       playerDTO `json:"data"`
}

type errorEnvelope struct {
	Error struct {
		Code   int    `json:"code"`
		Status string `json:"status"`
	} `json:"error"`
}

func newTestRouter(t *testing.T, repo player.Repository, stores StoreChecker, metrics *observability.HTTPMetrics) http.Handler {
	t.Helper()
	service := usecase.NewRosterService(repo, logging.NewNop())
	handler := NewHandler(service, stores, logging.NewNop())
	return NewRouter(handler, logging.NewNop(), metrics, true, []string{"*"})
}

func serve(t *testing.T, router http.Handler, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, out any) {
	t.Helper()
	if err := sonic.Unmarshal(rec.Body.Bytes(), out); err != nil {
		t.Fatalf("unmarshal response body %q: %v", rec.Body.String(), err)
	}
}

func names(items []playerDTO) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		out = append(out, item.Name)
	}
	return out
}

func TestListPlayers_SeedsEmptyStore(t *testing.T) {
	repo := memory.NewRosterRepository(nil)
	router := newTestRouter(t, repo, nil, nil)

	rec := serve(t, router, http.MethodGet, "/v1/players", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var body listEnvelope
	decodeBody(t, rec, &body)
	if body.Data.Count != 16 {
		t.Fatalf("expected 16 sample players, got %d", body.Data.Count)
	}
	if body.Data.Items[0].Name != "Wayne Gretzky" || body.Data.Items[0].TotalPoints != 2857 || !body.Data.Items[0].IsVeteran {
		t.Fatalf("unexpected first player: %+v", body.Data.Items[0])
	}

	stored, err := repo.Load(context.Background())
	if err != nil {
		t.Fatalf("load stored roster: %v", err)
	}
	if len(stored) != 16 {
		t.Fatalf("expected seed to be persisted, got %d players", len(stored))
	}
}

func TestListPlayers_Search(t *testing.T) {
	router := newTestRouter(t, memory.NewRosterRepository(player.SamplePlayers()), nil, nil)

	tests := []struct {
		name      string
		query     string
		wantCount int
		want      []string
	}{
		{name: "no filter", query: "", wantCount: 16},
		{name: "name substring any case", query: "?name=CRO", wantCount: 1, want: []string{"Sidney Crosby"}},
		{name: "number exact", query: "?number=97", wantCount: 1, want: []string{"Connor McDavid"}},
		{name: "shared number keeps roster order", query: "?number=88", wantCount: 2, want: []string{"David Pastrnak", "Andrei Vasilevskiy"}},
		{name: "name and number", query: "?name=wayne&number=87", wantCount: 0},
		{name: "malformed number ignored", query: "?name=crosby&number=abc", wantCount: 1, want: []string{"Sidney Crosby"}},
		{name: "negative number matches nobody", query: "?number=-5", wantCount: 0},
		{name: "padded name matched as typed", query: "?name=gretzky%20", wantCount: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(t, router, http.MethodGet, "/v1/players"+tt.query, "")
			if rec.Code != http.StatusOK {
				t.Fatalf("expected status 200, got %d", rec.Code)
			}
			var body listEnvelope
			decodeBody(t, rec, &body)
			if body.Data.Count != tt.wantCount || len(body.Data.Items) != tt.wantCount {
				t.Fatalf("unexpected match count: got=%d want=%d", body.Data.Count, tt.wantCount)
			}
			if tt.want == nil {
				return
			}
			got := names(body.Data.Items)
			if strings.Join(got, ",") != strings.Join(tt.want, ",") {
				t.Fatalf("unexpected players: got=%v want=%v", got, tt.want)
			}
		})
	}
}

func TestGetPlayer(t *testing.T) {
	router := newTestRouter(t, memory.NewRosterRepository(player.SamplePlayers()), nil, nil)

	t.Run("found", func(t *testing.T) {
		rec := serve(t, router, http.MethodGet, "/v1/players/2", "")
		if rec.Code != http.StatusOK {
			t.Fatalf("expected status 200, got %d", rec.Code)
		}
		var body playerEnvelope
		decodeBody(t, rec, &body)
		if body.Data.Name != "Sidney Crosby" || len(body.Data.Photos) != 3 || body.Data.TotalPoints != 1325 {
			t.Fatalf("unexpected player: %+v", body.Data)
		}
	})

	t.Run("not found", func(t *testing.T) {
		rec := serve(t, router, http.MethodGet, "/v1/players/42", "")
		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected status 404, got %d", rec.Code)
		}
	})

	t.Run("bad id", func(t *testing.T) {
		rec := serve(t, router, http.MethodGet, "/v1/players/abc", "")
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected status 400, got %d", rec.Code)
		}
		var body errorEnvelope
		decodeBody(t, rec, &body)
		if body.Error.Status != "INVALID_ARGUMENT" {
			t.Fatalf("unexpected error status: %q", body.Error.Status)
		}
	})
}

func TestGetPlayer_DefaultPhoto(t *testing.T) {
	roster := player.Roster{{ID: 7, Name: "No Photo", Height: 1.8}}
	router := newTestRouter(t, memory.NewRosterRepository(roster), nil, nil)

	rec := serve(t, router, http.MethodGet, "/v1/players/7", "")
	var body playerEnvelope
	decodeBody(t, rec, &body)
	if len(body.Data.Photos) != 1 || body.Data.Photos[0] != player.DefaultPhoto {
		t.Fatalf("expected default photo, got %v", body.Data.Photos)
	}
}

func TestReplacePlayers(t *testing.T) {
	repo := memory.NewRosterRepository(player.SamplePlayers())
	router := newTestRouter(t, repo, nil, nil)

	t.Run("replaces roster", func(t *testing.T) {
		body := `{"players":[{"id":10,"name":"Mario Lemieux","number":66,"height":1.93,"goals":690,"assists":1033,"gamesPlayed":915,"photos":["lemieux"]}]}`
		rec := serve(t, router, http.MethodPut, "/v1/players", body)
		if rec.Code != http.StatusOK {
			t.Fatalf("expected status 200, got %d: %s", rec.Code, rec.Body.String())
		}

		stored, err := repo.Load(context.Background())
		if err != nil {
			t.Fatalf("load stored roster: %v", err)
		}
		if len(stored) != 1 || stored[0].Name != "Mario Lemieux" || stored[0].TotalPoints() != 1723 {
			t.Fatalf("unexpected stored roster: %+v", stored)
		}
	})

	tests := []struct {
		name       string
		body       string
		wantStatus int
	}{
		{name: "malformed json", body: `{"players":`, wantStatus: http.StatusBadRequest},
		{name: "unknown field", body: `{"players":[],"extra":true}`, wantStatus: http.StatusBadRequest},
		{name: "total points not accepted", body: `{"players":[{"id":1,"name":"A","height":1.8,"totalPoints":5}]}`, wantStatus: http.StatusBadRequest},
		{name: "missing name", body: `{"players":[{"id":1,"height":1.8}]}`, wantStatus: http.StatusBadRequest},
		{name: "blank photo", body: `{"players":[{"id":1,"name":"A","height":1.8,"photos":[""]}]}`, wantStatus: http.StatusBadRequest},
		{name: "number above 99", body: `{"players":[{"id":1,"name":"A","number":100,"height":1.8}]}`, wantStatus: http.StatusOK},
		{name: "negative number", body: `{"players":[{"id":1,"name":"A","number":-1,"height":1.8}]}`, wantStatus: http.StatusBadRequest},
		{name: "duplicate id", body: `{"players":[{"id":1,"name":"A","height":1.8},{"id":1,"name":"B","height":1.8}]}`, wantStatus: http.StatusConflict},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(t, router, http.MethodPut, "/v1/players", tt.body)
			if rec.Code != tt.wantStatus {
				t.Fatalf("expected status %d, got %d: %s", tt.wantStatus, rec.Code, rec.Body.String())
			}
		})
	}
}

func TestResetPlayers(t *testing.T) {
	repo := memory.NewRosterRepository(player.Roster{{ID: 9, Name: "Temp", Height: 1.7}})
	router := newTestRouter(t, repo, nil, nil)

	rec := serve(t, router, http.MethodPost, "/v1/players/reset", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	var body listEnvelope
	decodeBody(t, rec, &body)
	if body.Data.Count != 16 || body.Data.Items[0].Name != "Wayne Gretzky" {
		t.Fatalf("expected sample roster, got %d players", body.Data.Count)
	}
}

type stubStores []mirror.StoreStatus

func (s stubStores) Check(context.Context) []mirror.StoreStatus {
	return s
}

func TestHealthz(t *testing.T) {
	t.Run("no stores", func(t *testing.T) {
		router := newTestRouter(t, memory.NewRosterRepository(nil), nil, nil)
		rec := serve(t, router, http.MethodGet, "/healthz", "")
		if rec.Code != http.StatusOK {
			t.Fatalf("expected status 200, got %d", rec.Code)
		}
		var body struct {
			Data storeHealthDTO `json:"data"`
		}
		decodeBody(t, rec, &body)
		if body.Data.Status != "ok" {
			t.Fatalf("unexpected status: %q", body.Data.Status)
		}
	})

	t.Run("degraded replica", func(t *testing.T) {
		stores := stubStores{
			{Name: "file", Role: "primary", Healthy: true},
			{Name: "sqlite", Role: "replica", Healthy: false, Error: "disk full"},
		}
		router := newTestRouter(t, memory.NewRosterRepository(nil), stores, nil)
		rec := serve(t, router, http.MethodGet, "/healthz", "")
		var body struct {
			Data struct {
				Status string               `json:"status"`
				Stores []mirror.StoreStatus `json:"stores"`
			} `json:"data"`
		}
		decodeBody(t, rec, &body)
		if body.Data.Stores[1].Error != "disk full" {
			t.Fatalf("unexpected replica status: %+v", body.Data.Stores[1])
		}
		if body.Data.Status != "degraded" || len(body.Data.Stores) != 2 {
			t.Fatalf("unexpected health: %+v", body.Data)
		}
	})
}

func TestRouter_MetricsUseRoutePattern(t *testing.T) {
	metrics := observability.NewHTTPMetrics("hockey_roster")
	router := newTestRouter(t, memory.NewRosterRepository(player.SamplePlayers()), nil, metrics)

	serve(t, router, http.MethodGet, "/v1/players/1", "")
	serve(t, router, http.MethodGet, "/v1/players/2", "")

	rec := serve(t, router, http.MethodGet, "/metrics", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `route="GET /v1/players/{playerID}"`) {
		t.Fatalf("expected route pattern label in metrics output")
	}
}

func TestRouter_SwaggerDisabled(t *testing.T) {
	service := usecase.NewRosterService(memory.NewRosterRepository(nil), logging.NewNop())
	router := NewRouter(NewHandler(service, nil, nil), nil, nil, false, nil)

	rec := serve(t, router, http.MethodGet, "/openapi.yaml", "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", rec.Code)
	}
}

func TestRouter_OpenAPI(t *testing.T) {
	router := newTestRouter(t, memory.NewRosterRepository(nil), nil, nil)

	rec := serve(t, router, http.MethodGet, "/openapi.yaml", "")
	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), "/v1/players/{playerID}") {
		t.Fatalf("unexpected openapi response: %d", rec.Code)
	}
}
