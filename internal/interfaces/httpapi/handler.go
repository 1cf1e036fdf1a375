package httpapi

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/riskibarqy/hockey-roster/internal/domain/player"
	"github.com/riskibarqy/hockey-roster/internal/infrastructure/repository/mirror"
	"github.com/riskibarqy/hockey-roster/internal/platform/logging"
	"github.com/riskibarqy/hockey-roster/internal/usecase"
)

// RosterService is the roster use case the handlers call.
type RosterService interface {
	Search(ctx context.Context, terms player.SearchTerms) (player.Roster, error)
	GetPlayer(ctx context.Context, id int) (player.Player, error)
	Save(ctx context.Context, roster player.Roster) error
	Reset(ctx context.Context) (player.Roster, error)
}

// StoreChecker reports the health of the backing stores.
type StoreChecker interface {
	Check(ctx context.Context) []mirror.StoreStatus
}

type Handler struct {
	rosterService RosterService
	stores        StoreChecker
	logger        *logging.Logger
	validator     *validator.Validate
}

// NewHandler builds the HTTP handlers. stores may be nil when no replicas are configured.
func NewHandler(rosterService RosterService, stores StoreChecker, logger *logging.Logger) *Handler {
	if logger == nil {
		logger = logging.Default()
	}

	return &Handler{
		rosterService: rosterService,
		stores:        stores,
		logger:        logger.Named("httpapi"),
		validator:     validator.New(),
	}
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	ctx, span := startSpan(ctx, "httpapi.Handler.validateRequest")
	defer span.End()

	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}

	return nil
}
