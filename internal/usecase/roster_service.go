package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/riskibarqy/hockey-roster/internal/domain/player"
	"github.com/riskibarqy/hockey-roster/internal/platform/logging"
	"go.opentelemetry.io/otel/attribute"
)

// RosterService loads, searches and replaces the player roster.
type RosterService struct {
	repo   player.Repository
	logger *logging.Logger
}

func NewRosterService(repo player.Repository, logger *logging.Logger) *RosterService {
	if logger == nil {
		logger = logging.Default()
	}
	return &RosterService{
		repo:   repo,
		logger: logger.Named("usecase.roster"),
	}
}

// Load returns the stored roster. An empty store is seeded with the sample
// players; the seed is returned even when persisting it fails.
func (s *RosterService) Load(ctx context.Context) (player.Roster, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.RosterService.Load")
	defer span.End()

	roster, err := s.repo.Load(ctx)
	if err != nil {
		err = fmt.Errorf("%w: load roster: %w", ErrDependencyUnavailable, err)
		recordSpanError(span, err)
		return nil, err
	}
	if len(roster) > 0 {
		span.SetAttributes(attribute.Int("roster.players", len(roster)))
		return roster, nil
	}

	seed := player.SamplePlayers()
	if err := s.repo.Save(ctx, seed); err != nil {
		s.logger.WarnContext(ctx, "seed roster could not be saved", "players", len(seed), "error", err)
	} else {
		s.logger.InfoContext(ctx, "empty roster seeded", "players", len(seed))
	}
	span.SetAttributes(attribute.Bool("roster.seeded", true), attribute.Int("roster.players", len(seed)))

	return seed.Clone(), nil
}

// Save validates and replaces the whole roster.
func (s *RosterService) Save(ctx context.Context, roster player.Roster) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.RosterService.Save", attribute.Int("roster.players", len(roster)))
	defer span.End()

	if err := roster.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	if err := s.repo.Save(ctx, roster.Clone()); err != nil {
		err = fmt.Errorf("%w: save roster: %w", ErrDependencyUnavailable, err)
		recordSpanError(span, err)
		return err
	}
	return nil
}

// Search filters the roster by the current search terms.
func (s *RosterService) Search(ctx context.Context, terms player.SearchTerms) (player.Roster, error) {
	number, hasNumber := terms.Number()
	ctx, span := startUsecaseSpan(ctx, "usecase.RosterService.Search",
		attribute.String("search.name", terms.Name()),
		attribute.Bool("search.has_number", hasNumber),
		attribute.Int("search.number", number),
	)
	defer span.End()

	roster, err := s.Load(ctx)
	if err != nil {
		return nil, err
	}

	out := player.Filter(roster, terms.Criteria())
	span.SetAttributes(attribute.Int("search.matches", len(out)))
	return out, nil
}

func (s *RosterService) GetPlayer(ctx context.Context, id int) (player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.RosterService.GetPlayer", attribute.Int("player.id", id))
	defer span.End()

	if id <= 0 {
		return player.Player{}, fmt.Errorf("%w: player id must be greater than zero", ErrInvalidInput)
	}

	roster, err := s.Load(ctx)
	if err != nil {
		return player.Player{}, err
	}

	p, ok := roster.FindByID(id)
	if !ok {
		return player.Player{}, fmt.Errorf("%w: player=%d", ErrNotFound, id)
	}
	return p, nil
}

// Reset replaces the stored roster with the sample players.
func (s *RosterService) Reset(ctx context.Context) (player.Roster, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.RosterService.Reset")
	defer span.End()

	seed := player.SamplePlayers()
	if err := s.Save(ctx, seed); err != nil {
		if !errors.Is(err, ErrDependencyUnavailable) {
			s.logger.ErrorContext(ctx, "sample roster rejected", "error", err)
		}
		return nil, err
	}

	s.logger.InfoContext(ctx, "roster reset to sample players", "players", len(seed))
	return seed, nil
}
