package service

import (
	"context"
	"errors"
	"fmt"

	"croupier/events"
	"croupier/models"

	log "github.com/sirupsen/logrus"
)

// gameConfigService implements the GameConfigService interface
type gameConfigService struct {
	configRepo     GameConfigRepository
	eventPublisher EventPublisher
}

// NewGameConfigService creates a new game config service
func NewGameConfigService(configRepo GameConfigRepository, eventPublisher EventPublisher) GameConfigService {
	return &gameConfigService{
		configRepo:     configRepo,
		eventPublisher: eventPublisher,
	}
}

// globalSettings reads the global row for a game, creating the default row
// on first read. A row that cannot be parsed is silently rewritten with
// the default rather than surfaced.
func (s *gameConfigService) globalSettings(ctx context.Context, key models.GameKey) (models.GameSettings, error) {
	stored, err := s.configRepo.GetGlobal(ctx, key)
	if errors.Is(err, models.ErrCorruptSettings) {
		log.WithField("game", key).Warn("Corrupt global game settings, rewriting default")
		stored = nil
		err = nil
	}
	if err != nil {
		return models.GameSettings{}, fmt.Errorf("failed to get global settings: %w", err)
	}
	if stored != nil {
		return *stored, nil
	}

	def := models.DefaultSettings(key)
	if err := s.configRepo.SetGlobal(ctx, key, def); err != nil {
		return models.GameSettings{}, fmt.Errorf("failed to write default settings: %w", err)
	}
	return def, nil
}

// userOverride reads a per-user override row. A corrupt row is cleared
// and treated as absent.
func (s *gameConfigService) userOverride(ctx context.Context, userID string, key models.GameKey) (*models.GameSettings, error) {
	override, err := s.configRepo.GetUserOverride(ctx, userID, key)
	if errors.Is(err, models.ErrCorruptSettings) {
		log.WithFields(log.Fields{
			"game":   key,
			"userID": userID,
		}).Warn("Corrupt user game settings, clearing override")
		if err := s.configRepo.ClearUserOverride(ctx, userID, key); err != nil {
			return nil, fmt.Errorf("failed to clear corrupt override: %w", err)
		}
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user override: %w", err)
	}
	return override, nil
}

func (s *gameConfigService) EffectiveSettings(ctx context.Context, userID string, key models.GameKey) (models.GameSettings, error) {
	if !key.Valid() {
		return models.GameSettings{}, ErrUnknownGame
	}

	global, err := s.globalSettings(ctx, key)
	if err != nil {
		return models.GameSettings{}, err
	}

	override, err := s.userOverride(ctx, userID, key)
	if err != nil {
		return models.GameSettings{}, err
	}

	return models.MergeSettings(models.DefaultSettings(key), &global, override), nil
}

func (s *gameConfigService) GlobalProbability(ctx context.Context, key models.GameKey) (float64, error) {
	if !key.Valid() {
		return 0, ErrUnknownGame
	}
	global, err := s.globalSettings(ctx, key)
	if err != nil {
		return 0, err
	}
	return global.Probability(key), nil
}

func (s *gameConfigService) SetGlobalPercent(ctx context.Context, key models.GameKey, percent float64) error {
	if !key.Valid() {
		return ErrUnknownGame
	}
	if percent < 0 || percent > 100 {
		return fmt.Errorf("percent must be between 0 and 100, got %v", percent)
	}

	p := percent / 100
	if err := s.configRepo.SetGlobal(ctx, key, models.SettingsForProbability(key, p)); err != nil {
		return fmt.Errorf("failed to set global settings: %w", err)
	}

	s.eventPublisher.Publish(events.ConfigChangeEvent{
		Game:        key,
		Probability: p,
	})
	return nil
}

func (s *gameConfigService) SetUserOverridePercent(ctx context.Context, userID string, key models.GameKey, percent float64) error {
	if !key.Valid() {
		return ErrUnknownGame
	}
	if percent < 0 || percent > 100 {
		return fmt.Errorf("percent must be between 0 and 100, got %v", percent)
	}

	p := percent / 100
	if err := s.configRepo.SetUserOverride(ctx, userID, key, models.SettingsForProbability(key, p)); err != nil {
		return fmt.Errorf("failed to set user override: %w", err)
	}

	s.eventPublisher.Publish(events.ConfigChangeEvent{
		Game:        key,
		UserID:      userID,
		Probability: p,
	})
	return nil
}

func (s *gameConfigService) ClearUserOverride(ctx context.Context, userID string, key models.GameKey) error {
	if !key.Valid() {
		return ErrUnknownGame
	}
	if err := s.configRepo.ClearUserOverride(ctx, userID, key); err != nil {
		return fmt.Errorf("failed to clear user override: %w", err)
	}

	s.eventPublisher.Publish(events.ConfigChangeEvent{
		Game:    key,
		UserID:  userID,
		Cleared: true,
	})
	return nil
}

func (s *gameConfigService) UserOverrideProbabilities(ctx context.Context, userID string) (map[models.GameKey]float64, error) {
	overrides, err := s.configRepo.GetUserOverrides(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user overrides: %w", err)
	}

	probs := make(map[models.GameKey]float64, len(overrides))
	for key, settings := range overrides {
		if settings == nil {
			continue
		}
		probs[key] = settings.Probability(key)
	}
	return probs, nil
}
