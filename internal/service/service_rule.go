package service

import (
	"context"
	"fmt"

	"github.com/ileskov/personahub/internal/logger"
	"github.com/ileskov/personahub/internal/store"
	"github.com/ileskov/personahub/models"
)

// ruleService is the concrete implementation of RuleService. It is reached
// only through operator-gated routes; authorization happens in the transport
// layer, data integrity here.
type ruleService struct {
	ruleRepository store.RuleRepository
	logger         *logger.Logger
}

// NewRuleService constructs a RuleService backed by the given repository.
func NewRuleService(ruleRepository store.RuleRepository, logger *logger.Logger) RuleService {
	return &ruleService{
		ruleRepository: ruleRepository,
		logger:         logger,
	}
}

// ListRules returns every global rule, active or not.
func (s *ruleService) ListRules(ctx context.Context) ([]models.DataPrivacyRule, error) {
	log := logger.FromContext(ctx)

	rules, err := s.ruleRepository.ListRules(ctx)
	if err != nil {
		log.Err(err).Msg("rule listing failed")
		return nil, fmt.Errorf("rule listing failed: %w", err)
	}

	return rules, nil
}

// CreateRule adds a new global rule. The minimum level is stored as given:
// the filter hides fields whose rule token it cannot parse, so a bad token
// narrows exposure instead of widening it.
func (s *ruleService) CreateRule(ctx context.Context, rule models.DataPrivacyRule) (models.DataPrivacyRule, error) {
	log := logger.FromContext(ctx)

	if rule.FieldPath == "" || rule.MinLevel == "" {
		return models.DataPrivacyRule{}, ErrInvalidDataProvided
	}

	created, err := s.ruleRepository.CreateRule(ctx, rule)
	if err != nil {
		log.Err(err).Str("fieldPath", rule.FieldPath).Msg("rule creation failed")
		return models.DataPrivacyRule{}, fmt.Errorf("rule creation failed: %w", err)
	}

	return created, nil
}

// UpdateRule changes the level or active state of an existing rule.
func (s *ruleService) UpdateRule(ctx context.Context, rule models.DataPrivacyRule) (models.DataPrivacyRule, error) {
	log := logger.FromContext(ctx)

	if rule.RuleID == 0 || rule.MinLevel == "" {
		return models.DataPrivacyRule{}, ErrInvalidDataProvided
	}

	updated, err := s.ruleRepository.UpdateRule(ctx, rule)
	if err != nil {
		log.Err(err).Int64("ruleID", rule.RuleID).Msg("rule update failed")
		return models.DataPrivacyRule{}, fmt.Errorf("rule update failed: %w", err)
	}

	return updated, nil
}
