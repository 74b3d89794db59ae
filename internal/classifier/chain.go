package classifier

import (
	"context"
	"errors"
	"log/slog"

	"github.com/shopspring/decimal"

	"github.com/lunebudget/true_cost_app/internal/apperrors"
	"github.com/lunebudget/true_cost_app/internal/core/domain"
	portssvc "github.com/lunebudget/true_cost_app/internal/core/ports/services"
	"github.com/lunebudget/true_cost_app/internal/middleware"
	"github.com/lunebudget/true_cost_app/internal/platform/config"
)

// ChainClassifier tries the remote classifier first and falls back to local
// rules when it fails. Only classifier failures trigger the fallback;
// anything else is returned as-is.
type ChainClassifier struct {
	remote   portssvc.Classifier
	fallback portssvc.Classifier
}

// NewChainClassifier wires remote over fallback. remote may be nil, in which
// case only the fallback runs.
func NewChainClassifier(remote, fallback portssvc.Classifier) *ChainClassifier {
	return &ChainClassifier{remote: remote, fallback: fallback}
}

// NewClassifierFromConfig assembles the classifier stack the configuration
// asks for: remote Gemini over local rules, or rules alone when the remote
// side is disabled or has no API key.
func NewClassifierFromConfig(cfg *config.Config) portssvc.Classifier {
	rules := NewRulesClassifier(cfg.CapitalAmountThreshold, cfg.FallbackUsefulLifeYears)
	if !cfg.ClassifierEnabled || cfg.GeminiAPIKey == "" {
		return NewChainClassifier(nil, rules)
	}
	remote := NewGenaiClassifier(cfg.ClassifierModel, cfg.ClassifierTimeout)
	return NewChainClassifier(remote, rules)
}

var _ portssvc.Classifier = (*ChainClassifier)(nil)

// Classify consults the remote classifier and degrades to rules on
// apperrors.ErrClassifier.
func (c *ChainClassifier) Classify(ctx context.Context, description string, amount decimal.Decimal) (*domain.Classification, error) {
	if c.remote != nil {
		classification, err := c.remote.Classify(ctx, description, amount)
		if err == nil {
			return classification, nil
		}
		if !errors.Is(err, apperrors.ErrClassifier) {
			return nil, err
		}
		logger := middleware.GetLoggerFromCtx(ctx)
		logger.Warn("Remote classification failed, falling back to local rules", slog.String("error", err.Error()))
	}
	return c.fallback.Classify(ctx, description, amount)
}
