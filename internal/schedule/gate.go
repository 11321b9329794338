package schedule

import (
	"context"
	"log/slog"
)

// Gate asks the notification service for authorization.
// A denial is final until the user changes their settings; Gate never retries.
type Gate struct {
	adapter Adapter
	logger  *slog.Logger
}

// NewGate creates a Gate on top of adapter.
func NewGate(adapter Adapter, logger *slog.Logger) *Gate {
	if logger == nil {
		logger = slog.Default()
	}
	return &Gate{adapter: adapter, logger: logger.With("module", "permission_gate")}
}

// Request asks for notification permission and reports whether it was granted.
func (g *Gate) Request(ctx context.Context) (bool, error) {
	if !g.adapter.Available() {
		return false, ErrCapabilityUnavailable
	}

	settings, err := g.adapter.RequestPermission(ctx)
	if err != nil {
		g.logger.Error("permission request failed", "error", err)
		return false, adapterError("request permission", err)
	}

	granted := settings.AuthorizationStatus.Granted()
	g.logger.Info("permission resolved", "status", settings.AuthorizationStatus.String(), "granted", granted)
	return granted, nil
}

// OpenSettings opens the system notification settings.
func (g *Gate) OpenSettings(ctx context.Context) error {
	if !g.adapter.Available() {
		return ErrCapabilityUnavailable
	}
	if err := g.adapter.OpenNotificationSettings(ctx); err != nil {
		return adapterError("open settings", err)
	}
	return nil
}
