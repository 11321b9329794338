package notify

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os/exec"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/robfig/cron/v3"
)

var (
	ErrUnavailable    = errors.New("no notifier for this platform")
	ErrTriggerInPast  = errors.New("trigger time is not in the future")
	ErrUnknownChannel = errors.New("unknown notification channel")
)

// deliveryBuffer bounds how many undrained deliveries are kept.
const deliveryBuffer = 16

// CenterConfig configures a Center.
type CenterConfig struct {
	// Enabled is the user-level permission switch.
	Enabled bool

	// SettingsPath is opened when the platform has no settings application.
	SettingsPath string

	Logger *slog.Logger
}

// Center is the local notification service. It tracks channels and pending
// timestamp triggers and delivers them through a Notifier when they fire.
// Pending triggers do not outlive the process.
type Center struct {
	notifier Notifier
	cfg      CenterConfig
	logger   *slog.Logger
	validate *validator.Validate
	cron     *cron.Cron

	// run starts an external program; replaced in tests.
	run func(ctx context.Context, name string, args ...string) error
	now func() time.Time

	mu         sync.Mutex
	channels   map[string]Channel
	pending    map[string]cron.EntryID
	deliveries chan Delivery
}

// NewCenter creates a Center on top of n. A nil n yields a Center that
// reports itself unavailable.
func NewCenter(n Notifier, cfg CenterConfig) *Center {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	logger = logger.With("module", "notify_center")

	cl := cronLogger{logger: logger}

	return &Center{
		notifier: n,
		cfg:      cfg,
		logger:   logger,
		validate: validator.New(validator.WithRequiredStructEnabled()),
		cron: cron.New(
			cron.WithLogger(cl),
			cron.WithChain(cron.Recover(cl)),
		),
		run:        startProcess,
		now:        time.Now,
		channels:   make(map[string]Channel),
		pending:    make(map[string]cron.EntryID),
		deliveries: make(chan Delivery, deliveryBuffer),
	}
}

// Start starts the trigger engine.
func (c *Center) Start() {
	c.cron.Start()
}

// Stop stops the trigger engine and waits for running deliveries.
func (c *Center) Stop() {
	<-c.cron.Stop().Done()
}

// Available reports whether this build can post notifications at all.
func (c *Center) Available() bool {
	return c.notifier != nil
}

// Deliveries returns fired triggers. Deliveries are dropped when nobody reads.
func (c *Center) Deliveries() <-chan Delivery {
	return c.deliveries
}

// Pending returns the number of registered, unfired triggers.
func (c *Center) Pending() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.pending)
}

// RequestPermission reports the authorization status. Notifications are
// authorized when enabled in the config and the platform tool is installed.
func (c *Center) RequestPermission(ctx context.Context) (Settings, error) {
	if !c.Available() {
		return Settings{}, ErrUnavailable
	}
	if err := ctx.Err(); err != nil {
		return Settings{}, err
	}

	status := AuthorizationAuthorized
	switch {
	case !c.cfg.Enabled:
		status = AuthorizationDenied
	case !c.notifier.IsSupported():
		status = AuthorizationDenied
	}

	c.logger.Debug("permission requested", "status", status.String())
	return Settings{AuthorizationStatus: status}, nil
}

// OpenNotificationSettings opens the platform notification settings.
func (c *Center) OpenNotificationSettings(ctx context.Context) error {
	name, args, err := settingsCommand(c.cfg.SettingsPath)
	if err != nil {
		return err
	}
	if err := c.run(ctx, name, args...); err != nil {
		return fmt.Errorf("open notification settings: %w", err)
	}
	return nil
}

// CreateChannel registers ch, replacing any channel with the same ID.
func (c *Center) CreateChannel(ctx context.Context, ch Channel) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if err := c.validate.Struct(ch); err != nil {
		return "", fmt.Errorf("invalid channel: %w", err)
	}

	c.mu.Lock()
	c.channels[ch.ID] = ch
	c.mu.Unlock()

	return ch.ID, nil
}

// CreateTriggerNotification registers n to be delivered when trigger fires
// and returns the notification ID.
func (c *Center) CreateTriggerNotification(ctx context.Context, n Notification, trigger TimestampTrigger) (string, error) {
	if !c.Available() {
		return "", ErrUnavailable
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if err := c.validate.Struct(n); err != nil {
		return "", fmt.Errorf("invalid notification: %w", err)
	}
	if err := c.validate.Struct(trigger); err != nil {
		return "", fmt.Errorf("invalid trigger: %w", err)
	}

	at := trigger.Time()
	if !at.After(c.now()) {
		return "", ErrTriggerInPast
	}

	if n.ID == "" {
		n.ID = uuid.NewString()
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if n.Presentation.Linux != nil {
		if _, ok := c.channels[n.Presentation.Linux.ChannelID]; !ok {
			return "", fmt.Errorf("%w: %s", ErrUnknownChannel, n.Presentation.Linux.ChannelID)
		}
	}

	if old, ok := c.pending[n.ID]; ok {
		c.cron.Remove(old)
	}
	c.pending[n.ID] = c.cron.Schedule(onceAt(at), cron.FuncJob(func() { c.fire(n) }))

	c.logger.Info("trigger registered", "id", n.ID, "at", at.Format(time.RFC3339))
	return n.ID, nil
}

// CancelAllNotifications removes every pending trigger. It is a no-op when
// nothing is pending.
func (c *Center) CancelAllNotifications(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	for id, entry := range c.pending {
		c.cron.Remove(entry)
		delete(c.pending, id)
	}
	c.logger.Debug("pending triggers cancelled")
	return nil
}

// fire delivers n unless it was cancelled after the cron entry became due.
func (c *Center) fire(n Notification) {
	c.mu.Lock()
	entry, ok := c.pending[n.ID]
	if ok {
		delete(c.pending, n.ID)
	}
	msg := c.message(n)
	c.mu.Unlock()

	if !ok {
		return
	}
	c.cron.Remove(entry)

	err := c.notifier.Send(msg)
	if err != nil {
		c.logger.Error("delivery failed", "id", n.ID, "error", err)
	} else {
		c.logger.Info("notification delivered", "id", n.ID)
	}

	d := Delivery{ID: n.ID, Title: n.Title, FiredAt: c.now(), Err: err}
	select {
	case c.deliveries <- d:
	default:
		c.logger.Warn("delivery dropped, nobody listening", "id", n.ID)
	}
}

// message resolves the presentation variant of n into a Message.
// Caller must hold c.mu.
func (c *Center) message(n Notification) Message {
	msg := Message{Title: n.Title, Body: n.Body, Urgency: UrgencyNormal}

	switch {
	case n.Presentation.Darwin != nil:
		msg.Sound = n.Presentation.Darwin.Sound
	case n.Presentation.Linux != nil:
		msg.Icon = n.Presentation.Linux.Icon
		if ch, ok := c.channels[n.Presentation.Linux.ChannelID]; ok {
			msg.Urgency = ch.Importance.urgency()
		}
	}
	return msg
}

// onceAt is a cron.Schedule that fires a single time.
type onceAt time.Time

// Next returns the fire time while it is still ahead of t, and the zero
// time afterwards so cron never runs the entry again.
func (o onceAt) Next(t time.Time) time.Time {
	at := time.Time(o)
	if at.After(t) {
		return at
	}
	return time.Time{}
}

// cronLogger adapts slog to cron.Logger.
type cronLogger struct {
	logger *slog.Logger
}

func (l cronLogger) Info(msg string, keysAndValues ...interface{}) {
	l.logger.Debug(msg, keysAndValues...)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	l.logger.Error(msg, append(keysAndValues, "error", err)...)
}

// startProcess launches a GUI helper without waiting for it to exit.
func startProcess(ctx context.Context, name string, args ...string) error {
	cmd := exec.CommandContext(ctx, name, args...)
	if err := cmd.Start(); err != nil {
		return err
	}
	go func() { _ = cmd.Wait() }()
	return nil
}
