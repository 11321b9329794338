// Package schedule holds the scheduling controller and permission gate that
// sit between the screen and the notification service.
package schedule

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"remindme/internal/notify"
)

// Adapter is the notification service the controller drives.
type Adapter interface {
	Available() bool
	RequestPermission(ctx context.Context) (notify.Settings, error)
	OpenNotificationSettings(ctx context.Context) error
	CreateChannel(ctx context.Context, ch notify.Channel) (string, error)
	CreateTriggerNotification(ctx context.Context, n notify.Notification, trigger notify.TimestampTrigger) (string, error)
	CancelAllNotifications(ctx context.Context) error
}

// DefaultChannel is the channel every scheduled notification is posted on.
var DefaultChannel = notify.Channel{
	ID:          "scheduled",
	Name:        "Scheduled Notifications",
	Description: "Channel for scheduled notifications",
	Importance:  notify.ImportanceHigh,
}

// Payload is the fixed message carried by every scheduled notification.
type Payload struct {
	Title string
	Body  string
	Sound bool
	Icon  string
}

// Options configures a Controller.
type Options struct {
	Payload  Payload
	Platform notify.Platform

	// InitialTime is the scheduled time shown before the user picks one.
	InitialTime time.Time

	Now    func() time.Time
	Logger *slog.Logger
}

// State is a snapshot of the controller's state record.
type State struct {
	Available         bool
	PermissionGranted bool
	Scheduled         bool
	ScheduledTime     time.Time
	TriggerID         string
}

// Result describes a successful registration.
type Result struct {
	TriggerID string
	ChannelID string
	At        time.Time
}

// Controller validates scheduling requests and keeps at most one trigger
// registered with the notification service.
// It is safe for concurrent use; operations are serialized.
type Controller struct {
	adapter  Adapter
	gate     *Gate
	payload  Payload
	platform notify.Platform
	now      func() time.Time
	logger   *slog.Logger

	op sync.Mutex // serializes operations

	mu    sync.RWMutex
	state State
}

// NewController creates a controller for adapter.
func NewController(adapter Adapter, opts Options) *Controller {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	platform := opts.Platform
	if platform == "" {
		platform = notify.CurrentPlatform()
	}

	return &Controller{
		adapter:  adapter,
		gate:     NewGate(adapter, logger),
		payload:  opts.Payload,
		platform: platform,
		now:      now,
		logger:   logger.With("module", "scheduler"),
		state: State{
			Available:     adapter.Available(),
			ScheduledTime: opts.InitialTime,
		},
	}
}

// State returns a snapshot of the state record.
func (c *Controller) State() State {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.state
}

// Now returns the current time according to the controller clock.
func (c *Controller) Now() time.Time {
	return c.now()
}

// RequestPermission runs the permission gate and records the outcome.
func (c *Controller) RequestPermission(ctx context.Context) (bool, error) {
	c.op.Lock()
	defer c.op.Unlock()
	return c.requestPermission(ctx)
}

func (c *Controller) requestPermission(ctx context.Context) (bool, error) {
	granted, err := c.gate.Request(ctx)
	if errors.Is(err, ErrCapabilityUnavailable) {
		return false, err
	}

	c.mu.Lock()
	c.state.PermissionGranted = granted
	c.mu.Unlock()

	return granted, err
}

// OpenSettings opens the system notification settings.
func (c *Controller) OpenSettings(ctx context.Context) error {
	return c.gate.OpenSettings(ctx)
}

// SelectTime overwrites the scheduled time. A new time invalidates any
// earlier schedule claim until the user schedules again.
func (c *Controller) SelectTime(t time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state.ScheduledTime = t
	c.state.Scheduled = false
}

// ScheduleSelected schedules the currently selected time.
func (c *Controller) ScheduleSelected(ctx context.Context) (Result, error) {
	return c.Schedule(ctx, c.State().ScheduledTime)
}

// Schedule registers a single notification for at.
//
// Preconditions are checked in order: the capability must be available,
// permission must be granted (otherwise the gate runs and the call aborts),
// and at must be strictly after now. Any previous trigger is cancelled first.
func (c *Controller) Schedule(ctx context.Context, at time.Time) (Result, error) {
	c.op.Lock()
	defer c.op.Unlock()

	if !c.adapter.Available() {
		return Result{}, ErrCapabilityUnavailable
	}

	if !c.State().PermissionGranted {
		if _, err := c.requestPermission(ctx); err != nil {
			c.logger.Warn("permission request during schedule failed", "error", err)
		}
		return Result{}, ErrPermissionRequired
	}

	if !at.After(c.now()) {
		return Result{}, ErrInvalidTime
	}

	if err := c.adapter.CancelAllNotifications(ctx); err != nil {
		return Result{}, adapterError("cancel", err)
	}

	// Nothing is registered past this point until the new trigger is created.
	c.mu.Lock()
	c.state.Scheduled = false
	c.state.TriggerID = ""
	c.mu.Unlock()

	channelID, err := c.adapter.CreateChannel(ctx, DefaultChannel)
	if err != nil {
		return Result{}, adapterError("create channel", err)
	}

	payload := notify.Notification{
		Title: c.payload.Title,
		Body:  c.payload.Body,
		Presentation: notify.NewPresentation(c.platform, notify.PresentationOptions{
			ChannelID: channelID,
			Sound:     c.payload.Sound,
			Icon:      c.payload.Icon,
		}),
	}

	id, err := c.adapter.CreateTriggerNotification(ctx, payload, notify.NewTimestampTrigger(at))
	if err != nil {
		return Result{}, adapterError("create trigger", err)
	}

	c.mu.Lock()
	c.state.Scheduled = true
	c.state.TriggerID = id
	c.state.ScheduledTime = at
	c.mu.Unlock()

	c.logger.Info("notification scheduled", "id", id, "at", at.Format(time.RFC3339))
	return Result{TriggerID: id, ChannelID: channelID, At: at}, nil
}

// Cancel removes every registered trigger. It succeeds when nothing is
// scheduled.
func (c *Controller) Cancel(ctx context.Context) error {
	c.op.Lock()
	defer c.op.Unlock()

	if !c.adapter.Available() {
		return ErrCapabilityUnavailable
	}

	if err := c.adapter.CancelAllNotifications(ctx); err != nil {
		return adapterError("cancel", err)
	}

	c.mu.Lock()
	c.state.Scheduled = false
	c.state.TriggerID = ""
	c.mu.Unlock()

	c.logger.Info("scheduled notifications cancelled")
	return nil
}

// MarkDelivered clears the schedule flag when id is the active trigger.
func (c *Controller) MarkDelivered(id string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.state.Scheduled || c.state.TriggerID != id {
		return false
	}
	c.state.Scheduled = false
	c.state.TriggerID = ""
	return true
}
