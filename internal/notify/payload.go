package notify

import (
	"fmt"
	"time"
)

// AuthorizationStatus mirrors the authorization levels a notification
// service can report. Anything at or above Authorized may post notifications.
type AuthorizationStatus int

const (
	AuthorizationNotDetermined AuthorizationStatus = -1
	AuthorizationDenied        AuthorizationStatus = 0
	AuthorizationAuthorized    AuthorizationStatus = 1
	AuthorizationProvisional   AuthorizationStatus = 2
)

// Granted reports whether the status allows posting notifications.
func (s AuthorizationStatus) Granted() bool {
	return s >= AuthorizationAuthorized
}

func (s AuthorizationStatus) String() string {
	switch s {
	case AuthorizationNotDetermined:
		return "not determined"
	case AuthorizationDenied:
		return "denied"
	case AuthorizationAuthorized:
		return "authorized"
	case AuthorizationProvisional:
		return "provisional"
	default:
		return fmt.Sprintf("AuthorizationStatus(%d)", int(s))
	}
}

// Settings is the answer to a permission request.
type Settings struct {
	AuthorizationStatus AuthorizationStatus
}

// Importance controls how intrusive notifications on a channel are.
type Importance int

const (
	ImportanceNone    Importance = 0
	ImportanceMin     Importance = 1
	ImportanceLow     Importance = 2
	ImportanceDefault Importance = 3
	ImportanceHigh    Importance = 4
)

// urgency maps a channel importance onto a notify-send urgency.
func (i Importance) urgency() Urgency {
	switch {
	case i >= ImportanceHigh:
		return UrgencyCritical
	case i <= ImportanceLow:
		return UrgencyLow
	default:
		return UrgencyNormal
	}
}

// Channel is a named category of notifications sharing presentation properties.
type Channel struct {
	ID          string     `validate:"required,max=64"`
	Name        string     `validate:"required,max=120"`
	Description string     `validate:"max=300"`
	Importance  Importance `validate:"gte=0,lte=4"`
}

// DarwinPresentation holds macOS foreground presentation options.
type DarwinPresentation struct {
	Badge  bool
	Sound  bool
	Banner bool
	List   bool
}

// LinuxPresentation holds the Linux channel and press-action options.
type LinuxPresentation struct {
	ChannelID     string `validate:"required"`
	Icon          string
	PressActionID string
}

// Presentation is a variant keyed by Platform. Exactly the field matching
// Platform is set.
type Presentation struct {
	Platform Platform
	Darwin   *DarwinPresentation
	Linux    *LinuxPresentation
}

// PresentationOptions are the platform-neutral knobs a payload is built from.
type PresentationOptions struct {
	ChannelID string
	Sound     bool
	Icon      string
}

// NewPresentation resolves opts into the variant for platform.
func NewPresentation(platform Platform, opts PresentationOptions) Presentation {
	switch platform {
	case PlatformDarwin:
		return Presentation{
			Platform: platform,
			Darwin: &DarwinPresentation{
				Badge:  true,
				Sound:  opts.Sound,
				Banner: true,
				List:   true,
			},
		}
	case PlatformLinux:
		return Presentation{
			Platform: platform,
			Linux: &LinuxPresentation{
				ChannelID:     opts.ChannelID,
				Icon:          opts.Icon,
				PressActionID: "default",
			},
		}
	default:
		return Presentation{Platform: PlatformOther}
	}
}

// Notification is the payload handed to CreateTriggerNotification.
// ID is assigned by the Center when empty.
type Notification struct {
	ID           string
	Title        string `validate:"required,max=200"`
	Body         string `validate:"max=1000"`
	Presentation Presentation
}

// TriggerType selects how a trigger decides when to fire.
type TriggerType int

const (
	TriggerTimestamp TriggerType = iota
)

// TimestampTrigger fires once at an absolute time in epoch milliseconds.
type TimestampTrigger struct {
	Type      TriggerType `validate:"eq=0"`
	Timestamp int64       `validate:"gt=0"`
}

// NewTimestampTrigger creates a one-shot trigger for at.
func NewTimestampTrigger(at time.Time) TimestampTrigger {
	return TimestampTrigger{Type: TriggerTimestamp, Timestamp: at.UnixMilli()}
}

// Time returns the trigger's fire time.
func (t TimestampTrigger) Time() time.Time {
	return time.UnixMilli(t.Timestamp)
}

// Delivery reports a trigger that fired.
type Delivery struct {
	ID      string
	Title   string
	FiredAt time.Time
	Err     error
}
