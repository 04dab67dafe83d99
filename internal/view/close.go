package view

import "context"

// CloseReason says why a View was closed.
type CloseReason int

const (
	ReasonUnknown CloseReason = iota
	// ReasonUser means the user closed the display.
	ReasonUser
	// ReasonPlugin means application code closed the View.
	ReasonPlugin
	// ReasonOpenNew means another View was opened for the same user.
	ReasonOpenNew
	// ReasonDisconnect means the user's session went away.
	ReasonDisconnect
	// ReasonShutdown means the host is shutting down.
	ReasonShutdown
)

func (r CloseReason) String() string {
	switch r {
	case ReasonUser:
		return "user"
	case ReasonPlugin:
		return "plugin"
	case ReasonOpenNew:
		return "open_new"
	case ReasonDisconnect:
		return "disconnect"
	case ReasonShutdown:
		return "shutdown"
	default:
		return "unknown"
	}
}

// CloseHandler runs once when a View closes.
type CloseHandler func(ctx context.Context, reason CloseReason, v *View) error
