package types

import "time"

// Toast represents a notification message
type Toast struct {
	Level   ToastLevel
	Message string
	Expires time.Time
}

// ToastLevel indicates the severity of a toast
type ToastLevel int

const (
	ToastInfo ToastLevel = iota
	ToastSuccess
	ToastWarning
)

// Live returns the toasts that have not expired at now
func Live(toasts []Toast, now time.Time) []Toast {
	live := toasts[:0:0]
	for _, t := range toasts {
		if now.Before(t.Expires) {
			live = append(live, t)
		}
	}
	return live
}
