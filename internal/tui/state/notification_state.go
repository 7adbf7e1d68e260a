package state

// NotificationLevel represents the severity/type of a notification.
type NotificationLevel int

const (
	// LevelInfo represents informational notifications (blue, bell icon)
	LevelInfo NotificationLevel = iota
	// LevelWarning is used for refused actions, e.g. editing outside edit mode
	LevelWarning
	// LevelError represents failed store operations
	LevelError
)

// Notification represents a single notification message with a severity level.
type Notification struct {
	Level   NotificationLevel
	Message string
}

// NotificationState holds the messages shown next to the tab bar.
// Only the latest one is displayed; it is cleared on the next key press.
type NotificationState struct {
	notifications []Notification
}

// NewNotificationState creates a new NotificationState with no notifications.
func NewNotificationState() *NotificationState {
	return &NotificationState{}
}

// Add adds a new notification with the specified level and message.
func (s *NotificationState) Add(level NotificationLevel, message string) {
	s.notifications = append(s.notifications, Notification{
		Level:   level,
		Message: message,
	})
}

// Info is shorthand for Add(LevelInfo, message)
func (s *NotificationState) Info(message string) { s.Add(LevelInfo, message) }

// Warn is shorthand for Add(LevelWarning, message)
func (s *NotificationState) Warn(message string) { s.Add(LevelWarning, message) }

// Error is shorthand for Add(LevelError, message)
func (s *NotificationState) Error(message string) { s.Add(LevelError, message) }

// Clear removes all notifications.
func (s *NotificationState) Clear() {
	s.notifications = nil
}

// All returns all current notifications.
func (s *NotificationState) All() []Notification {
	return s.notifications
}

// HasAny returns true if there are any notifications.
func (s *NotificationState) HasAny() bool {
	return len(s.notifications) > 0
}

// Latest returns the most recent notification
func (s *NotificationState) Latest() (Notification, bool) {
	if len(s.notifications) == 0 {
		return Notification{}, false
	}
	return s.notifications[len(s.notifications)-1], true
}
