package preferences

import "ringtimer/internal/core/model"

// Settings defines editable user preferences.
type Settings struct {
	DefaultDurationMinutes int
	NotifyOnFinish         bool
}

// DefaultSettings returns default settings for RingTimer.
func DefaultSettings() Settings {
	return Settings{
		DefaultDurationMinutes: model.DurationChoices[0],
		NotifyOnFinish:         true,
	}
}

// Normalize replaces unsupported values with defaults.
func (settings Settings) Normalize() Settings {
	if !model.ValidDuration(settings.DefaultDurationMinutes) {
		settings.DefaultDurationMinutes = model.DurationChoices[0]
	}
	return settings
}
