package model

// AppConfig holds application-wide preferences and default solve settings.
type AppConfig struct {
	DefaultMode        Mode    `json:"default_mode"`
	DefaultAllowRotate bool    `json:"default_allow_rotate"`
	DefaultMaxIter     int     `json:"default_max_iter"`
	DefaultTemperature float64 `json:"default_temperature"`

	AutoSaveInterval int      `json:"auto_save_interval"` // minutes, 0 = disabled
	RecentRequests   []string `json:"recent_requests"`
}

// DefaultAppConfig returns an AppConfig populated with sensible defaults
// matching the values from DefaultSettings().
func DefaultAppConfig() AppConfig {
	defaults := DefaultSettings()
	return AppConfig{
		DefaultMode:        defaults.Mode,
		DefaultAllowRotate: defaults.AllowRotate,
		DefaultMaxIter:     defaults.MaxIter,
		DefaultTemperature: defaults.Temperature,
		AutoSaveInterval:   0,
		RecentRequests:     []string{},
	}
}

// ApplyToSettings copies the saved defaults from AppConfig into a SolveSettings struct.
func (c AppConfig) ApplyToSettings(s *SolveSettings) {
	s.Mode = c.DefaultMode
	s.AllowRotate = c.DefaultAllowRotate
	s.MaxIter = c.DefaultMaxIter
	s.Temperature = c.DefaultTemperature
}
