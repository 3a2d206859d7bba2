package models

// TimerSettings is the mutable display configuration bag. Pointer fields are
// overlay customizations: nil means the render layer falls back to its own
// default, the engine never substitutes one.
type TimerSettings struct {
	FontFamily           string `json:"font_family"`
	TextColor            string `json:"text_color"`
	BackgroundColor      string `json:"background_color"`
	FontSize             int    `json:"font_size"`
	EnableAnimation      bool   `json:"enable_animation"`
	EnableSound          bool   `json:"enable_sound"`
	EnableSoundToggle    bool   `json:"enable_sound_toggle"`
	Theme                string `json:"theme"`
	EnableGameBackground bool   `json:"enable_game_background"`
	EnableHolidayTheme   bool   `json:"enable_holiday_theme"`

	DigitColor        *string  `json:"digit_color,omitempty"`
	LabelColor        *string  `json:"label_color,omitempty"`
	DigitSize         *int     `json:"digit_size,omitempty"`
	LabelSize         *int     `json:"label_size,omitempty"`
	TitleSize         *int     `json:"title_size,omitempty"`
	GlowColor         *string  `json:"glow_color,omitempty"`
	GlowIntensity     *float64 `json:"glow_intensity,omitempty"`
	GlowSpread        *float64 `json:"glow_spread,omitempty"`
	ShowScanlines     bool     `json:"show_scanlines"`
	BackgroundOpacity *float64 `json:"background_opacity,omitempty"`
	BackgroundBlur    *float64 `json:"background_blur,omitempty"`
	OverlayFont       *string  `json:"overlay_font,omitempty"`
	BorderWidth       *int     `json:"border_width,omitempty"`
	BorderColor       *string  `json:"border_color,omitempty"`
	AnimationSpeed    *float64 `json:"animation_speed,omitempty"`
	ScanlineOpacity   *float64 `json:"scanline_opacity,omitempty"`
	ShowShine         bool     `json:"show_shine"`
	ShineOpacity      *float64 `json:"shine_opacity,omitempty"`
}

// DefaultSettings returns the settings a fresh timer starts with.
func DefaultSettings() TimerSettings {
	return TimerSettings{
		FontFamily:           "Inter",
		TextColor:            "#ffffff",
		BackgroundColor:      "#1a1a1a",
		FontSize:             48,
		EnableAnimation:      true,
		EnableSound:          false,
		EnableSoundToggle:    true,
		Theme:                "dark",
		EnableGameBackground: true,
		EnableHolidayTheme:   false,
		ShowScanlines:        true,
		ShowShine:            true,
	}
}

// SettingsPatch is a partial update. Only non-nil fields are applied; absent
// fields leave the existing settings untouched.
type SettingsPatch struct {
	FontFamily           *string  `json:"font_family,omitempty"`
	TextColor            *string  `json:"text_color,omitempty"`
	BackgroundColor      *string  `json:"background_color,omitempty"`
	FontSize             *int     `json:"font_size,omitempty"`
	EnableAnimation      *bool    `json:"enable_animation,omitempty"`
	EnableSound          *bool    `json:"enable_sound,omitempty"`
	EnableSoundToggle    *bool    `json:"enable_sound_toggle,omitempty"`
	Theme                *string  `json:"theme,omitempty"`
	EnableGameBackground *bool    `json:"enable_game_background,omitempty"`
	EnableHolidayTheme   *bool    `json:"enable_holiday_theme,omitempty"`
	DigitColor           *string  `json:"digit_color,omitempty"`
	LabelColor           *string  `json:"label_color,omitempty"`
	DigitSize            *int     `json:"digit_size,omitempty"`
	LabelSize            *int     `json:"label_size,omitempty"`
	TitleSize            *int     `json:"title_size,omitempty"`
	GlowColor            *string  `json:"glow_color,omitempty"`
	GlowIntensity        *float64 `json:"glow_intensity,omitempty"`
	GlowSpread           *float64 `json:"glow_spread,omitempty"`
	ShowScanlines        *bool    `json:"show_scanlines,omitempty"`
	BackgroundOpacity    *float64 `json:"background_opacity,omitempty"`
	BackgroundBlur       *float64 `json:"background_blur,omitempty"`
	OverlayFont          *string  `json:"overlay_font,omitempty"`
	BorderWidth          *int     `json:"border_width,omitempty"`
	BorderColor          *string  `json:"border_color,omitempty"`
	AnimationSpeed       *float64 `json:"animation_speed,omitempty"`
	ScanlineOpacity      *float64 `json:"scanline_opacity,omitempty"`
	ShowShine            *bool    `json:"show_shine,omitempty"`
	ShineOpacity         *float64 `json:"shine_opacity,omitempty"`
}

// Apply merges the patch into s, field by field.
func (p SettingsPatch) Apply(s *TimerSettings) {
	if p.FontFamily != nil {
		s.FontFamily = *p.FontFamily
	}
	if p.TextColor != nil {
		s.TextColor = *p.TextColor
	}
	if p.BackgroundColor != nil {
		s.BackgroundColor = *p.BackgroundColor
	}
	if p.FontSize != nil {
		s.FontSize = *p.FontSize
	}
	if p.EnableAnimation != nil {
		s.EnableAnimation = *p.EnableAnimation
	}
	if p.EnableSound != nil {
		s.EnableSound = *p.EnableSound
	}
	if p.EnableSoundToggle != nil {
		s.EnableSoundToggle = *p.EnableSoundToggle
	}
	if p.Theme != nil {
		s.Theme = *p.Theme
	}
	if p.EnableGameBackground != nil {
		s.EnableGameBackground = *p.EnableGameBackground
	}
	if p.EnableHolidayTheme != nil {
		s.EnableHolidayTheme = *p.EnableHolidayTheme
	}
	if p.DigitColor != nil {
		s.DigitColor = p.DigitColor
	}
	if p.LabelColor != nil {
		s.LabelColor = p.LabelColor
	}
	if p.DigitSize != nil {
		s.DigitSize = p.DigitSize
	}
	if p.LabelSize != nil {
		s.LabelSize = p.LabelSize
	}
	if p.TitleSize != nil {
		s.TitleSize = p.TitleSize
	}
	if p.GlowColor != nil {
		s.GlowColor = p.GlowColor
	}
	if p.GlowIntensity != nil {
		s.GlowIntensity = p.GlowIntensity
	}
	if p.GlowSpread != nil {
		s.GlowSpread = p.GlowSpread
	}
	if p.ShowScanlines != nil {
		s.ShowScanlines = *p.ShowScanlines
	}
	if p.BackgroundOpacity != nil {
		s.BackgroundOpacity = p.BackgroundOpacity
	}
	if p.BackgroundBlur != nil {
		s.BackgroundBlur = p.BackgroundBlur
	}
	if p.OverlayFont != nil {
		s.OverlayFont = p.OverlayFont
	}
	if p.BorderWidth != nil {
		s.BorderWidth = p.BorderWidth
	}
	if p.BorderColor != nil {
		s.BorderColor = p.BorderColor
	}
	if p.AnimationSpeed != nil {
		s.AnimationSpeed = p.AnimationSpeed
	}
	if p.ScanlineOpacity != nil {
		s.ScanlineOpacity = p.ScanlineOpacity
	}
	if p.ShowShine != nil {
		s.ShowShine = *p.ShowShine
	}
	if p.ShineOpacity != nil {
		s.ShineOpacity = p.ShineOpacity
	}
}

// IsEmpty reports whether the patch would change nothing.
func (p SettingsPatch) IsEmpty() bool {
	return p == SettingsPatch{}
}
