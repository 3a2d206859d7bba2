// Package urlcodec maps timer state to and from flat URL query parameters so
// any configuration is a shareable link.
package urlcodec

import (
	"net/url"
	"strconv"
	"time"

	"github.com/dropclock/dropclock/internal/catalog"
	"github.com/dropclock/dropclock/internal/models"
	"github.com/dropclock/dropclock/internal/store"
	"github.com/dropclock/dropclock/internal/timezone"
)

// Recognized query parameter keys.
const (
	ParamGame     = "game"
	ParamDate     = "date"
	ParamTimezone = "timezone"
	ParamTitle    = "title"
	ParamColor    = "color"
	ParamBG       = "bg"
	ParamOverlay  = "obs"

	ParamDigitColor   = "dcolor"
	ParamLabelColor   = "lcolor"
	ParamDigitSize    = "dsize"
	ParamLabelSize    = "lsize"
	ParamTitleSize    = "tsize"
	ParamGlowColor    = "gcolor"
	ParamGlowInt      = "gintensity"
	ParamGlowSpread   = "gspread"
	ParamScanlines    = "scan"
	ParamBGOpacity    = "bopacity"
	ParamBGBlur       = "bblur"
	ParamFont         = "font"
	ParamBorderWidth  = "bwidth"
	ParamBorderColor  = "bcolor"
	ParamSpeed        = "speed"
	ParamScanOpacity  = "sopacity"
	ParamShine        = "shine"
	ParamShineOpacity = "shopacity"
)

// DefaultSynthesizedTitle names events reconstructed from a shared link whose
// id is not in the receiver's catalog.
const DefaultSynthesizedTitle = "Custom Timer"

// Encode serializes the active event and settings to query parameters. The
// deadline is the one resolved for the encoding viewer; colors are written as
// bare hex without '#'; nil customization fields are omitted.
func Encode(snap store.Snapshot) url.Values {
	v := url.Values{}
	ev := snap.Active()
	deadline, label := timezone.Resolve(ev, snap.ViewerTimezone)

	v.Set(ParamGame, ev.ID)
	v.Set(ParamDate, deadline.UTC().Format(time.RFC3339))
	v.Set(ParamTimezone, label)
	v.Set(ParamTitle, ev.Title)
	if ev.TitleColor != "" {
		v.Set(ParamColor, stripHash(ev.TitleColor))
	}

	s := snap.Settings
	v.Set(ParamBG, formatBool(s.EnableGameBackground))
	setColor(v, ParamDigitColor, s.DigitColor)
	setColor(v, ParamLabelColor, s.LabelColor)
	setInt(v, ParamDigitSize, s.DigitSize)
	setInt(v, ParamLabelSize, s.LabelSize)
	setInt(v, ParamTitleSize, s.TitleSize)
	setColor(v, ParamGlowColor, s.GlowColor)
	setFloat(v, ParamGlowInt, s.GlowIntensity)
	setFloat(v, ParamGlowSpread, s.GlowSpread)
	v.Set(ParamScanlines, formatBool(s.ShowScanlines))
	setFloat(v, ParamBGOpacity, s.BackgroundOpacity)
	setFloat(v, ParamBGBlur, s.BackgroundBlur)
	if s.OverlayFont != nil {
		v.Set(ParamFont, *s.OverlayFont)
	}
	setInt(v, ParamBorderWidth, s.BorderWidth)
	setColor(v, ParamBorderColor, s.BorderColor)
	setFloat(v, ParamSpeed, s.AnimationSpeed)
	setFloat(v, ParamScanOpacity, s.ScanlineOpacity)
	v.Set(ParamShine, formatBool(s.ShowShine))
	setFloat(v, ParamShineOpacity, s.ShineOpacity)

	if snap.OverlayMode {
		v.Set(ParamOverlay, "1")
	}
	return v
}

// Decode applies query parameters to the store. Unparseable values are
// ignored field by field; absent parameters never overwrite existing state.
func Decode(values url.Values, st *store.Store) {
	gameID := values.Get(ParamGame)
	date, dateOK := parseInstant(values.Get(ParamDate))
	tz := values.Get(ParamTimezone)
	color, colorOK := parseHexColor(values.Get(ParamColor))

	if gameID != "" {
		snap := st.Snapshot()
		if idx := catalog.FindIndex(snap.Catalog, gameID); idx >= 0 {
			st.SetActiveIndex(idx)
			if dateOK {
				st.SetDeadline(date, tz)
			}
			if colorOK {
				st.SetTitleColor(color)
			}
		} else if dateOK {
			// Unknown id with a valid date: reconstruct the shared timer so
			// the link still counts down on this catalog.
			title := values.Get(ParamTitle)
			if title == "" {
				title = DefaultSynthesizedTitle
			}
			st.AddEvent(title, date, tz, models.CategoryGame, gameID)
			if colorOK {
				st.SetTitleColor(color)
			}
		}
	}

	if values.Has(ParamBG) {
		enabled := values.Get(ParamBG) == "1"
		st.UpdateSettings(models.SettingsPatch{EnableGameBackground: &enabled})
	}

	if values.Get(ParamOverlay) == "1" {
		st.SetOverlayMode(true)
	}

	var patch models.SettingsPatch
	patch.DigitColor = hexColorParam(values, ParamDigitColor)
	patch.LabelColor = hexColorParam(values, ParamLabelColor)
	patch.DigitSize = intParam(values, ParamDigitSize)
	patch.LabelSize = intParam(values, ParamLabelSize)
	patch.TitleSize = intParam(values, ParamTitleSize)
	patch.GlowColor = hexColorParam(values, ParamGlowColor)
	patch.GlowIntensity = floatParam(values, ParamGlowInt)
	patch.GlowSpread = floatParam(values, ParamGlowSpread)
	patch.ShowScanlines = boolParam(values, ParamScanlines)
	patch.BackgroundOpacity = floatParam(values, ParamBGOpacity)
	patch.BackgroundBlur = floatParam(values, ParamBGBlur)
	if font := values.Get(ParamFont); font != "" {
		patch.OverlayFont = &font
	}
	patch.BorderWidth = intParam(values, ParamBorderWidth)
	patch.BorderColor = hexColorParam(values, ParamBorderColor)
	patch.AnimationSpeed = floatParam(values, ParamSpeed)
	patch.ScanlineOpacity = floatParam(values, ParamScanOpacity)
	patch.ShowShine = boolParam(values, ParamShine)
	patch.ShineOpacity = floatParam(values, ParamShineOpacity)
	st.UpdateSettings(patch)
}

func parseInstant(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// parseHexColor accepts exactly six hex digits, with or without a leading
// '#', and normalizes to '#'-prefixed form.
func parseHexColor(s string) (string, bool) {
	if len(s) > 0 && s[0] == '#' {
		s = s[1:]
	}
	if len(s) != 6 {
		return "", false
	}
	for _, c := range s {
		switch {
		case c >= '0' && c <= '9', c >= 'a' && c <= 'f', c >= 'A' && c <= 'F':
		default:
			return "", false
		}
	}
	return "#" + s, true
}

func stripHash(color string) string {
	if len(color) > 0 && color[0] == '#' {
		return color[1:]
	}
	return color
}

func formatBool(b bool) string {
	if b {
		return "1"
	}
	return "0"
}

func setColor(v url.Values, key string, color *string) {
	if color != nil {
		v.Set(key, stripHash(*color))
	}
}

func setInt(v url.Values, key string, n *int) {
	if n != nil {
		v.Set(key, strconv.Itoa(*n))
	}
}

func setFloat(v url.Values, key string, f *float64) {
	if f != nil {
		v.Set(key, strconv.FormatFloat(*f, 'f', -1, 64))
	}
}

func hexColorParam(values url.Values, key string) *string {
	color, ok := parseHexColor(values.Get(key))
	if !ok {
		return nil
	}
	return &color
}

func intParam(values url.Values, key string) *int {
	s := values.Get(key)
	if s == "" {
		return nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return nil
	}
	return &n
}

func floatParam(values url.Values, key string) *float64 {
	s := values.Get(key)
	if s == "" {
		return nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	return &f
}

func boolParam(values url.Values, key string) *bool {
	if !values.Has(key) || values.Get(key) == "" {
		return nil
	}
	b := values.Get(key) == "1"
	return &b
}
