package catalog

import (
	"time"

	"github.com/dropclock/dropclock/internal/models"
)

func breakEvent(id, title string, minutes int, now time.Time, viewerTZ string) models.TargetEvent {
	return models.TargetEvent{
		ID:            id,
		Title:         title,
		TitleColor:    DefaultTitleColor,
		Deadline:      now.Add(time.Duration(minutes) * time.Minute),
		TimezoneLabel: viewerTZ,
		Category:      models.CategoryUtility,
	}
}

func gameEvent(id, title, color string, deadline time.Time, tz string) models.TargetEvent {
	return models.TargetEvent{
		ID:            id,
		Title:         title,
		TitleColor:    color,
		Deadline:      deadline,
		TimezoneLabel: tz,
		Category:      models.CategoryGame,
	}
}

func utc(year int, month time.Month, day, hour, min int) time.Time {
	return time.Date(year, month, day, hour, min, 0, 0, time.UTC)
}

// Defaults builds the shipped catalog. Break utilities count down from the
// moment of construction; game deadlines are fixed instants.
func Defaults(now time.Time, viewerTZ string) []models.TargetEvent {
	white := DefaultTitleColor
	return []models.TargetEvent{
		breakEvent("break-60", "eepy time 😴 (60min)", 60, now, viewerTZ),
		breakEvent("break-45", "Be Right Back (45min)", 45, now, viewerTZ),
		breakEvent("break-30", "Be Right Back (30min)", 30, now, viewerTZ),
		breakEvent("break-15", "Be Right Back (15min)", 15, now, viewerTZ),
		breakEvent("break-10", "Be Right Back (10min)", 10, now, viewerTZ),
		breakEvent("break-5", "Snack Break (5min)", 5, now, viewerTZ),

		gameEvent("tarkov-servers-going-offline", "EFT going offline", white, utc(2025, 11, 14, 11, 0), "Europe/London"),
		gameEvent("tarkov-website-back-online", "EFT website back online", white, utc(2025, 11, 14, 16, 0), "Europe/London"),
		gameEvent("tarkov-special-tarkovtv", "Special TarkovTV", white, utc(2025, 11, 15, 8, 0), "Europe/London"),
		gameEvent("starcitizen-42", "Star Citizen: Squadron 42", white, utc(2026, 12, 1, 0, 0), "UTC"),
		gameEvent("midnight-walkers", "The Midnight Walkers (Early Access)", white, utc(2026, 1, 29, 0, 0), "UTC"),
		gameEvent("slay-the-spire-2", "Slay the Spire 2 (Early Access)", "#ff69b4", utc(2025, 11, 1, 0, 0), "UTC"),
		gameEvent("enter-the-gungeon-2", "Enter the Gungeon 2", "#ff4500", utc(2026, 7, 1, 0, 0), "UTC"),
		gameEvent("tarkov-1-0-servers-down", "EFT 1.0 servers down", white, utc(2025, 12, 1, 5, 0), "Europe/London"),
		gameEvent("tarkov-1-0-servers-up", "EFT 1.0 servers up", white, utc(2025, 12, 1, 11, 0), "Europe/London"),
		gameEvent("tarkov-1-0-1-0-servers-down", "EFT 1.0.1.0 servers down", white, utc(2025, 12, 24, 6, 0), "Europe/London"),
		gameEvent("tarkov-1-0-1-0-servers-up", "EFT 1.0.1.0 servers up", white, utc(2025, 12, 24, 12, 0), "Europe/London"),
		gameEvent("tarkovtv-new-years-special-2025", "TarkovTV LIVE New Year's Special", white, utc(2025, 12, 27, 16, 0), "Europe/London"),
		gameEvent("path-of-exile-2-the-last-of-the-druids", "PoE2: The Last of the Druids", white, utc(2025, 12, 12, 19, 0), "America/Los_Angeles"),
		gameEvent("pubg-black-budget-alpha-week-1", "PUBG: Black Budget — Alpha Week 1", "#ff6b35", utc(2025, 12, 12, 9, 0), "America/Los_Angeles"),
		gameEvent("pubg-black-budget-alpha-week-2", "PUBG: Black Budget — Alpha Week 2", "#ff6b35", utc(2025, 12, 19, 9, 0), "America/Los_Angeles"),
		gameEvent("pubg-black-budget-alpha-week-1-ends", "PUBG: Black Budget — Alpha Week 1 Ends", "#ff6b35", utc(2025, 12, 15, 7, 59), "America/Los_Angeles"),
		gameEvent("pubg-black-budget-alpha-week-2-ends", "PUBG: Black Budget — Alpha Week 2 Ends", "#ff6b35", utc(2025, 12, 22, 7, 59), "America/Los_Angeles"),
		gameEvent("game-awards-2025", "The Game Awards 2025", "#ffd700", utc(2025, 12, 12, 0, 30), "America/Los_Angeles"),
		gameEvent("quarantine-zone", "Quarantine Zone: The Last Check", white, utc(2026, 1, 15, 0, 0), "UTC"),
		gameEvent("marathon", "Marathon", "#00ff00", utc(2026, 3, 5, 0, 0), "UTC"),
		gameEvent("mistfall-hunter", "Mistfall Hunter", "#800080", utc(2026, 3, 15, 0, 0), "UTC"),
		gameEvent("decadent", "Decadent", "#8b0000", utc(2026, 5, 1, 0, 0), "UTC"),
		gameEvent("nakwon", "Nakwon: Last Paradise", "#ff4500", utc(2026, 6, 1, 0, 0), "UTC"),
		gameEvent("road-to-vostok", "Road to Vostok (Update/Release)", white, utc(2026, 7, 1, 0, 0), "UTC"),
		gameEvent("gray-zone-warfare-1", "Gray Zone Warfare 1.0", "#a9a9a9", utc(2026, 8, 1, 0, 0), "UTC"),
		gameEvent("cor3-teaser-video", "COR3 teaser video", white, utc(2026, 2, 1, 15, 0), "GMT"),
		gameEvent("judas", "Judas", "#daa520", utc(2026, 9, 1, 0, 0), "UTC"),
		gameEvent("project-lll", "Project LLL (Cinder City)", "#ff6347", utc(2026, 10, 1, 0, 0), "UTC"),
		gameEvent("forever-winter-1", "The Forever Winter 1.0", "#add8e6", utc(2026, 11, 1, 0, 0), "UTC"),
		gameEvent("beautiful-light", "Beautiful Light", "#ff00ff", utc(2026, 12, 1, 0, 0), "UTC"),
		gameEvent("state-of-decay-3", "State of Decay 3", "#228b22", utc(2027, 1, 1, 0, 0), "UTC"),
		gameEvent("perfect-dark", "Perfect Dark", "#00008b", utc(2027, 4, 1, 0, 0), "UTC"),
		gameEvent("division-3", "The Division 3", "#ff8c00", utc(2027, 9, 1, 0, 0), "UTC"),
		gameEvent("nor-0ath-of-blood", "Norse: Oath of Blood", white, utc(2026, 2, 3, 0, 0), "UTC"),
		gameEvent("yapyap", "Yapyap", white, utc(2026, 2, 3, 0, 0), "UTC"),
		gameEvent("nioh-3", "Nioh 3", "#ff0000", utc(2026, 2, 5, 0, 0), "UTC"),
		gameEvent("pubg-blindspot", "PUBG Blindspot", "#ff6b35", utc(2026, 2, 5, 0, 0), "UTC"),
		gameEvent("wow-burning-crusade-beta", "WoW: Burning Crusade (Beta)", "#ffd700", utc(2026, 2, 5, 0, 0), "UTC"),
		gameEvent("sea-of-remnants-beta", "Sea of Remnants (Beta)", "#00bfff", utc(2026, 2, 5, 0, 0), "UTC"),
		gameEvent("duckov-tarkov-collab", "Duckov × Escape from Tarkov Collab 🦆", "#ffd700", utc(2026, 2, 10, 0, 0), "UTC"),
		gameEvent("crisol-theater-of-idols", "Crisol: Theater of Idols", "#8b4513", utc(2026, 2, 10, 0, 0), "UTC"),
		gameEvent("reanimal", "Reanimal", "#800080", utc(2026, 2, 13, 0, 0), "UTC"),
		gameEvent("high-on-life-2-13-february-2026", "High on Life 2 (Feb 13, 2026)", "#ff1493", utc(2026, 2, 13, 0, 0), "UTC"),
		gameEvent("styx-blades-of-greed", "Styx: Blades of Greed", "#2e8b57", utc(2026, 2, 19, 0, 0), "UTC"),
		gameEvent("the-cube-save-us-beta", "The Cube, Save Us (Beta)", "#ff6347", utc(2026, 2, 19, 0, 0), "UTC"),
		gameEvent("rainbow-six-mobile", "Rainbow Six Mobile", "#00bfff", utc(2026, 2, 23, 0, 0), "UTC"),
		gameEvent("resident-evil-requiem", "Resident Evil Requiem", "#8b0000", utc(2026, 2, 27, 0, 0), "UTC"),
		gameEvent("toxic-commando", "John Carpenter's Toxic Commando", "#32cd32", utc(2026, 3, 12, 0, 0), "UTC"),
		gameEvent("rules-of-engagement", "Rules of Engagement: The Grey State", "#708090", utc(2026, 6, 1, 0, 0), "UTC"),
	}
}
