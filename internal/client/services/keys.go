package services

// Storage keys. Session keys live in the session repository, the rest in the
// profile repository.
const (
	SessionKey       = "ai_wallpaper_session_user"
	HistoryKeyPrefix = "ai_wallpaper_history_"
	UsersKey         = "ai_wallpaper_users"
	ThemeKey         = "ai_wallpaper_theme"
	LanguageKey      = "ai_wallpaper_language"
)

// HistoryKey returns the profile key holding username's history.
func HistoryKey(username string) string {
	return HistoryKeyPrefix + username
}
