package style

// Glyph returns the terminal symbol for an icon token
func Glyph(icon string) string {
	switch icon {
	case "zap":
		return "⚡"
	case "calendar":
		return "📅"
	case "exchange":
		return "⇄"
	case "check":
		return "✓"
	case "x":
		return "✗"
	case "clock":
		return "🕒"
	case "coins":
		return "🪙"
	case "trophy":
		return "🏆"
	case "crown":
		return "👑"
	case "user":
		return "👤"
	case "arrow-up":
		return "↑"
	case "arrow-down":
		return "↓"
	default:
		return "•"
	}
}
