package models

import "strings"

type AppInfo struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Category string `json:"category,omitempty"`
}

const DefaultCategory = "other"

// categoryKeywords is a display heuristic only. Package managers expose no
// category taxonomy, so anything here is a best-effort keyword match on the
// package id or app name, never authoritative.
var categoryKeywords = map[string][]string{
	"social":        {"instagram", "facebook", "twitter", "snapchat", "tiktok", "reddit", "linkedin", "pinterest"},
	"video":         {"youtube", "netflix", "twitch", "vimeo", "hulu", "disney"},
	"messaging":     {"whatsapp", "telegram", "messenger", "discord", "signal", "wechat"},
	"games":         {"game", "play.games", "minecraft", "roblox"},
	"entertainment": {"spotify", "music", "podcast"},
}

func GuessCategory(id, name string) string {
	haystack := strings.ToLower(id + " " + name)
	for category, keywords := range categoryKeywords {
		for _, kw := range keywords {
			if strings.Contains(haystack, kw) {
				return category
			}
		}
	}
	return DefaultCategory
}

// SynthesizeAppInfo builds an AppInfo for a package id the user never picked
// through the app list: the name falls back to the last path component of
// the id ("com.example.candy" -> "candy").
func SynthesizeAppInfo(id string) AppInfo {
	name := id
	if idx := strings.LastIndex(id, "."); idx >= 0 && idx < len(id)-1 {
		name = id[idx+1:]
	}
	return AppInfo{
		ID:       id,
		Name:     name,
		Category: GuessCategory(id, name),
	}
}
