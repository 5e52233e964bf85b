package domain

import "strings"

// Keyword sets for activity classification. Matching is case-insensitive
// substring containment; distracting keywords are checked against both the
// application name and the window title, productive app keywords against
// the application name only and productive title keywords against the
// window title only.
var (
	distractingKeywords = []string{
		"youtube", "instagram", "facebook", "twitter", "tiktok", "netflix", "reddit",
	}
	productiveAppKeywords = []string{
		"code", "ide", "intellij", "eclipse", "vs code", "visual studio",
		"notion", "obsidian", "word", "excel", "powerpoint", "pdf",
	}
	productiveTitleKeywords = []string{
		"github", "stackoverflow",
	}
)

// Classify maps an application name and window title to an activity
// category. Distracting rules win over productive ones; anything unmatched
// is Neutral. The function is total and never fails.
func Classify(appName, windowTitle string) ActivityCategory {
	app := strings.ToLower(appName)
	title := strings.ToLower(windowTitle)

	for _, kw := range distractingKeywords {
		if strings.Contains(app, kw) || strings.Contains(title, kw) {
			return CategoryDistracting
		}
	}

	for _, kw := range productiveAppKeywords {
		if strings.Contains(app, kw) {
			return CategoryProductive
		}
	}
	for _, kw := range productiveTitleKeywords {
		if strings.Contains(title, kw) {
			return CategoryProductive
		}
	}

	return CategoryNeutral
}
