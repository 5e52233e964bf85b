package domain

import "testing"

func TestClassify(t *testing.T) {
	tests := []struct {
		name        string
		appName     string
		windowTitle string
		expected    ActivityCategory
	}{
		{
			name:        "distracting title in neutral app",
			appName:     "Google Chrome",
			windowTitle: "YouTube - Funny Cats",
			expected:    CategoryDistracting,
		},
		{
			name:        "productive editor",
			appName:     "Visual Studio Code",
			windowTitle: "main.go",
			expected:    CategoryProductive,
		},
		{
			name:        "neutral file browser",
			appName:     "Finder",
			windowTitle: "Downloads",
			expected:    CategoryNeutral,
		},
		{
			name:        "distracting app name",
			appName:     "TikTok",
			windowTitle: "For You",
			expected:    CategoryDistracting,
		},
		{
			name:        "reddit in app name",
			appName:     "Reddit",
			windowTitle: "r/golang",
			expected:    CategoryDistracting,
		},
		{
			name:        "github matched against title only",
			appName:     "Safari",
			windowTitle: "GitHub - pull requests",
			expected:    CategoryProductive,
		},
		{
			name:        "github in app name alone is neutral",
			appName:     "GitHub Desktop Helper",
			windowTitle: "some window",
			expected:    CategoryNeutral,
		},
		{
			name:        "distracting wins over productive",
			appName:     "Visual Studio Code",
			windowTitle: "youtube downloader.go",
			expected:    CategoryDistracting,
		},
		{
			name:        "case-insensitive matching",
			appName:     "INTELLIJ IDEA",
			windowTitle: "Main.java",
			expected:    CategoryProductive,
		},
		{
			name:        "empty input is neutral",
			appName:     "",
			windowTitle: "",
			expected:    CategoryNeutral,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(tt.appName, tt.windowTitle)
			if got != tt.expected {
				t.Errorf("Classify(%q, %q) = %v, want %v", tt.appName, tt.windowTitle, got, tt.expected)
			}
		})
	}
}
