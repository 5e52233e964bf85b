package monitor

// Sampler supplies raw (application name, window title) focus samples.
type Sampler interface {
	Sample() (appName, windowTitle string, err error)
}

// StaticSampler returns fixed placeholder values. Real focus detection
// needs a platform integration (native window APIs or an external script
// posting to the activity endpoint); this stands in for it during
// development.
type StaticSampler struct {
	AppName     string
	WindowTitle string
}

func NewStaticSampler() *StaticSampler {
	return &StaticSampler{
		AppName:     "Unknown",
		WindowTitle: "FocusTrack Dashboard",
	}
}

func (s *StaticSampler) Sample() (string, string, error) {
	return s.AppName, s.WindowTitle, nil
}
