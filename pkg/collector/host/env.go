package host

import "os"

// Environment captures the session-describing environment variables.
type Environment struct {
	Path           string
	Lang           string
	Editor         string
	Pager          string
	Browser        string
	DesktopSession string
	WindowManager  string
	Shell          string
}

// Environment reads the selected environment variables directly.
// XDG_CURRENT_DESKTOP names the desktop environment, with WINDOWMANAGER
// as the fallback.
func (c *Collector) Environment() *Environment {
	info := &Environment{
		Path:           os.Getenv("PATH"),
		Lang:           os.Getenv("LANG"),
		Editor:         os.Getenv("EDITOR"),
		Pager:          os.Getenv("PAGER"),
		Browser:        os.Getenv("BROWSER"),
		DesktopSession: os.Getenv("DESKTOP_SESSION"),
		WindowManager:  os.Getenv("XDG_CURRENT_DESKTOP"),
		Shell:          os.Getenv("SHELL"),
	}
	if info.WindowManager == "" {
		info.WindowManager = os.Getenv("WINDOWMANAGER")
	}
	return info
}
