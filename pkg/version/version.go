package version

import (
	"fmt"
	"runtime"
)

var (
	Version   = "0.3.0"
	AppName   = "content-analyzer"
	BuildDate = "unknown"
)

// Info contains versioning information
type Info struct {
	AppName   string `json:"app_name"`
	Version   string `json:"version"`
	BuildDate string `json:"build_date"`
	GoVersion string `json:"go_version"`
	Platform  string `json:"platform"`
}

// GetInfo returns version information
func GetInfo() Info {
	return Info{
		AppName:   AppName,
		Version:   Version,
		BuildDate: BuildDate,
		GoVersion: runtime.Version(),
		Platform:  fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH),
	}
}

// Fields returns the info as flat log fields.
func (i Info) Fields() map[string]interface{} {
	return map[string]interface{}{
		"app_name":   i.AppName,
		"version":    i.Version,
		"build_date": i.BuildDate,
		"go_version": i.GoVersion,
		"platform":   i.Platform,
	}
}
