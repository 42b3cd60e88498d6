package models

// DesiredApp is one entry of the app list file.
type DesiredApp struct {
	ID    string `yaml:"id"`
	Label string `yaml:"label"`
}

// AppInfo is the result of looking up one catalog entry. A nil field means
// the value is absent, which is not the same as an empty string.
type AppInfo struct {
	AppID       string
	Name        *string
	Version     *string
	DownloadURL *string
}

// GetName returns the Name field if it's non-nil, zero value otherwise.
func (a AppInfo) GetName() string {
	if a.Name == nil {
		return ""
	}
	return *a.Name
}

// GetVersion returns the Version field if it's non-nil, zero value otherwise.
func (a AppInfo) GetVersion() string {
	if a.Version == nil {
		return ""
	}
	return *a.Version
}

// GetDownloadURL returns the DownloadURL field if it's non-nil, zero value otherwise.
func (a AppInfo) GetDownloadURL() string {
	if a.DownloadURL == nil {
		return ""
	}
	return *a.DownloadURL
}

func (a AppInfo) HasName() bool        { return a.Name != nil }
func (a AppInfo) HasVersion() bool     { return a.Version != nil }
func (a AppInfo) HasDownloadURL() bool { return a.DownloadURL != nil }

// String allocates a new string value to store v and returns a pointer to it.
func String(v string) *string { return &v }
