package models

// VersionResponse represents the fail2ban service version
type VersionResponse struct {
	Version string `json:"version"`
}
