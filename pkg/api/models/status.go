package models

// StatusResponse represents the overall fail2ban service status
type StatusResponse struct {
	NumberOfJails int      `json:"number_of_jails"`
	JailList      []string `json:"jail_list"`
}

// JailFilterResponse represents the filter section of a jail status
type JailFilterResponse struct {
	CurrentlyFailed int    `json:"currently_failed"`
	TotalFailed     int    `json:"total_failed"`
	FileList        string `json:"file_list"`
}

// JailActionsResponse represents the actions section of a jail status
type JailActionsResponse struct {
	CurrentlyBanned int      `json:"currently_banned"`
	TotalBanned     int      `json:"total_banned"`
	BannedIPList    []string `json:"banned_ip_list"`
}

// JailStatusResponse represents the status of a single jail
type JailStatusResponse struct {
	JailName string              `json:"jail_name"`
	Filter   JailFilterResponse  `json:"filter"`
	Actions  JailActionsResponse `json:"actions"`
}
