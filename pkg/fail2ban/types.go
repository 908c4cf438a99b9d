package fail2ban

// ServiceStatus is the parsed result of "fail2ban-client status".
type ServiceStatus struct {
	NumberOfJails int
	JailList      []string
}

// JailFilter holds the filter section of a jail status report.
type JailFilter struct {
	CurrentlyFailed int
	TotalFailed     int
	FileList        string
}

// JailActions holds the actions section of a jail status report.
type JailActions struct {
	CurrentlyBanned int
	TotalBanned     int
	BannedIPList    []string
}

// JailStatus is the parsed result of "fail2ban-client status <jail>".
type JailStatus struct {
	JailName string
	Filter   JailFilter
	Actions  JailActions
}

// VersionInfo is the parsed result of "fail2ban-client version".
type VersionInfo struct {
	Version string
}
