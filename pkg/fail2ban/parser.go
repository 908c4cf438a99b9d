package fail2ban

import (
	"strconv"
	"strings"
)

// Labels emitted by fail2ban-client status output. Lines carry
// tree-drawing prefixes ("|-", "`-") and tab-separated values, e.g.
//
//	Status
//	|- Number of jail:	2
//	`- Jail list:	sshd, nginx-http-auth
const (
	labelNumberOfJails   = "Number of jail:"
	labelJailList        = "Jail list:"
	labelCurrentlyFailed = "Currently failed:"
	labelTotalFailed     = "Total failed:"
	labelFileList        = "File list:"
	labelCurrentlyBanned = "Currently banned:"
	labelTotalBanned     = "Total banned:"
	labelBannedIPList    = "Banned IP list:"
)

// ParseStatus parses the output of "fail2ban-client status" into a
// ServiceStatus. Both labels are required; a missing label yields a
// *ParseError.
func ParseStatus(output string) (*ServiceStatus, error) {
	count, err := findIntLabel(output, labelNumberOfJails)
	if err != nil {
		return nil, err
	}

	listRaw, ok := findLabel(output, labelJailList)
	if !ok {
		return nil, &ParseError{Label: labelJailList, Reason: "label not found"}
	}

	return &ServiceStatus{
		NumberOfJails: count,
		JailList:      splitList(listRaw, ","),
	}, nil
}

// ParseJailStatus parses the output of "fail2ban-client status <jail>"
// into a JailStatus. The four counters and the banned IP list label are
// required; the file list is optional and list values may be empty.
func ParseJailStatus(output string, jailName string) (*JailStatus, error) {
	currentlyFailed, err := findIntLabel(output, labelCurrentlyFailed)
	if err != nil {
		return nil, err
	}
	totalFailed, err := findIntLabel(output, labelTotalFailed)
	if err != nil {
		return nil, err
	}
	currentlyBanned, err := findIntLabel(output, labelCurrentlyBanned)
	if err != nil {
		return nil, err
	}
	totalBanned, err := findIntLabel(output, labelTotalBanned)
	if err != nil {
		return nil, err
	}

	bannedRaw, ok := findLabel(output, labelBannedIPList)
	if !ok {
		return nil, &ParseError{Label: labelBannedIPList, Reason: "label not found"}
	}

	// Optional; older outputs may omit it.
	fileList, _ := findLabel(output, labelFileList)

	return &JailStatus{
		JailName: jailName,
		Filter: JailFilter{
			CurrentlyFailed: currentlyFailed,
			TotalFailed:     totalFailed,
			FileList:        fileList,
		},
		Actions: JailActions{
			CurrentlyBanned: currentlyBanned,
			TotalBanned:     totalBanned,
			BannedIPList:    splitList(bannedRaw, " "),
		},
	}, nil
}

// ParseVersion parses the output of "fail2ban-client version". The
// version is the first non-empty trimmed line.
func ParseVersion(output string) (*VersionInfo, error) {
	for _, line := range strings.Split(output, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			return &VersionInfo{Version: line}, nil
		}
	}
	return nil, &ParseError{Reason: "empty version output"}
}

// findLabel scans the output for a line containing the label and returns
// the trimmed text after it.
func findLabel(output string, label string) (string, bool) {
	for _, line := range strings.Split(output, "\n") {
		idx := strings.Index(line, label)
		if idx < 0 {
			continue
		}
		return strings.TrimSpace(line[idx+len(label):]), true
	}
	return "", false
}

// findIntLabel is findLabel for required numeric fields.
func findIntLabel(output string, label string) (int, error) {
	raw, ok := findLabel(output, label)
	if !ok {
		return 0, &ParseError{Label: label, Reason: "label not found"}
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, &ParseError{Label: label, Reason: "value is not numeric"}
	}
	return value, nil
}

// splitList splits a label value on the separator, trims each entry and
// drops empties. The result is never nil so empty lists serialize as [].
func splitList(raw string, sep string) []string {
	items := []string{}
	for _, item := range strings.Split(raw, sep) {
		item = strings.TrimSpace(item)
		if item != "" {
			items = append(items, item)
		}
	}
	return items
}
