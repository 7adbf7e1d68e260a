package models

import (
	"fmt"
	"strconv"
	"strings"
)

// LeadStatus tracks where a lead is in the sales pipeline.
// The string form is canonical and is what gets persisted.
type LeadStatus string

const (
	LeadStatusInSystem     LeadStatus = "In System"
	LeadStatusGoodLead     LeadStatus = "Good Lead"
	LeadStatusContactLater LeadStatus = "Contact Later"
	LeadStatusBadLead      LeadStatus = "Bad Lead"
	LeadStatusPassedAlong  LeadStatus = "Passed Along"
	LeadStatusClosed       LeadStatus = "Closed"
)

// DefaultLeadStatus is assigned to every newly created lead
const DefaultLeadStatus = LeadStatusInSystem

// LeadStatuses lists every status; a status' position is its index alias
var LeadStatuses = []LeadStatus{
	LeadStatusInSystem,
	LeadStatusGoodLead,
	LeadStatusContactLater,
	LeadStatusBadLead,
	LeadStatusPassedAlong,
	LeadStatusClosed,
}

// LeadStatusFromIndex resolves the numeric alias (0 = In System ... 5 = Closed)
func LeadStatusFromIndex(i int) (LeadStatus, bool) {
	if i < 0 || i >= len(LeadStatuses) {
		return "", false
	}
	return LeadStatuses[i], true
}

// ParseLeadStatus accepts either the status name (case-insensitive) or its index alias
func ParseLeadStatus(s string) (LeadStatus, error) {
	trimmed := strings.TrimSpace(s)
	if i, err := strconv.Atoi(trimmed); err == nil {
		if status, ok := LeadStatusFromIndex(i); ok {
			return status, nil
		}
		return "", fmt.Errorf("invalid lead status index %d (must be 0-%d)", i, len(LeadStatuses)-1)
	}
	for _, status := range LeadStatuses {
		if strings.EqualFold(trimmed, string(status)) {
			return status, nil
		}
	}
	return "", fmt.Errorf("invalid lead status %q", s)
}

// Index returns the numeric alias of the status, or -1 if it is not a known status
func (s LeadStatus) Index() int {
	for i, status := range LeadStatuses {
		if status == s {
			return i
		}
	}
	return -1
}

// Next returns the status after s, wrapping around after Closed
func (s LeadStatus) Next() LeadStatus {
	i := s.Index()
	return LeadStatuses[(i+1)%len(LeadStatuses)]
}

func (s LeadStatus) String() string {
	return string(s)
}
