package models

import (
	"fmt"
	"strings"
)

// JobType classifies the kind of work a lead is asking for
type JobType string

const (
	JobTypeResidential JobType = "Residential"
	JobTypeCommercial  JobType = "Commercial"
	JobTypeUnknown     JobType = "Unknown"
)

// JobTypes lists the job types in the order the input form offers them
var JobTypes = []JobType{JobTypeResidential, JobTypeCommercial, JobTypeUnknown}

// ParseJobType maps user input to a JobType.
// Matching is case-insensitive, "" defaults to Unknown and "Other" is an alias of Unknown.
func ParseJobType(s string) (JobType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "residential":
		return JobTypeResidential, nil
	case "commercial":
		return JobTypeCommercial, nil
	case "", "unknown", "other":
		return JobTypeUnknown, nil
	}
	return "", fmt.Errorf("invalid job type %q (must be: Residential, Commercial, Unknown)", s)
}

func (j JobType) String() string {
	return string(j)
}
