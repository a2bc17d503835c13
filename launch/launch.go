package launch

import (
	"bytes"
	"encoding/json"
)

// Launch is a single record returned by the launch collection endpoint.
type Launch struct {
	FlightNumber  int     `json:"flight_number"`
	MissionName   *string `json:"mission_name"`
	Details       *string `json:"details"`
	LaunchSuccess Outcome `json:"launch_success"`
	LaunchYear    string  `json:"launch_year"`
	LaunchDateUTC string  `json:"launch_date_utc"`
	Rocket        Rocket  `json:"rocket"`
	Links         Links   `json:"links"`
}

// Rocket holds the subset of rocket data shown in the detail view.
type Rocket struct {
	RocketName string `json:"rocket_name"`
}

// Links holds the external references of a launch. Any of them may be empty.
type Links struct {
	ArticleLink string `json:"article_link"`
	VideoLink   string `json:"video_link"`
	Wikipedia   string `json:"wikipedia"`
}

// Name returns the mission name, or an empty string when the record has none.
func (l Launch) Name() string {
	if l.MissionName == nil {
		return ""
	}
	return *l.MissionName
}

// HasName reports whether the record carried a mission name at all.
func (l Launch) HasName() bool {
	return l.MissionName != nil
}

// DetailText returns the details, or an empty string for null details.
func (l Launch) DetailText() string {
	if l.Details == nil {
		return ""
	}
	return *l.Details
}

// Link returns the first non-empty link, preferring the article.
func (l Launch) Link() string {
	switch {
	case l.Links.ArticleLink != "":
		return l.Links.ArticleLink
	case l.Links.VideoLink != "":
		return l.Links.VideoLink
	default:
		return l.Links.Wikipedia
	}
}

// Outcome is the tri-state launch result. The zero value means the field was
// missing or held something other than a boolean or null.
type Outcome int

const (
	OutcomeUnknown Outcome = iota
	OutcomeUpcoming
	OutcomeSuccess
	OutcomeFailed
)

// Status returns the status class of the outcome. Unknown outcomes are shown
// as upcoming.
func (o Outcome) Status() string {
	switch o {
	case OutcomeSuccess:
		return "success"
	case OutcomeFailed:
		return "failed"
	default:
		return "upcoming"
	}
}

// Label returns the human readable status text.
func (o Outcome) Label() string {
	switch o {
	case OutcomeSuccess:
		return "Success"
	case OutcomeFailed:
		return "Failed"
	default:
		return "Upcoming"
	}
}

func (o Outcome) String() string {
	if o == OutcomeUnknown {
		return "unknown"
	}
	return o.Status()
}

// UnmarshalJSON never fails: values that are neither booleans nor null decode
// to OutcomeUnknown so one odd record does not drop a whole page.
func (o *Outcome) UnmarshalJSON(data []byte) error {
	switch string(bytes.TrimSpace(data)) {
	case "null":
		*o = OutcomeUpcoming
	case "true":
		*o = OutcomeSuccess
	case "false":
		*o = OutcomeFailed
	default:
		*o = OutcomeUnknown
	}
	return nil
}

// MarshalJSON writes the outcome back in the wire format of the endpoint.
func (o Outcome) MarshalJSON() ([]byte, error) {
	switch o {
	case OutcomeSuccess:
		return json.Marshal(true)
	case OutcomeFailed:
		return json.Marshal(false)
	default:
		return []byte("null"), nil
	}
}
