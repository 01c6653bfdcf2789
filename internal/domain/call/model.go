package call

// Output shapes for call resources and the search tool. Summary fields are
// display-oriented: every optional upstream field lands on a documented
// default, never a missing key. Detail is diagnostic: absent optionals pass
// through as null so callers can tell "empty" from "not provided".

// Affiliation values as rendered in output.
const (
	AffiliationInternal = "Internal"
	AffiliationExternal = "External"
	AffiliationUnknown  = "Unknown"
)

// ParticipantRef is one party on a call.
type ParticipantRef struct {
	ID          string               `json:"id"`
	Name        string               `json:"name"`
	Email       string               `json:"email"`
	Title       string               `json:"title"`
	Affiliation string               `json:"affiliation"`
	SpeakerID   *string              `json:"speakerId,omitempty"`
	UserID      *string              `json:"userId,omitempty"`
	PhoneNumber *string              `json:"phoneNumber,omitempty"`
	Methods     []string             `json:"methods"`
	Context     []ParticipantContext `json:"context"`
}

// ParticipantContext links a party to objects in an external system (CRM).
type ParticipantContext struct {
	System  string          `json:"system"`
	Objects []ContextObject `json:"objects,omitempty"`
}

type ContextObject struct {
	ObjectType string `json:"objectType"`
	ObjectID   string `json:"objectId"`
}

// ParticipantSummary is a derived aggregate, recomputed on every read.
// Internal + External <= Total: unrecognized affiliations count toward
// neither bucket.
type ParticipantSummary struct {
	Total    int `json:"total"`
	Internal int `json:"internal"`
	External int `json:"external"`
	Speakers int `json:"speakers"`
}

// Summary is one call in list or search results.
type Summary struct {
	ID              string           `json:"id"`
	Title           string           `json:"title"`
	StartedAt       string           `json:"startedAt"`
	DurationSeconds int64            `json:"durationSeconds"`
	Direction       string           `json:"direction"`
	Participants    []ParticipantRef `json:"participants"`
	URL             string           `json:"url"`
	Structure       []Section        `json:"structure,omitempty"`
}

// Section is one agenda block of a call, present only when structural
// content was requested.
type Section struct {
	Name     string  `json:"name"`
	Duration float64 `json:"duration"`
}

// Detail is the full metadata view of a single call.
type Detail struct {
	Summary
	ScheduledAt        *string            `json:"scheduledAt"`
	Scope              *string            `json:"scope"`
	Media              *string            `json:"media"`
	Language           *string            `json:"language"`
	WorkspaceID        *string            `json:"workspaceId"`
	CustomData         *string            `json:"customData"`
	IsPrivate          *bool              `json:"isPrivate"`
	CalendarEventID    *string            `json:"calendarEventId"`
	ParticipantCount   int                `json:"participantCount"`
	ParticipantSummary ParticipantSummary `json:"participantSummary"`
}

// ParticipantReport is the participants resource payload: the raw refs plus
// the derived summary and the speakerId → display-label map.
type ParticipantReport struct {
	CallID       string             `json:"callId"`
	Participants []ParticipantRef   `json:"participants"`
	Summary      ParticipantSummary `json:"summary"`
	Speakers     map[string]string  `json:"speakers"`
}

// Span is one sentence inside a monologue.
type Span struct {
	Start int64  `json:"start"`
	End   int64  `json:"end"`
	Text  string `json:"text"`
}

// Monologue is one speaker turn.
type Monologue struct {
	SpeakerID string `json:"speakerId"`
	Topic     string `json:"topic"`
	Sentences []Span `json:"sentences"`
}

// Sentence is one flattened transcript sentence with its speaker attached.
type Sentence struct {
	SpeakerID string `json:"speakerId"`
	Start     int64  `json:"start"`
	End       int64  `json:"end"`
	Text      string `json:"text"`
}

// Transcript is the transcript resource payload. Sentences preserve
// monologue order, then sentence order within each monologue.
type Transcript struct {
	CallID         string      `json:"callId"`
	Monologues     []Monologue `json:"monologues"`
	Sentences      []Sentence  `json:"sentences"`
	SentenceCount  int         `json:"sentenceCount"`
	SpeakerCount   int         `json:"speakerCount"`
	MonologueCount int         `json:"monologueCount"`
}

// Filter is the normalized search filter. Zero values mean "absent"; the
// query builder omits them from the upstream request.
type Filter struct {
	FromDateTime     string
	ToDateTime       string
	WorkspaceID      string
	CallIDs          []string
	PrimaryUserIDs   []string
	Cursor           string
	IncludeStructure bool
}

// FilterEcho reports the effective filter back to the caller.
type FilterEcho struct {
	FromDateTime     string   `json:"fromDateTime,omitempty"`
	ToDateTime       string   `json:"toDateTime,omitempty"`
	WorkspaceID      string   `json:"workspaceId,omitempty"`
	CallIDs          []string `json:"callIds,omitempty"`
	PrimaryUserIDs   []string `json:"primaryUserIds,omitempty"`
	Cursor           string   `json:"cursor,omitempty"`
	IncludeStructure bool     `json:"includeStructure"`
	Limit            *int     `json:"limit,omitempty"`
}

// SearchResult is the search tool payload. Truncated reflects only the
// client-side limit; HasMore reflects only the upstream cursor. The two are
// independent.
type SearchResult struct {
	Calls          []Summary  `json:"calls"`
	Count          int        `json:"count"`
	TotalAvailable int        `json:"totalAvailable"`
	Truncated      bool       `json:"truncated"`
	NextCursor     string     `json:"nextCursor,omitempty"`
	HasMore        bool       `json:"hasMore"`
	FiltersEcho    FilterEcho `json:"filtersEcho"`
}
