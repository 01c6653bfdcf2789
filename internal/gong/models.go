package gong

// Wire models for the Gong public API (v2). Field names follow the JSON the
// API actually emits; optional fields are pointers so absence survives a
// round trip and the shaping layer can apply its own defaults.

// CallsFilter narrows a /v2/calls/extensive or /v2/calls/transcript request.
type CallsFilter struct {
	FromDateTime   string   `json:"fromDateTime,omitempty"`
	ToDateTime     string   `json:"toDateTime,omitempty"`
	WorkspaceID    string   `json:"workspaceId,omitempty"`
	CallIDs        []string `json:"callIds,omitempty"`
	PrimaryUserIDs []string `json:"primaryUserIds,omitempty"`
}

// CallContentSelector controls which optional payload blocks the API
// includes. Only parties and structure are ever requested here; outcome,
// highlights and tracker blocks stay off.
type CallContentSelector struct {
	ExposedFields ExposedFields `json:"exposedFields"`
}

type ExposedFields struct {
	Parties bool         `json:"parties"`
	Content *CallContent `json:"content,omitempty"`
}

type CallContent struct {
	Structure bool `json:"structure,omitempty"`
}

// CallsRequest is the body of POST /v2/calls/extensive.
type CallsRequest struct {
	Cursor          string               `json:"cursor,omitempty"`
	Filter          CallsFilter          `json:"filter"`
	ContentSelector *CallContentSelector `json:"contentSelector,omitempty"`
}

// TranscriptRequest is the body of POST /v2/calls/transcript.
type TranscriptRequest struct {
	Cursor string      `json:"cursor,omitempty"`
	Filter CallsFilter `json:"filter"`
}

// Records is the pagination envelope the API attaches to list responses.
type Records struct {
	TotalRecords      int    `json:"totalRecords"`
	CurrentPageSize   int    `json:"currentPageSize"`
	CurrentPageNumber int    `json:"currentPageNumber"`
	Cursor            string `json:"cursor,omitempty"`
}

// CallsResponse is the payload of POST /v2/calls/extensive.
type CallsResponse struct {
	RequestID string  `json:"requestId"`
	Records   Records `json:"records"`
	Calls     []Call  `json:"calls"`
}

type Call struct {
	MetaData *CallMetaData `json:"metaData"`
	Parties  []Party       `json:"parties"`
	Content  *Content      `json:"content,omitempty"`
}

type CallMetaData struct {
	ID              *string `json:"id"`
	URL             *string `json:"url"`
	Title           *string `json:"title"`
	Scheduled       *string `json:"scheduled"`
	Started         *string `json:"started"`
	Duration        *int64  `json:"duration"`
	PrimaryUserID   *string `json:"primaryUserId"`
	Direction       *string `json:"direction"`
	System          *string `json:"system"`
	Scope           *string `json:"scope"`
	Media           *string `json:"media"`
	Language        *string `json:"language"`
	WorkspaceID     *string `json:"workspaceId"`
	CustomData      *string `json:"customData"`
	Purpose         *string `json:"purpose"`
	MeetingURL      *string `json:"meetingUrl"`
	IsPrivate       *bool   `json:"isPrivate"`
	CalendarEventID *string `json:"calendarEventId"`
}

type Party struct {
	ID            *string        `json:"id"`
	EmailAddress  *string        `json:"emailAddress"`
	Name          *string        `json:"name"`
	Title         *string        `json:"title"`
	UserID        *string        `json:"userId"`
	SpeakerID     *string        `json:"speakerId"`
	PhoneNumber   *string        `json:"phoneNumber"`
	Affiliation   *string        `json:"affiliation"`
	Methods       []string       `json:"methods"`
	Context       []PartyContext `json:"context"`
}

type PartyContext struct {
	System  string         `json:"system"`
	Objects []ContextEntry `json:"objects,omitempty"`
}

type ContextEntry struct {
	ObjectType string `json:"objectType"`
	ObjectID   string `json:"objectId"`
}

type Content struct {
	Structure []StructureSection `json:"structure,omitempty"`
}

type StructureSection struct {
	Name     string  `json:"name"`
	Duration float64 `json:"duration"`
}

// TranscriptResponse is the payload of POST /v2/calls/transcript.
type TranscriptResponse struct {
	RequestID       string           `json:"requestId"`
	Records         Records          `json:"records"`
	CallTranscripts []CallTranscript `json:"callTranscripts"`
}

type CallTranscript struct {
	CallID     *string     `json:"callId"`
	Transcript []Monologue `json:"transcript"`
}

type Monologue struct {
	SpeakerID *string    `json:"speakerId"`
	Topic     *string    `json:"topic"`
	Sentences []Sentence `json:"sentences"`
}

type Sentence struct {
	Start int64  `json:"start"`
	End   int64  `json:"end"`
	Text  string `json:"text"`
}

// UsersResponse is the payload of GET /v2/users.
type UsersResponse struct {
	RequestID string  `json:"requestId"`
	Records   Records `json:"records"`
	Users     []User  `json:"users"`
}

type User struct {
	ID           *string `json:"id"`
	EmailAddress *string `json:"emailAddress"`
	FirstName    *string `json:"firstName"`
	LastName     *string `json:"lastName"`
	Title        *string `json:"title"`
	Active       *bool   `json:"active"`
}
