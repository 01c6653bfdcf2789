package call

import "github.com/ganot/gong-mcp/internal/gong"

// shapeSummary maps one upstream call to the display-oriented summary.
// Missing metadata resolves to defaults: "" for strings, "Untitled" for the
// title, 0 for the duration.
func shapeSummary(c gong.Call) Summary {
	s := Summary{
		Title:        "Untitled",
		Participants: shapeParticipants(c.Parties),
	}
	if meta := c.MetaData; meta != nil {
		s.ID = strOr(meta.ID, "")
		s.Title = strOr(meta.Title, "Untitled")
		s.StartedAt = strOr(meta.Started, "")
		s.Direction = strOr(meta.Direction, "")
		s.URL = strOr(meta.URL, "")
		if meta.Duration != nil {
			s.DurationSeconds = *meta.Duration
		}
	}
	if c.Content != nil {
		for _, sec := range c.Content.Structure {
			s.Structure = append(s.Structure, Section{Name: sec.Name, Duration: sec.Duration})
		}
	}
	return s
}

// shapeDetail maps one upstream call to the diagnostic detail view. Absent
// optional fields stay nil and render as null.
func shapeDetail(c gong.Call) Detail {
	d := Detail{Summary: shapeSummary(c)}
	if meta := c.MetaData; meta != nil {
		d.ScheduledAt = meta.Scheduled
		d.Scope = meta.Scope
		d.Media = meta.Media
		d.Language = meta.Language
		d.WorkspaceID = meta.WorkspaceID
		d.CustomData = meta.CustomData
		d.IsPrivate = meta.IsPrivate
		d.CalendarEventID = meta.CalendarEventID
	}
	d.ParticipantCount = len(d.Participants)
	d.ParticipantSummary = summarizeParticipants(d.Participants)
	return d
}

func shapeParticipants(parties []gong.Party) []ParticipantRef {
	refs := make([]ParticipantRef, 0, len(parties))
	for _, p := range parties {
		refs = append(refs, shapeParticipant(p))
	}
	return refs
}

func shapeParticipant(p gong.Party) ParticipantRef {
	ref := ParticipantRef{
		ID:          strOr(p.ID, ""),
		Name:        strOr(p.Name, ""),
		Email:       strOr(p.EmailAddress, ""),
		Title:       strOr(p.Title, ""),
		Affiliation: affiliationTag(p.Affiliation),
		SpeakerID:   p.SpeakerID,
		UserID:      p.UserID,
		PhoneNumber: p.PhoneNumber,
		Methods:     []string{},
		Context:     []ParticipantContext{},
	}
	if len(p.Methods) > 0 {
		ref.Methods = append(ref.Methods, p.Methods...)
	}
	for _, c := range p.Context {
		pc := ParticipantContext{System: c.System}
		for _, obj := range c.Objects {
			pc.Objects = append(pc.Objects, ContextObject{ObjectType: obj.ObjectType, ObjectID: obj.ObjectID})
		}
		ref.Context = append(ref.Context, pc)
	}
	return ref
}

// summarizeParticipants derives the aggregate counts from a participant
// list. It is the single derivation shared by detail, participants and
// search shaping; upstream-provided counts are never trusted. Participants
// with an unrecognized affiliation count toward neither bucket, so
// internal + external <= total always holds.
func summarizeParticipants(refs []ParticipantRef) ParticipantSummary {
	sum := ParticipantSummary{Total: len(refs)}
	for _, ref := range refs {
		switch ref.Affiliation {
		case AffiliationInternal:
			sum.Internal++
		case AffiliationExternal:
			sum.External++
		}
		if ref.SpeakerID != nil && *ref.SpeakerID != "" {
			sum.Speakers++
		}
	}
	return sum
}

// speakerMap maps speaker ids to "<name> (<affiliation>)" display labels,
// keyed by the participants that declare a speaker id.
func speakerMap(refs []ParticipantRef) map[string]string {
	speakers := make(map[string]string)
	for _, ref := range refs {
		if ref.SpeakerID == nil || *ref.SpeakerID == "" {
			continue
		}
		speakers[*ref.SpeakerID] = ref.Name + " (" + ref.Affiliation + ")"
	}
	return speakers
}

// shapeTranscript flattens monologue sentences into one ordered sequence,
// preserving monologue order then sentence order. The speaker count is the
// cardinality of distinct non-empty monologue speaker ids, not a
// per-sentence count.
func shapeTranscript(t gong.CallTranscript, requestedID string) Transcript {
	out := Transcript{
		CallID:     strOr(t.CallID, requestedID),
		Monologues: make([]Monologue, 0, len(t.Transcript)),
		Sentences:  []Sentence{},
	}

	speakers := make(map[string]struct{})
	for _, m := range t.Transcript {
		speakerID := strOr(m.SpeakerID, "")
		mono := Monologue{
			SpeakerID: speakerID,
			Topic:     strOr(m.Topic, ""),
			Sentences: make([]Span, 0, len(m.Sentences)),
		}
		for _, s := range m.Sentences {
			mono.Sentences = append(mono.Sentences, Span{Start: s.Start, End: s.End, Text: s.Text})
			out.Sentences = append(out.Sentences, Sentence{
				SpeakerID: speakerID,
				Start:     s.Start,
				End:       s.End,
				Text:      s.Text,
			})
		}
		out.Monologues = append(out.Monologues, mono)
		if m.SpeakerID != nil && *m.SpeakerID != "" {
			speakers[*m.SpeakerID] = struct{}{}
		}
	}

	out.SentenceCount = len(out.Sentences)
	out.SpeakerCount = len(speakers)
	out.MonologueCount = len(out.Monologues)
	return out
}

func affiliationTag(affiliation *string) string {
	if affiliation == nil {
		return AffiliationUnknown
	}
	switch *affiliation {
	case AffiliationInternal, AffiliationExternal:
		return *affiliation
	default:
		return AffiliationUnknown
	}
}

func strOr(val *string, def string) string {
	if val == nil {
		return def
	}
	return *val
}
