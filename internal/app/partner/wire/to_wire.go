package wire

import "github.com/light-bringer/partner-profile-service/internal/app/partner/domain"

// ToWire serializes draft into the wire shape. When saved is non-nil the
// result is the full serialization of saved with every key the draft owns
// laid over it, so keys the draft does not carry are still sent and keys
// the draft cleared are sent as null. Without saved, unset scalars and
// nil provenance flags are omitted. List fields are always present.
func ToWire(draft, saved *domain.PartnerProfile) Object {
	if draft == nil {
		return serialize(saved, false)
	}
	if saved == nil {
		return serialize(draft, false)
	}
	out := serialize(saved, false)
	for k, v := range serialize(draft, true) {
		out[k] = v
	}
	return out
}

// FieldsToWire serializes only the wire keys backing fields, plus the
// partner id. Basic info fields are grouped under basic_info. A field that
// is unset on p is sent as null.
func FieldsToWire(p *domain.PartnerProfile, fields []domain.Field) Object {
	full := serialize(p, true)
	out := Object{}
	if id, ok := full[PartnerID]; ok && id != nil {
		out[PartnerID] = id
	}
	for _, f := range fields {
		path, ok := fieldPaths[f]
		if !ok {
			continue
		}
		switch len(path) {
		case 1:
			out[path[0]] = full[path[0]]
		case 2:
			src, _ := readObject(full[path[0]])
			dst, _ := readObject(out[path[0]])
			if dst == nil {
				dst = Object{}
				out[path[0]] = dst
			}
			dst[path[1]] = src[path[1]]
		}
	}
	return out
}

// serialize renders p. With explicit set, every scalar and nested object
// key p owns is present, null when unset; provenance flags and keys inside
// nested objects are still omitted when unset.
func serialize(p *domain.PartnerProfile, explicit bool) Object {
	out := Object{}
	if p == nil {
		return out
	}
	putString := func(o Object, key, v string) {
		if v != "" {
			o[key] = v
		} else if explicit {
			o[key] = nil
		}
	}
	putNull := func(o Object, key string) {
		if explicit {
			o[key] = nil
		}
	}

	putOptional(out, PartnerID, p.ID)

	basic := Object{}
	putString(basic, Name, p.Name)
	putString(basic, Nickname, p.Nickname)
	if p.Age != nil {
		basic[Age] = *p.Age
	} else {
		putNull(basic, Age)
	}
	putString(basic, Location, p.Location)
	putString(basic, AvatarURL, p.AvatarURL)
	putString(basic, RelationshipStage, string(p.Stage))
	if len(basic) > 0 || explicit {
		out[BasicInfo] = basic
	}
	out[IsPremium] = p.IsPremium

	out[Goals] = stringList(p.Goals)
	putFlag(out, GoalsIsAIGenerated, p.GoalsIsAIGenerated)
	putString(out, LoveLanguage, string(p.LoveLanguage))
	putFlag(out, LoveLanguageIsAIGenerated, p.LoveLanguageIsAIGenerated)
	out[CommunicationStyles] = stringList(p.CommunicationStyles)
	putFlag(out, CommunicationStylesIsAIGenerated, p.CommunicationStylesIsAIGenerated)
	if a := p.AttachmentTendency; a != nil {
		o := Object{}
		putOptional(o, Tendency, string(a.Tendency))
		putOptional(o, Label, a.Label)
		putOptional(o, Description, a.Description)
		putFlag(o, IsAIGenerated, a.IsAIGenerated)
		out[AttachmentTendency] = o
	} else {
		putNull(out, AttachmentTendency)
	}
	out[DealBreakers] = stringList(p.DealBreakers)
	out[AppreciatedThings] = stringList(p.AppreciatedThings)
	putFlag(out, AppreciatedThingsIsAIGenerated, p.AppreciatedThingsIsAIGenerated)

	putString(out, WorkRhythm, string(p.WorkRhythm))
	putFlag(out, WorkRhythmIsAIGenerated, p.WorkRhythmIsAIGenerated)
	putString(out, SocialEnergyLevel, string(p.SocialEnergyLevel))
	putFlag(out, SocialEnergyLevelIsAIGenerated, p.SocialEnergyLevelIsAIGenerated)
	putString(out, DateBudget, string(p.DateBudget))
	putFlag(out, DateBudgetIsAIGenerated, p.DateBudgetIsAIGenerated)
	out[Hobbies] = stringList(p.Hobbies)
	putFlag(out, HobbiesIsAIGenerated, p.HobbiesIsAIGenerated)
	out[FavoriteHobbies] = stringList(p.FavoriteHobbies)
	if c := p.CycleTracking; c != nil {
		o := Object{IsPrivate: c.IsPrivate}
		putOptional(o, PredictedStart, c.PredictedStart)
		putOptional(o, PredictedEnd, c.PredictedEnd)
		out[CycleTracking] = o
	} else {
		putNull(out, CycleTracking)
	}

	signals := make([]any, 0, len(p.SocialSignals))
	for _, s := range p.SocialSignals {
		o := Object{Title: s.Title, Description: s.Description}
		putOptional(o, Icon, s.Icon)
		putFlag(o, IsAIGenerated, s.IsAIGenerated)
		signals = append(signals, o)
	}
	out[SocialSignals] = signals
	out[SocialSignalTags] = stringList(p.SocialSignalTags)
	putString(out, InstagramURL, p.InstagramURL)
	putString(out, FacebookURL, p.FacebookURL)
	putString(out, ThreadsURL, p.ThreadsURL)
	putString(out, TikTokURL, p.TikTokURL)

	putString(out, InterestLevel, string(p.InterestLevel))
	if p.InterestLevelConfidence != nil {
		out[InterestLevelConfidence] = *p.InterestLevelConfidence
	} else {
		putNull(out, InterestLevelConfidence)
	}
	putString(out, MoodTrend, string(p.MoodTrend))
	if p.ChemistryScore != nil {
		out[ChemistryScore] = *p.ChemistryScore
	} else {
		putNull(out, ChemistryScore)
	}
	putString(out, ChemistryScoreDescription, p.ChemistryScoreDescription)
	out[WhatWorksWell] = stringList(p.WhatWorksWell)

	days := make([]any, 0, len(p.SpecialDays))
	for _, d := range p.SpecialDays {
		days = append(days, Object{
			LegacyID:             d.ID,
			Type:                 string(d.Type),
			Name:                 d.Name,
			Date:                 d.Date,
			Icon:                 d.Icon,
			IconColor:            d.IconColor,
			NotificationsEnabled: d.NotifyEnabled,
		})
	}
	out[SpecialDays] = days

	gifts := make([]any, 0, len(p.GiftIdeas))
	for _, g := range p.GiftIdeas {
		o := Object{
			LegacyID:  g.ID,
			Name:      g.Name,
			Price:     g.Price,
			Tag:       g.Tag,
			Icon:      g.Icon,
			IconColor: g.IconColor,
		}
		putOptional(o, Rationale, g.Rationale)
		gifts = append(gifts, o)
	}
	out[GiftIdeas] = gifts

	return out
}

func putOptional(o Object, key, v string) {
	if v != "" {
		o[key] = v
	}
}

func putFlag(o Object, key string, v *bool) {
	if v != nil {
		o[key] = *v
	}
}

func stringList[T ~string](in []T) []any {
	out := make([]any, len(in))
	for i, v := range in {
		out[i] = string(v)
	}
	return out
}
