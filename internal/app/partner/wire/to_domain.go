package wire

import "github.com/light-bringer/partner-profile-service/internal/app/partner/domain"

// ToDomain converts a wire-shape object into a partner profile. It never
// fails: absent or unusable values leave the field unset, list fields
// default to empty and enum values outside their set are dropped.
func ToDomain(raw Object) *domain.PartnerProfile {
	if raw == nil {
		raw = Object{}
	}

	id := str(raw, PartnerID)
	if id == "" {
		id = str(raw, LegacyID)
	}
	p := domain.NewPartnerProfile(id)

	basic, _ := readObject(raw[BasicInfo])
	if basic == nil {
		basic = Object{}
	}
	p.Name = str(basic, Name)
	p.Nickname = str(basic, Nickname)
	p.Age = optInt(basic, Age)
	p.Location = str(basic, Location)
	p.AvatarURL = str(basic, AvatarURL)
	p.Stage, _ = domain.RelationshipStages.Parse(str(basic, RelationshipStage))
	if b, ok := readBool(raw[IsPremium]); ok {
		p.IsPremium = b
	}

	p.Goals = domain.Goals.Filter(strs(raw, Goals))
	p.GoalsIsAIGenerated = optBool(raw, GoalsIsAIGenerated)
	p.LoveLanguage, _ = domain.LoveLanguages.Parse(str(raw, LoveLanguage))
	p.LoveLanguageIsAIGenerated = optBool(raw, LoveLanguageIsAIGenerated)
	p.CommunicationStyles = domain.CommunicationStyles.Filter(strs(raw, CommunicationStyles))
	p.CommunicationStylesIsAIGenerated = optBool(raw, CommunicationStylesIsAIGenerated)
	p.AttachmentTendency = attachmentToDomain(raw[AttachmentTendency])
	p.DealBreakers = domain.DealBreakers.Filter(strs(raw, DealBreakers))
	p.AppreciatedThings = domain.AppreciatedThings.Filter(appreciatedThings(raw))
	p.AppreciatedThingsIsAIGenerated = optBool(raw, AppreciatedThingsIsAIGenerated)

	p.WorkRhythm, _ = domain.WorkRhythms.Parse(str(raw, WorkRhythm))
	p.WorkRhythmIsAIGenerated = optBool(raw, WorkRhythmIsAIGenerated)
	p.SocialEnergyLevel, _ = domain.SocialEnergyLevels.Parse(str(raw, SocialEnergyLevel))
	p.SocialEnergyLevelIsAIGenerated = optBool(raw, SocialEnergyLevelIsAIGenerated)
	p.DateBudget = dateBudgetToDomain(raw[DateBudget])
	p.DateBudgetIsAIGenerated = optBool(raw, DateBudgetIsAIGenerated)
	p.Hobbies = domain.Hobbies.Filter(strs(raw, Hobbies))
	p.HobbiesIsAIGenerated = optBool(raw, HobbiesIsAIGenerated)
	p.FavoriteHobbies = domain.Hobbies.Filter(strs(raw, FavoriteHobbies))
	p.CycleTracking = cycleToDomain(raw[CycleTracking])

	for _, o := range objects(raw, SocialSignals) {
		p.SocialSignals = append(p.SocialSignals, domain.SocialSignal{
			Title:         str(o, Title),
			Description:   str(o, Description),
			Icon:          str(o, Icon),
			IsAIGenerated: optBool(o, IsAIGenerated),
		})
	}
	p.SocialSignalTags = strs(raw, SocialSignalTags)
	p.InstagramURL = str(raw, InstagramURL)
	p.FacebookURL = str(raw, FacebookURL)
	p.ThreadsURL = str(raw, ThreadsURL)
	p.TikTokURL = str(raw, TikTokURL)

	p.InterestLevel, _ = domain.InterestLevels.Parse(str(raw, InterestLevel))
	p.InterestLevelConfidence = optFloat(raw, InterestLevelConfidence)
	p.MoodTrend, _ = domain.MoodTrends.Parse(str(raw, MoodTrend))
	p.ChemistryScore = optInt(raw, ChemistryScore)
	p.ChemistryScoreDescription = str(raw, ChemistryScoreDescription)
	p.WhatWorksWell = strs(raw, WhatWorksWell)

	for _, o := range objects(raw, SpecialDays) {
		p.SpecialDays = append(p.SpecialDays, specialDayToDomain(o))
	}
	for _, o := range objects(raw, GiftIdeas) {
		p.GiftIdeas = append(p.GiftIdeas, domain.GiftIdea{
			ID:        str(o, LegacyID),
			Name:      str(o, Name),
			Price:     str(o, Price),
			Tag:       str(o, Tag),
			Icon:      str(o, Icon),
			IconColor: str(o, IconColor),
			Rationale: str(o, Rationale),
		})
	}

	return p
}

// appreciatedThings prefers the current key and falls back to the legacy
// one when the current key is absent or empty.
func appreciatedThings(raw Object) []string {
	if v := strs(raw, AppreciatedThings); len(v) > 0 {
		return v
	}
	return strs(raw, LegacyThingsTheyAppreciate)
}

func attachmentToDomain(v any) *domain.AttachmentTendency {
	o, ok := readObject(v)
	if !ok {
		return nil
	}
	tendency, _ := domain.AttachmentStyles.Parse(str(o, Tendency))
	return &domain.AttachmentTendency{
		Tendency:      tendency,
		Label:         str(o, Label),
		Description:   str(o, Description),
		IsAIGenerated: optBool(o, IsAIGenerated),
	}
}

func cycleToDomain(v any) *domain.CycleTracking {
	o, ok := readObject(v)
	if !ok {
		return nil
	}
	c := &domain.CycleTracking{
		PredictedStart: str(o, PredictedStart),
		PredictedEnd:   str(o, PredictedEnd),
	}
	if b, ok := readBool(o[IsPrivate]); ok {
		c.IsPrivate = b
	}
	return c
}

// dateBudgetToDomain accepts the numeric tier (1-4) or a tier name.
func dateBudgetToDomain(v any) domain.DateBudget {
	if f, ok := v.(float64); ok {
		b, _ := domain.ParseDateBudgetTier(f)
		return b
	}
	s, ok := readString(v)
	if !ok {
		return ""
	}
	b, _ := domain.DateBudgets.Parse(s)
	return b
}

func specialDayToDomain(o Object) domain.SpecialDay {
	t, ok := domain.SpecialDayTypes.Parse(str(o, Type))
	if !ok {
		t = domain.SpecialDayCustom
	}
	d := domain.SpecialDay{
		ID:        str(o, LegacyID),
		Type:      t,
		Name:      str(o, Name),
		Date:      str(o, Date),
		Icon:      str(o, Icon),
		IconColor: str(o, IconColor),
	}
	if b, ok := readBool(o[NotificationsEnabled]); ok {
		d.NotifyEnabled = b
	}
	return d
}
