package domain

import "slices"

// PartnerProfile is the in-memory representation of a partner profile.
// Enum-typed fields only ever hold members of their value set; the empty
// string means "not set".
type PartnerProfile struct {
	// Identity
	ID        string            `json:"id" validate:"required"`
	Name      string            `json:"name" validate:"max=120"`
	Nickname  string            `json:"nickname,omitempty" validate:"max=60"`
	Age       *int              `json:"age,omitempty" validate:"omitempty,min=18,max=120"`
	Location  string            `json:"location,omitempty"`
	AvatarURL string            `json:"avatarUrl,omitempty" validate:"omitempty,url"`
	Stage     RelationshipStage `json:"stage,omitempty"`
	IsPremium bool              `json:"isPremium"`

	// Goals and personality
	Goals                            []Goal               `json:"goals"`
	GoalsIsAIGenerated               *bool                `json:"goalsIsAiGenerated,omitempty"`
	LoveLanguage                     LoveLanguage         `json:"loveLanguage,omitempty"`
	LoveLanguageIsAIGenerated        *bool                `json:"loveLanguageIsAiGenerated,omitempty"`
	CommunicationStyles              []CommunicationStyle `json:"communicationStyles"`
	CommunicationStylesIsAIGenerated *bool                `json:"communicationStylesIsAiGenerated,omitempty"`
	AttachmentTendency               *AttachmentTendency  `json:"attachmentTendency,omitempty"`
	DealBreakers                     []DealBreaker        `json:"dealBreakers"`
	AppreciatedThings                []AppreciatedThing   `json:"appreciatedThings"`
	AppreciatedThingsIsAIGenerated   *bool                `json:"appreciatedThingsIsAiGenerated,omitempty"`

	// Lifestyle
	WorkRhythm                     WorkRhythm        `json:"workRhythm,omitempty"`
	WorkRhythmIsAIGenerated        *bool             `json:"workRhythmIsAiGenerated,omitempty"`
	SocialEnergyLevel              SocialEnergyLevel `json:"socialEnergyLevel,omitempty"`
	SocialEnergyLevelIsAIGenerated *bool             `json:"socialEnergyLevelIsAiGenerated,omitempty"`
	DateBudget                     DateBudget        `json:"dateBudget,omitempty"`
	DateBudgetIsAIGenerated        *bool             `json:"dateBudgetIsAiGenerated,omitempty"`
	Hobbies                        []Hobby           `json:"hobbies"`
	HobbiesIsAIGenerated           *bool             `json:"hobbiesIsAiGenerated,omitempty"`
	FavoriteHobbies                []Hobby           `json:"favoriteHobbies"`
	CycleTracking                  *CycleTracking    `json:"cycleTracking,omitempty"`

	// Social
	SocialSignals    []SocialSignal `json:"socialSignals" validate:"dive"`
	SocialSignalTags []string       `json:"socialSignalTags"`
	InstagramURL     string         `json:"instagramUrl,omitempty" validate:"omitempty,url"`
	FacebookURL      string         `json:"facebookUrl,omitempty" validate:"omitempty,url"`
	ThreadsURL       string         `json:"threadsUrl,omitempty" validate:"omitempty,url"`
	TikTokURL        string         `json:"tiktokUrl,omitempty" validate:"omitempty,url"`

	// Insights, written by the remote service
	InterestLevel             InterestLevel `json:"interestLevel,omitempty"`
	InterestLevelConfidence   *float64      `json:"interestLevelConfidence,omitempty" validate:"omitempty,min=0,max=1"`
	MoodTrend                 MoodTrend     `json:"moodTrend,omitempty"`
	ChemistryScore            *int          `json:"chemistryScore,omitempty" validate:"omitempty,min=0,max=100"`
	ChemistryScoreDescription string        `json:"chemistryScoreDescription,omitempty"`
	WhatWorksWell             []string      `json:"whatWorksWell"`

	// Collections
	SpecialDays []SpecialDay `json:"specialDays" validate:"dive"`
	GiftIdeas   []GiftIdea   `json:"giftIdeas" validate:"dive"`
}

// AttachmentTendency is the attachment style together with its display copy.
type AttachmentTendency struct {
	Tendency      AttachmentStyle `json:"tendency"`
	Label         string          `json:"label,omitempty"`
	Description   string          `json:"description,omitempty"`
	IsAIGenerated *bool           `json:"isAiGenerated,omitempty"`
}

// CycleTracking holds the predicted cycle window. Dates are ISO-8601 strings
// as delivered by the remote service.
type CycleTracking struct {
	PredictedStart string `json:"predictedStart,omitempty"`
	PredictedEnd   string `json:"predictedEnd,omitempty"`
	IsPrivate      bool   `json:"isPrivate"`
}

// SocialSignal is an observation about the partner's social behaviour.
type SocialSignal struct {
	Title         string `json:"title" validate:"required"`
	Description   string `json:"description"`
	Icon          string `json:"icon,omitempty"`
	IsAIGenerated *bool  `json:"isAiGenerated,omitempty"`
}

// SpecialDay is a date worth remembering.
type SpecialDay struct {
	ID            string         `json:"id"`
	Type          SpecialDayType `json:"type"`
	Name          string         `json:"name" validate:"required"`
	Date          string         `json:"date" validate:"required"`
	Icon          string         `json:"icon"`
	IconColor     string         `json:"iconColor"`
	NotifyEnabled bool           `json:"notifyEnabled"`
}

// GiftIdea is a gift suggestion. Price is kept as display text since the
// remote service sends both numbers and ranges ("$20-40").
type GiftIdea struct {
	ID        string `json:"id"`
	Name      string `json:"name" validate:"required"`
	Price     string `json:"price"`
	Tag       string `json:"tag"`
	Icon      string `json:"icon"`
	IconColor string `json:"iconColor"`
	Rationale string `json:"rationale,omitempty"`
}

// NewPartnerProfile returns a profile with the given id and every list
// field initialized to an empty slice.
func NewPartnerProfile(id string) *PartnerProfile {
	return &PartnerProfile{
		ID:                  id,
		Goals:               []Goal{},
		CommunicationStyles: []CommunicationStyle{},
		DealBreakers:        []DealBreaker{},
		AppreciatedThings:   []AppreciatedThing{},
		Hobbies:             []Hobby{},
		FavoriteHobbies:     []Hobby{},
		SocialSignals:       []SocialSignal{},
		SocialSignalTags:    []string{},
		WhatWorksWell:       []string{},
		SpecialDays:         []SpecialDay{},
		GiftIdeas:           []GiftIdea{},
	}
}

// Clone returns a deep copy of p. The copy shares no slices, pointers or
// nested structs with p.
func (p *PartnerProfile) Clone() *PartnerProfile {
	if p == nil {
		return nil
	}
	c := *p

	c.Age = clonePtr(p.Age)
	c.GoalsIsAIGenerated = clonePtr(p.GoalsIsAIGenerated)
	c.LoveLanguageIsAIGenerated = clonePtr(p.LoveLanguageIsAIGenerated)
	c.CommunicationStylesIsAIGenerated = clonePtr(p.CommunicationStylesIsAIGenerated)
	c.AppreciatedThingsIsAIGenerated = clonePtr(p.AppreciatedThingsIsAIGenerated)
	c.WorkRhythmIsAIGenerated = clonePtr(p.WorkRhythmIsAIGenerated)
	c.SocialEnergyLevelIsAIGenerated = clonePtr(p.SocialEnergyLevelIsAIGenerated)
	c.DateBudgetIsAIGenerated = clonePtr(p.DateBudgetIsAIGenerated)
	c.HobbiesIsAIGenerated = clonePtr(p.HobbiesIsAIGenerated)
	c.InterestLevelConfidence = clonePtr(p.InterestLevelConfidence)
	c.ChemistryScore = clonePtr(p.ChemistryScore)

	c.AttachmentTendency = p.AttachmentTendency.Clone()
	c.CycleTracking = clonePtr(p.CycleTracking)

	c.Goals = slices.Clone(p.Goals)
	c.CommunicationStyles = slices.Clone(p.CommunicationStyles)
	c.DealBreakers = slices.Clone(p.DealBreakers)
	c.AppreciatedThings = slices.Clone(p.AppreciatedThings)
	c.Hobbies = slices.Clone(p.Hobbies)
	c.FavoriteHobbies = slices.Clone(p.FavoriteHobbies)
	c.SocialSignalTags = slices.Clone(p.SocialSignalTags)
	c.WhatWorksWell = slices.Clone(p.WhatWorksWell)
	c.SpecialDays = slices.Clone(p.SpecialDays)
	c.GiftIdeas = slices.Clone(p.GiftIdeas)
	c.SocialSignals = cloneSocialSignals(p.SocialSignals)

	return &c
}

// Clone returns a deep copy of a.
func (a *AttachmentTendency) Clone() *AttachmentTendency {
	if a == nil {
		return nil
	}
	c := *a
	c.IsAIGenerated = clonePtr(a.IsAIGenerated)
	return &c
}

func cloneSocialSignals(in []SocialSignal) []SocialSignal {
	if in == nil {
		return nil
	}
	out := make([]SocialSignal, len(in))
	for i, s := range in {
		out[i] = s
		out[i].IsAIGenerated = clonePtr(s.IsAIGenerated)
	}
	return out
}

func clonePtr[T any](v *T) *T {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}

// Bool returns a pointer to b, for populating provenance flags.
func Bool(b bool) *bool { return &b }

// Int returns a pointer to i.
func Int(i int) *int { return &i }

// Float returns a pointer to f.
func Float(f float64) *float64 { return &f }
