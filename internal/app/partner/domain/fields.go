package domain

import (
	"fmt"
	"slices"
)

// Field names a top-level profile field. Values match the camelCase JSON
// names of the domain model.
type Field string

// Field names for change tracking and field-level updates
const (
	FieldID        Field = "id"
	FieldName      Field = "name"
	FieldNickname  Field = "nickname"
	FieldAge       Field = "age"
	FieldLocation  Field = "location"
	FieldAvatarURL Field = "avatarUrl"
	FieldStage     Field = "stage"
	FieldIsPremium Field = "isPremium"

	FieldGoals                            Field = "goals"
	FieldGoalsIsAIGenerated               Field = "goalsIsAiGenerated"
	FieldLoveLanguage                     Field = "loveLanguage"
	FieldLoveLanguageIsAIGenerated        Field = "loveLanguageIsAiGenerated"
	FieldCommunicationStyles              Field = "communicationStyles"
	FieldCommunicationStylesIsAIGenerated Field = "communicationStylesIsAiGenerated"
	FieldAttachmentTendency               Field = "attachmentTendency"
	FieldDealBreakers                     Field = "dealBreakers"
	FieldAppreciatedThings                Field = "appreciatedThings"
	FieldAppreciatedThingsIsAIGenerated   Field = "appreciatedThingsIsAiGenerated"

	FieldWorkRhythm                     Field = "workRhythm"
	FieldWorkRhythmIsAIGenerated        Field = "workRhythmIsAiGenerated"
	FieldSocialEnergyLevel              Field = "socialEnergyLevel"
	FieldSocialEnergyLevelIsAIGenerated Field = "socialEnergyLevelIsAiGenerated"
	FieldDateBudget                     Field = "dateBudget"
	FieldDateBudgetIsAIGenerated        Field = "dateBudgetIsAiGenerated"
	FieldHobbies                        Field = "hobbies"
	FieldHobbiesIsAIGenerated           Field = "hobbiesIsAiGenerated"
	FieldFavoriteHobbies                Field = "favoriteHobbies"
	FieldCycleTracking                  Field = "cycleTracking"

	FieldSocialSignals    Field = "socialSignals"
	FieldSocialSignalTags Field = "socialSignalTags"
	FieldInstagramURL     Field = "instagramUrl"
	FieldFacebookURL      Field = "facebookUrl"
	FieldThreadsURL       Field = "threadsUrl"
	FieldTikTokURL        Field = "tiktokUrl"

	FieldInterestLevel             Field = "interestLevel"
	FieldInterestLevelConfidence   Field = "interestLevelConfidence"
	FieldMoodTrend                 Field = "moodTrend"
	FieldChemistryScore            Field = "chemistryScore"
	FieldChemistryScoreDescription Field = "chemistryScoreDescription"
	FieldWhatWorksWell             Field = "whatWorksWell"

	FieldSpecialDays Field = "specialDays"
	FieldGiftIdeas   Field = "giftIdeas"
)

type fieldSpec struct {
	editable bool
	flag     Field
	get      func(p *PartnerProfile) any
	set      func(p *PartnerProfile, v any) error
}

// accessor builds a typed field descriptor. A nil value resets the field
// to its zero value.
func accessor[T any](get func(*PartnerProfile) T, set func(*PartnerProfile, T)) fieldSpec {
	return fieldSpec{
		editable: true,
		get:      func(p *PartnerProfile) any { return get(p) },
		set: func(p *PartnerProfile, v any) error {
			if v == nil {
				var zero T
				set(p, zero)
				return nil
			}
			t, ok := v.(T)
			if !ok {
				return ErrFieldType
			}
			set(p, t)
			return nil
		},
	}
}

func withFlag(s fieldSpec, flag Field) fieldSpec {
	s.flag = flag
	return s
}

func readOnly(s fieldSpec) fieldSpec {
	s.editable = false
	return s
}

var fieldOrder = []Field{
	FieldID, FieldName, FieldNickname, FieldAge, FieldLocation, FieldAvatarURL, FieldStage, FieldIsPremium,
	FieldGoals, FieldGoalsIsAIGenerated, FieldLoveLanguage, FieldLoveLanguageIsAIGenerated,
	FieldCommunicationStyles, FieldCommunicationStylesIsAIGenerated, FieldAttachmentTendency,
	FieldDealBreakers, FieldAppreciatedThings, FieldAppreciatedThingsIsAIGenerated,
	FieldWorkRhythm, FieldWorkRhythmIsAIGenerated, FieldSocialEnergyLevel, FieldSocialEnergyLevelIsAIGenerated,
	FieldDateBudget, FieldDateBudgetIsAIGenerated, FieldHobbies, FieldHobbiesIsAIGenerated,
	FieldFavoriteHobbies, FieldCycleTracking,
	FieldSocialSignals, FieldSocialSignalTags, FieldInstagramURL, FieldFacebookURL, FieldThreadsURL, FieldTikTokURL,
	FieldInterestLevel, FieldInterestLevelConfidence, FieldMoodTrend, FieldChemistryScore,
	FieldChemistryScoreDescription, FieldWhatWorksWell,
	FieldSpecialDays, FieldGiftIdeas,
}

var fieldSpecs = map[Field]fieldSpec{
	FieldID: readOnly(accessor(
		func(p *PartnerProfile) string { return p.ID },
		func(p *PartnerProfile, v string) { p.ID = v })),
	FieldName: accessor(
		func(p *PartnerProfile) string { return p.Name },
		func(p *PartnerProfile, v string) { p.Name = v }),
	FieldNickname: accessor(
		func(p *PartnerProfile) string { return p.Nickname },
		func(p *PartnerProfile, v string) { p.Nickname = v }),
	FieldAge: accessor(
		func(p *PartnerProfile) *int { return p.Age },
		func(p *PartnerProfile, v *int) { p.Age = clonePtr(v) }),
	FieldLocation: accessor(
		func(p *PartnerProfile) string { return p.Location },
		func(p *PartnerProfile, v string) { p.Location = v }),
	FieldAvatarURL: accessor(
		func(p *PartnerProfile) string { return p.AvatarURL },
		func(p *PartnerProfile, v string) { p.AvatarURL = v }),
	FieldStage: accessor(
		func(p *PartnerProfile) RelationshipStage { return p.Stage },
		func(p *PartnerProfile, v RelationshipStage) { p.Stage = v }),
	FieldIsPremium: accessor(
		func(p *PartnerProfile) bool { return p.IsPremium },
		func(p *PartnerProfile, v bool) { p.IsPremium = v }),

	FieldGoals: withFlag(accessor(
		func(p *PartnerProfile) []Goal { return p.Goals },
		func(p *PartnerProfile, v []Goal) { p.Goals = slices.Clone(v) }), FieldGoalsIsAIGenerated),
	FieldGoalsIsAIGenerated: flagAccessor(func(p *PartnerProfile) **bool { return &p.GoalsIsAIGenerated }),
	FieldLoveLanguage: withFlag(accessor(
		func(p *PartnerProfile) LoveLanguage { return p.LoveLanguage },
		func(p *PartnerProfile, v LoveLanguage) { p.LoveLanguage = v }), FieldLoveLanguageIsAIGenerated),
	FieldLoveLanguageIsAIGenerated: flagAccessor(func(p *PartnerProfile) **bool { return &p.LoveLanguageIsAIGenerated }),
	FieldCommunicationStyles: withFlag(accessor(
		func(p *PartnerProfile) []CommunicationStyle { return p.CommunicationStyles },
		func(p *PartnerProfile, v []CommunicationStyle) { p.CommunicationStyles = slices.Clone(v) }),
		FieldCommunicationStylesIsAIGenerated),
	FieldCommunicationStylesIsAIGenerated: flagAccessor(func(p *PartnerProfile) **bool { return &p.CommunicationStylesIsAIGenerated }),
	FieldAttachmentTendency: accessor(
		func(p *PartnerProfile) *AttachmentTendency { return p.AttachmentTendency },
		func(p *PartnerProfile, v *AttachmentTendency) { p.AttachmentTendency = v.Clone() }),
	FieldDealBreakers: accessor(
		func(p *PartnerProfile) []DealBreaker { return p.DealBreakers },
		func(p *PartnerProfile, v []DealBreaker) { p.DealBreakers = slices.Clone(v) }),
	FieldAppreciatedThings: withFlag(accessor(
		func(p *PartnerProfile) []AppreciatedThing { return p.AppreciatedThings },
		func(p *PartnerProfile, v []AppreciatedThing) { p.AppreciatedThings = slices.Clone(v) }),
		FieldAppreciatedThingsIsAIGenerated),
	FieldAppreciatedThingsIsAIGenerated: flagAccessor(func(p *PartnerProfile) **bool { return &p.AppreciatedThingsIsAIGenerated }),

	FieldWorkRhythm: withFlag(accessor(
		func(p *PartnerProfile) WorkRhythm { return p.WorkRhythm },
		func(p *PartnerProfile, v WorkRhythm) { p.WorkRhythm = v }), FieldWorkRhythmIsAIGenerated),
	FieldWorkRhythmIsAIGenerated: flagAccessor(func(p *PartnerProfile) **bool { return &p.WorkRhythmIsAIGenerated }),
	FieldSocialEnergyLevel: withFlag(accessor(
		func(p *PartnerProfile) SocialEnergyLevel { return p.SocialEnergyLevel },
		func(p *PartnerProfile, v SocialEnergyLevel) { p.SocialEnergyLevel = v }), FieldSocialEnergyLevelIsAIGenerated),
	FieldSocialEnergyLevelIsAIGenerated: flagAccessor(func(p *PartnerProfile) **bool { return &p.SocialEnergyLevelIsAIGenerated }),
	FieldDateBudget: withFlag(accessor(
		func(p *PartnerProfile) DateBudget { return p.DateBudget },
		func(p *PartnerProfile, v DateBudget) { p.DateBudget = v }), FieldDateBudgetIsAIGenerated),
	FieldDateBudgetIsAIGenerated: flagAccessor(func(p *PartnerProfile) **bool { return &p.DateBudgetIsAIGenerated }),
	FieldHobbies: withFlag(accessor(
		func(p *PartnerProfile) []Hobby { return p.Hobbies },
		func(p *PartnerProfile, v []Hobby) { p.Hobbies = slices.Clone(v) }), FieldHobbiesIsAIGenerated),
	FieldHobbiesIsAIGenerated: flagAccessor(func(p *PartnerProfile) **bool { return &p.HobbiesIsAIGenerated }),
	FieldFavoriteHobbies: accessor(
		func(p *PartnerProfile) []Hobby { return p.FavoriteHobbies },
		func(p *PartnerProfile, v []Hobby) { p.FavoriteHobbies = slices.Clone(v) }),
	FieldCycleTracking: accessor(
		func(p *PartnerProfile) *CycleTracking { return p.CycleTracking },
		func(p *PartnerProfile, v *CycleTracking) { p.CycleTracking = clonePtr(v) }),

	FieldSocialSignals: accessor(
		func(p *PartnerProfile) []SocialSignal { return p.SocialSignals },
		func(p *PartnerProfile, v []SocialSignal) { p.SocialSignals = cloneSocialSignals(v) }),
	FieldSocialSignalTags: accessor(
		func(p *PartnerProfile) []string { return p.SocialSignalTags },
		func(p *PartnerProfile, v []string) { p.SocialSignalTags = slices.Clone(v) }),
	FieldInstagramURL: accessor(
		func(p *PartnerProfile) string { return p.InstagramURL },
		func(p *PartnerProfile, v string) { p.InstagramURL = v }),
	FieldFacebookURL: accessor(
		func(p *PartnerProfile) string { return p.FacebookURL },
		func(p *PartnerProfile, v string) { p.FacebookURL = v }),
	FieldThreadsURL: accessor(
		func(p *PartnerProfile) string { return p.ThreadsURL },
		func(p *PartnerProfile, v string) { p.ThreadsURL = v }),
	FieldTikTokURL: accessor(
		func(p *PartnerProfile) string { return p.TikTokURL },
		func(p *PartnerProfile, v string) { p.TikTokURL = v }),

	FieldInterestLevel: accessor(
		func(p *PartnerProfile) InterestLevel { return p.InterestLevel },
		func(p *PartnerProfile, v InterestLevel) { p.InterestLevel = v }),
	FieldInterestLevelConfidence: accessor(
		func(p *PartnerProfile) *float64 { return p.InterestLevelConfidence },
		func(p *PartnerProfile, v *float64) { p.InterestLevelConfidence = clonePtr(v) }),
	FieldMoodTrend: accessor(
		func(p *PartnerProfile) MoodTrend { return p.MoodTrend },
		func(p *PartnerProfile, v MoodTrend) { p.MoodTrend = v }),
	FieldChemistryScore: accessor(
		func(p *PartnerProfile) *int { return p.ChemistryScore },
		func(p *PartnerProfile, v *int) { p.ChemistryScore = clonePtr(v) }),
	FieldChemistryScoreDescription: accessor(
		func(p *PartnerProfile) string { return p.ChemistryScoreDescription },
		func(p *PartnerProfile, v string) { p.ChemistryScoreDescription = v }),
	FieldWhatWorksWell: accessor(
		func(p *PartnerProfile) []string { return p.WhatWorksWell },
		func(p *PartnerProfile, v []string) { p.WhatWorksWell = slices.Clone(v) }),

	FieldSpecialDays: accessor(
		func(p *PartnerProfile) []SpecialDay { return p.SpecialDays },
		func(p *PartnerProfile, v []SpecialDay) { p.SpecialDays = slices.Clone(v) }),
	FieldGiftIdeas: accessor(
		func(p *PartnerProfile) []GiftIdea { return p.GiftIdeas },
		func(p *PartnerProfile, v []GiftIdea) { p.GiftIdeas = slices.Clone(v) }),
}

// flagAccessor describes a provenance flag. Flags are only changed as a side
// effect of editing their field, never directly.
func flagAccessor(ref func(*PartnerProfile) **bool) fieldSpec {
	return readOnly(accessor(
		func(p *PartnerProfile) *bool { return *ref(p) },
		func(p *PartnerProfile, v *bool) { *ref(p) = clonePtr(v) }))
}

// Fields returns every profile field in a stable order.
func Fields() []Field {
	return slices.Clone(fieldOrder)
}

// Valid reports whether f names a profile field.
func (f Field) Valid() bool {
	_, ok := fieldSpecs[f]
	return ok
}

// Editable reports whether f may be changed through the update API.
func (f Field) Editable() bool {
	return fieldSpecs[f].editable
}

// CompanionFlag returns the provenance flag paired with f, if any.
func CompanionFlag(f Field) (Field, bool) {
	s, ok := fieldSpecs[f]
	if !ok || s.flag == "" {
		return "", false
	}
	return s.flag, true
}

// Get returns the current value of field f on p.
func Get(p *PartnerProfile, f Field) (any, error) {
	s, ok := fieldSpecs[f]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownField, f)
	}
	return s.get(p), nil
}

// Set writes value to field f on p and, when f has a companion provenance
// flag, marks that flag false. Editing the attachment tendency also clears
// the flag nested inside it. Non-editable fields are rejected.
func Set(p *PartnerProfile, f Field, value any) error {
	s, ok := fieldSpecs[f]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownField, f)
	}
	if !s.editable {
		return fmt.Errorf("%w: %q", ErrFieldNotEditable, f)
	}
	if err := s.set(p, value); err != nil {
		return fmt.Errorf("%w %q: got %T", err, f, value)
	}
	if s.flag != "" {
		if err := fieldSpecs[s.flag].set(p, Bool(false)); err != nil {
			return err
		}
	}
	if f == FieldAttachmentTendency && p.AttachmentTendency != nil {
		p.AttachmentTendency.IsAIGenerated = Bool(false)
	}
	return nil
}
