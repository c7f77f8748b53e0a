package wire

import "github.com/light-bringer/partner-profile-service/internal/app/partner/domain"

// Key constants for the partner profile wire shape exchanged with the
// remote task-execution service.
const (
	PartnerID = "partner_id"
	LegacyID  = "id"

	BasicInfo         = "basic_info"
	Name              = "name"
	Nickname          = "nickname"
	Age               = "age"
	Location          = "location"
	AvatarURL         = "avatar_url"
	RelationshipStage = "relationship_stage"
	IsPremium         = "is_premium"

	Goals                            = "goals"
	GoalsIsAIGenerated               = "goals_is_ai_generated"
	LoveLanguage                     = "love_language"
	LoveLanguageIsAIGenerated        = "love_language_is_ai_generated"
	CommunicationStyles              = "communication_styles"
	CommunicationStylesIsAIGenerated = "communication_styles_is_ai_generated"
	AttachmentTendency               = "attachment_tendency"
	DealBreakers                     = "deal_breakers"
	AppreciatedThings                = "appreciated_things"
	LegacyThingsTheyAppreciate       = "things_they_appreciate"
	AppreciatedThingsIsAIGenerated   = "appreciated_things_is_ai_generated"

	WorkRhythm                     = "work_rhythm"
	WorkRhythmIsAIGenerated        = "work_rhythm_is_ai_generated"
	SocialEnergyLevel              = "social_energy_level"
	SocialEnergyLevelIsAIGenerated = "social_energy_level_is_ai_generated"
	DateBudget                     = "date_budget"
	DateBudgetIsAIGenerated        = "date_budget_is_ai_generated"
	Hobbies                        = "hobbies"
	HobbiesIsAIGenerated           = "hobbies_is_ai_generated"
	FavoriteHobbies                = "favorite_hobbies"
	CycleTracking                  = "cycle_tracking"

	SocialSignals    = "social_signals"
	SocialSignalTags = "social_signal_tags"
	InstagramURL     = "instagram_url"
	FacebookURL      = "facebook_url"
	ThreadsURL       = "threads_url"
	TikTokURL        = "tiktok_url"

	InterestLevel             = "interest_level"
	InterestLevelConfidence   = "interest_level_confidence"
	MoodTrend                 = "mood_trend"
	ChemistryScore            = "chemistry_score"
	ChemistryScoreDescription = "chemistry_score_description"
	WhatWorksWell             = "what_works_well"

	SpecialDays = "special_days"
	GiftIdeas   = "gift_ideas"

	// Nested object keys
	Tendency             = "tendency"
	Label                = "label"
	Description          = "description"
	IsAIGenerated        = "is_ai_generated"
	IsPrivate            = "is_private"
	PredictedStart       = "predicted_start"
	PredictedEnd         = "predicted_end"
	Title                = "title"
	Icon                 = "icon"
	IconColor            = "icon_color"
	Type                 = "type"
	Date                 = "date"
	NotificationsEnabled = "notifications_enabled"
	Price                = "price"
	Tag                  = "tag"
	Rationale            = "rationale"

	// Envelope keys of the partner_profile_get result
	PartnerProfile = "partner_profile"
)

// fieldPaths maps a domain field to the wire key path that carries it.
// Basic info fields live one level down under basic_info.
var fieldPaths = map[domain.Field][]string{
	domain.FieldID:        {PartnerID},
	domain.FieldName:      {BasicInfo, Name},
	domain.FieldNickname:  {BasicInfo, Nickname},
	domain.FieldAge:       {BasicInfo, Age},
	domain.FieldLocation:  {BasicInfo, Location},
	domain.FieldAvatarURL: {BasicInfo, AvatarURL},
	domain.FieldStage:     {BasicInfo, RelationshipStage},
	domain.FieldIsPremium: {IsPremium},

	domain.FieldGoals:                            {Goals},
	domain.FieldGoalsIsAIGenerated:               {GoalsIsAIGenerated},
	domain.FieldLoveLanguage:                     {LoveLanguage},
	domain.FieldLoveLanguageIsAIGenerated:        {LoveLanguageIsAIGenerated},
	domain.FieldCommunicationStyles:              {CommunicationStyles},
	domain.FieldCommunicationStylesIsAIGenerated: {CommunicationStylesIsAIGenerated},
	domain.FieldAttachmentTendency:               {AttachmentTendency},
	domain.FieldDealBreakers:                     {DealBreakers},
	domain.FieldAppreciatedThings:                {AppreciatedThings},
	domain.FieldAppreciatedThingsIsAIGenerated:   {AppreciatedThingsIsAIGenerated},

	domain.FieldWorkRhythm:                     {WorkRhythm},
	domain.FieldWorkRhythmIsAIGenerated:        {WorkRhythmIsAIGenerated},
	domain.FieldSocialEnergyLevel:              {SocialEnergyLevel},
	domain.FieldSocialEnergyLevelIsAIGenerated: {SocialEnergyLevelIsAIGenerated},
	domain.FieldDateBudget:                     {DateBudget},
	domain.FieldDateBudgetIsAIGenerated:        {DateBudgetIsAIGenerated},
	domain.FieldHobbies:                        {Hobbies},
	domain.FieldHobbiesIsAIGenerated:           {HobbiesIsAIGenerated},
	domain.FieldFavoriteHobbies:                {FavoriteHobbies},
	domain.FieldCycleTracking:                  {CycleTracking},

	domain.FieldSocialSignals:    {SocialSignals},
	domain.FieldSocialSignalTags: {SocialSignalTags},
	domain.FieldInstagramURL:     {InstagramURL},
	domain.FieldFacebookURL:      {FacebookURL},
	domain.FieldThreadsURL:       {ThreadsURL},
	domain.FieldTikTokURL:        {TikTokURL},

	domain.FieldInterestLevel:             {InterestLevel},
	domain.FieldInterestLevelConfidence:   {InterestLevelConfidence},
	domain.FieldMoodTrend:                 {MoodTrend},
	domain.FieldChemistryScore:            {ChemistryScore},
	domain.FieldChemistryScoreDescription: {ChemistryScoreDescription},
	domain.FieldWhatWorksWell:             {WhatWorksWell},

	domain.FieldSpecialDays: {SpecialDays},
	domain.FieldGiftIdeas:   {GiftIdeas},
}

// KeyFor returns the top-level wire key that carries field f.
func KeyFor(f domain.Field) (string, bool) {
	path, ok := fieldPaths[f]
	if !ok {
		return "", false
	}
	return path[0], true
}
