package domain

import (
	"strconv"
	"strings"
)

// Enum is a closed value set for a string-backed domain enum.
// Lookups are case and separator insensitive: "Long-term", "long term"
// and "LONG_TERM" all resolve to the same member.
type Enum[T ~string] struct {
	values []T
	index  map[string]T
}

// NewEnum builds a value set from its members. Aliases may be registered
// afterwards with WithAlias.
func NewEnum[T ~string](values ...T) *Enum[T] {
	e := &Enum[T]{
		values: values,
		index:  make(map[string]T, len(values)),
	}
	for _, v := range values {
		e.index[normalizeEnumKey(string(v))] = v
	}
	return e
}

// WithAlias maps an additional spelling to an existing member.
func (e *Enum[T]) WithAlias(alias string, value T) *Enum[T] {
	e.index[normalizeEnumKey(alias)] = value
	return e
}

// Parse returns the member matching raw, or false if raw is outside the set.
func (e *Enum[T]) Parse(raw string) (T, bool) {
	v, ok := e.index[normalizeEnumKey(raw)]
	return v, ok
}

// Filter keeps the recognized members of raw in their original order.
// Unrecognized entries are dropped. The result is never nil.
func (e *Enum[T]) Filter(raw []string) []T {
	out := make([]T, 0, len(raw))
	for _, r := range raw {
		if v, ok := e.Parse(r); ok {
			out = append(out, v)
		}
	}
	return out
}

// Contains reports whether v is a member of the set in its canonical
// spelling. Aliases and display spellings are not members.
func (e *Enum[T]) Contains(v T) bool {
	got, ok := e.index[normalizeEnumKey(string(v))]
	return ok && got == v
}

// Values returns the members in declaration order.
func (e *Enum[T]) Values() []T {
	out := make([]T, len(e.values))
	copy(out, e.values)
	return out
}

func normalizeEnumKey(raw string) string {
	s := strings.ToLower(strings.TrimSpace(raw))
	s = strings.NewReplacer("-", "_", " ", "_", "/", "_").Replace(s)
	return s
}

// RelationshipStage is how far along the relationship is.
type RelationshipStage string

const (
	StageDating    RelationshipStage = "dating"
	StageExclusive RelationshipStage = "exclusive"
	StageCommitted RelationshipStage = "committed"
	StageEngaged   RelationshipStage = "engaged"
	StageMarried   RelationshipStage = "married"
)

var RelationshipStages = NewEnum(StageDating, StageExclusive, StageCommitted, StageEngaged, StageMarried).
	WithAlias("in_a_relationship", StageCommitted)

// Goal is what the user wants out of the relationship.
type Goal string

const (
	GoalForFun        Goal = "for_fun"
	GoalLongTerm      Goal = "long_term"
	GoalDateToMarry   Goal = "date_to_marry"
	GoalCasual        Goal = "casual"
	GoalCompanionship Goal = "companionship"
	GoalFiguringItOut Goal = "figuring_it_out"
)

var Goals = NewEnum(GoalForFun, GoalLongTerm, GoalDateToMarry, GoalCasual, GoalCompanionship, GoalFiguringItOut)

// LoveLanguage is one of the five love languages.
type LoveLanguage string

const (
	LoveLanguageWords         LoveLanguage = "words_of_affirmation"
	LoveLanguageQualityTime   LoveLanguage = "quality_time"
	LoveLanguageGifts         LoveLanguage = "receiving_gifts"
	LoveLanguageActsOfService LoveLanguage = "acts_of_service"
	LoveLanguagePhysicalTouch LoveLanguage = "physical_touch"
)

var LoveLanguages = NewEnum(LoveLanguageWords, LoveLanguageQualityTime, LoveLanguageGifts,
	LoveLanguageActsOfService, LoveLanguagePhysicalTouch).
	WithAlias("gifts", LoveLanguageGifts).
	WithAlias("words", LoveLanguageWords)

// CommunicationStyle describes how the partner prefers to communicate.
type CommunicationStyle string

const (
	CommunicationDirect     CommunicationStyle = "direct"
	CommunicationIndirect   CommunicationStyle = "indirect"
	CommunicationAnalytical CommunicationStyle = "analytical"
	CommunicationExpressive CommunicationStyle = "expressive"
	CommunicationReserved   CommunicationStyle = "reserved"
	CommunicationPlayful    CommunicationStyle = "playful"
)

var CommunicationStyles = NewEnum(CommunicationDirect, CommunicationIndirect, CommunicationAnalytical,
	CommunicationExpressive, CommunicationReserved, CommunicationPlayful)

// AttachmentStyle is the attachment theory classification.
type AttachmentStyle string

const (
	AttachmentSecure          AttachmentStyle = "secure"
	AttachmentAnxious         AttachmentStyle = "anxious"
	AttachmentAvoidant        AttachmentStyle = "avoidant"
	AttachmentFearfulAvoidant AttachmentStyle = "fearful_avoidant"
)

var AttachmentStyles = NewEnum(AttachmentSecure, AttachmentAnxious, AttachmentAvoidant, AttachmentFearfulAvoidant).
	WithAlias("disorganized", AttachmentFearfulAvoidant)

// DealBreaker is a trait the user will not accept in a partner.
type DealBreaker string

const (
	DealBreakerSmoking           DealBreaker = "smoking"
	DealBreakerDishonesty        DealBreaker = "dishonesty"
	DealBreakerNoAmbition        DealBreaker = "no_ambition"
	DealBreakerPoorCommunication DealBreaker = "poor_communication"
	DealBreakerJealousy          DealBreaker = "jealousy"
	DealBreakerWantsKids         DealBreaker = "wants_kids"
	DealBreakerWantsNoKids       DealBreaker = "wants_no_kids"
	DealBreakerSubstanceAbuse    DealBreaker = "substance_abuse"
)

var DealBreakers = NewEnum(DealBreakerSmoking, DealBreakerDishonesty, DealBreakerNoAmbition,
	DealBreakerPoorCommunication, DealBreakerJealousy, DealBreakerWantsKids, DealBreakerWantsNoKids,
	DealBreakerSubstanceAbuse)

// AppreciatedThing is a gesture the partner responds well to.
type AppreciatedThing string

const (
	AppreciatesCompliments          AppreciatedThing = "compliments"
	AppreciatesSurprises            AppreciatedThing = "surprises"
	AppreciatesThoughtfulGestures   AppreciatedThing = "thoughtful_gestures"
	AppreciatesQualityConversations AppreciatedThing = "quality_conversations"
	AppreciatesActsOfHelp           AppreciatedThing = "acts_of_help"
	AppreciatesPhysicalAffection    AppreciatedThing = "physical_affection"
	AppreciatesSharedAdventures     AppreciatedThing = "shared_adventures"
	AppreciatesAloneTime            AppreciatedThing = "alone_time"
)

var AppreciatedThings = NewEnum(AppreciatesCompliments, AppreciatesSurprises, AppreciatesThoughtfulGestures,
	AppreciatesQualityConversations, AppreciatesActsOfHelp, AppreciatesPhysicalAffection,
	AppreciatesSharedAdventures, AppreciatesAloneTime)

// WorkRhythm is the partner's typical working pattern.
type WorkRhythm string

const (
	WorkNineToFive WorkRhythm = "nine_to_five"
	WorkEarlyBird  WorkRhythm = "early_bird"
	WorkNightOwl   WorkRhythm = "night_owl"
	WorkShifts     WorkRhythm = "shift_work"
	WorkFlexible   WorkRhythm = "flexible"
	WorkFreelance  WorkRhythm = "freelance"
)

var WorkRhythms = NewEnum(WorkNineToFive, WorkEarlyBird, WorkNightOwl, WorkShifts, WorkFlexible, WorkFreelance).
	WithAlias("9_to_5", WorkNineToFive)

// SocialEnergyLevel is where the partner sits on the introvert/extrovert scale.
type SocialEnergyLevel string

const (
	SocialIntrovert SocialEnergyLevel = "introvert"
	SocialAmbivert  SocialEnergyLevel = "ambivert"
	SocialExtrovert SocialEnergyLevel = "extrovert"
)

var SocialEnergyLevels = NewEnum(SocialIntrovert, SocialAmbivert, SocialExtrovert)

// DateBudget is a coarse spending tier for dates.
type DateBudget string

const (
	BudgetLow    DateBudget = "low"
	BudgetMedium DateBudget = "medium"
	BudgetHigh   DateBudget = "high"
	BudgetLuxury DateBudget = "luxury"
)

var DateBudgets = NewEnum(BudgetLow, BudgetMedium, BudgetHigh, BudgetLuxury).
	WithAlias("$", BudgetLow).
	WithAlias("$$", BudgetMedium).
	WithAlias("$$$", BudgetHigh).
	WithAlias("$$$$", BudgetLuxury).
	WithAlias("1", BudgetLow).
	WithAlias("2", BudgetMedium).
	WithAlias("3", BudgetHigh).
	WithAlias("4", BudgetLuxury)

// ParseDateBudgetTier maps the numeric wire form (1-4) onto a budget tier.
func ParseDateBudgetTier(tier float64) (DateBudget, bool) {
	if tier != float64(int(tier)) {
		return "", false
	}
	return DateBudgets.Parse(strconv.Itoa(int(tier)))
}

// Hobby is a pastime the partner enjoys.
type Hobby string

const (
	HobbyHiking       Hobby = "hiking"
	HobbyCooking      Hobby = "cooking"
	HobbyReading      Hobby = "reading"
	HobbyGaming       Hobby = "gaming"
	HobbyMusic        Hobby = "music"
	HobbyTravel       Hobby = "travel"
	HobbyFitness      Hobby = "fitness"
	HobbyArt          Hobby = "art"
	HobbyMovies       Hobby = "movies"
	HobbyDancing      Hobby = "dancing"
	HobbyPhotography  Hobby = "photography"
	HobbyYoga         Hobby = "yoga"
	HobbySports       Hobby = "sports"
	HobbyGardening    Hobby = "gardening"
	HobbyWriting      Hobby = "writing"
	HobbyVolunteering Hobby = "volunteering"
)

var Hobbies = NewEnum(HobbyHiking, HobbyCooking, HobbyReading, HobbyGaming, HobbyMusic, HobbyTravel,
	HobbyFitness, HobbyArt, HobbyMovies, HobbyDancing, HobbyPhotography, HobbyYoga, HobbySports,
	HobbyGardening, HobbyWriting, HobbyVolunteering)

// SpecialDayType classifies a special day.
type SpecialDayType string

const (
	SpecialDayBirthday    SpecialDayType = "birthday"
	SpecialDayAnniversary SpecialDayType = "anniversary"
	SpecialDayFirstDate   SpecialDayType = "first_date"
	SpecialDayHoliday     SpecialDayType = "holiday"
	SpecialDayCustom      SpecialDayType = "custom"
)

var SpecialDayTypes = NewEnum(SpecialDayBirthday, SpecialDayAnniversary, SpecialDayFirstDate,
	SpecialDayHoliday, SpecialDayCustom)

// InterestLevel is the remote service's estimate of the partner's interest.
type InterestLevel string

const (
	InterestLow      InterestLevel = "low"
	InterestMedium   InterestLevel = "medium"
	InterestHigh     InterestLevel = "high"
	InterestVeryHigh InterestLevel = "very_high"
)

var InterestLevels = NewEnum(InterestLow, InterestMedium, InterestHigh, InterestVeryHigh)

// MoodTrend is the direction the relationship mood is heading.
type MoodTrend string

const (
	MoodImproving MoodTrend = "improving"
	MoodStable    MoodTrend = "stable"
	MoodDeclining MoodTrend = "declining"
)

var MoodTrends = NewEnum(MoodImproving, MoodStable, MoodDeclining)
