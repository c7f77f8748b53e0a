// Package validation checks a draft profile before it is submitted.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"slices"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/light-bringer/partner-profile-service/internal/app/partner/domain"
)

// Validator applies struct tag rules from the domain model plus the
// cross-field rules that tags cannot express.
type Validator struct {
	v *validator.Validate
}

// New returns a Validator that reports fields by their JSON names.
func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	v.RegisterStructValidation(profileRules, domain.PartnerProfile{})
	return &Validator{v: v}
}

// Validate returns nil when p passes every rule. Otherwise the error wraps
// domain.ErrValidation and lists each failure as "field: reason", joined
// by ", ".
func (val *Validator) Validate(p *domain.PartnerProfile) error {
	if p == nil {
		return fmt.Errorf("%w: profile is missing", domain.ErrValidation)
	}
	err := val.v.Struct(p)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fmt.Sprintf("%s: %s", fieldPath(fe), reason(fe)))
	}
	return fmt.Errorf("%w: %s", domain.ErrValidation, strings.Join(msgs, ", "))
}

// fieldPath drops the root struct name from the namespace, e.g.
// "PartnerProfile.specialDays[0].name" becomes "specialDays[0].name".
func fieldPath(fe validator.FieldError) string {
	_, rest, ok := strings.Cut(fe.Namespace(), ".")
	if !ok {
		return fe.Field()
	}
	return rest
}

func reason(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "min":
		return "must be at least " + fe.Param()
	case "max":
		if fe.Kind() == reflect.String {
			return "must be at most " + fe.Param() + " characters"
		}
		return "must be at most " + fe.Param()
	case "url":
		return "must be a valid URL"
	case "enum":
		return fmt.Sprintf("unsupported value %v", fe.Param())
	case "subset_of_hobbies":
		return "must be a subset of hobbies"
	default:
		return "failed " + fe.Tag()
	}
}

func profileRules(sl validator.StructLevel) {
	p := sl.Current().Interface().(domain.PartnerProfile)

	for _, h := range p.FavoriteHobbies {
		if !slices.Contains(p.Hobbies, h) {
			sl.ReportError(p.FavoriteHobbies, "favoriteHobbies", "FavoriteHobbies", "subset_of_hobbies", string(h))
			break
		}
	}

	checkEnum(sl, domain.RelationshipStages, p.Stage, "stage", "Stage")
	checkEnum(sl, domain.LoveLanguages, p.LoveLanguage, "loveLanguage", "LoveLanguage")
	checkEnum(sl, domain.WorkRhythms, p.WorkRhythm, "workRhythm", "WorkRhythm")
	checkEnum(sl, domain.SocialEnergyLevels, p.SocialEnergyLevel, "socialEnergyLevel", "SocialEnergyLevel")
	checkEnum(sl, domain.DateBudgets, p.DateBudget, "dateBudget", "DateBudget")
	checkEnum(sl, domain.InterestLevels, p.InterestLevel, "interestLevel", "InterestLevel")
	checkEnum(sl, domain.MoodTrends, p.MoodTrend, "moodTrend", "MoodTrend")
	if p.AttachmentTendency != nil {
		checkEnum(sl, domain.AttachmentStyles, p.AttachmentTendency.Tendency, "attachmentTendency", "AttachmentTendency")
	}

	checkEnumList(sl, domain.Goals, p.Goals, "goals", "Goals")
	checkEnumList(sl, domain.CommunicationStyles, p.CommunicationStyles, "communicationStyles", "CommunicationStyles")
	checkEnumList(sl, domain.DealBreakers, p.DealBreakers, "dealBreakers", "DealBreakers")
	checkEnumList(sl, domain.AppreciatedThings, p.AppreciatedThings, "appreciatedThings", "AppreciatedThings")
	checkEnumList(sl, domain.Hobbies, p.Hobbies, "hobbies", "Hobbies")
	checkEnumList(sl, domain.Hobbies, p.FavoriteHobbies, "favoriteHobbies", "FavoriteHobbies")
}

// checkEnum reports a non-empty value outside its set. Empty means unset.
func checkEnum[T ~string](sl validator.StructLevel, set *domain.Enum[T], v T, field, structField string) {
	if v != "" && !set.Contains(v) {
		sl.ReportError(v, field, structField, "enum", string(v))
	}
}

func checkEnumList[T ~string](sl validator.StructLevel, set *domain.Enum[T], vs []T, field, structField string) {
	for _, v := range vs {
		if !set.Contains(v) {
			sl.ReportError(vs, field, structField, "enum", string(v))
			return
		}
	}
}
