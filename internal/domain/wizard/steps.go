package wizard

import (
	"errors"
	"strings"

	"pet-friendly-stays/internal/domain/pets"

	"github.com/mitchellh/mapstructure"
	"github.com/thoas/go-funk"
)

// Step es el estado actual del asistente.
// @Enum pet_info, travel_style, budget, interests, results
type Step string

const (
	StepPetInfo     Step = "pet_info"
	StepTravelStyle Step = "travel_style"
	StepBudget      Step = "budget"
	StepInterests   Step = "interests"
	StepResults     Step = "results"
)

// Steps en orden; StepResults es terminal y no figura.
var Steps = []Step{StepPetInfo, StepTravelStyle, StepBudget, StepInterests}

func (s Step) index() int {
	for i, v := range Steps {
		if v == s {
			return i
		}
	}
	if s == StepResults {
		return len(Steps)
	}
	return -1
}

type TravelStyle string

const (
	StyleRelaxing  TravelStyle = "relaxing"
	StyleActive    TravelStyle = "active"
	StyleAdventure TravelStyle = "adventure"
)

func (t TravelStyle) IsValid() bool {
	switch t {
	case StyleRelaxing, StyleActive, StyleAdventure:
		return true
	}
	return false
}

type BudgetTier string

const (
	BudgetSaver    BudgetTier = "budget"
	BudgetStandard BudgetTier = "standard"
	BudgetLuxury   BudgetTier = "luxury"
)

func (b BudgetTier) IsValid() bool {
	switch b {
	case BudgetSaver, BudgetStandard, BudgetLuxury:
		return true
	}
	return false
}

const (
	DefaultDurationNights = 2
	MinDurationNights     = 1
	MaxDurationNights     = 5
)

// InterestOptions es el vocabulario cerrado del último paso.
var InterestOptions = []string{
	"beach",
	"hiking",
	"valley",
	"cafe_tour",
	"pet_theme_park",
	"camping",
	"photography",
	"food",
	"culture",
	"spa",
}

// StepInput es la unión de registros por paso. Cada uno valida sus propios campos.
type StepInput interface {
	Step() Step
	Valid() bool
	apply(p *Preference)
}

type PetInfoInput struct {
	PetSize pets.SizeCategory `mapstructure:"pet_size"`
	PetAge  pets.AgeCategory  `mapstructure:"pet_age"`
}

func (in PetInfoInput) Step() Step {
	return StepPetInfo
}

func (in PetInfoInput) Valid() bool {
	return in.PetSize.IsValid() && in.PetAge.IsValid()
}

func (in PetInfoInput) apply(p *Preference) {
	p.PetSize = in.PetSize
	p.PetAge = in.PetAge
}

type TravelStyleInput struct {
	TravelStyle TravelStyle `mapstructure:"travel_style"`
}

func (in TravelStyleInput) Step() Step {
	return StepTravelStyle
}

func (in TravelStyleInput) Valid() bool {
	return in.TravelStyle.IsValid()
}

func (in TravelStyleInput) apply(p *Preference) {
	p.TravelStyle = in.TravelStyle
}

// BudgetInput: la duración siempre es válida (default 2, se acota a 1..5).
type BudgetInput struct {
	Budget         BudgetTier `mapstructure:"budget"`
	DurationNights int        `mapstructure:"duration_nights"`
}

func (in BudgetInput) Step() Step {
	return StepBudget
}

func (in BudgetInput) Valid() bool {
	return in.Budget.IsValid()
}

func (in BudgetInput) apply(p *Preference) {
	p.Budget = in.Budget
	p.DurationNights = clampDuration(in.DurationNights)
}

// InterestsInput: cero intereses es válido.
type InterestsInput struct {
	Interests []string `mapstructure:"interests"`
}

func (in InterestsInput) Step() Step {
	return StepInterests
}

func (in InterestsInput) Valid() bool {
	for _, i := range in.Interests {
		if !funk.ContainsString(InterestOptions, i) {
			return false
		}
	}
	return true
}

func (in InterestsInput) apply(p *Preference) {
	p.Interests = funk.UniqString(append([]string{}, in.Interests...))
}

func clampDuration(n int) int {
	switch {
	case n == 0:
		return DefaultDurationNights
	case n < MinDurationNights:
		return MinDurationNights
	case n > MaxDurationNights:
		return MaxDurationNights
	default:
		return n
	}
}

var ErrUnknownStep = errors.New("unknown step")

// DecodeStep arma el StepInput de un paso a partir de un payload suelto (JSON ya decodificado).
func DecodeStep(step Step, data map[string]any) (StepInput, error) {
	var target StepInput
	switch Step(strings.ToLower(strings.TrimSpace(string(step)))) {
	case StepPetInfo:
		in := PetInfoInput{}
		if err := decode(data, &in); err != nil {
			return nil, err
		}
		target = in
	case StepTravelStyle:
		in := TravelStyleInput{}
		if err := decode(data, &in); err != nil {
			return nil, err
		}
		target = in
	case StepBudget:
		in := BudgetInput{}
		if err := decode(data, &in); err != nil {
			return nil, err
		}
		target = in
	case StepInterests:
		in := InterestsInput{}
		if err := decode(data, &in); err != nil {
			return nil, err
		}
		target = in
	default:
		return nil, ErrUnknownStep
	}
	return target, nil
}

func decode(data map[string]any, out any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		Result:           out,
	})
	if err != nil {
		return err
	}
	return dec.Decode(data)
}
