package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// HousingStatus is the housing situation at the start of a projection.
type HousingStatus string

const (
	HousingRenting          HousingStatus = "renting"
	HousingOwns             HousingStatus = "owns"
	HousingLivingWithFamily HousingStatus = "living_with_family"
)

// RelationshipStatus controls whether partner income is counted.
type RelationshipStatus string

const (
	RelationshipSingle    RelationshipStatus = "single"
	RelationshipPartnered RelationshipStatus = "partnered"
	RelationshipMarried   RelationshipStatus = "married"
)

// LocationCost is the cost-of-living tier that selects the location multipliers.
type LocationCost string

const (
	LocationLow     LocationCost = "low"
	LocationAverage LocationCost = "average"
	LocationHigh    LocationCost = "high"
)

// Gender is display-only profile data.
type Gender string

const (
	GenderMale           Gender = "male"
	GenderFemale         Gender = "female"
	GenderNonBinary      Gender = "non_binary"
	GenderPreferNotToSay Gender = "prefer_not_to_say"
)

// LifeStage is display-only profile data.
type LifeStage string

const (
	LifeStageHighSchool    LifeStage = "high_school"
	LifeStageCollege       LifeStage = "college"
	LifeStageRecentGrad    LifeStage = "recent_grad"
	LifeStageEarlyCareer   LifeStage = "early_career"
	LifeStageEstablished   LifeStage = "established"
	LifeStageMidCareer     LifeStage = "mid_career"
	LifeStagePreRetirement LifeStage = "pre_retirement"
)

var (
	HousingStatuses      = []HousingStatus{HousingRenting, HousingOwns, HousingLivingWithFamily}
	RelationshipStatuses = []RelationshipStatus{RelationshipSingle, RelationshipPartnered, RelationshipMarried}
	LocationCosts        = []LocationCost{LocationLow, LocationAverage, LocationHigh}
	Genders              = []Gender{GenderMale, GenderFemale, GenderNonBinary, GenderPreferNotToSay}
	LifeStages           = []LifeStage{
		LifeStageHighSchool, LifeStageCollege, LifeStageRecentGrad, LifeStageEarlyCareer,
		LifeStageEstablished, LifeStageMidCareer, LifeStagePreRetirement,
	}
)

// LocationMultipliers scales housing costs, salaries and living costs for a tier.
type LocationMultipliers struct {
	Housing decimal.Decimal `yaml:"housing" json:"housing"`
	Salary  decimal.Decimal `yaml:"salary" json:"salary"`
	Living  decimal.Decimal `yaml:"living" json:"living"`
}

var locationMultipliers = map[LocationCost]LocationMultipliers{
	LocationLow: {
		Housing: decimal.NewFromFloat(0.7),
		Salary:  decimal.NewFromFloat(0.9),
		Living:  decimal.NewFromFloat(0.8),
	},
	LocationAverage: {
		Housing: decimal.NewFromInt(1),
		Salary:  decimal.NewFromInt(1),
		Living:  decimal.NewFromInt(1),
	},
	LocationHigh: {
		Housing: decimal.NewFromFloat(1.8),
		Salary:  decimal.NewFromFloat(1.3),
		Living:  decimal.NewFromFloat(1.3),
	},
}

// Multipliers returns the multiplier triple for the tier.
func (l LocationCost) Multipliers() (LocationMultipliers, error) {
	m, ok := locationMultipliers[l]
	if !ok {
		return LocationMultipliers{}, fmt.Errorf("%w: unknown location cost %q", ErrInvalidConfiguration, string(l))
	}
	return m, nil
}

func (l LocationCost) Valid() bool       { return contains(LocationCosts, l) }
func (h HousingStatus) Valid() bool      { return contains(HousingStatuses, h) }
func (r RelationshipStatus) Valid() bool { return contains(RelationshipStatuses, r) }
func (g Gender) Valid() bool             { return contains(Genders, g) }
func (s LifeStage) Valid() bool          { return contains(LifeStages, s) }

// HasPartner reports whether partner income is added.
func (r RelationshipStatus) HasPartner() bool { return r != RelationshipSingle }

// UnmarshalText rejects values outside the enumeration so that YAML and JSON
// decoding fail when the input is read rather than during projection.
func (l *LocationCost) UnmarshalText(text []byte) error {
	return parseEnum(text, LocationCosts, l, "location cost")
}

func (h *HousingStatus) UnmarshalText(text []byte) error {
	return parseEnum(text, HousingStatuses, h, "housing status")
}

func (r *RelationshipStatus) UnmarshalText(text []byte) error {
	return parseEnum(text, RelationshipStatuses, r, "relationship status")
}

func (g *Gender) UnmarshalText(text []byte) error {
	return parseEnum(text, Genders, g, "gender")
}

func (s *LifeStage) UnmarshalText(text []byte) error {
	return parseEnum(text, LifeStages, s, "life stage")
}

func contains[T comparable](values []T, v T) bool {
	for _, candidate := range values {
		if candidate == v {
			return true
		}
	}
	return false
}

func parseEnum[T ~string](text []byte, values []T, out *T, label string) error {
	v := T(text)
	if !contains(values, v) {
		return fmt.Errorf("%w: unknown %s %q (want one of %v)", ErrInvalidConfiguration, label, string(text), values)
	}
	*out = v
	return nil
}
