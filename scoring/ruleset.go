// Package scoring computes final scores for finished boards under the
// Japanese, Chinese, Korean, AGA and Ing rule sets.
package scoring

// Method selects how a finished board is counted.
type Method int

const (
	// AreaScoring counts live stones on the board plus territory
	// (Chinese/AGA/Ing style).
	AreaScoring Method = iota
	// TerritoryScoring counts territory plus prisoners captured
	// during play (Japanese/Korean style).
	TerritoryScoring
)

func (m Method) String() string {
	if m == AreaScoring {
		return "area"
	}
	return "territory"
}

// DamePolicy decides what to do with neutral regions.
type DamePolicy int

const (
	// DameNeutral scores neutral regions for neither side.
	DameNeutral DamePolicy = iota
	// DameMustBeFilled refuses to score while any neutral region
	// remains, the strict Japanese practice of filling dame before
	// counting.
	DameMustBeFilled
)

// Ruleset is a closed variant: each named rule set carries its
// scoring method, komi and dame policy as data rather than as
// scattered conditionals.
type Ruleset struct {
	Name   string
	Method Method
	Komi   float64
	Dame   DamePolicy
}

// Japanese returns territory scoring with 6.5 komi.
func Japanese() Ruleset {
	return Ruleset{Name: "Japanese", Method: TerritoryScoring, Komi: 6.5}
}

// Korean returns territory scoring with 6.5 komi.
func Korean() Ruleset {
	return Ruleset{Name: "Korean", Method: TerritoryScoring, Komi: 6.5}
}

// Chinese returns area scoring with 7.5 komi.
func Chinese() Ruleset {
	return Ruleset{Name: "Chinese", Method: AreaScoring, Komi: 7.5}
}

// AGA returns area scoring with 7.5 komi.
func AGA() Ruleset {
	return Ruleset{Name: "AGA", Method: AreaScoring, Komi: 7.5}
}

// Ing returns area scoring with the Ing 8-point komi convention. The
// komi is configuration, not an algorithmic branch.
func Ing() Ruleset {
	return Ruleset{Name: "Ing", Method: AreaScoring, Komi: 8}
}

// WithKomi returns a copy of the rule set with komi overridden.
func (r Ruleset) WithKomi(komi float64) Ruleset {
	r.Komi = komi
	return r
}

// WithDamePolicy returns a copy of the rule set with the dame policy
// overridden.
func (r Ruleset) WithDamePolicy(p DamePolicy) Ruleset {
	r.Dame = p
	return r
}
