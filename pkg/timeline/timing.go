package timeline

import "sprout/entities"

// Timing is the effective merged timing for one crop plan. It is
// assembled once by ResolveTiming and never mutated after; nil fields
// mean "no source defined this" and downstream math falls back to
// engine defaults. Plan-level explicit day offsets are NOT merged here,
// they are consulted where each window is built.
type Timing struct {
	StartIndoorsWeeks    *int
	StartIndoorsWeeksMin *int
	StartIndoorsWeeksMax *int

	TransplantWeeksAfterFrost    *int
	TransplantWeeksAfterFrostMin *int
	TransplantWeeksAfterFrostMax *int

	SowWeeksFromFrost    *int
	SowWeeksFromFrostMin *int
	SowWeeksFromFrostMax *int

	DaysToMaturity    *int
	DaysToMaturityMin *int
	DaysToMaturityMax *int

	NeedsTrellis *bool
}

func (t Timing) TrellisRequired() bool { return t.NeedsTrellis != nil && *t.NeedsTrellis }

// ResolveTiming folds the optional sources left to right: variety first,
// then the generic plant profile on top. The profile wins whenever both
// define a field. Both links absent yields an all-nil Timing, which is
// not an error.
func ResolveTiming(v *entities.Variety, p *entities.PlantProfile) Timing {
	var t Timing
	for _, src := range []Timing{fromVariety(v), fromProfile(p)} {
		overlay(&t, src)
	}
	return t
}

func fromVariety(v *entities.Variety) Timing {
	if v == nil {
		return Timing{}
	}
	return Timing{
		StartIndoorsWeeks:    v.StartIndoorsWeeks,
		StartIndoorsWeeksMin: v.StartIndoorsWeeksMin,
		StartIndoorsWeeksMax: v.StartIndoorsWeeksMax,

		TransplantWeeksAfterFrost:    v.TransplantWeeksAfterFrost,
		TransplantWeeksAfterFrostMin: v.TransplantWeeksAfterFrostMin,
		TransplantWeeksAfterFrostMax: v.TransplantWeeksAfterFrostMax,

		SowWeeksFromFrost:    v.SowWeeksFromFrost,
		SowWeeksFromFrostMin: v.SowWeeksFromFrostMin,
		SowWeeksFromFrostMax: v.SowWeeksFromFrostMax,

		DaysToMaturity:    v.DaysToMaturity,
		DaysToMaturityMin: v.DaysToMaturityMin,
		DaysToMaturityMax: v.DaysToMaturityMax,

		NeedsTrellis: v.NeedsTrellis,
	}
}

func fromProfile(p *entities.PlantProfile) Timing {
	if p == nil {
		return Timing{}
	}
	return Timing{
		StartIndoorsWeeks:    p.StartIndoorsWeeks,
		StartIndoorsWeeksMin: p.StartIndoorsWeeksMin,
		StartIndoorsWeeksMax: p.StartIndoorsWeeksMax,

		TransplantWeeksAfterFrost:    p.TransplantWeeksAfterFrost,
		TransplantWeeksAfterFrostMin: p.TransplantWeeksAfterFrostMin,
		TransplantWeeksAfterFrostMax: p.TransplantWeeksAfterFrostMax,

		SowWeeksFromFrost:    p.SowWeeksFromFrost,
		SowWeeksFromFrostMin: p.SowWeeksFromFrostMin,
		SowWeeksFromFrostMax: p.SowWeeksFromFrostMax,

		DaysToMaturity:    p.DaysToMaturity,
		DaysToMaturityMin: p.DaysToMaturityMin,
		DaysToMaturityMax: p.DaysToMaturityMax,

		NeedsTrellis: p.NeedsTrellis,
	}
}

// overlay copies only defined fields of src onto dst.
func overlay(dst *Timing, src Timing) {
	setInt(&dst.StartIndoorsWeeks, src.StartIndoorsWeeks)
	setInt(&dst.StartIndoorsWeeksMin, src.StartIndoorsWeeksMin)
	setInt(&dst.StartIndoorsWeeksMax, src.StartIndoorsWeeksMax)

	setInt(&dst.TransplantWeeksAfterFrost, src.TransplantWeeksAfterFrost)
	setInt(&dst.TransplantWeeksAfterFrostMin, src.TransplantWeeksAfterFrostMin)
	setInt(&dst.TransplantWeeksAfterFrostMax, src.TransplantWeeksAfterFrostMax)

	setInt(&dst.SowWeeksFromFrost, src.SowWeeksFromFrost)
	setInt(&dst.SowWeeksFromFrostMin, src.SowWeeksFromFrostMin)
	setInt(&dst.SowWeeksFromFrostMax, src.SowWeeksFromFrostMax)

	setInt(&dst.DaysToMaturity, src.DaysToMaturity)
	setInt(&dst.DaysToMaturityMin, src.DaysToMaturityMin)
	setInt(&dst.DaysToMaturityMax, src.DaysToMaturityMax)

	if src.NeedsTrellis != nil {
		dst.NeedsTrellis = src.NeedsTrellis
	}
}

func setInt(dst **int, src *int) {
	if src != nil {
		*dst = src
	}
}
