package layout

// UnitConverter converts device-independent units to pixels.
type UnitConverter interface {
	ToPixels(dip float64) float64
}

// Density is a UnitConverter with a fixed pixel ratio. Zero or negative
// densities convert at 1:1.
type Density float64

// ToPixels implements UnitConverter.
func (d Density) ToPixels(dip float64) float64 {
	if d <= 0 {
		return dip
	}
	return dip * float64(d)
}

// ToPixels converts with u, treating a nil converter as 1:1.
func ToPixels(u UnitConverter, dip float64) float64 {
	if u == nil {
		return dip
	}
	return u.ToPixels(dip)
}
