package types

const (
	InchesPerFoot       = 12
	InchesToCentimeters = 2.54
)

// Height is a person's height. TotalInches is what the BMI formula consumes.
type Height struct {
	Feet        float64
	Inches      float64
	TotalInches float64
	Centimeters float64
}

// NewHeight combines a feet and an inches component. Only the feet
// component is converted before the two are added.
func NewHeight(feet, inches float64) Height {
	total := feet*InchesPerFoot + inches
	return Height{
		Feet:        feet,
		Inches:      inches,
		TotalInches: total,
		Centimeters: total * InchesToCentimeters,
	}
}
