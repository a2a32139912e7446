package types

const PoundsToKilograms = 0.45359237

type Weight struct {
	Pounds    float64
	Kilograms float64
}

func NewWeightFromPounds(pounds float64) Weight {
	return Weight{
		Pounds:    pounds,
		Kilograms: pounds * PoundsToKilograms,
	}
}
