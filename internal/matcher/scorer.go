package matcher

// Scorer turns a distance into a match score. Higher is better.
type Scorer interface {
	Score(distanceKM float64) float64
}

type ScorerFunc func(distanceKM float64) float64

func (f ScorerFunc) Score(distanceKM float64) float64 { return f(distanceKM) }

// LinearScorer scores Base - distance*PenaltyPerKM. It is not clamped, so far
// away resources go negative.
type LinearScorer struct {
	Base         float64
	PenaltyPerKM float64
}

func DefaultScorer() LinearScorer {
	return LinearScorer{Base: 100, PenaltyPerKM: 10}
}

func (s LinearScorer) Score(distanceKM float64) float64 {
	return s.Base - distanceKM*s.PenaltyPerKM
}
