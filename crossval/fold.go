package crossval

import (
	"github.com/deanrtaylor1/gosentiment/bayes"
	"github.com/deanrtaylor1/gosentiment/lexer"
)

// Fold holds the confusion counts for one held out fold. Positive is the positive label.
type Fold struct {
	Index         int
	TruePositive  int
	TrueNegative  int
	FalsePositive int
	FalseNegative int
}

func (f Fold) Total() int {
	return f.TruePositive + f.TrueNegative + f.FalsePositive + f.FalseNegative
}

// Accuracy is (tp + tn) / total, or 0 for an empty fold
func (f Fold) Accuracy() float64 {
	if f.Total() == 0 {
		return 0
	}
	return float64(f.TruePositive+f.TrueNegative) / float64(f.Total())
}

// Score classifies every document in held and tallies the outcomes
func Score(held bayes.Documents, n *lexer.Normalizer, model *bayes.Model) (Fold, error) {
	var fold Fold
	for _, class := range bayes.Classes {
		for _, doc := range held[class] {
			predicted, err := bayes.ClassifyWith(n, doc, model)
			if err != nil {
				return Fold{}, err
			}

			switch {
			case class == bayes.Positive && predicted == bayes.Positive:
				fold.TruePositive += 1
			case class == bayes.Negative && predicted == bayes.Negative:
				fold.TrueNegative += 1
			case class == bayes.Negative && predicted == bayes.Positive:
				fold.FalsePositive += 1
			case class == bayes.Positive && predicted == bayes.Negative:
				fold.FalseNegative += 1
			}
		}
	}
	return fold, nil
}

// Accuracies extracts the accuracy of each fold, in order
func Accuracies(folds []Fold) []float64 {
	accuracies := make([]float64, len(folds))
	for i, f := range folds {
		accuracies[i] = f.Accuracy()
	}
	return accuracies
}

// Mean averages values, 0 for none
func Mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}
