// Package report renders evaluation and classification results as terminal tables.
package report

import (
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/deanrtaylor1/gosentiment/bayes"
	"github.com/deanrtaylor1/gosentiment/crossval"
)

var classNames = map[string]string{
	bayes.Positive: "positive",
	bayes.Negative: "negative",
}

// ClassName returns the display name of a class label
func ClassName(class string) string {
	name, ok := classNames[class]
	if !ok {
		name = class
	}
	return cases.Title(language.English).String(name)
}

func formatAccuracy(a float64) string {
	return strconv.FormatFloat(a, 'f', 4, 64)
}

// Folds writes one row per fold with its confusion counts and accuracy, then the mean accuracy
func Folds(w io.Writer, folds []crossval.Fold) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Fold", "True " + ClassName(bayes.Positive), "True " + ClassName(bayes.Negative),
		"False " + ClassName(bayes.Positive), "False " + ClassName(bayes.Negative), "Accuracy"})
	table.SetAutoFormatHeaders(false)
	table.SetAlignment(tablewriter.ALIGN_RIGHT)

	for _, f := range folds {
		table.Append([]string{
			strconv.Itoa(f.Index + 1),
			strconv.Itoa(f.TruePositive),
			strconv.Itoa(f.TrueNegative),
			strconv.Itoa(f.FalsePositive),
			strconv.Itoa(f.FalseNegative),
			formatAccuracy(f.Accuracy()),
		})
	}
	table.SetFooter([]string{"", "", "", "", "Mean", formatAccuracy(crossval.Mean(crossval.Accuracies(folds)))})
	table.Render()
}

// Classification writes the decided label and the posterior of each class
func Classification(w io.Writer, label string, scores map[string]float64) {
	probs := bayes.Posterior(scores)

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Class", "Log score", "Probability"})
	table.SetAutoFormatHeaders(false)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	for _, class := range bayes.Classes {
		name := ClassName(class)
		if class == label {
			name += " *"
		}
		table.Append([]string{
			name,
			strconv.FormatFloat(scores[class], 'f', 4, 64),
			fmt.Sprintf("%.2f%%", 100*probs[class]),
		})
	}
	table.Render()
}
