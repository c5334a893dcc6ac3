package classify

import (
	"math"
	"sort"
)

// Rank converts raw model outputs into predictions sorted by descending
// confidence. The activation ("softmax", "sigmoid" or "none"/"") is applied
// first so confidences land in [0,1]. Outputs beyond the label list are
// ignored; labels beyond the output list get no prediction.
func Rank(scores []float32, labels []string, activation string) []Prediction {
	n := len(scores)
	if len(labels) < n {
		n = len(labels)
	}
	probs := applyActivation(scores[:n], activation)

	preds := make([]Prediction, 0, n)
	for i, p := range probs {
		preds = append(preds, Prediction{Label: labels[i], Confidence: p})
	}
	sort.SliceStable(preds, func(i, j int) bool { return preds[i].Confidence > preds[j].Confidence })
	return preds
}

// TopK returns the first k predictions of an already ranked slice.
func TopK(preds []Prediction, k int) []Prediction {
	if k <= 0 || k >= len(preds) {
		return preds
	}
	return preds[:k]
}

func applyActivation(scores []float32, activation string) []float32 {
	out := make([]float32, len(scores))
	switch activation {
	case "sigmoid":
		for i, v := range scores {
			out[i] = sigmoid(v)
		}
	case "", "none":
		copy(out, scores)
	default: // softmax
		copy(out, softmax(scores))
	}
	return out
}

func sigmoid(v float32) float32 {
	return float32(1.0 / (1.0 + math.Exp(-float64(v))))
}

// softmax is computed in float64 with the max subtracted for stability.
func softmax(scores []float32) []float32 {
	if len(scores) == 0 {
		return nil
	}
	maxV := scores[0]
	for _, v := range scores[1:] {
		if v > maxV {
			maxV = v
		}
	}
	exps := make([]float64, len(scores))
	sum := 0.0
	for i, v := range scores {
		exps[i] = math.Exp(float64(v - maxV))
		sum += exps[i]
	}
	out := make([]float32, len(scores))
	for i := range exps {
		out[i] = float32(exps[i] / sum)
	}
	return out
}
