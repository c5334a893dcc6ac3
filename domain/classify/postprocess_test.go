package classify

import (
	"math"
	"testing"
)

func TestSoftmaxSumsToOne(t *testing.T) {
	probs := softmax([]float32{1.0, 2.0, 3.0, 4.0})
	sum := float32(0)
	for _, p := range probs {
		if p < 0 || p > 1 {
			t.Fatalf("probability out of range: %v", probs)
		}
		sum += p
	}
	if math.Abs(float64(sum)-1.0) > 1e-5 {
		t.Fatalf("softmax must sum to 1, got %v", sum)
	}
	// Monotonic in the input.
	for i := 1; i < len(probs); i++ {
		if probs[i] <= probs[i-1] {
			t.Fatalf("softmax must preserve order: %v", probs)
		}
	}
}

func TestSoftmaxLargeLogitsStable(t *testing.T) {
	probs := softmax([]float32{1000, 1001})
	for _, p := range probs {
		if math.IsNaN(float64(p)) || math.IsInf(float64(p), 0) {
			t.Fatalf("softmax overflowed: %v", probs)
		}
	}
}

func TestSigmoid(t *testing.T) {
	if got := sigmoid(0); math.Abs(float64(got)-0.5) > 1e-6 {
		t.Fatalf("sigmoid(0) = %v, want 0.5", got)
	}
	if got := sigmoid(10); got < 0.99 {
		t.Fatalf("sigmoid(10) = %v, want ~1", got)
	}
}

func TestRankSortsDescending(t *testing.T) {
	labels := []string{"cat", "dog", "fish"}
	preds := Rank([]float32{0.1, 0.7, 0.2}, labels, "none")
	if len(preds) != 3 {
		t.Fatalf("expected 3 predictions, got %v", preds)
	}
	if preds[0].Label != "dog" || preds[1].Label != "fish" || preds[2].Label != "cat" {
		t.Fatalf("wrong order: %v", preds)
	}
}

func TestRankTruncatesToLabelCount(t *testing.T) {
	preds := Rank([]float32{0.5, 0.5, 0.5}, []string{"only"}, "none")
	if len(preds) != 1 || preds[0].Label != "only" {
		t.Fatalf("extra outputs must be dropped, got %v", preds)
	}
}

func TestRankDefaultsToSoftmax(t *testing.T) {
	preds := Rank([]float32{2.0, 0.0}, []string{"a", "b"}, "softmax")
	sum := preds[0].Confidence + preds[1].Confidence
	if math.Abs(float64(sum)-1.0) > 1e-5 {
		t.Fatalf("softmax ranking must normalize, got sum %v (%v)", sum, preds)
	}
	if preds[0].Label != "a" {
		t.Fatalf("higher logit must rank first, got %v", preds)
	}
}

func TestTopK(t *testing.T) {
	preds := []Prediction{{Label: "a", Confidence: 0.9}, {Label: "b", Confidence: 0.5}, {Label: "c", Confidence: 0.1}}
	if got := TopK(preds, 2); len(got) != 2 || got[1].Label != "b" {
		t.Fatalf("TopK(2) = %v", got)
	}
	if got := TopK(preds, 0); len(got) != 3 {
		t.Fatalf("k<=0 must pass through, got %v", got)
	}
	if got := TopK(preds, 10); len(got) != 3 {
		t.Fatalf("k beyond length must pass through, got %v", got)
	}
	if got := TopK(nil, 5); got != nil {
		t.Fatalf("nil input must stay nil, got %v", got)
	}
}
