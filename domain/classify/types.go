package classify

import "image"

// Prediction is one ranked (label, confidence) pair produced by a run of the
// pipeline. Confidence is a probability-like score in [0,1].
type Prediction struct {
	Label      string  `json:"label"`
	Confidence float32 `json:"confidence"`
}

// Metadata describes the model artifact: class labels, tensor shapes and the
// preprocessing parameters the model was trained with.
type Metadata struct {
	Classes     []string   `json:"classes"`
	InputShape  []int64    `json:"input_shape"`
	OutputShape []int64    `json:"output_shape"`
	ImageSize   int        `json:"image_size"`
	Activation  string     `json:"activation"` // "softmax", "sigmoid" or "none"
	Mean        [3]float32 `json:"mean"`
	Std         [3]float32 `json:"std"`
}

// Classifier turns an image into ranked label predictions.
type Classifier interface {
	Classify(img image.Image) ([]Prediction, error)
}
