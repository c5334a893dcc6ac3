package classify

import (
	"fmt"
	"image"
	"log/slog"
	"sync"
	"time"

	ort "github.com/yalue/onnxruntime_go"
)

// Pipeline binds a loaded ONNX classification model to its preprocessing
// configuration. It is constructed once at startup; a construction error
// means there is no valid state to run in, and the caller is expected to
// treat it as fatal.
//
// Classify may be called from any goroutine; runs are serialized because the
// session reuses one input and one output tensor.
type Pipeline struct {
	session      *ort.AdvancedSession
	meta         Metadata
	inputTensor  *ort.Tensor[float32]
	outputTensor *ort.Tensor[float32]
	logger       *slog.Logger

	mu sync.Mutex
}

// NewPipeline loads the model at modelPath and binds it to the metadata at
// metadataPath (empty selects the embedded default). The ONNX environment is
// initialized as a side effect.
func NewPipeline(modelPath, metadataPath string, logger *slog.Logger) (*Pipeline, error) {
	meta, err := LoadMetadata(metadataPath)
	if err != nil {
		return nil, err
	}

	if err := ort.InitializeEnvironment(); err != nil {
		return nil, fmt.Errorf("initialize onnx environment: %w", err)
	}

	inputTensor, err := ort.NewEmptyTensor[float32](ort.NewShape(meta.InputShape...))
	if err != nil {
		return nil, fmt.Errorf("create input tensor: %w", err)
	}
	outputTensor, err := ort.NewEmptyTensor[float32](ort.NewShape(meta.OutputShape...))
	if err != nil {
		inputTensor.Destroy()
		return nil, fmt.Errorf("create output tensor: %w", err)
	}

	session, err := ort.NewAdvancedSession(modelPath,
		[]string{"input"}, []string{"output"},
		[]ort.ArbitraryTensor{inputTensor}, []ort.ArbitraryTensor{outputTensor},
		nil)
	if err != nil {
		inputTensor.Destroy()
		outputTensor.Destroy()
		return nil, fmt.Errorf("create onnx session for %s: %w", modelPath, err)
	}

	if logger != nil {
		logger.Info("pipeline ready", "model", modelPath, "classes", len(meta.Classes), "image_size", meta.ImageSize)
	}
	return &Pipeline{
		session:      session,
		meta:         meta,
		inputTensor:  inputTensor,
		outputTensor: outputTensor,
		logger:       logger,
	}, nil
}

// Metadata returns the bound model metadata.
func (p *Pipeline) Metadata() Metadata { return p.meta }

// Classify preprocesses img (center-crop/scale, normalize) and runs one
// inference, returning all class predictions ranked by confidence.
func (p *Pipeline) Classify(img image.Image) ([]Prediction, error) {
	if img == nil {
		return nil, fmt.Errorf("classify: nil image")
	}
	inputData, err := TensorData(img, p.meta)
	if err != nil {
		return nil, err
	}

	p.mu.Lock()
	dst := p.inputTensor.GetData()
	if len(inputData) != len(dst) {
		p.mu.Unlock()
		return nil, fmt.Errorf("classify: input size mismatch: got %d values, tensor holds %d", len(inputData), len(dst))
	}
	copy(dst, inputData)

	start := time.Now()
	if err := p.session.Run(); err != nil {
		p.mu.Unlock()
		return nil, fmt.Errorf("inference failed: %w", err)
	}
	scores := make([]float32, len(p.outputTensor.GetData()))
	copy(scores, p.outputTensor.GetData())
	p.mu.Unlock()

	if p.logger != nil {
		p.logger.Debug("inference done", "elapsed", time.Since(start))
	}
	return Rank(scores, p.meta.Classes, p.meta.Activation), nil
}

// Close releases tensors, the session and the ONNX environment.
func (p *Pipeline) Close() {
	if p == nil {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.inputTensor != nil {
		p.inputTensor.Destroy()
	}
	if p.outputTensor != nil {
		p.outputTensor.Destroy()
	}
	if p.session != nil {
		p.session.Destroy()
	}
	ort.DestroyEnvironment()
}

var _ Classifier = (*Pipeline)(nil)
