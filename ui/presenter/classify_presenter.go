package presenter

import (
	"image"
	"log/slog"
	"sync"
	"time"

	"piclabel/domain/acquire"
	"piclabel/domain/classify"
	"piclabel/ui/model"
)

// OutcomeFlow receives the terminal flow event for a completed request.
type OutcomeFlow interface{ EventOutcome(ok bool) }

// ResultView displays a completed outcome.
type ResultView interface{ ShowOutcome(text string) }

type classifyTask struct {
	requestID   string
	img         image.Image
	submittedAt time.Time
}

type classifyResult struct {
	requestID   string
	predictions []classify.Prediction
	err         error
	duration    time.Duration
}

// ClassifyPresenter hands picked photos to the classifier on a single worker
// goroutine and marshals completions back to the UI tick before any view
// state is touched.
//
// There is no cancellation: a submission while a prior request is in flight
// leaves both running, and each completion overwrites the displayed text in
// drain order, so the last one wins.
type ClassifyPresenter struct {
	classifier classify.Classifier
	view       ResultView
	flow       OutcomeFlow
	result     *model.ResultModel
	stats      *model.StatsModel
	threshold  func() float64
	topK       func() int
	logger     *slog.Logger

	workerOnce sync.Once
	workCh     chan classifyTask
	resultCh   chan classifyResult
}

// NewClassifyPresenter constructs a classify presenter. threshold and topK
// are read per completion so settings changes apply immediately.
func NewClassifyPresenter(classifier classify.Classifier, view ResultView, flow OutcomeFlow,
	result *model.ResultModel, stats *model.StatsModel,
	threshold func() float64, topK func() int, logger *slog.Logger,
) *ClassifyPresenter {
	if threshold == nil {
		threshold = func() float64 { return 0.80 }
	}
	if topK == nil {
		topK = func() int { return 5 }
	}
	return &ClassifyPresenter{
		classifier: classifier,
		view:       view,
		flow:       flow,
		result:     result,
		stats:      stats,
		threshold:  threshold,
		topK:       topK,
		logger:     logger,
		workCh:     make(chan classifyTask, 1),
		resultCh:   make(chan classifyResult, 1),
	}
}

// Submit dispatches snap for classification without blocking the caller. A
// queued-but-unstarted task is replaced by the newer one.
func (p *ClassifyPresenter) Submit(snap *acquire.PhotoSnapshot) {
	if p == nil || snap == nil || snap.Image == nil {
		return
	}
	p.ensureWorker()
	if p.stats != nil {
		p.stats.OnSubmit()
	}
	task := classifyTask{requestID: snap.ID, img: snap.Image, submittedAt: time.Now()}
	select {
	case p.workCh <- task:
	default:
		select {
		case <-p.workCh:
		default:
		}
		select {
		case p.workCh <- task:
		default:
		}
	}
}

// Tick drains completed results and pushes them to the view. Must run on the
// UI tick; it is the only place view state is written.
func (p *ClassifyPresenter) Tick() {
	if p == nil || p.view == nil {
		return
	}
	for {
		select {
		case res := <-p.resultCh:
			p.handleResult(res)
		default:
			return
		}
	}
}

func (p *ClassifyPresenter) ensureWorker() {
	p.workerOnce.Do(func() {
		go p.runWorker()
	})
}

func (p *ClassifyPresenter) runWorker() {
	for task := range p.workCh {
		res := p.executeTask(task)
		select {
		case p.resultCh <- res:
		default:
			select {
			case <-p.resultCh:
			default:
			}
			select {
			case p.resultCh <- res:
			default:
			}
		}
	}
}

func (p *ClassifyPresenter) executeTask(task classifyTask) classifyResult {
	res := classifyResult{requestID: task.requestID}
	start := time.Now()
	preds, err := p.classifier.Classify(task.img)
	res.duration = time.Since(start)
	if err != nil {
		res.err = err
		return res
	}
	// A nil (as opposed to empty) prediction list is the unexpected shape
	// and falls through to the generic message in FormatOutcome.
	res.predictions = classify.TopK(preds, p.topK())
	return res
}

func (p *ClassifyPresenter) handleResult(res classifyResult) {
	if p.stats != nil {
		p.stats.OnComplete(res.duration)
	}
	if res.err != nil && p.logger != nil {
		p.logger.Error("classification", "request_id", res.requestID, "error", res.err)
	}
	text := FormatOutcome(Outcome{
		RequestID:   res.requestID,
		Predictions: res.predictions,
		Err:         res.err,
	}, float32(p.threshold()))
	if p.result != nil {
		p.result.Show(text)
	}
	p.view.ShowOutcome(text)
	if p.flow != nil {
		p.flow.EventOutcome(res.err == nil)
	}
	if p.logger != nil {
		p.logger.Debug("outcome displayed", "request_id", res.requestID, "text", text, "elapsed", res.duration)
	}
}
