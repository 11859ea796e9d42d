// Package pipeline runs the scan-to-reconcile cycle: preprocess a label
// photo, hand it to the OCR engine, extract the candidate code, validate
// it against the session dataset, and reconcile the result.
//
// One cycle is a synchronous, blocking sequence. A batch iterates its
// photos sequentially, so a code added early in the batch is already on
// file by the time a later photo repeats it.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"image"
	"log/slog"

	"github.com/google/uuid"

	"github.com/mcastrillon/labelscan/internal/extract"
	"github.com/mcastrillon/labelscan/internal/imaging"
	"github.com/mcastrillon/labelscan/internal/inventory"
	"github.com/mcastrillon/labelscan/internal/ocr"
	"github.com/mcastrillon/labelscan/internal/reconcile"
)

// Options tune the preprocessing and extraction stages.
type Options struct {
	// Contrast is the linear contrast factor; <= 0 selects the default.
	Contrast float64

	// MinOCRWidth upscales narrower photos before OCR; 0 disables.
	MinOCRWidth int

	// Region optionally crops the photo to the label area first.
	Region *imaging.Region

	// RGB expands the grayscale frame back to three channels before
	// OCR, for engine configurations trained on color input.
	RGB bool

	// Exclusions overrides the extractor's boilerplate list; nil keeps
	// the defaults.
	Exclusions []string
}

// Result is the outcome of processing one photo or one manual entry.
type Result struct {
	// Source names the input (file path, or "manual").
	Source string

	// Fragments is how many text fragments the OCR pass produced.
	Fragments int

	// Candidate is the extracted candidate code, empty when no token
	// survived filtering.
	Candidate string

	// Outcome is set whenever a candidate was validated or reconciled.
	Outcome *reconcile.Outcome

	// Err is set when the cycle failed before extraction (decode or
	// engine failure). Recognition failures with no usable text are not
	// errors; they surface as an empty Candidate.
	Err error
}

// Message renders the single status line for this result.
func (r Result) Message() string {
	switch {
	case r.Err != nil:
		return fmt.Sprintf("%s: scan failed: %v", r.Source, r.Err)
	case r.Outcome != nil:
		return fmt.Sprintf("%s: %s", r.Source, r.Outcome.Message())
	default:
		return fmt.Sprintf("%s: no code detected", r.Source)
	}
}

// BatchReport collects the results of one multi-photo invocation.
type BatchReport struct {
	ID      uuid.UUID
	Results []Result
}

// Pipeline wires the stages of one session together. It is not safe
// for concurrent use; the session model processes one input at a time.
type Pipeline struct {
	opts      Options
	engine    ocr.Engine
	extractor *extract.Extractor
	dataset   *inventory.Dataset
	rec       *reconcile.Reconciler
	cache     *imaging.Cache
	logger    *slog.Logger
}

// New assembles a pipeline over the session's dataset and reconciler.
func New(opts Options, engine ocr.Engine, dataset *inventory.Dataset, rec *reconcile.Reconciler, logger *slog.Logger) *Pipeline {
	if logger == nil {
		logger = slog.Default()
	}
	return &Pipeline{
		opts:      opts,
		engine:    engine,
		extractor: extract.New(opts.Exclusions),
		dataset:   dataset,
		rec:       rec,
		cache:     imaging.NewCache(),
		logger:    logger,
	}
}

// ScanImage runs the full cycle on one decoded photo.
func (p *Pipeline) ScanImage(ctx context.Context, img image.Image, source string) Result {
	res := Result{Source: source}

	if p.opts.Region != nil {
		cropped, err := imaging.Crop(img, *p.opts.Region)
		if err != nil {
			res.Err = err
			return res
		}
		img = cropped
	}

	gray := imaging.Preprocess(img, p.opts.Contrast)
	var frame image.Image = gray
	if p.opts.RGB {
		frame = imaging.ExpandRGB(gray)
	}
	prepared := imaging.Upscale(frame, p.opts.MinOCRWidth)

	fragments, err := p.engine.Recognize(ctx, prepared)
	if err != nil {
		// Recognition failure is recovered locally: no candidates, no
		// mutation attempted.
		p.logger.Warn("ocr failed", "source", source, "error", err)
		return res
	}
	res.Fragments = len(fragments)

	candidate, found := p.extractor.Extract(fragments)
	if !found {
		p.logger.Info("no candidate code", "source", source, "fragments", len(fragments))
		return res
	}
	res.Candidate = candidate

	res.Outcome = p.apply(candidate)
	return res
}

// ScanFile loads one photo from disk and runs the full cycle.
func (p *Pipeline) ScanFile(ctx context.Context, path string) Result {
	img, err := p.cache.Load(path)
	if err != nil {
		return Result{Source: path, Err: err}
	}
	return p.ScanImage(ctx, img, path)
}

// ScanBatch processes several photos sequentially. Each candidate is
// validated against the dataset as mutated by the photos before it, so
// a within-batch repeat of a newly added code resolves as a match, not
// a second addition.
func (p *Pipeline) ScanBatch(ctx context.Context, paths []string) *BatchReport {
	report := &BatchReport{ID: uuid.New()}
	p.logger.Info("batch scan started", "batch", report.ID, "photos", len(paths))
	for _, path := range paths {
		if err := ctx.Err(); err != nil {
			report.Results = append(report.Results, Result{Source: path, Err: err})
			continue
		}
		report.Results = append(report.Results, p.ScanFile(ctx, path))
	}
	return report
}

// Manual runs the validate-and-reconcile stages on a hand-typed
// candidate, the same path a scanned candidate takes.
func (p *Pipeline) Manual(candidate string) Result {
	normalized, found := p.extractor.Extract([]string{candidate})
	res := Result{Source: "manual", Candidate: normalized}
	if !found {
		res.Candidate = candidate
		res.Outcome = &reconcile.Outcome{
			Kind: reconcile.Rejected,
			Err:  &inventory.FormatError{Candidate: candidate},
		}
		return res
	}
	res.Outcome = p.apply(normalized)
	return res
}

// Confirm resolves a pending confirmation for a previously scanned
// code.
func (p *Pipeline) Confirm(code inventory.Code) reconcile.Outcome {
	return p.rec.Confirm(code)
}

// Pending lists codes awaiting confirmation in this session.
func (p *Pipeline) Pending() []inventory.Code {
	return p.rec.Pending()
}

// apply validates a candidate and routes it by classification: fresh
// codes go to the reconciler for confirmation, already-recorded codes
// go to the reconciler's highlight path (the scan physically verified
// an inventoried asset), malformed candidates are rejected outright.
func (p *Pipeline) apply(candidate string) *reconcile.Outcome {
	code, err := inventory.Validate(candidate, p.dataset)
	if err != nil {
		var dup *inventory.DuplicateError
		if errors.As(err, &dup) {
			out := p.rec.Reconcile(dup.Code)
			return &out
		}
		return &reconcile.Outcome{Kind: reconcile.Rejected, Code: inventory.Code(candidate), Err: err}
	}
	out := p.rec.Reconcile(code)
	return &out
}
