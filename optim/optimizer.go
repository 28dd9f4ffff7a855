package optim

import (
	"fmt"
	"io"
	"os"

	"github.com/go-imsto/imoptim/image"
)

// Optimizer runs the walker and the transformer over a tree
type Optimizer struct {
	out       io.Writer
	opt       image.OptimizeOption
	renameExt bool
}

// Option ...
type Option func(*Optimizer)

// WithOutput sets where progress lines are printed, stdout by default
func WithOutput(w io.Writer) Option {
	return func(o *Optimizer) {
		if w != nil {
			o.out = w
		}
	}
}

// WithMaxWidth ...
func WithMaxWidth(w uint) Option {
	return func(o *Optimizer) {
		if w > 0 {
			o.opt.MaxWidth = w
		}
	}
}

// WithQuality ...
func WithQuality(q uint8) Option {
	return func(o *Optimizer) {
		if q <= 100 {
			o.opt.Quality = image.Quality(q)
		}
	}
}

// WithRenameExt gives outputs a .jpg extension
func WithRenameExt(on bool) Option {
	return func(o *Optimizer) {
		o.renameExt = on
	}
}

// New ...
func New(opts ...Option) *Optimizer {
	o := &Optimizer{
		out: os.Stdout,
		opt: image.OptimizeOption{
			MaxWidth:    image.DefaultMaxWidth,
			WriteOption: image.WriteOption{Quality: image.DefaultQuality},
		},
	}
	for _, fn := range opts {
		fn(o)
	}
	return o
}

// Process transforms one job, failures are returned in the result
func (o *Optimizer) Process(job Job) Result {
	r := Result{Job: job}
	orig, out, err := image.OptimizeFile(job.Src, job.Dst, o.opt)
	if err != nil {
		r.Err = &ProcessError{Path: job.Src, Err: err}
		return r
	}
	r.Orig, r.Out = orig, out
	return r
}

func (o *Optimizer) report(r Result) {
	if r.OK() {
		fmt.Fprintf(o.out, "Optimized: %s -> %s\n", r.Src, r.Dst)
		logger().Debugw("optimized", "src", r.Src, "dst", r.Dst, "orig", r.Orig, "out", r.Out)
		return
	}
	msg := r.Err.Error()
	if pe, ok := r.Err.(*ProcessError); ok {
		msg = pe.Err.Error()
	}
	fmt.Fprintf(o.out, "Error processing %s: %s\n", r.Src, msg)
	logger().Warnw("process fail", "src", r.Src, "err", msg)
}

// Run optimizes every image under inputRoot into outputRoot. Per-file
// failures are printed and counted; only unusable roots are an error.
func (o *Optimizer) Run(inputRoot, outputRoot string) (Summary, error) {
	var sum Summary
	fmt.Fprintln(o.out, "Starting image optimization...")
	logger().Infow("start", "input", inputRoot, "output", outputRoot, "option", o.opt)

	w := &Walker{InputRoot: inputRoot, OutputRoot: outputRoot, RenameExt: o.renameExt}
	err := w.Walk(func(job Job) {
		r := o.Process(job)
		sum.add(r)
		o.report(r)
	})
	if err != nil {
		logger().Warnw("walk fail", "input", inputRoot, "err", err)
		return sum, err
	}

	fmt.Fprintln(o.out, "Image optimization complete!")
	logger().Infow("done", "summary", sum)
	return sum, nil
}
