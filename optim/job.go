package optim

import (
	"errors"
	"fmt"

	"github.com/go-imsto/imoptim/image"
)

// errors
var (
	// ErrInputRoot is returned when the input root is missing or not a directory
	ErrInputRoot = errors.New("input root is not a directory")
	ErrSameRoot  = errors.New("output root is the input root")
)

// Job is one source image and where its copy goes
type Job struct {
	Src string `json:"src"`
	Rel string `json:"rel"`
	Dst string `json:"dst"`
}

func (j Job) String() string {
	return fmt.Sprintf("%s -> %s", j.Src, j.Dst)
}

// ProcessError is a per-file failure, it never stops a run
type ProcessError struct {
	Path string
	Err  error
}

func (e *ProcessError) Error() string {
	return fmt.Sprintf("process %s: %s", e.Path, e.Err)
}

func (e *ProcessError) Unwrap() error {
	return e.Err
}

// Result is either written (Out set) or failed (Err set)
type Result struct {
	Job
	Orig *image.Attr
	Out  *image.Attr
	Err  error
}

// OK ...
func (r Result) OK() bool {
	return r.Err == nil
}

// Summary counts the outcomes of a run
type Summary struct {
	Total   int `json:"total"`
	Written int `json:"written"`
	Failed  int `json:"failed"`
}

func (s Summary) String() string {
	return fmt.Sprintf("total %d, written %d, failed %d", s.Total, s.Written, s.Failed)
}

func (s *Summary) add(r Result) {
	s.Total++
	if r.OK() {
		s.Written++
	} else {
		s.Failed++
	}
}
