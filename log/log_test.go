package log

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type recorder struct {
	msgs []string
}

func (r *recorder) Debugw(msg string, _ ...any) { r.msgs = append(r.msgs, "debug:"+msg) }
func (r *recorder) Infow(msg string, _ ...any)  { r.msgs = append(r.msgs, "info:"+msg) }
func (r *recorder) Warnw(msg string, _ ...any)  { r.msgs = append(r.msgs, "warn:"+msg) }
func (r *recorder) Errorw(msg string, _ ...any) { r.msgs = append(r.msgs, "error:"+msg) }
func (r *recorder) Fatalw(msg string, _ ...any) { r.msgs = append(r.msgs, "fatal:"+msg) }

func TestSet(t *testing.T) {
	orig := Get()
	defer Set(orig)

	Set(nil)
	assert.Equal(t, orig, Get())

	r := &recorder{}
	Set(r)
	Debugw("a", "k", 1)
	Infow("b")
	Warnw("c")
	Errorw("d")
	assert.Equal(t, []string{"debug:a", "info:b", "warn:c", "error:d"}, r.msgs)
}
