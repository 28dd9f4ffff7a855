package optim

import (
	"bytes"
	"errors"
	"image/color"
	"image/jpeg"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-imsto/imoptim/image"
)

func saveImage(t *testing.T, name string, w, h int) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(name), 0755))
	require.NoError(t, imaging.Save(imaging.New(w, h, color.NRGBA{120, 80, 40, 255}), name))
}

func jpegSize(t *testing.T, name string) (int, int) {
	t.Helper()
	f, err := os.Open(name)
	require.NoError(t, err)
	defer f.Close()
	cfg, err := jpeg.DecodeConfig(f)
	require.NoError(t, err)
	return cfg.Width, cfg.Height
}

func TestRun(t *testing.T) {
	in := filepath.Join(t.TempDir(), "in")
	out := filepath.Join(t.TempDir(), "out")
	saveImage(t, filepath.Join(in, "photo.png"), 2400, 1600)
	saveImage(t, filepath.Join(in, "icon.jpg"), 400, 300)
	saveImage(t, filepath.Join(in, "a", "b", "c.jpg"), 1300, 700)
	saveImage(t, filepath.Join(in, "skip.gif"), 20, 20)
	require.NoError(t, os.WriteFile(filepath.Join(in, "broken.jpg"), nil, 0644))
	require.NoError(t, os.WriteFile(filepath.Join(in, "readme.txt"), []byte("hi"), 0644))

	var buf bytes.Buffer
	o := New(WithOutput(&buf))
	sum, err := o.Run(in, out)
	require.NoError(t, err)
	assert.Equal(t, Summary{Total: 4, Written: 3, Failed: 1}, sum)

	w, h := jpegSize(t, filepath.Join(out, "photo.png"))
	assert.Equal(t, 1200, w)
	assert.Equal(t, 800, h)

	w, h = jpegSize(t, filepath.Join(out, "icon.jpg"))
	assert.Equal(t, 400, w)
	assert.Equal(t, 300, h)

	// 700 * 1200 / 1300 = 646.15
	w, h = jpegSize(t, filepath.Join(out, "a", "b", "c.jpg"))
	assert.Equal(t, 1200, w)
	assert.Equal(t, 646, h)

	for _, name := range []string{"broken.jpg", "skip.gif", "readme.txt"} {
		_, err := os.Stat(filepath.Join(out, name))
		assert.True(t, os.IsNotExist(err), name)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 6)
	assert.Equal(t, "Starting image optimization...", lines[0])
	assert.Equal(t, "Image optimization complete!", lines[5])
	text := buf.String()
	assert.Contains(t, text, "Optimized: "+filepath.Join(in, "photo.png")+" -> "+filepath.Join(out, "photo.png")+"\n")
	assert.Contains(t, text, "Optimized: "+filepath.Join(in, "icon.jpg")+" -> "+filepath.Join(out, "icon.jpg")+"\n")
	assert.Contains(t, text, "Error processing "+filepath.Join(in, "broken.jpg")+": ")
}

func TestRunMissingRoot(t *testing.T) {
	out := filepath.Join(t.TempDir(), "out")
	var buf bytes.Buffer
	sum, err := New(WithOutput(&buf)).Run(filepath.Join(t.TempDir(), "missing"), out)
	assert.ErrorIs(t, err, ErrInputRoot)
	assert.Equal(t, Summary{}, sum)
	assert.NotContains(t, buf.String(), "complete")

	_, err = os.Stat(out)
	assert.True(t, os.IsNotExist(err))
}

func TestRunOptions(t *testing.T) {
	in := t.TempDir()
	out := filepath.Join(t.TempDir(), "out")
	saveImage(t, filepath.Join(in, "sub", "wide.png"), 1000, 500)

	var buf bytes.Buffer
	o := New(WithOutput(&buf), WithMaxWidth(300), WithQuality(60), WithRenameExt(true))
	sum, err := o.Run(in, out)
	require.NoError(t, err)
	assert.Equal(t, 1, sum.Written)

	w, h := jpegSize(t, filepath.Join(out, "sub", "wide.jpg"))
	assert.Equal(t, 300, w)
	assert.Equal(t, 150, h)
}

func TestProcess(t *testing.T) {
	root := t.TempDir()
	src := filepath.Join(root, "photo.png")
	saveImage(t, src, 2400, 1600)

	o := New(WithOutput(&bytes.Buffer{}))
	job := Job{Src: src, Rel: "photo.png", Dst: filepath.Join(root, "out", "photo.png")}

	r1 := o.Process(job)
	require.True(t, r1.OK(), "%v", r1.Err)
	r2 := o.Process(job)
	require.True(t, r2.OK(), "%v", r2.Err)
	assert.Equal(t, r1.Out.Width, r2.Out.Width)
	assert.Equal(t, r1.Out.Height, r2.Out.Height)
	assert.Equal(t, image.Dimension(2400), r1.Orig.Width)

	bad := o.Process(Job{Src: filepath.Join(root, "none.jpg"), Dst: filepath.Join(root, "out", "none.jpg")})
	assert.False(t, bad.OK())
	var pe *ProcessError
	require.True(t, errors.As(bad.Err, &pe))
	assert.Equal(t, filepath.Join(root, "none.jpg"), pe.Path)
	assert.True(t, errors.Is(bad.Err, os.ErrNotExist))
	assert.Nil(t, bad.Out)
}

func TestRunSymlinkRoot(t *testing.T) {
	target := filepath.Join(t.TempDir(), "real")
	saveImage(t, filepath.Join(target, "a", "p.jpg"), 1600, 400)
	link := filepath.Join(t.TempDir(), "link")
	if err := os.Symlink(target, link); err != nil {
		t.Skipf("symlink: %s", err)
	}
	out := filepath.Join(t.TempDir(), "out")

	var buf bytes.Buffer
	sum, err := New(WithOutput(&buf)).Run(link, out)
	require.NoError(t, err)
	assert.Equal(t, Summary{Total: 1, Written: 1}, sum)
	assert.Contains(t, buf.String(), "Optimized: "+filepath.Join(link, "a", "p.jpg")+" -> "+filepath.Join(out, "a", "p.jpg"))

	w, h := jpegSize(t, filepath.Join(out, "a", "p.jpg"))
	assert.Equal(t, 1200, w)
	assert.Equal(t, 300, h)
}

func TestRunSameRoot(t *testing.T) {
	in := t.TempDir()
	saveImage(t, filepath.Join(in, "p.jpg"), 10, 10)

	sum, err := New(WithOutput(&bytes.Buffer{})).Run(in, in)
	assert.ErrorIs(t, err, ErrSameRoot)
	assert.Equal(t, Summary{}, sum)
}
