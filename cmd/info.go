package cmd

import (
	"fmt"

	"github.com/go-imsto/imoptim/config"
	"github.com/go-imsto/imoptim/image"
)

var cmdInfo = &Command{
	UsageLine: "info filename",
	Short:     "show attributes of an image",
	Long: `
Show format, dimensions and size of an image, and the size it would be
written at with the current IMOPTIM_MAX_WIDTH.
`,
}

func init() {
	cmdInfo.Run = runInfo
}

func runInfo(cfg *config.Config, args []string) bool {
	if len(args) < 1 {
		errorf("missing filename")
		return false
	}

	ok := true
	for _, name := range args {
		im, err := image.OpenFile(name)
		if err != nil {
			fmt.Printf("%s: %s\n", name, err)
			ok = false
			continue
		}
		w, h := image.FitSize(uint(im.Width), uint(im.Height), cfg.MaxWidth)
		fmt.Printf("file: \t%s\next: \t%s\nmime: \t%s\nsize: \t%d\nwidth: \t%d\nheight: \t%d\nfit: \t%dx%d\n",
			name, im.Ext, im.Mime, im.Size, im.Width, im.Height, w, h)
	}
	return ok
}
