package cmd

import (
	"fmt"
	"os"

	"github.com/go-imsto/imoptim/config"
	"github.com/go-imsto/imoptim/optim"
)

var cmdOptimize = &Command{
	UsageLine: "optimize",
	Short:     "resize and recompress every image of the input tree",
	Long: `
Walk IMOPTIM_INPUT_ROOT, and write a JPEG copy of every .jpg, .jpeg and .png
file, no wider than IMOPTIM_MAX_WIDTH, into the same relative path under
IMOPTIM_OUTPUT_ROOT. Files that fail are reported and skipped.
`,
}

func init() {
	cmdOptimize.Run = runOptimize
}

func runOptimize(cfg *config.Config, args []string) bool {
	if len(args) > 0 {
		errorf("optimize takes no arguments")
		return false
	}

	o := optim.New(
		optim.WithOutput(os.Stdout),
		optim.WithMaxWidth(cfg.MaxWidth),
		optim.WithQuality(cfg.Quality),
		optim.WithRenameExt(cfg.RenameExt),
	)
	sum, err := o.Run(cfg.InputRoot, cfg.OutputRoot)
	if err != nil {
		errorf("%s", err)
		return false
	}
	logger().Infow("optimize done", "input", cfg.InputRoot, "output", cfg.OutputRoot, "summary", sum.String())
	if sum.Total == 0 {
		fmt.Fprintf(os.Stderr, "no images found under %s\n", cfg.InputRoot)
	}
	return true
}
