// gridsight-term runs the visibility demo in the local terminal with
// mouse support.
package main

import (
	"flag"
	"log"
	"time"

	"github.com/gdamore/tcell/v2"

	"gridsight/internal/termui"
)

var (
	gridWidthFlag  = flag.Int("grid-w", 30, "grid width in cells")
	gridHeightFlag = flag.Int("grid-h", 30, "grid height in cells")
	radiusFlag     = flag.Int("radius", 5, "initial view radius in cells")
	scatterFlag    = flag.Int("scatter", 100, "random wall toggles at startup")
	seedFlag       = flag.Int64("seed", 0, "wall generation seed (0 derives one from the clock)")
)

func main() {
	flag.Parse()

	seed := *seedFlag
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("screen creation failed: %v", err)
	}
	if err := screen.Init(); err != nil {
		log.Fatalf("screen init failed: %v", err)
	}

	app, err := termui.New(screen, *gridWidthFlag, *gridHeightFlag, *radiusFlag, *scatterFlag, seed)
	if err != nil {
		screen.Fini()
		log.Fatalf("setup failed: %v", err)
	}

	runErr := app.Run()
	screen.Fini()
	if runErr != nil {
		log.Fatalf("run failed: %v", runErr)
	}
}
