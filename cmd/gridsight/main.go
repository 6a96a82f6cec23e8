package main

import (
	"flag"
	"log"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"gridsight/internal/debughttp"
)

func main() {
	flag.Parse()

	seed := *seedFlag
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	g, err := newGame(*gridWidthFlag, *gridHeightFlag, *radiusFlag, seed)
	if err != nil {
		log.Fatalf("grid setup failed: %v", err)
	}

	if *cpuProfileFlag != "" {
		stop, err := startCPUProfile(*cpuProfileFlag)
		if err != nil {
			log.Fatalf("CPU profile failed: %v", err)
		}
		defer stop()
	}

	if *httpAddrFlag != "" {
		published := &atomic.Pointer[debughttp.State]{}
		published.Store(g.currentState())
		g.published = published
		handler := debughttp.Handler(func() debughttp.State {
			return *published.Load()
		})
		log.Printf("debug state API on %s", *httpAddrFlag)
		go func() {
			if err := http.ListenAndServe(*httpAddrFlag, handler); err != nil {
				log.Printf("debug state API stopped: %v", err)
			}
		}()
	}

	ebiten.SetWindowSize(g.grid.Width()*cellPixels*windowScale, g.grid.Height()*cellPixels*windowScale)
	ebiten.SetWindowTitle("gridsight")
	if err := ebiten.RunGame(g); err != nil {
		log.Fatalf("run failed: %v", err)
	}
}
