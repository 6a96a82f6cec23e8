// gridsight-ssh serves the visibility demo to SSH clients, one private
// grid per session.
package main

import (
	"flag"
	"log"

	"gridsight/internal/sshserver"
)

var (
	addrFlag       = flag.String("addr", ":2222", "SSH listen address")
	hostKeyFlag    = flag.String("host-key", "", "host key file (empty generates an ephemeral key)")
	gridWidthFlag  = flag.Int("grid-w", 30, "grid width in cells")
	gridHeightFlag = flag.Int("grid-h", 30, "grid height in cells")
	radiusFlag     = flag.Int("radius", 5, "initial view radius in cells")
	scatterFlag    = flag.Int("scatter", 100, "random wall toggles per session")
)

func main() {
	flag.Parse()

	srv := sshserver.New(*addrFlag, *hostKeyFlag, sshserver.Config{
		GridW:   *gridWidthFlag,
		GridH:   *gridHeightFlag,
		Radius:  *radiusFlag,
		Scatter: *scatterFlag,
	})
	if err := srv.Start(); err != nil {
		log.Fatalf("SSH server failed: %v", err)
	}
}
