// Exercises red-black trees from the command-line.
//
// Example run:
// $ go run ./cmd/rbtree stress --trees 1000000 --values 9
// 2026-02-12T21:40:11+0000 NONE  stress.go:84: stressing with 8 workers, seed 1770932411683159819
// 2026-02-12T21:40:19+0000 NONE  stress.go:103: checked 1,000,000 trees (9,000,000 inserts) in 7.912645021s, max height 4
package main

import (
	stdLog "log"
	"os"
	"os/signal"
	"syscall"

	"github.com/alexflint/go-arg"
	"github.com/anacrolix/envpprof"
	"github.com/anacrolix/log"
	"github.com/anacrolix/missinggo/v2"
)

var flags struct {
	Stats bool `help:"print expvar counters at termination"`

	*StressCmd `arg:"subcommand:stress"`
	*ShowCmd   `arg:"subcommand:show"`
}

func exitSignalHandlers(notify *missinggo.SynchronizedEvent) {
	c := make(chan os.Signal, 1)
	signal.Notify(c, syscall.SIGINT, syscall.SIGTERM)
	for {
		log.Printf("close signal received: %+v", <-c)
		notify.Set()
	}
}

func main() {
	defer envpprof.Stop()
	if err := mainErr(); err != nil {
		log.Printf("error in main: %v", err)
		os.Exit(1)
	}
}

func mainErr() error {
	stdLog.SetFlags(stdLog.Flags() | stdLog.Lshortfile)
	p := arg.MustParse(&flags)
	switch {
	case flags.StressCmd != nil:
		return stressErr()
	case flags.ShowCmd != nil:
		return showErr()
	default:
		p.Fail("expected a subcommand")
		panic("unreachable")
	}
}
