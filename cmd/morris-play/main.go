// Command morris-play runs the online engine as a stdin/stdout filter
// (§6): one request line in, one turn line out.
package main

import (
	"flag"
	"log"
	"os"

	"github.com/nickprbs/muehlespiel/internal/driver"
	"github.com/nickprbs/muehlespiel/internal/engine"
	"github.com/nickprbs/muehlespiel/internal/oracle"
)

var (
	dbPath    = flag.String("db", "", "oracle database directory (default: platform data dir)")
	thinkTime = flag.Duration("think-time", engine.DefaultConfig().ThinkTime, "time budget per move")
	ttSizeMB  = flag.Int("tt-size-mb", engine.DefaultConfig().TTSizeMB, "transposition table size in MB")
)

func main() {
	flag.Parse()

	logger := log.New(os.Stderr, "", log.LstdFlags)

	dir := *dbPath
	if dir == "" {
		var err error
		dir, err = oracle.DefaultDir()
		if err != nil {
			logger.Fatalf("morris-play: resolving default oracle directory: %v", err)
		}
	}

	oc, err := oracle.Open(dir)
	if err != nil {
		logger.Fatalf("morris-play: opening oracle at %s: %v", dir, err)
	}
	defer oc.Close()

	cfg := engine.Config{ThinkTime: *thinkTime, TTSizeMB: *ttSizeMB}
	eng := engine.New(cfg, oc)

	d := driver.New(eng, logger)
	d.Run(os.Stdin, os.Stdout)
}
