package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"pocketcalc/internal/buildinfo"
	"pocketcalc/internal/mcpserver"
)

func main() {
	var (
		trace   = flag.Bool("trace", false, "Log every calc_press call to stderr")
		version = flag.Bool("version", false, "Print version and exit")
	)
	flag.Parse()

	if *version {
		fmt.Println(buildinfo.Long())
		return
	}

	// stdout carries the protocol.
	log.SetOutput(os.Stderr)

	s := mcpserver.NewServer(*trace)
	if err := s.Start(); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
