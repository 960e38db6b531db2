package main

import (
	"flag"

	"github.com/jvarela86/Athlete-Injury-Tracker/internal/mrecords"
)

func main() {
	confPath := flag.String("config", ".env.records", "path to the env config file")
	flag.Parse()

	mrecords.InitAndServe(*confPath)
}
