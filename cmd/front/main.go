package main

import (
	"flag"

	"github.com/jvarela86/Athlete-Injury-Tracker/internal/front"
)

func main() {
	confPath := flag.String("config", ".env.front", "path to the env config file")
	flag.Parse()

	front.InitAndServe(*confPath)
}
