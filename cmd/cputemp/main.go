package main

import (
	"flag"
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"

	"github.com/cloudradar-monitoring/cputemp"
)

var (
	// set on build:
	// go build -o cputemp -ldflags="-X main.version=$(git describe --always --long --dirty --tag)" github.com/cloudradar-monitoring/cputemp/cmd/cputemp
	version string
)

func main() {
	cfgPathPtr := flag.String("c", cputemp.DefaultCfgPath, "config file path")
	logLevelPtr := flag.String("v", "", "log level – overrides the level in config file (values \"error\",\"info\",\"debug\")")
	oneRunOnlyModePtr := flag.Bool("r", false, "one run only – read the temperature once and exit")
	printConfigPtr := flag.Bool("p", false, "print the active config")
	versionPtr := flag.Bool("version", false, "show the cputemp version")

	flag.Parse()

	handleFlagVersion(*versionPtr)

	cfg, err := cputemp.HandleAllConfigSetup(*cfgPathPtr, isFlagPassed("c"))
	if err != nil {
		log.Fatalf("Failed to handle cputemp configuration: %s", err.Error())
	}

	handleFlagPrintConfig(*printConfigPtr, cfg)

	if *oneRunOnlyModePtr {
		cfg.ConsoleMode = cputemp.ConsoleModeLines
	}

	ct := cputemp.New(cfg, *cfgPathPtr, version)

	// log level set in flag has a precedence
	handleFlagLogLevel(ct, *logLevelPtr)

	ct.LogHostInfo()

	handleFlagOneRunOnlyMode(ct, *oneRunOnlyModePtr)

	release, err := ct.LockPidFile()
	if err != nil {
		log.Fatal(err.Error())
	}
	defer release()

	// runs until the process is terminated
	ct.Run(nil)
}

func isFlagPassed(name string) bool {
	found := false
	flag.Visit(func(f *flag.Flag) {
		if f.Name == name {
			found = true
		}
	})
	return found
}

func handleFlagVersion(versionFlag bool) {
	if versionFlag {
		fmt.Printf("cputemp v%s released under MIT license. https://github.com/cloudradar-monitoring/cputemp/\n", version)
		os.Exit(0)
	}
}

func handleFlagPrintConfig(printConfig bool, cfg *cputemp.Config) {
	if printConfig {
		fmt.Println(cfg.DumpToml())
		os.Exit(0)
	}
}

func handleFlagLogLevel(ct *cputemp.CPUTemp, logLevel string) {
	if logLevel == "" {
		return
	}

	lvl := cputemp.LogLevel(logLevel)
	if lvl.IsValid() {
		ct.SetLogLevel(lvl)
	} else {
		log.Warnf("Invalid log level: \"%s\". Set to default: \"%s\"", logLevel, ct.Config.LogLevel)
	}
}

func handleFlagOneRunOnlyMode(ct *cputemp.CPUTemp, oneRunOnlyMode bool) {
	if !oneRunOnlyMode {
		return
	}

	if ct.RunOnce() == nil {
		os.Exit(1)
	}
	os.Exit(0)
}
