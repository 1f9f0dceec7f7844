package main

import (
	"cg2/cmd"
	"os"

	log "github.com/sirupsen/logrus"
)

func main() {
	if err := cmd.Execute(); err != nil {
		log.Error(err)
		if log.IsLevelEnabled(log.DebugLevel) {
			log.Debugf("%+v", err)
		}
		os.Exit(cmd.ExitCode(err))
	}
}
