package main

import (
	"github.com/jtr6/invisible-light/protocol"
	"github.com/jtr6/invisible-light/utils/logger"
)

func main() {
	if err := protocol.RootCmd.Execute(); err != nil {
		logger.Fatal(err)
	}
}
