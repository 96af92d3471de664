package main

import (
	"scheduler-callback-api/core/logger"
	"scheduler-callback-api/core/server"
)

func main() {
	if err := server.Run(); err != nil {
		logger.Error("run server error", err)
	}
}
