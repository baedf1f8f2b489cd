package main

import (
	"github.com/ldumont/sqlvsorm/internal/config"
	"github.com/ldumont/sqlvsorm/internal/entrypoint"
)

// Version information - set at build time via ldflags
var (
	Version = "dev"
	Commit  = "unknown"
)

func main() {
	cfg := config.NewConfig()
	entrypoint.Run(cfg, Version)
}
