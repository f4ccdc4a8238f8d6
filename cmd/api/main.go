package main

import (
	"log"

	"github.com/Tpupu/resume-builder/internal/server"
	"github.com/Tpupu/resume-builder/internal/shared/config"
)

func main() {
	cfg := config.Load()
	r := server.NewRouter(cfg)

	addr := server.Addr(cfg.Port)
	log.Printf("Starting resume builder on %s", addr)

	if err := r.Run(addr); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
