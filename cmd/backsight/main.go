package main

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	// Optional .env for local development; missing file is fine.
	if err := godotenv.Load(); err == nil {
		log.Println("[INFO] loaded .env")
	}

	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
