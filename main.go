/*
Copyright © 2025 studydrop
*/
package main

import (
	"github.com/joho/godotenv"
	"github.com/studydrop/studydrop-be/cmd"
)

func main() {
	cmd.Execute()
}

func init() {
	// API keys come from the environment; a missing .env is fine in
	// deployments that set them directly.
	_ = godotenv.Load()
}
