package main

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"os"

	"github.com/spf13/pflag"
)

const keyBytes = 32

// keygen prints random API keys suitable for API_KEY and MCP_API_KEY
func main() {
	count := pflag.IntP("count", "n", 1, "number of keys to generate")
	pflag.Parse()

	for i := 0; i < *count; i++ {
		key, err := generateAPIKey()
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		fmt.Println(key)
	}
}

// generateAPIKey returns keyBytes random bytes encoded as hex
func generateAPIKey() (string, error) {
	buffer := make([]byte, keyBytes)
	if _, err := rand.Read(buffer); err != nil {
		return "", fmt.Errorf("failed to read random bytes: %w", err)
	}
	return hex.EncodeToString(buffer), nil
}
