// Package seed provides deterministic seed derivation for scheme generation.
// A seed makes palette generation reproducible: the same scheme, theme and
// seed always produce the same palette.
package seed

import (
	"crypto/sha256"
	"encoding/binary"
	"fmt"
	"math/rand/v2"
	"slices"
	"strings"
)

// Mode determines how the seed for scheme generation is obtained.
type Mode string

const (
	// ModeRandom uses a non-deterministic seed (varies each run).
	ModeRandom Mode = "random"
	// ModeManual uses a user-provided seed value.
	ModeManual Mode = "manual"
	// ModeText derives the seed from a phrase, such as a brand or project name.
	ModeText Mode = "text"
)

// Config holds configuration for seed calculation.
type Config struct {
	Mode  Mode   // Seed mode
	Value *int64 // Seed value (only used when Mode is ModeManual)
	Text  string // Phrase to hash (only used when Mode is ModeText)
}

// Calculate determines the seed value based on the seed mode.
// Returned seeds are always non-negative.
func Calculate(config Config) (int64, error) {
	switch config.Mode {
	case ModeManual:
		if config.Value == nil {
			return 0, fmt.Errorf("seed value is required for manual seed mode")
		}
		if *config.Value < 0 {
			return 0, fmt.Errorf("seed value must be non-negative, got %d", *config.Value)
		}
		return *config.Value, nil
	case ModeText:
		return CalculateTextSeed(config.Text)
	case ModeRandom, "":
		return GenerateRandomSeed(), nil
	default:
		return 0, fmt.Errorf("unknown seed mode: %s", config.Mode)
	}
}

// CalculateTextSeed hashes a phrase into a seed. Case and surrounding
// whitespace are ignored so "Acme" and " acme " share a palette.
func CalculateTextSeed(text string) (int64, error) {
	normalised := strings.ToLower(strings.TrimSpace(text))
	if normalised == "" {
		return 0, fmt.Errorf("seed text cannot be empty")
	}

	hash := sha256.Sum256([]byte(normalised))
	// Drop the top bit so the seed is never negative.
	seed := int64(binary.LittleEndian.Uint64(hash[:8]) >> 1) // #nosec G115 -- shifted into int64 range
	return seed, nil
}

// GenerateRandomSeed generates a non-deterministic, non-negative seed.
func GenerateRandomSeed() int64 {
	// #nosec G404 -- seeds select colours, not secrets
	return rand.Int64()
}

// ValidModes returns a list of valid seed modes.
func ValidModes() []Mode {
	return []Mode{ModeRandom, ModeManual, ModeText}
}

// ParseMode converts a string to a Mode.
// Returns an error if the string is not a valid mode.
func ParseMode(s string) (Mode, error) {
	mode := Mode(s)
	if slices.Contains(ValidModes(), mode) {
		return mode, nil
	}
	return "", fmt.Errorf("invalid seed mode: %s (valid: random, manual, text)", s)
}
