package config

import (
	"fmt"

	"github.com/chitacloud/pipefile/internal/logger"
	pipeentities "github.com/chitacloud/pipefile/ports/pipe/entities"
)

// MaxChunkSize bounds the streaming buffer.
const MaxChunkSize = 1 << 20

// Config is the complete pipefile configuration.
type Config struct {
	ChunkSize   int           `yaml:"chunk_size" mapstructure:"chunk_size"`
	StdinSource string        `yaml:"stdin_source" mapstructure:"stdin_source"`
	Log         logger.Config `yaml:"log" mapstructure:"log"`
}

// ApplyDefaults applies default values to the configuration.
func (c *Config) ApplyDefaults() {
	if c.ChunkSize == 0 {
		c.ChunkSize = pipeentities.DefaultChunkSize
	}
	if c.StdinSource == "" {
		c.StdinSource = string(pipeentities.StdinPipe)
	}
	c.Log.ApplyDefaults()
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.ChunkSize < 1 || c.ChunkSize > MaxChunkSize {
		return fmt.Errorf("chunk_size must be between 1 and %d (got: %d)", MaxChunkSize, c.ChunkSize)
	}
	if !c.Source().Valid() {
		return fmt.Errorf("stdin_source must be one of [pipe, file] (got: %s)", c.StdinSource)
	}
	if err := c.Log.Validate(); err != nil {
		return err
	}
	return nil
}

// Source returns the stdin source as its typed value.
func (c *Config) Source() pipeentities.StdinSource {
	return pipeentities.StdinSource(c.StdinSource)
}
