package verifier

import (
	"errors"
	"fmt"
	"time"

	"github.com/relaycore/relaycore/log"
)

// DefaultMaxExpectedTimePerBlock is the default upper bound on local block
// time used to convert a delay period into a block count.
const DefaultMaxExpectedTimePerBlock = 20 * time.Second

// Config holds the configuration of a Verifier.
type Config struct {
	// MaxExpectedTimePerBlock is the assumed worst-case local block period.
	// The block-count half of every delay check is derived from it, so
	// overestimating it strengthens the delay, underestimating weakens it.
	MaxExpectedTimePerBlock time.Duration

	// Logger receives verification outcomes. Defaults to the package
	// default logger under the "verifier" module.
	Logger *log.Logger
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		MaxExpectedTimePerBlock: DefaultMaxExpectedTimePerBlock,
	}
}

// Validate checks configuration values for correctness.
func (c *Config) Validate() error {
	if c.MaxExpectedTimePerBlock < 0 {
		return fmt.Errorf("verifier: negative max expected time per block: %v", c.MaxExpectedTimePerBlock)
	}
	if c.MaxExpectedTimePerBlock == 0 {
		return errors.New("verifier: max expected time per block must not be zero")
	}
	return nil
}
