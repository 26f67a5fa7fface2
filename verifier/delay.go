package verifier

import (
	"time"

	errorsmod "cosmossdk.io/errors"

	"github.com/relaycore/relaycore/types"
)

// CalculateBlockDelay converts a wall-clock delay period into an equivalent
// block count: ceil(delayPeriod / maxExpectedTimePerBlock). Rounding is
// always up; rounding down would shorten the delay. A non-positive block
// period yields 0 as the defined fallback.
func CalculateBlockDelay(delayPeriod, maxExpectedTimePerBlock time.Duration) uint64 {
	if maxExpectedTimePerBlock <= 0 || delayPeriod <= 0 {
		return 0
	}
	blocks := delayPeriod / maxExpectedTimePerBlock
	if delayPeriod%maxExpectedTimePerBlock != 0 {
		blocks++
	}
	return uint64(blocks)
}

// verifyDelayPassed checks that both halves of the delay requirement hold:
// enough wall-clock time and enough blocks have passed since the proof's
// consensus state was recorded locally. An arithmetic overflow in either
// deadline is a rejection; a deadline past the representable range can never
// have elapsed.
func verifyDelayPassed(
	currentTime types.Timestamp,
	currentHeight types.Height,
	processedTime types.Timestamp,
	processedHeight types.Height,
	delayPeriod time.Duration,
	delayBlocks uint64,
) error {
	validTime, ok := processedTime.Add(delayPeriod)
	if !ok {
		return errorsmod.Wrapf(ErrDelayNotElapsed,
			"delay deadline overflows: processed time %d + delay period %v", processedTime, delayPeriod)
	}
	if currentTime < validTime {
		return errorsmod.Wrapf(ErrDelayNotElapsed,
			"current time %s is before valid time %s", currentTime.Time(), validTime.Time())
	}

	validHeight, err := processedHeight.Add(delayBlocks)
	if err != nil {
		return errorsmod.Wrapf(ErrDelayNotElapsed,
			"delay deadline overflows: processed height %s + %d blocks", processedHeight, delayBlocks)
	}
	if currentHeight.LT(validHeight) {
		return errorsmod.Wrapf(ErrDelayNotElapsed,
			"current height %s is below valid height %s", currentHeight, validHeight)
	}
	return nil
}
