package FHEAES

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLogger(t *testing.T) {
	for _, debug := range []bool{false, true} {
		logger := NewLogger(debug)
		assert.NotPanics(t, func() {
			logger.PrintMessage("seed 00")
			logger.PrintMessages(">>> Round: ", 1, " <<<")
			logger.PrintFormatted("key schedule: %d words", 44)
			logger.PrintBlock("block", make([]byte, BlockSize))
			logger.PrintHeader("Logger")
			logger.PrintMemUsage("Logger")
		})
	}
}

func TestHandleError(t *testing.T) {
	assert.NotPanics(t, func() { HandleError(nil) })
	assert.Panics(t, func() { HandleError(errors.New("noise budget")) })
}
