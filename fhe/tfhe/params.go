package tfhe

import (
	"fmt"

	tfhego "github.com/sp301415/tfhe-go/tfhe"
)

// ParametersLiteral is an uncompiled tfhe-go binary parameter set
type ParametersLiteral = tfhego.ParametersLiteral[uint32]

// Presets maps preset names to the gate bootstrapping parameter sets of
// tfhe-go. ParamsBinary targets 128 bit security.
var Presets = map[string]ParametersLiteral{
	"Binary": tfhego.ParamsBinary,
}

// DefaultPreset is the preset used when none is named
const DefaultPreset = "Binary"

// Parameters is a compiled parameter set
type Parameters struct {
	params tfhego.Parameters[uint32]
}

// NewParametersFromLiteral compiles lit. tfhe-go validates parameters by
// panicking, the panic is returned as an error.
func NewParametersFromLiteral(lit ParametersLiteral) (params Parameters, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("tfhe: invalid parameters: %v", r)
		}
	}()
	params.params = lit.Compile()
	return params, nil
}

// LWEDimension returns the dimension of the gate inputs and outputs
func (p Parameters) LWEDimension() int {
	return p.params.LWEDimension()
}

// PolyDegree returns the ring degree used by the blind rotation
func (p Parameters) PolyDegree() int {
	return p.params.PolyDegree()
}
