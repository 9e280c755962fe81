package pipeline

import (
	"fmt"
	"log/slog"
	"sync/atomic"

	"github.com/gogpu/naga"
)

var programIDs atomic.Uint64

// Program is a compiled user shader attached to a pipeline. Pipelines
// compare programs by identity.
type Program struct {
	id     uint64
	source string
	spirv  []uint32
}

// NewProgram compiles WGSL source to SPIR-V.
func NewProgram(wgsl string) (*Program, error) {
	spirvBytes, err := naga.Compile(wgsl)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrShaderCompile, err)
	}

	// SPIR-V is little-endian 32-bit words
	code := make([]uint32, len(spirvBytes)/4)
	for i := range code {
		code[i] = uint32(spirvBytes[i*4]) |
			uint32(spirvBytes[i*4+1])<<8 |
			uint32(spirvBytes[i*4+2])<<16 |
			uint32(spirvBytes[i*4+3])<<24
	}

	p := &Program{
		id:     programIDs.Add(1),
		source: wgsl,
		spirv:  code,
	}
	slogger().Debug("pipeline: program compiled",
		slog.Uint64("id", p.id),
		slog.Int("words", len(code)))
	return p, nil
}

// ID returns a process-unique identifier, never zero.
func (p *Program) ID() uint64 { return p.id }

// Source returns the WGSL the program was compiled from.
func (p *Program) Source() string { return p.source }

// SPIRV returns the compiled code.
func (p *Program) SPIRV() []uint32 { return p.spirv }

func programID(p *Program) uint64 {
	if p == nil {
		return 0
	}
	return p.id
}
