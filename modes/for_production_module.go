package modes

import (
	"testing"

	"github.com/reusee/dscope"
)

// ModuleForProduction provides a nil *testing.T and ModeProduction.
type ModuleForProduction struct {
	dscope.Module
}

func ForProduction() ModuleForProduction {
	return ModuleForProduction{}
}

func (ModuleForProduction) T() *testing.T {
	return nil
}

func (ModuleForProduction) Mode() Mode {
	return ModeProduction
}
