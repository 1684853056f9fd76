package modes

import (
	"testing"

	"github.com/reusee/dscope"
)

// ModuleForTest provides the running test and ModeDevelopment.
// Components use the provided *testing.T to avoid interactive behavior under go test.
type ModuleForTest struct {
	dscope.Module
	t *testing.T
}

func ForTest(t *testing.T) ModuleForTest {
	return ModuleForTest{
		t: t,
	}
}

func (m ModuleForTest) T() *testing.T {
	return m.t
}

func (m ModuleForTest) Mode() Mode {
	return ModeDevelopment
}
