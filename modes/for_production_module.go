package modes

import (
	"os"
	"strings"
	"testing"

	"github.com/reusee/dscope"
)

type ModuleForProduction struct {
	dscope.Module
}

func ForProduction() ModuleForProduction {
	return ModuleForProduction{}
}

func (ModuleForProduction) T() *testing.T {
	return nil
}

// Mode is production unless SNEL_MODE says development, which makes snel ignore proxy
// environment variables the way tests do.
func (ModuleForProduction) Mode() Mode {
	switch strings.ToLower(strings.TrimSpace(os.Getenv("SNEL_MODE"))) {
	case "development", "dev":
		return ModeDevelopment
	}
	return ModeProduction
}
