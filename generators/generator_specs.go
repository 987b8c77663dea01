package generators

import (
	"fmt"
	"strings"
	"sync"

	"github.com/sneldao/snel-sub004/configs"
)

// GeneratorSpec is one entry of the "generators" config list. The oracle asks for it by Name,
// through -model or the "model" key.
type GeneratorSpec struct {
	Name string `json:"name"`
	Type string `json:"type"`
	GeneratorArgs
}

type GetGeneratorSpecs func() ([]GeneratorSpec, error)

const defaultSpecContextTokens = 32 * K

// GetGeneratorSpecs reads every config file once. Config files are searched nearest first,
// so a name defined in ./snel.cue shadows the same name in the user or system file.
// Specs without a context window get a conservative one so the prompt budget still applies.
func (Module) GetGeneratorSpecs(
	loader configs.Loader,
) GetGeneratorSpecs {
	return sync.OnceValues(func() (ret []GeneratorSpec, err error) {
		seen := make(map[string]bool)
		for value, err := range loader.IterCueValues("generators") {
			if err != nil {
				return nil, err
			}
			var specs []GeneratorSpec
			if err := value.Decode(&specs); err != nil {
				return nil, err
			}
			for i, spec := range specs {
				if spec.Name == "" || spec.Model == "" {
					return nil, fmt.Errorf("generators[%d]: name and model are required", i)
				}
				if seen[spec.Name] {
					continue
				}
				seen[spec.Name] = true
				spec.Type = strings.ToLower(spec.Type)
				if spec.ContextTokens <= 0 {
					spec.ContextTokens = defaultSpecContextTokens
				}
				ret = append(ret, spec)
			}
		}
		return
	})
}
