package configs

import "github.com/reusee/dscope"

// Module carries no providers. The Loader is provided by whoever knows where the files are.
type Module struct {
	dscope.Module
}
