package app

import (
	"github.com/vk/schemagen/internal/registry"
	"github.com/vk/schemagen/modules/exec"
	"github.com/vk/schemagen/modules/print"
)

// coreModules is the definitive list of all generator modules that are
// compiled into the schemagen binary.
var coreModules = []registry.Module{
	&exec.Module{},
	&print.Module{},
}
