package app

import (
	"github.com/taskmill/taskmill/internal/registry"
	"github.com/taskmill/taskmill/tasks/envinfo"
	"github.com/taskmill/taskmill/tasks/print"
)

// coreTasks is the definitive list of all task modules that are compiled
// into the taskmill binary.
var coreTasks = []registry.Module{
	&print.Module{},
	&envinfo.Module{},
}
