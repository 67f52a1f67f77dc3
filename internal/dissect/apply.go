package dissect

import (
	"github.com/wtdcode/dissectctl/internal/cmderr"
	"github.com/wtdcode/dissectctl/internal/proto"
)

// ApplyProtocols pushes the accumulated enable/disable lists into the
// protocol registry. It must run exactly once, after option parsing and
// after the registry is fully loaded.
//
// Plain protocol enable/disable tolerates unknown names; heuristic names
// that the registry cannot resolve are reported individually and flip the
// overall result to false, without stopping the batch or rolling back
// names already applied.
func (o *Options) ApplyProtocols(reg *proto.Registry, errs *cmderr.Sink) bool {
	success := true

	for _, name := range o.DisableProtocols {
		reg.DisableByName(name)
	}

	for _, name := range o.EnableProtocols {
		reg.EnableByName(name)
	}

	for _, name := range o.EnableHeuristics {
		if !reg.EnableHeuristicByName(name, true) {
			errs.Error("No such protocol %s, can't enable", name)
			success = false
		}
	}

	for _, name := range o.DisableHeuristics {
		if !reg.EnableHeuristicByName(name, false) {
			errs.Error("No such protocol %s, can't disable", name)
			success = false
		}
	}

	return success
}
