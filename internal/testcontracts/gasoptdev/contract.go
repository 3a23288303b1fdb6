// Package gasoptdev is a development build of GasOpt contract used to test
// updates. It has the same name and statistics record, its update passes
// the version to migrate from as is.
package gasoptdev

import (
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/contract"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/management"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/std"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
)

type Stats struct {
	TotalContractsAnalyzed        int
	TotalGasSaved                 int
	TotalOptimizationsImplemented int
}

// nolint:deadcode,unused
func _deploy(data any, isUpdate bool) {
	if isUpdate {
		return
	}

	storage.Put(storage.GetContext(), []byte{'t'}, std.Serialize(Stats{
		TotalContractsAnalyzed: data.(int),
	}))
}

func Update(nefFile, manifest []byte, version int) {
	contract.Call(interop.Hash160(management.Hash), "update",
		contract.All, nefFile, manifest, []any{version})
}
