package main

import (
	"fmt"
	"maps"
	"slices"

	"github.com/reoring/sdkmodel"
	"github.com/reoring/sdkmodel/protocol"
	"github.com/reoring/sdkmodel/service/acm"
	"github.com/reoring/sdkmodel/service/codecatalyst"
)

type serviceModel struct {
	catalog    func() *sdkmodel.Catalog
	operations map[string]protocol.Operation
}

var services = map[string]serviceModel{
	codecatalyst.ServiceName: {catalog: codecatalyst.Catalog, operations: codecatalyst.Operations},
	acm.ServiceName:          {catalog: acm.Catalog, operations: acm.Operations},
}

func serviceNames() []string { return slices.Sorted(maps.Keys(services)) }

func lookupService(name string) (serviceModel, error) {
	if name == "" {
		return serviceModel{}, fmt.Errorf("--service is required (one of %v)", serviceNames())
	}
	m, ok := services[name]
	if !ok {
		return serviceModel{}, fmt.Errorf("unknown service %q (one of %v)", name, serviceNames())
	}
	return m, nil
}
