package codecatalyst

import (
	"net/http"
	"sync"

	"github.com/reoring/sdkmodel"
	"github.com/reoring/sdkmodel/protocol"
)

// ServiceName identifies this package in catalogs and tools.
const ServiceName = "codecatalyst"

// Catalog lists every shape of the service. It is built on first use, after
// every schema in the package is initialized.
var Catalog = sync.OnceValue(func() *sdkmodel.Catalog {
	return sdkmodel.MustCatalog(ServiceName,
		func() sdkmodel.AnyBuilder { return NewCreateAccessTokenRequestBuilder() },
		func() sdkmodel.AnyBuilder { return NewCreateDevEnvironmentRequestBuilder() },
		func() sdkmodel.AnyBuilder { return NewListDevEnvironmentsRequestBuilder() },
		func() sdkmodel.AnyBuilder { return NewListDevEnvironmentsResponseBuilder() },
		newDevEnvironmentSummaryBuilder,
		newFilterBuilder,
		newIdeConfigurationBuilder,
		newPersistentStorageConfigurationBuilder,
		newRepositoryInputBuilder,
	)
})

// Operations maps request shapes to their HTTP bindings.
var Operations = map[string]protocol.Operation{
	"CreateAccessTokenRequest":    {Method: http.MethodPut, Path: "/v1/accessTokens"},
	"CreateDevEnvironmentRequest": {Method: http.MethodPut, Path: "/v1/spaces/{spaceName}/projects/{projectName}/devEnvironments"},
	"ListDevEnvironmentsRequest":  {Method: http.MethodPost, Path: "/v1/spaces/{spaceName}/devEnvironments"},
}
