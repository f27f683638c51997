package acm

import (
	"net/http"
	"sync"

	"github.com/reoring/sdkmodel"
	"github.com/reoring/sdkmodel/protocol"
)

const ServiceName = "acm"

// Catalog registers every shape of the service. It is built on first use so
// that the package-level schemas are initialized before it.
var Catalog = sync.OnceValue(func() *sdkmodel.Catalog {
	return sdkmodel.MustCatalog(ServiceName,
		newTagBuilder,
		newCertificateSummaryBuilder,
		newFiltersBuilder,
		func() sdkmodel.AnyBuilder { return NewImportCertificateRequestBuilder() },
		func() sdkmodel.AnyBuilder { return NewListCertificatesRequestBuilder() },
		func() sdkmodel.AnyBuilder { return NewListCertificatesResponseBuilder() },
		func() sdkmodel.AnyBuilder { return NewGetCertificateRequestBuilder() },
		func() sdkmodel.AnyBuilder { return NewGetCertificateResponseBuilder() },
	)
})

// Operations maps request shapes to their HTTP binding.
var Operations = map[string]protocol.Operation{
	"ImportCertificateRequest": {Method: http.MethodPost, Path: "/certificates"},
	"ListCertificatesRequest":  {Method: http.MethodPost, Path: "/certificates/list"},
	"GetCertificateRequest":    {Method: http.MethodGet, Path: "/certificates/{certificateArn}"},
}
