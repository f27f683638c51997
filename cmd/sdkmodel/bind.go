package main

import (
	"context"
	"fmt"
	"io"
	"maps"
	"os"
	"slices"

	json "github.com/goccy/go-json"
	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"

	"github.com/reoring/sdkmodel"
	"github.com/reoring/sdkmodel/protocol"
)

// bindReport is what bind prints for one value.
type bindReport struct {
	Service string              `json:"service" yaml:"service"`
	Shape   string              `json:"shape" yaml:"shape"`
	Method  string              `json:"method,omitempty" yaml:"method,omitempty"`
	URL     string              `json:"url,omitempty" yaml:"url,omitempty"`
	Path    map[string]string   `json:"pathParams,omitempty" yaml:"pathParams,omitempty"`
	Query   map[string][]string `json:"query,omitempty" yaml:"query,omitempty"`
	Header  map[string][]string `json:"header,omitempty" yaml:"header,omitempty"`
	Payload string              `json:"payload,omitempty" yaml:"payload,omitempty"`
	Value   string              `json:"value" yaml:"value"`
}

func bindCmd(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	fs := pflag.NewFlagSet("bind", pflag.ContinueOnError)
	resolve := commonFlags(fs)
	shape := fs.String("shape", "", "shape to build")
	input := fs.String("input", "-", "JSON input keyed by member name; - reads stdin")
	if ok, err := parseFlags(fs, args, stdout); !ok {
		return err
	}
	cfg, err := resolve()
	if err != nil {
		return err
	}
	logger := newLogger(stderr, cfg.LogLevel)

	svc, err := lookupService(cfg.Service)
	if err != nil {
		return err
	}
	if *shape == "" {
		return fmt.Errorf("--shape is required")
	}
	b, err := svc.catalog().NewBuilder(*shape)
	if err != nil {
		return err
	}
	data, err := readInput(*input)
	if err != nil {
		return err
	}
	if err := protocol.UnmarshalJSONMembers(ctx, data, b); err != nil {
		return fmt.Errorf("decode %s: %w", *input, err)
	}
	obj := b.BuildObject()
	logger.Debug().Str("service", cfg.Service).Str("shape", *shape).Msg("decoded input")

	w, _ := protocol.ParseWire(cfg.Protocol)
	bd, err := protocol.Bind(ctx, w, obj)
	if err != nil {
		return err
	}
	rep := bindReport{
		Service: cfg.Service,
		Shape:   *shape,
		Path:    bd.PathParams,
		Query:   bd.Query,
		Header:  bd.Header,
		Value:   obj.String(),
	}
	if len(rep.Path) == 0 {
		rep.Path = nil
	}
	if len(bd.Payload) > 0 {
		if rep.Payload, err = renderPayload(w, obj, bd.Payload); err != nil {
			return err
		}
	}
	if op, ok := svc.operations[*shape]; ok {
		hr, err := protocol.NewHTTPRequest(ctx, w, cfg.Endpoint, op, obj)
		if err != nil {
			return err
		}
		rep.Method, rep.URL = hr.Method, hr.URL.String()
		rep.Header = hr.Header
		logger.Info().Str("method", hr.Method).Str("url", rep.URL).Msg("bound request")
	} else {
		logger.Info().Str("shape", *shape).Msg("no operation; showing binding only")
	}
	return writeReport(stdout, cfg.Format, rep)
}

func readInput(path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(path)
}

// renderPayload shows JSON payloads as text and CBOR payloads in diagnostic
// notation. Sensitive members are redacted first.
func renderPayload(w protocol.Wire, obj sdkmodel.Object, doc map[string]any) (string, error) {
	redactPayload(obj, doc)
	data, err := w.Marshal(doc)
	if err != nil {
		return "", err
	}
	if w == protocol.CBOR {
		return protocol.DiagnoseCBOR(data)
	}
	return string(data), nil
}

func writeReport(w io.Writer, format string, rep bindReport) error {
	switch format {
	case "json":
		out, err := json.MarshalIndent(rep, "", "  ")
		if err != nil {
			return err
		}
		_, err = fmt.Fprintf(w, "%s\n", out)
		return err
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(rep); err != nil {
			return err
		}
		return enc.Close()
	}
	if rep.Method != "" {
		fmt.Fprintf(w, "%s %s\n", rep.Method, rep.URL)
	}
	for _, k := range slices.Sorted(maps.Keys(rep.Header)) {
		for _, v := range rep.Header[k] {
			fmt.Fprintf(w, "%s: %s\n", k, v)
		}
	}
	if rep.Method == "" {
		for _, k := range slices.Sorted(maps.Keys(rep.Path)) {
			fmt.Fprintf(w, "path %s=%s\n", k, rep.Path[k])
		}
		for _, k := range slices.Sorted(maps.Keys(rep.Query)) {
			fmt.Fprintf(w, "query %s=%v\n", k, rep.Query[k])
		}
	}
	if rep.Payload != "" {
		fmt.Fprintf(w, "\n%s\n", rep.Payload)
	}
	fmt.Fprintf(w, "\n%s\n", rep.Value)
	return nil
}
