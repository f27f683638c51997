package main

import (
	"context"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	json "github.com/goccy/go-json"
	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"

	"github.com/reoring/sdkmodel"
)

// fieldRow is one descriptor as printed by describe.
type fieldRow struct {
	Shape     string `json:"shape" yaml:"shape"`
	Kind      string `json:"kind" yaml:"kind"`
	Member    string `json:"member" yaml:"member"`
	Display   string `json:"display" yaml:"display"`
	Type      string `json:"type" yaml:"type"`
	Element   string `json:"element,omitempty" yaml:"element,omitempty"`
	Location  string `json:"location" yaml:"location"`
	WireName  string `json:"wireName" yaml:"wireName"`
	Format    string `json:"timestampFormat,omitempty" yaml:"timestampFormat,omitempty"`
	Sensitive bool   `json:"sensitive,omitempty" yaml:"sensitive,omitempty"`
}

func describeCmd(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	fs := pflag.NewFlagSet("describe", pflag.ContinueOnError)
	resolve := commonFlags(fs)
	shape := fs.String("shape", "", "only describe this shape")
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
	cat := svc.catalog()
	shapes := cat.Shapes()
	if *shape != "" {
		shapes = []string{*shape}
	}

	var rows []fieldRow
	for _, name := range shapes {
		sc, err := cat.Schema(name)
		if err != nil {
			return err
		}
		logger.Debug().Str("service", cat.Service()).Str("shape", name).Int("fields", len(sc.Fields())).Msg("describe")
		rows = append(rows, describeSchema(sc)...)
	}
	return writeRows(stdout, cfg.Format, rows)
}

func describeSchema(sc sdkmodel.SchemaInfo) []fieldRow {
	rows := make([]fieldRow, 0, len(sc.Fields()))
	for _, d := range sc.Fields() {
		row := fieldRow{
			Shape:     sc.TypeName(),
			Kind:      sc.Kind().String(),
			Member:    d.MemberName(),
			Display:   d.DisplayName(),
			Type:      d.MarshallingType().String(),
			Location:  d.Location().Location.String(),
			WireName:  d.Location().Name,
			Sensitive: d.Sensitive(),
		}
		if m := d.Member(); m != nil {
			row.Element = m.Type.String()
		}
		if f, ok := d.TimestampFormat(); ok {
			row.Format = f.String()
		}
		rows = append(rows, row)
	}
	return rows
}

func writeRows(w io.Writer, format string, rows []fieldRow) error {
	switch format {
	case "json":
		out, err := json.MarshalIndent(rows, "", "  ")
		if err != nil {
			return err
		}
		_, err = fmt.Fprintf(w, "%s\n", out)
		return err
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(rows); err != nil {
			return err
		}
		return enc.Close()
	}
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "SHAPE\tMEMBER\tTYPE\tLOCATION\tWIRE NAME\tFORMAT\tSENSITIVE")
	for _, r := range rows {
		typ := r.Type
		if r.Element != "" {
			typ += "<" + r.Element + ">"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			r.Shape, r.Member, typ, r.Location, r.WireName, dash(r.Format), yesNo(r.Sensitive))
	}
	return tw.Flush()
}

func dash(s string) string {
	if strings.TrimSpace(s) == "" {
		return "-"
	}
	return s
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
