// Command sdkmodel inspects the generated service models: it lists field
// descriptors and shows how a value binds to the wire.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/pflag"
)

func main() {
	if err := run(context.Background(), os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, errUsage) {
			os.Exit(2)
		}
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

var errUsage = errors.New("usage")

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	if len(args) < 1 {
		usage(stderr)
		return errUsage
	}
	switch args[0] {
	case "describe":
		return describeCmd(ctx, args[1:], stdout, stderr)
	case "bind":
		return bindCmd(ctx, args[1:], stdout, stderr)
	case "services":
		for _, name := range serviceNames() {
			fmt.Fprintln(stdout, name)
		}
		return nil
	case "-h", "--help", "help":
		usage(stdout)
		return nil
	}
	usage(stderr)
	return errUsage
}

func usage(w io.Writer) {
	fmt.Fprintln(w, `sdkmodel CLI

Usage:
  sdkmodel services
  sdkmodel describe --service S [--shape T] [--format table|json|yaml]
  sdkmodel bind --service S --shape T --input file.json [--protocol json|cbor] [--endpoint URL]

bind prints sensitive members as a redaction marker, in the payload and the value.

Common flags:
  --config file.toml   defaults for service, format, protocol, endpoint, log_level
  --log-level LEVEL    debug, info, warn, error (default warn)`)
}

// commonFlags registers the flags every subcommand shares and returns a
// function that resolves them against the config file.
func commonFlags(fs *pflag.FlagSet) func() (config, error) {
	cfgPath := fs.String("config", "", "TOML file with default settings")
	service := fs.String("service", "", "service name, see: sdkmodel services")
	format := fs.String("format", "", "output format: table, json, yaml")
	proto := fs.String("protocol", "", "payload protocol: json, cbor")
	endpoint := fs.String("endpoint", "", "endpoint used to render the request URL")
	level := fs.String("log-level", "", "log level: debug, info, warn, error")
	return func() (config, error) {
		cfg := defaultConfig()
		if *cfgPath != "" {
			var err error
			if cfg, err = loadConfig(*cfgPath); err != nil {
				return config{}, err
			}
		}
		if fs.Changed("service") {
			cfg.Service = *service
		}
		if fs.Changed("format") {
			cfg.Format = *format
		}
		if fs.Changed("protocol") {
			cfg.Protocol = *proto
		}
		if fs.Changed("endpoint") {
			cfg.Endpoint = *endpoint
		}
		if fs.Changed("log-level") {
			cfg.LogLevel = *level
		}
		return cfg, cfg.validate()
	}
}

func parseFlags(fs *pflag.FlagSet, args []string, stdout io.Writer) (bool, error) {
	fs.SetOutput(stdout)
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return false, nil
		}
		return false, err
	}
	if rest := fs.Args(); len(rest) > 0 {
		return false, fmt.Errorf("unexpected argument: %s", rest[0])
	}
	return true, nil
}
