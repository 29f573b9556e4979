package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/launchdarkly/http-test-client/apitests"
	"github.com/launchdarkly/http-test-client/client"
	"github.com/launchdarkly/http-test-client/config"
	"github.com/launchdarkly/http-test-client/framework"
	"github.com/launchdarkly/http-test-client/logging"
	"github.com/launchdarkly/http-test-client/mockapi"
	"github.com/launchdarkly/http-test-client/transport"
)

func main() {
	os.Exit(run(os.Args, os.Stdout, os.Stderr))
}

func run(args []string, out, errOut io.Writer) int {
	var params commandParams
	if !params.Read(args, errOut) {
		return 1
	}
	cfg, err := config.Load(params.configFile, params.overrides)
	if err != nil {
		fmt.Fprintf(errOut, "Invalid parameters: %s\n", err)
		return 1
	}

	var filters framework.RegexFilters
	for _, p := range cfg.Run {
		if err := filters.MustMatch.Set(p); err != nil {
			fmt.Fprintf(errOut, "Invalid parameters: %s\n", err)
			return 1
		}
	}
	for _, p := range cfg.Skip {
		if err := filters.MustNotMatch.Set(p); err != nil {
			fmt.Fprintf(errOut, "Invalid parameters: %s\n", err)
			return 1
		}
	}

	mainDebugLogger := logging.NullLogger()
	if cfg.DebugAll {
		mainDebugLogger = logging.NewConsole(out, cfg.NoColor)
	}

	ctx := context.Background()
	tr, stop, err := makeTransport(cfg, mainDebugLogger)
	if err != nil {
		fmt.Fprintf(errOut, "Could not start: %s\n", err)
		return 1
	}
	defer stop()

	if cfg.StatusPath != "" {
		status := client.New(tr, cfg.BasePath, mainDebugLogger)
		if _, err := framework.AwaitService(ctx, status, cfg.StatusPath, cfg.StartupTimeout, out); err != nil {
			fmt.Fprintf(errOut, "Service error: %s\n", err)
			return 1
		}
	}

	fmt.Fprintln(out)
	framework.PrintFilterDescription(out, filters)

	fmt.Fprintln(out, "Running test suite")

	testLogger := NewConsoleTestLogger(out, cfg.NoColor)
	testLogger.DebugOutputOnFailure = cfg.Debug || cfg.DebugAll
	testLogger.DebugOutputOnSuccess = cfg.DebugAll

	results := apitests.RunTestSuite(ctx, tr, cfg.BasePath, filters.AsFilter, testLogger)

	fmt.Fprintln(out)
	framework.PrintResults(out, results)
	if !results.OK() {
		return 1
	}
	return 0
}

// makeTransport returns the transport for the configured target, and a function that releases
// anything that was started for it.
func makeTransport(cfg config.Config, logger logging.Logger) (client.Transport, func(), error) {
	switch {
	case cfg.Dummy:
		return transport.NewDummyTransport(), func() {}, nil
	case cfg.Serve:
		api := mockapi.New(logging.LoggerWithPrefix(logging.OrNull(logger), "[mockapi] "))
		server, err := framework.StartServer(cfg.ServePort, mockapi.Mounted(cfg.BasePath, api))
		if err != nil {
			return nil, nil, err
		}
		tr := transport.NewHTTPTransport("http://" + server.Addr)
		tr.Logger = logger
		return tr, func() { _ = server.Close() }, nil
	default:
		tr := transport.NewHTTPTransport(cfg.URL)
		tr.Logger = logger
		return tr, func() {}, nil
	}
}
