package main

import (
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/launchdarkly/http-test-client/config"
)

type stringList []string

func (s *stringList) String() string {
	return strings.Join(*s, ",")
}

func (s *stringList) Set(value string) error {
	*s = append(*s, value)
	return nil
}

type commandParams struct {
	configFile string
	overrides  map[string]interface{}
}

// Read parses the command line. Only flags that were actually given become overrides, so that
// anything else can still come from the environment or a config file.
func (c *commandParams) Read(args []string, errOut io.Writer) bool {
	var (
		url, basePath, statusPath string
		serve, dummy              bool
		port                      int
		run, skip                 stringList
		debug, debugAll, noColor  bool
	)
	d := config.Defaults()

	fs := flag.NewFlagSet(args[0], flag.ContinueOnError)
	fs.SetOutput(errOut)
	fs.StringVar(&c.configFile, "config", "", "optional config file")
	fs.StringVar(&url, "url", "", "base URL of the service to test")
	fs.StringVar(&basePath, "base-path", "", "path prefix for every request, such as /api")
	fs.BoolVar(&serve, "serve", false, "test against an embedded mock API instead of a real service")
	fs.IntVar(&port, "port", d.ServePort, "port for the embedded mock API (0 picks a free port)")
	fs.BoolVar(&dummy, "dummy", false, "test against canned responses, without any network activity")
	fs.StringVar(&statusPath, "status-path", "", "path to poll until the service responds, before running tests")
	fs.Var(&run, "run", "regex pattern(s) to select tests to run")
	fs.Var(&skip, "skip", "regex pattern(s) to select tests not to run")
	fs.BoolVar(&debug, "debug", false, "enable debug logging for failed tests")
	fs.BoolVar(&debugAll, "debug-all", false, "enable debug logging for all tests")
	fs.BoolVar(&noColor, "no-color", false, "disable colored output")

	if err := fs.Parse(args[1:]); err != nil {
		return false
	}
	if fs.NArg() > 0 {
		fmt.Fprintf(errOut, "unexpected arguments: %s\n", strings.Join(fs.Args(), " "))
		fs.Usage()
		return false
	}

	values := map[string]interface{}{
		"url":         url,
		"base-path":   basePath,
		"serve":       serve,
		"port":        port,
		"dummy":       dummy,
		"status-path": statusPath,
		"run":         []string(run),
		"skip":        []string(skip),
		"debug":       debug,
		"debug-all":   debugAll,
		"no-color":    noColor,
	}
	keys := map[string]string{
		"url":         config.KeyURL,
		"base-path":   config.KeyBasePath,
		"serve":       config.KeyServe,
		"port":        config.KeyServePort,
		"dummy":       config.KeyDummy,
		"status-path": config.KeyStatusPath,
		"run":         config.KeyRun,
		"skip":        config.KeySkip,
		"debug":       config.KeyDebug,
		"debug-all":   config.KeyDebugAll,
		"no-color":    config.KeyNoColor,
	}
	c.overrides = make(map[string]interface{})
	fs.Visit(func(f *flag.Flag) {
		if key, ok := keys[f.Name]; ok {
			c.overrides[key] = values[f.Name]
		}
	})
	return true
}
