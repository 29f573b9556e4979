// Package framework contains the infrastructure for running a suite of API tests outside of the
// Go test runner, such as from a command-line tool pointed at a live service.
//
// The general model is:
//
// 1. The service under test is reachable through a client.Client. AwaitService can be used to
// wait until it responds before starting.
//
// 2. There is a general notion of a test context which is similar to Go's *testing.T, allowing
// pieces of test logic to be associated with a test identifier and to accumulate success/failure
// results. A Context can be passed to the assert and require packages.
//
// 3. Tests can be selected by regex filters, and results are reported through a TestLogger.
package framework
