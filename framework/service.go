package framework

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/launchdarkly/http-test-client/client"

	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"
)

const serviceRetryInterval = time.Millisecond * 100

// AwaitService polls statusPath through the session until a request succeeds, and returns the
// decoded body of that response. Progress dots are written to output. Transport errors and error
// statuses are retried until timeout elapses or ctx is cancelled.
func AwaitService(
	ctx context.Context,
	session client.Session,
	statusPath string,
	timeout time.Duration,
	output io.Writer,
) (ldvalue.Value, error) {
	if output == nil {
		output = io.Discard
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	fmt.Fprintf(output, "Connecting to service at %s", statusPath)
	defer fmt.Fprintln(output)

	ticker := time.NewTicker(serviceRetryInterval)
	defer ticker.Stop()
	for {
		fmt.Fprintf(output, ".")
		value, err := session.Request(ctx, statusPath, client.RequestOptions{Method: "GET"})
		if err == nil {
			return value, nil
		}
		select {
		case <-ctx.Done():
			return ldvalue.Null(), fmt.Errorf("timed out waiting for service, result of last query was: %w", err)
		case <-ticker.C:
		}
	}
}
