package resources

import (
	"context"
	"net/url"

	"github.com/launchdarkly/http-test-client/client"

	"github.com/stretchr/testify/mock"
	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"
)

type mockSession struct {
	mock.Mock
}

func (m *mockSession) Request(ctx context.Context, path string, opts client.RequestOptions) (ldvalue.Value, error) {
	args := m.Called(path, opts)
	return args.Get(0).(ldvalue.Value), args.Error(1)
}

func (m *mockSession) RawRequest(ctx context.Context, path string, opts client.RequestOptions) (client.Response, error) {
	args := m.Called(path, opts)
	return args.Get(0).(client.Response), args.Error(1)
}

func (m *mockSession) AddCleanup(path string, fn client.CleanupFunc) {
	m.Called(path, fn)
}

func (m *mockSession) RemoveCleanup(path string) {
	m.Called(path)
}

func get(params url.Values) client.RequestOptions {
	return client.RequestOptions{Method: "GET", Params: params}
}

func post(data interface{}, params url.Values) client.RequestOptions {
	return client.RequestOptions{Method: "POST", Data: data, Params: params}
}

func put(data interface{}, params url.Values) client.RequestOptions {
	return client.RequestOptions{Method: "PUT", Data: data, Params: params}
}

func del(params url.Values) client.RequestOptions {
	return client.RequestOptions{Method: "DELETE", Params: params}
}

func jsonValue(s string) ldvalue.Value {
	return ldvalue.Parse([]byte(s))
}

func noContent() client.Response {
	return client.Response{StatusCode: 204, Headers: map[string]string{}}
}
