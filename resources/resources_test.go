package resources

import (
	"context"
	"errors"
	"net/url"
	"testing"

	"github.com/launchdarkly/http-test-client/client"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"
)

var ctx = context.Background()

func TestResourcesList(t *testing.T) {
	session := &mockSession{}
	session.On("Request", "/users", get(nil)).Return(jsonValue(`["foo", "bar"]`), nil)

	result, err := New(session, "/users").List(ctx, nil)

	require.NoError(t, err)
	assert.JSONEq(t, `["foo", "bar"]`, result.JSONString())
	session.AssertExpectations(t)
}

func TestPassingExtraParamsToResourcesList(t *testing.T) {
	params := url.Values{"baz": {"bam"}}
	session := &mockSession{}
	session.On("Request", "/users", get(params)).Return(jsonValue(`["foo", "bar"]`), nil)

	result, err := New(session, "/users").List(ctx, params)

	require.NoError(t, err)
	assert.JSONEq(t, `["foo", "bar"]`, result.JSONString())
	session.AssertExpectations(t)
}

func TestResourcesListReturnsClientError(t *testing.T) {
	for _, status := range []int{500, 404} {
		session := &mockSession{}
		session.On("Request", "/users", get(nil)).Return(ldvalue.Null(), client.NewClientError(status, "error"))

		_, err := New(session, "/users").List(ctx, nil)

		assert.Equal(t, status, client.StatusCode(err))
	}
}

func TestResourcesCreate(t *testing.T) {
	data := map[string]interface{}{"foo": "bar", "baz": 123}
	session := &mockSession{}
	session.On("Request", "/users", post(data, nil)).Return(jsonValue(`{"id": "id1"}`), nil)
	session.On("AddCleanup", "/users/id1", mock.Anything).Return()

	result, err := New(session, "/users").Create(ctx, data, nil)

	require.NoError(t, err)
	assert.JSONEq(t, `{"id": "id1"}`, result.JSONString())
	session.AssertExpectations(t)
}

func TestPassingExtraParamsToResourcesCreate(t *testing.T) {
	data := map[string]interface{}{"foo": "bar", "baz": 123}
	params := url.Values{"bam": {"123"}}
	session := &mockSession{}
	session.On("Request", "/users", post(data, params)).Return(jsonValue(`{"id": "id1"}`), nil)
	session.On("AddCleanup", "/users/id1", mock.Anything).Return()

	result, err := New(session, "/users").Create(ctx, data, params)

	require.NoError(t, err)
	assert.JSONEq(t, `{"id": "id1"}`, result.JSONString())
	session.AssertExpectations(t)
}

func TestResourcesCreateWithoutIDRegistersNoCleanup(t *testing.T) {
	for _, body := range []string{`{"name": "x"}`, `{"id": null}`, `["a"]`, `null`} {
		session := &mockSession{}
		session.On("Request", "/users", post("{}", nil)).Return(jsonValue(body), nil)

		_, err := New(session, "/users").Create(ctx, "{}", nil)

		require.NoError(t, err)
		session.AssertNotCalled(t, "AddCleanup", mock.Anything, mock.Anything)
	}
}

func TestResourcesCreateWithNumericID(t *testing.T) {
	session := &mockSession{}
	session.On("Request", "/users", post("{}", nil)).Return(jsonValue(`{"id": 42}`), nil)
	session.On("AddCleanup", "/users/42", mock.Anything).Return()

	_, err := New(session, "/users").Create(ctx, "{}", nil)

	require.NoError(t, err)
	session.AssertExpectations(t)
}

func TestResourcesCreateFailureRegistersNoCleanup(t *testing.T) {
	session := &mockSession{}
	session.On("Request", "/users", post("{}", nil)).Return(ldvalue.Null(), client.NewClientError(400, "bad"))

	_, err := New(session, "/users").Create(ctx, "{}", nil)

	assert.Equal(t, 400, client.StatusCode(err))
	session.AssertNotCalled(t, "AddCleanup", mock.Anything, mock.Anything)
}

func TestResourceGet(t *testing.T) {
	session := &mockSession{}
	session.On("Request", "/users/user1", get(nil)).Return(jsonValue(`{"id": "user1", "name": "John"}`), nil)

	result, err := New(session, "/users").Item("user1").Get(ctx, nil)

	require.NoError(t, err)
	assert.JSONEq(t, `{"id": "user1", "name": "John"}`, result.JSONString())
}

func TestResourceGetReturnsClientErrorIfStatusCodeIsWrong(t *testing.T) {
	session := &mockSession{}
	session.On("Request", "/users/user1", get(nil)).Return(ldvalue.Null(), client.NewClientError(500, "internal server error"))

	_, err := New(session, "/users").Item("user1").Get(ctx, nil)

	assert.Equal(t, 500, client.StatusCode(err))
}

func TestResourceGetReturnsNullOn404(t *testing.T) {
	session := &mockSession{}
	session.On("Request", "/users/user1", get(nil)).Return(ldvalue.Null(), client.NewClientError(404, "not found"))

	result, err := New(session, "/users").Item("user1").Get(ctx, nil)

	require.NoError(t, err)
	assert.True(t, result.IsNull())
}

func TestPassingExtraParamsToResourceGet(t *testing.T) {
	params := url.Values{"foo": {"bar"}}
	session := &mockSession{}
	session.On("Request", "/users/user1", get(params)).Return(jsonValue(`{"id": "user1"}`), nil)

	result, err := New(session, "/users").Item("user1").Get(ctx, params)

	require.NoError(t, err)
	assert.JSONEq(t, `{"id": "user1"}`, result.JSONString())
}

func TestResourceUpdate(t *testing.T) {
	data := map[string]string{"name": "Jane"}
	session := &mockSession{}
	session.On("Request", "/users/user1", put(data, nil)).Return(jsonValue(`{"id": "user1", "name": "Jane"}`), nil)

	result, err := New(session, "/users").Item("user1").Update(ctx, data, nil)

	require.NoError(t, err)
	assert.JSONEq(t, `{"id": "user1", "name": "Jane"}`, result.JSONString())
}

func TestPassingExtraParamsToResourceUpdate(t *testing.T) {
	data := map[string]string{"name": "Jane"}
	params := url.Values{"foo": {"bar"}}
	session := &mockSession{}
	session.On("Request", "/users/user1", put(data, params)).Return(jsonValue(`{"id": "user1", "name": "Jane"}`), nil)

	_, err := New(session, "/users").Item("user1").Update(ctx, data, params)

	require.NoError(t, err)
	session.AssertExpectations(t)
}

func TestResourceUpdateReturnsClientError(t *testing.T) {
	data := map[string]string{"name": "Jane"}
	for _, status := range []int{500, 404} {
		session := &mockSession{}
		session.On("Request", "/users/user1", put(data, nil)).Return(ldvalue.Null(), client.NewClientError(status, "x"))

		_, err := New(session, "/users").Item("user1").Update(ctx, data, nil)

		assert.Equal(t, status, client.StatusCode(err))
	}
}

func TestResourceDelete(t *testing.T) {
	session := &mockSession{}
	session.On("RemoveCleanup", "/users/user1").Return()
	session.On("RawRequest", "/users/user1", del(nil)).Return(noContent(), nil)

	require.NoError(t, New(session, "/users").Item("user1").Delete(ctx, nil))

	session.AssertExpectations(t)
}

func TestPassingExtraParamsToResourceDelete(t *testing.T) {
	params := url.Values{"foo": {"bar"}}
	session := &mockSession{}
	session.On("RemoveCleanup", "/users/user1").Return()
	session.On("RawRequest", "/users/user1", del(params)).Return(noContent(), nil)

	require.NoError(t, New(session, "/users").Item("user1").Delete(ctx, params))

	session.AssertExpectations(t)
}

func TestResourceDeleteIgnores404Response(t *testing.T) {
	session := &mockSession{}
	session.On("RemoveCleanup", "/users/user1").Return()
	session.On("RawRequest", "/users/user1", del(nil)).
		Return(client.Response{StatusCode: 404, Text: "user not found"}, nil)

	require.NoError(t, New(session, "/users").Item("user1").Delete(ctx, nil))
}

func TestResourceDeleteReturnsClientErrorIfStatusCodeIsWrong(t *testing.T) {
	session := &mockSession{}
	session.On("RemoveCleanup", "/users/user1").Return()
	session.On("RawRequest", "/users/user1", del(nil)).
		Return(client.Response{StatusCode: 500, Text: "internal server error"}, nil)

	err := New(session, "/users").Item("user1").Delete(ctx, nil)

	var ce *client.ClientError
	require.True(t, errors.As(err, &ce))
	assert.Equal(t, 500, ce.StatusCode)
	assert.Equal(t, "internal server error", ce.Body)
	session.AssertCalled(t, "RemoveCleanup", "/users/user1")
}

func TestResourceDeletePropagatesTransportError(t *testing.T) {
	transportErr := errors.New("connection reset")
	session := &mockSession{}
	session.On("RemoveCleanup", "/users/user1").Return()
	session.On("RawRequest", "/users/user1", del(nil)).Return(client.Response{}, transportErr)

	err := New(session, "/users").Item("user1").Delete(ctx, nil)

	assert.Equal(t, transportErr, err)
	session.AssertCalled(t, "RemoveCleanup", "/users/user1")
}

func TestRegisteringCleanupOnCreate(t *testing.T) {
	session := &mockSession{}
	data := map[string]string{"name": "John Doe"}
	session.On("Request", "/users", post(data, nil)).Return(jsonValue(`{"id": "john"}`), nil)
	var cleanup client.CleanupFunc
	session.On("AddCleanup", "/users/john", mock.Anything).Return().Run(func(args mock.Arguments) {
		cleanup = args.Get(1).(client.CleanupFunc)
	})

	_, err := New(session, "/users").Create(ctx, data, nil)
	require.NoError(t, err)
	require.NotNil(t, cleanup)

	session.On("RemoveCleanup", "/users/john").Return()
	session.On("RawRequest", "/users/john", del(nil)).Return(noContent(), nil)

	require.NoError(t, cleanup(ctx))
	session.AssertCalled(t, "RawRequest", "/users/john", del(nil))
}

func TestUnregisteringCleanupOnDelete(t *testing.T) {
	session := &mockSession{}
	session.On("RemoveCleanup", "/users/john").Return()
	session.On("RawRequest", "/users/john", del(nil)).Return(noContent(), nil)

	require.NoError(t, New(session, "/users").Item("john").Delete(ctx, nil))

	session.AssertCalled(t, "RemoveCleanup", "/users/john")
}

func TestItemIsPure(t *testing.T) {
	session := &mockSession{}

	item := New(session, "/users").Item("u1")

	assert.Equal(t, "/users/u1", item.URL())
	assert.Equal(t, client.Session(session), item.Session())
	session.AssertExpectations(t)
}
