package apitests

import (
	"github.com/stretchr/testify/require"
	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"
)

// requireID checks that a create call succeeded and returned an object with an id, and returns
// the id.
func requireID(t *T, value ldvalue.Value, err error) string {
	require.NoError(t, err)
	require.Equal(t, ldvalue.ObjectType, value.Type(), "expected an object, got %s", value.JSONString())
	id := value.GetByKey("id").StringValue()
	require.NotEmpty(t, id, "response had no id: %s", value.JSONString())
	return id
}

func requireArray(t *T, value ldvalue.Value, err error) ldvalue.Value {
	require.NoError(t, err)
	require.Equal(t, ldvalue.ArrayType, value.Type(), "expected an array, got %s", value.JSONString())
	return value
}
