package deleter

import (
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
	"testing"
)

func TestSupportedOperations_UnmarshalYAML(t *testing.T) {
	data := []byte(`
kinesis_consumer:
  delete: deregister_stream_consumer
kinesis_stream:
  delete:
    - delete_stream
    - deregister_stream_consumer
kinesis_shard: {}
`)

	var ops SupportedOperations
	require.NoError(t, yaml.Unmarshal(data, &ops))

	assert.True(t, ops["kinesis_consumer"].Delete.Supports(DeregisterStreamConsumer))
	assert.Equal(t, "deregister_stream_consumer", ops["kinesis_consumer"].Delete.String())

	assert.Equal(t, []string{"delete_stream", DeregisterStreamConsumer}, ops["kinesis_stream"].Delete.Names())
	assert.True(t, ops["kinesis_stream"].Delete.Supports("delete_stream"))

	assert.True(t, ops["kinesis_shard"].Delete.IsEmpty())
	assert.False(t, ops["kinesis_shard"].Delete.IsSet())
	assert.False(t, ops["kinesis_shard"].Delete.Supports(DeregisterStreamConsumer))
}

func TestSupportedOperations_UnmarshalJSONShape(t *testing.T) {
	var ops SupportedOperations
	require.NoError(t, yaml.Unmarshal([]byte(`{"kinesis_consumer": {"delete": ["deregister_stream_consumer"]}}`), &ops))
	assert.True(t, ops["kinesis_consumer"].Delete.Supports(DeregisterStreamConsumer))
}

func TestDeleteOperations_UnmarshalYAMLPresence(t *testing.T) {
	var ops SupportedOperations
	require.NoError(t, yaml.Unmarshal([]byte("empty_name:\n  delete: \"\"\nempty_list:\n  delete: []\nnull_delete:\n  delete:\n"), &ops))

	assert.True(t, ops["empty_name"].Delete.IsSet())
	assert.True(t, ops["empty_list"].Delete.IsSet())
	assert.False(t, ops["null_delete"].Delete.IsSet())
	assert.False(t, ops["empty_name"].Delete.Supports(DeregisterStreamConsumer))
	assert.False(t, ops["empty_list"].Delete.Supports(DeregisterStreamConsumer))
}

func TestDeleteOperations_UnmarshalYAMLRejectsMapping(t *testing.T) {
	var ops SupportedOperations
	err := yaml.Unmarshal([]byte("kinesis_consumer:\n  delete:\n    name: deregister_stream_consumer\n"), &ops)
	assert.Error(t, err)
}

func TestDeleteOperations_MarshalYAML(t *testing.T) {
	out, err := yaml.Marshal(SupportedOperations{
		"a": {Delete: Operation("delete_stream")},
		"b": {Delete: Operations("delete_stream", "deregister_stream_consumer")},
	})
	require.NoError(t, err)
	assert.Contains(t, string(out), "delete: delete_stream\n")
	assert.Contains(t, string(out), "- deregister_stream_consumer\n")
}
