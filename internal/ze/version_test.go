package ze

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestAPIVersion(t *testing.T) {
	v := MakeVersion(1, 14)
	assert.Equal(t, APIVersion1_14, v)
	assert.Equal(t, uint16(1), v.Major())
	assert.Equal(t, uint16(14), v.Minor())
	assert.Equal(t, "1.14", v.String())
	assert.Less(t, APIVersion1_9, APIVersion1_10)
	assert.Equal(t, APIVersion1_14, APIVersionCurrent)
}

func TestParseAPIVersion(t *testing.T) {
	testCases := []struct {
		input   string
		want    APIVersion
		wantErr bool
	}{
		{input: "1.0", want: APIVersion1_0},
		{input: " 1.13 ", want: APIVersion1_13},
		{input: "2.1", want: MakeVersion(2, 1)},
		{input: "1", wantErr: true},
		{input: "a.b", wantErr: true},
		{input: "1.70000", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			got, err := ParseAPIVersion(tc.input)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestAPIVersion_YAML(t *testing.T) {
	var doc struct {
		Version APIVersion `yaml:"version"`
	}
	require.NoError(t, yaml.Unmarshal([]byte(`version: "1.7"`), &doc))
	assert.Equal(t, APIVersion1_7, doc.Version)

	out, err := yaml.Marshal(doc)
	require.NoError(t, err)
	assert.Equal(t, "version: \"1.7\"\n", string(out))

	assert.Error(t, yaml.Unmarshal([]byte(`version: seven`), &doc))
}

func TestResult(t *testing.T) {
	assert.Equal(t, "ZE_RESULT_SUCCESS", ResultSuccess.String())
	assert.Equal(t, "ZE_RESULT(0x12345678)", Result(0x12345678).String())

	assert.NoError(t, ResultSuccess.Err())
	err := ResultErrorUninitialized.Err()
	require.Error(t, err)
	assert.ErrorIs(t, err, ResultErrorUninitialized)
	assert.Equal(t, ResultErrorUninitialized.String(), err.Error())

	assert.False(t, ResultSuccess.IsError())
	assert.False(t, ResultNotReady.IsError())
	assert.True(t, ResultErrorInvalidNullHandle.IsError())
}
