package main

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/roadmst/bench"
)

func TestParseDatasets_Defaults(t *testing.T) {
	ds, err := parseDatasets(nil, "data")
	require.NoError(t, err)
	require.Len(t, ds, 4)
	assert.Equal(t, bench.Dataset{Name: "NY", Path: filepath.Join("data", "USA-road-d.NY.gr.gz")}, ds[0])
	assert.Equal(t, "FLA", ds[3].Name)
}

func TestParseDatasets_Args(t *testing.T) {
	ds, err := parseDatasets([]string{"CAL=/tmp/cal.gr", "X=a=b"}, ".")
	require.NoError(t, err)
	assert.Equal(t, []bench.Dataset{{Name: "CAL", Path: "/tmp/cal.gr"}, {Name: "X", Path: "a=b"}}, ds)

	for _, bad := range []string{"nopath", "=x.gr", "NAME="} {
		_, err := parseDatasets([]string{bad}, ".")
		assert.Error(t, err, bad)
	}
}
