package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/aukilabs/go-tooling/pkg/errors"
	"github.com/segmentio/encoding/json"
	"github.com/stretchr/testify/require"
)

const lightsCSV = `x,y,z,id
0.1,0.1,0.1,1
0.9,0.9,0.9,2
0.5,0.5,0.5,3
0.1,0.9,0.1,4
0.1,0.1,0.9,5
0.4,0.4,0.4,6
`

func run(t *testing.T, args ...string) (string, error) {
	path := filepath.Join(t.TempDir(), "lights.csv")
	require.NoError(t, os.WriteFile(path, []byte(lightsCSV), 0644))

	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(append([]string{"--config", path, "--dims", "3", "--log-level", "error"}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func TestClosestCmd(t *testing.T) {
	out, err := run(t, "closest", "0.2", "0.2", "0.2", "--max-distance", "0.2")
	require.NoError(t, err)
	require.Equal(t, "1\t0.1,0.1,0.1\n", out)

	out, err = run(t, "closest", "0.3", "0.3", "0.3", "--max-distance", "0.1")
	require.NoError(t, err)
	require.Equal(t, "no lights found\n", out)
}

func TestRadiusCmdJSON(t *testing.T) {
	out, err := run(t, "--json", "radius", "0.5", "0.5", "0.5", "--radius", "0.5")
	require.NoError(t, err)

	var lights []light
	require.NoError(t, json.Unmarshal([]byte(out), &lights))
	require.Equal(t, []light{
		{ID: 3, Position: []float64{0.5, 0.5, 0.5}},
		{ID: 6, Position: []float64{0.4, 0.4, 0.4}},
	}, lights)
}

func TestBoxCmd(t *testing.T) {
	out, err := run(t, "box", "0.8", "0.8", "0", "1", "1", "1")
	require.NoError(t, err)
	require.Equal(t, "2\t0.9,0.9,0.9\n", out)

	out, err = run(t, "--json", "box", "0.2", "0.2", "0.2", "0.3", "0.3", "0.3")
	require.NoError(t, err)
	require.Equal(t, "[]\n", out)
}

func TestStatsCmd(t *testing.T) {
	out, err := run(t, "--json", "stats")
	require.NoError(t, err)

	var s stats
	require.NoError(t, json.Unmarshal([]byte(out), &s))
	require.Equal(t, 6, s.Lights)
	require.Greater(t, s.Nodes, 1)
	require.Greater(t, s.Leaves, 1)
}

func TestInvalidCoordinates(t *testing.T) {
	_, err := run(t, "closest", "0.2", "0.2")
	require.True(t, errors.IsType(err, errTypeInvalidArgs))

	_, err = run(t, "radius", "0.2", "abc", "0.2")
	require.True(t, errors.IsType(err, errTypeInvalidArgs))
}
