package gnuplot

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEngine_WriteAndClose(t *testing.T) {
	// cat stands in for gnuplot: it reads the pipe to EOF and exits 0,
	// exercising the start/write/close lifecycle.
	eng, err := StartEngine(context.Background(), "cat", false)
	require.NoError(t, err)

	_, err = eng.Write([]byte("set title 'x'\n"))
	require.NoError(t, err)

	assert.NoError(t, eng.Close())
}

func TestStartEngine_MissingBinary(t *testing.T) {
	_, err := StartEngine(context.Background(), "statplot-no-such-engine", false)
	assert.Error(t, err)
}
