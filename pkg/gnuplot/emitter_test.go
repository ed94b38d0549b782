package gnuplot

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"statplot/pkg/series"
)

func diskCollection() *series.Collection {
	coll := series.NewCollection()
	coll.Append("sda", series.DataPoint{Timestamp: 100, Value: "3.40"})
	coll.Append("sda", series.DataPoint{Timestamp: 160, Value: "  "})
	coll.Append("sda", series.DataPoint{Timestamp: 220, Value: "3.50"})
	coll.Append("sdb", series.DataPoint{Timestamp: 100, Value: "1.10"})
	return coll
}

func TestScriptEmitter_Emit(t *testing.T) {
	e := NewScriptEmitter(Style{Title: "Disk activity", YLabel: "MB/s"})

	var buf bytes.Buffer
	require.NoError(t, e.Emit(&buf, diskCollection()))

	want := `set terminal qt size 1200,800
set grid
set key outside right top
set title 'Disk activity'
set ylabel 'MB/s'
set xdata time
set timefmt '%s'
set format x '%H:%M:%S'
set xtics 3600
plot '-' using 1:2 title 'sda' with lines, '-' using 1:2 title 'sdb' with lines
100 3.40
220 3.50
e
100 1.10
e
`
	assert.Equal(t, want, buf.String())
}

func TestScriptEmitter_DeclarationsMatchDataBlocks(t *testing.T) {
	coll := series.NewCollection()
	keys := []string{"sdc", "sda", "sdb"}
	for i, key := range keys {
		coll.Append(key, series.DataPoint{Timestamp: int64(i), Value: "1"})
	}

	var buf bytes.Buffer
	require.NoError(t, NewScriptEmitter(Style{}).Emit(&buf, coll))
	out := buf.String()

	// One plot statement with k comma-separated clauses, no trailing comma.
	var plotLine string
	for _, line := range strings.Split(out, "\n") {
		if strings.HasPrefix(line, "plot ") {
			plotLine = line
			break
		}
	}
	require.NotEmpty(t, plotLine)
	clauses := strings.Split(strings.TrimPrefix(plotLine, "plot "), ", ")
	require.Len(t, clauses, len(keys))
	for i, key := range keys {
		assert.Contains(t, clauses[i], "title '"+key+"'",
			"declaration %d must name series %q", i, key)
	}

	// k data blocks, in the declaration order. Data lines carry the
	// timestamp we appended per key, so the i-th block is identifiable.
	assert.Equal(t, len(keys), strings.Count(out, "\ne\n"))
	blocks := strings.SplitAfter(out, plotLine+"\n")[1]
	for i := range keys {
		block, rest, found := strings.Cut(blocks, "e\n")
		require.True(t, found, "missing sentinel for block %d", i)
		assert.Equal(t, "1", strings.Fields(block)[1])
		assert.Equal(t, i, int(blocks[0]-'0'))
		blocks = rest
	}
}

func TestScriptEmitter_Idempotent(t *testing.T) {
	coll := diskCollection()
	e := NewScriptEmitter(Style{Title: "t", YLabel: "y"})

	var first, second bytes.Buffer
	require.NoError(t, e.Emit(&first, coll))
	require.NoError(t, e.Emit(&second, coll))

	assert.Equal(t, first.String(), second.String())
}

func TestScriptEmitter_EmptyCollection(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewScriptEmitter(Style{Title: "empty"}).Emit(&buf, series.NewCollection()))

	out := buf.String()
	assert.Contains(t, out, "set title 'empty'")
	assert.NotContains(t, out, "plot")
	assert.NotContains(t, out, "\ne\n")
}

func TestScriptEmitter_PNGOutput(t *testing.T) {
	e := NewScriptEmitter(Style{Terminal: "png", OutputFile: "chart.png"})

	var buf bytes.Buffer
	require.NoError(t, e.Emit(&buf, diskCollection()))

	assert.Contains(t, buf.String(), "set terminal png size 1200,800\n")
	assert.Contains(t, buf.String(), "set output 'chart.png'\n")
}
