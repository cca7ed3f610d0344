package att_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/aretw0/transducer/pkg/att"
	"github.com/aretw0/transducer/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const catsTable = `0	1	c	c
1	2	a	a
2	3	t	t
3	4	<N>	@0@
4	5	<PL>	s
4	5	<SG>	@0@
5
`

func TestParse(t *testing.T) {
	table, err := att.ParseString(catsTable)
	require.NoError(t, err)

	assert.Equal(t, "0", table.Start())
	assert.True(t, table.IsAccepting("5"))
	assert.False(t, table.IsAccepting("4"))
	assert.Equal(t, []domain.Arc{{Target: "4", Output: "@0@"}}, table.Arcs("3", "<N>"))
	assert.Equal(t, []domain.Arc{{Target: "5", Output: "s"}}, table.Arcs("4", "<PL>"))
	assert.Equal(t, 6, table.Len())
}

func TestParse_ColumnOrder(t *testing.T) {
	// source target input output
	table, err := att.ParseString("S0 S1 in out\nS1\n")
	require.NoError(t, err)

	assert.Equal(t, []domain.Arc{{Target: "S1", Output: "out"}}, table.Arcs("S0", "in"))
	assert.Nil(t, table.Arcs("S0", "S1"))
}

func TestParse_RepeatedKeysAccumulate(t *testing.T) {
	table, err := att.ParseString("0 1 a x\n0 2 a y\n0 3 b z\n0 1 a x\n1\n")
	require.NoError(t, err)

	assert.Equal(t, []domain.Arc{
		{Target: "1", Output: "x"},
		{Target: "2", Output: "y"},
		{Target: "1", Output: "x"},
	}, table.Arcs("0", "a"))
	assert.Equal(t, []domain.Key{{State: "0", Input: "a"}, {State: "0", Input: "b"}}, table.Keys())
}

func TestParse_StartFromFirstRow(t *testing.T) {
	tests := []struct {
		name  string
		input string
		start string
	}{
		{"transition row", "7 8 a b\n8\n", "7"},
		{"accepting row", "8\n7 8 a b\n", "8"},
		{"whitespace mix", "  q0 \t q1   a  b \nq1", "q0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			table, err := att.ParseString(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.start, table.Start())
		})
	}
}

func TestParse_FormatError(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		line   int
		fields int
	}{
		{"first row three fields", "0 1 a\n0 1 a b\n1\n", 1, 3},
		{"first row two fields only", "0 1\n0 1 a b\n1\n", 1, 2},
		{"later row five fields", "0 1 a b\n1 2 a b c\n", 2, 5},
		{"blank line inside", "0 1 a b\n\n1\n", 2, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			table, err := att.ParseString(tt.input)
			assert.Nil(t, table)

			var fe *domain.FormatError
			require.True(t, errors.As(err, &fe), "expected FormatError, got %v", err)
			assert.Equal(t, tt.line, fe.Line)
			assert.Equal(t, tt.fields, fe.Fields)
		})
	}
}

func TestParse_Empty(t *testing.T) {
	table, err := att.ParseString("")
	require.NoError(t, err)
	assert.False(t, table.HasStart())
	assert.Equal(t, 0, table.Len())
}

func TestParse_SymbolsAreOpaque(t *testing.T) {
	table, err := att.ParseString("0 1 <unclosed @x\n1\n")
	require.NoError(t, err)
	assert.Equal(t, []domain.Arc{{Target: "1", Output: "@x"}}, table.Arcs("0", "<unclosed"))
}

func TestParseFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cats.att")
	require.NoError(t, os.WriteFile(path, []byte(catsTable), 0644))

	table, err := att.ParseFile(path)
	require.NoError(t, err)
	assert.Equal(t, 6, table.Len())

	_, err = att.ParseFile(filepath.Join(t.TempDir(), "missing.att"))
	assert.Error(t, err)

	bad := filepath.Join(t.TempDir(), "bad.att")
	require.NoError(t, os.WriteFile(bad, []byte("0 1\n"), 0644))
	_, err = att.ParseFile(bad)
	var fe *domain.FormatError
	assert.True(t, errors.As(err, &fe))
	assert.Contains(t, err.Error(), "bad.att")
}

func TestWrite_RoundTrip(t *testing.T) {
	table, err := att.ParseString(catsTable)
	require.NoError(t, err)

	var sb strings.Builder
	require.NoError(t, att.Write(&sb, table))

	again, err := att.ParseString(sb.String())
	require.NoError(t, err)
	assert.Equal(t, table.Start(), again.Start())
	assert.Equal(t, table.Accepting(), again.Accepting())
	assert.Equal(t, table.Transitions(), again.Transitions())
}

func TestWrite_StartLeads(t *testing.T) {
	table := domain.NewTable()
	table.SetStart("s")
	table.Add("x", "s", "a", "b")
	table.Add("s", "x", "c", "")
	table.Accept("s")

	out := att.String(table)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "s\tx\tc\t@0@", lines[0])
	assert.Equal(t, "s", lines[2])

	again, err := att.ParseString(out)
	require.NoError(t, err)
	assert.Equal(t, "s", again.Start())
}

func TestWrite_StartWithoutArcs(t *testing.T) {
	table := domain.NewTable()
	table.SetStart("s")
	table.Accept("s")
	table.Add("t", "s", "a", "b")

	out := att.String(table)
	assert.Equal(t, "s\nt\ts\ta\tb\n", out)

	again, err := att.ParseString(out)
	require.NoError(t, err)
	assert.Equal(t, "s", again.Start())
	assert.Equal(t, []string{"s"}, again.Accepting())

	table = domain.NewTable()
	table.SetStart("s")
	table.Add("t", "s", "a", "b")
	assert.Error(t, att.Write(&strings.Builder{}, table))
}
