package render

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/zidaye/odbc-bridge/app/bridge"
	"github.com/zidaye/odbc-bridge/common"
)

func TestTable(t *testing.T) {
	var sb strings.Builder

	names := []string{"id", "name"}
	columns := [][]bridge.Cell{
		{
			bridge.Int32Cell{Value: 1, Valid: true},
			bridge.Int32Cell{Value: 2, Valid: true},
		},
		{
			bridge.TextCell{Text: "alice", Valid: true},
			bridge.TextCell{},
		},
	}

	require.NoError(t, Table(&sb, names, columns))

	lines := strings.Split(strings.TrimRight(sb.String(), "\n"), "\n")
	require.Len(t, lines, 3)
	require.Equal(t, []string{"id", "name"}, strings.Fields(lines[0]))
	require.Equal(t, []string{"1", "alice"}, strings.Fields(lines[1]))
	require.Equal(t, []string{"2", "NULL"}, strings.Fields(lines[2]))
}

func TestTableWithNullLiteral(t *testing.T) {
	var sb strings.Builder

	columns := [][]bridge.Cell{{bridge.TextCell{}}}

	require.NoError(t, TableWithOptions(&sb, []string{"name"}, columns, Options{NullLiteral: "<null>"}))
	require.Contains(t, sb.String(), "<null>")
	require.NotContains(t, sb.String(), "NULL")
}

func TestTableShapeMismatch(t *testing.T) {
	var sb strings.Builder

	err := Table(&sb, []string{"a", "b"}, [][]bridge.Cell{{}})
	require.Error(t, err)
	require.True(t, errors.Is(err, common.ErrInvariantViolation))

	err = Table(&sb, []string{"a", "b"}, [][]bridge.Cell{
		{bridge.Int32Cell{Value: 1, Valid: true}},
		{},
	})
	require.Error(t, err)
	require.True(t, errors.Is(err, common.ErrInvariantViolation))
}

func TestTableEmpty(t *testing.T) {
	var sb strings.Builder

	require.NoError(t, Table(&sb, nil, nil))
	require.Equal(t, "\n", sb.String())
}
