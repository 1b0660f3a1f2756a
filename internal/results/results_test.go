package results

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/foundation-rs/oraclient/internal/oci/ocitest"
	"github.com/foundation-rs/oraclient/provider"
	"github.com/foundation-rs/oraclient/typedesc"
)

// int32Provider is a minimal single-column ResultsProvider[int32] for this
// package's own tests, avoiding a dependency on the root oraclient package
// (which imports internal/results, and would cycle).
type int32Provider struct{}

func (int32Provider) SQLDescriptors() []typedesc.Descriptor {
	return []typedesc.Descriptor{typedesc.Int32}
}

func (int32Provider) GenResult(row []provider.ResultValue) (int32, error) {
	if row[0].Null {
		return 0, nil
	}
	return int32(binary.LittleEndian.Uint32(row[0].Value)), nil
}

func cellsForInts(vals []int32) [][]ocitest.Cell {
	rows := make([][]ocitest.Cell, len(vals))
	for i, v := range vals {
		b := make([]byte, 4)
		binary.LittleEndian.PutUint32(b, uint32(v))
		rows[i] = []ocitest.Cell{{Indicator: 0, Length: 4, Bytes: b}}
	}
	return rows
}

func TestAreaSizeMatchesLayoutFormula(t *testing.T) {
	mock := ocitest.New()
	stmt, err := mock.StmtPrepare(0, "SELECT X FROM T")
	require.NoError(t, err)

	area, err := New[int32](mock, 0, stmt, int32Provider{}, 10)
	require.NoError(t, err)
	defer area.Close()

	// spec.md §8: align(Σ D_i.size × N, 128) + 2 × align(columns × N × 2, 64),
	// rounded up to 256. One int32 column, N=10: align(40,128)=128;
	// align(1*10*2,64)=64; total align(128+128,256)=256.
	require.Len(t, area.buf, 256)
}

func TestNextDecodesWholeBatchThenFetchesMore(t *testing.T) {
	mock := ocitest.New()
	vals := []int32{1, 2, 3, 4, 5}
	mock.PrepareHook = func(sql string) ([][]ocitest.Cell, int) {
		return cellsForInts(vals), -1
	}
	stmt, err := mock.StmtPrepare(0, "SELECT X FROM T")
	require.NoError(t, err)

	area, err := New[int32](mock, 0, stmt, int32Provider{}, 2)
	require.NoError(t, err)
	defer area.Close()

	var got []int32
	for {
		row, ok, err := area.Next()
		require.NoError(t, err)
		if !ok {
			break
		}
		require.False(t, row[0].Null)
		got = append(got, int32(binary.LittleEndian.Uint32(row[0].Value)))
	}
	require.Equal(t, vals, got)
}

func TestEmptyResultSetYieldsNoRows(t *testing.T) {
	mock := ocitest.New()
	mock.PrepareHook = func(sql string) ([][]ocitest.Cell, int) {
		return nil, -1
	}
	stmt, err := mock.StmtPrepare(0, "SELECT X FROM T WHERE 1=0")
	require.NoError(t, err)

	area, err := New[int32](mock, 0, stmt, int32Provider{}, 10)
	require.NoError(t, err)
	defer area.Close()

	_, ok, err := area.Next()
	require.NoError(t, err)
	require.False(t, ok)
}

func TestTruncationWarnsAndTerminatesStream(t *testing.T) {
	mock := ocitest.New()
	vals := []int32{1, 2, 3, 4, 5}
	mock.PrepareHook = func(sql string) ([][]ocitest.Cell, int) {
		// First fetch (rows 0,1) delivers a full batch cleanly; the second
		// fetch's batch (rows 2,3) crosses the scripted truncation point at
		// row index 3, so row 4 is never delivered.
		return cellsForInts(vals), 3
	}
	stmt, err := mock.StmtPrepare(0, "SELECT X FROM T")
	require.NoError(t, err)

	area, err := New[int32](mock, 0, stmt, int32Provider{}, 2)
	require.NoError(t, err)
	defer area.Close()

	var decoded []int32
	for {
		row, ok, err := area.Next()
		require.NoError(t, err)
		if !ok {
			break
		}
		decoded = append(decoded, int32(binary.LittleEndian.Uint32(row[0].Value)))
	}
	require.Equal(t, []int32{1, 2, 3, 4}, decoded)
}

func TestResetReArmsAreaForRepeatedExecution(t *testing.T) {
	mock := ocitest.New()
	vals := []int32{10, 20, 30}
	mock.PrepareHook = func(sql string) ([][]ocitest.Cell, int) {
		return cellsForInts(vals), -1
	}
	stmt, err := mock.StmtPrepare(0, "SELECT X FROM T")
	require.NoError(t, err)

	area, err := New[int32](mock, 0, stmt, int32Provider{}, 10)
	require.NoError(t, err)
	defer area.Close()

	drain := func() []int32 {
		var got []int32
		for {
			row, ok, err := area.Next()
			require.NoError(t, err)
			if !ok {
				break
			}
			got = append(got, int32(binary.LittleEndian.Uint32(row[0].Value)))
		}
		return got
	}

	require.Equal(t, vals, drain())

	// Without Reset, the area is left in its exhausted (done=true) state and
	// a second drain would yield nothing.
	area.Reset()
	require.Equal(t, vals, drain())
}

func TestLargeResultSetRequiresMultipleFetches(t *testing.T) {
	mock := ocitest.New()
	vals := make([]int32, 2500)
	for i := range vals {
		vals[i] = int32(i)
	}
	mock.PrepareHook = func(sql string) ([][]ocitest.Cell, int) {
		return cellsForInts(vals), -1
	}
	stmt, err := mock.StmtPrepare(0, "SELECT X FROM BIG_T")
	require.NoError(t, err)

	area, err := New[int32](mock, 0, stmt, int32Provider{}, 1000)
	require.NoError(t, err)
	defer area.Close()

	count := 0
	for {
		row, ok, err := area.Next()
		require.NoError(t, err)
		if !ok {
			break
		}
		require.Equal(t, vals[count], int32(binary.LittleEndian.Uint32(row[0].Value)))
		count++
	}
	require.Equal(t, 2500, count)
}
