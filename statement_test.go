package oraclient

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/foundation-rs/oraclient/internal/oci/ocitest"
)

func TestStatementExecuteWritesParamsAndRuns(t *testing.T) {
	mock := ocitest.New()
	conn := NewConnection(mock, 0)

	stmt, err := Prepare[int32](conn, "INSERT INTO T(ID) VALUES (:1)", Single[int32]{})
	require.NoError(t, err)
	defer stmt.Close()

	require.NoError(t, stmt.Execute(42))

	got := mock.ParamBytes(1, 1)
	require.Equal(t, int32(42), int32(binary.LittleEndian.Uint32(got)))
}

func TestStatementCloseReleasesHandle(t *testing.T) {
	mock := ocitest.New()
	conn := NewConnection(mock, 0)

	stmt, err := Prepare[Unit](conn, "BEGIN NULL; END;", Unit{})
	require.NoError(t, err)
	require.NoError(t, stmt.Close())
	require.NoError(t, stmt.Close()) // idempotent
}

func TestConnectionExecuteOneShot(t *testing.T) {
	mock := ocitest.New()
	conn := NewConnection(mock, 0)
	require.NoError(t, conn.Execute("CREATE TABLE T(ID NUMBER)"))
}

func TestCloseAllReleasesEveryStatement(t *testing.T) {
	mock := ocitest.New()
	conn := NewConnection(mock, 0)

	a, err := Prepare[int32](conn, "INSERT INTO T(ID) VALUES (:1)", Single[int32]{})
	require.NoError(t, err)
	b, err := Prepare[Unit](conn, "BEGIN NULL; END;", Unit{})
	require.NoError(t, err)

	require.NoError(t, CloseAll(a, b))
	require.NoError(t, CloseAll(a, b)) // idempotent
}
