package diag

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmitGroupsNotesWithPrimary(t *testing.T) {
	var got []Group
	s := New(func(g Group) { got = append(got, append(Group(nil), g...)) }, 0)

	s.Emit(Record{Level: Warning, Message: "primary"})
	s.Emit(Record{Level: Note, Message: "detail"})
	s.Emit(Record{Level: Warning, Message: "next"})
	s.Flush()

	require.Len(t, got, 2, "expected 2 flushed groups")
	assert.Equal(t, Group{{Level: Warning, Message: "primary"}, {Level: Note, Message: "detail"}}, got[0])
	assert.Equal(t, Group{{Level: Warning, Message: "next"}}, got[1])
}

func TestEmitIgnoreSuppressesFollowingNote(t *testing.T) {
	var got []Group
	s := New(func(g Group) { got = append(got, g) }, 0)

	s.Emit(Record{Level: Ignore, Message: "dropped"})
	s.Emit(Record{Level: Note, Message: "should also be dropped"})
	s.Emit(Record{Level: Warning, Message: "kept"})
	s.Flush()

	require.Len(t, got, 1)
	assert.Equal(t, Group{{Level: Warning, Message: "kept"}}, got[0])
}

func TestEmitErrorLimitProducesSyntheticRecordOnce(t *testing.T) {
	var got []Group
	s := New(func(g Group) { got = append(got, g) }, 2)

	s.Emit(Record{Level: Error, Message: "e1"})
	s.Emit(Record{Level: Error, Message: "e2"})
	s.Emit(Record{Level: Error, Message: "e3"})
	s.Emit(Record{Level: Error, Message: "e4"})

	assert.Equal(t, 2, s.ErrorCount(), "limit not exceeded by the counter itself")
	require.Len(t, got, 3, "expected 2 real errors + 1 synthetic limit group")
	assert.Equal(t, "error limit reached", got[2][0].Message)
}

func TestEmitFatalFlushesThenPanics(t *testing.T) {
	var got []Group
	s := New(func(g Group) { got = append(got, g) }, 0)

	defer func() {
		r := recover()
		abort, ok := r.(FatalAbort)
		require.True(t, ok, "expected recover to yield FatalAbort, got %#v", r)
		assert.Equal(t, "boom", abort.Record.Message)
		require.Len(t, got, 1, "expected fatal record flushed before panic")
		assert.Equal(t, "boom", got[0][0].Message)
	}()

	s.Emit(Record{Level: Fatal, Message: "boom"})
	t.Fatal("unreachable: Emit should have panicked")
}

func TestDeinitFlushesPending(t *testing.T) {
	flushed := false
	s := New(func(g Group) { flushed = true }, 0)
	s.Emit(Record{Level: Warning, Message: "w"})
	s.Deinit()
	assert.True(t, flushed, "Deinit did not flush the pending group")
}
