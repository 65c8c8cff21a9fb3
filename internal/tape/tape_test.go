package tape

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/utm/internal/machine"
)

func TestReadUnwrittenIsBlank(t *testing.T) {
	tp := New(machine.Blank)
	assert.Equal(t, machine.Blank, tp.Read())

	tp.MoveLeft()
	tp.MoveLeft()
	assert.Equal(t, machine.Blank, tp.Read())
}

func TestWriteThenRead(t *testing.T) {
	tp := New(machine.Blank)
	tp.Write(2)
	assert.Equal(t, machine.Symbol(2), tp.Read())

	tp.MoveRight()
	assert.Equal(t, machine.Blank, tp.Read())
	tp.MoveLeft()
	assert.Equal(t, machine.Symbol(2), tp.Read())
}

func TestSparsityInvariant(t *testing.T) {
	tp := New(machine.Blank)

	// Pure moves never allocate cells, no matter the span traversed.
	for i := 0; i < 100; i++ {
		tp.MoveLeft()
	}
	for i := 0; i < 250; i++ {
		tp.MoveRight()
	}
	assert.Equal(t, 0, tp.Cells())
	assert.Equal(t, machine.Blank, tp.Read())

	// Storage size equals distinct written positions, not writes.
	tp.Write(1)
	tp.Write(2) // same position
	tp.MoveLeft()
	tp.Write(1)
	assert.Equal(t, 2, tp.Cells())
}

func TestSeed(t *testing.T) {
	tp := Seed([]machine.Symbol{1, 2, 2}, machine.Blank)
	assert.Equal(t, 0, tp.Head())
	assert.Equal(t, machine.Symbol(1), tp.Read())
	assert.Equal(t, 3, tp.Cells())
	assert.Equal(t, 0, tp.Min())
	assert.Equal(t, 2, tp.Max())
}

func TestSeedSkipsBlanks(t *testing.T) {
	tp := Seed([]machine.Symbol{1, machine.Blank, 2}, machine.Blank)
	assert.Equal(t, 2, tp.Cells(), "explicit blanks are not stored")

	tp.MoveRight()
	assert.Equal(t, machine.Blank, tp.Read())
}

func TestWindow(t *testing.T) {
	tp := Seed([]machine.Symbol{1, 2, 1}, machine.Blank)
	tp.MoveRight() // head at 1

	win := tp.Window(2, 2)
	require.Equal(t, []machine.Symbol{machine.Blank, 1, 2, 1, machine.Blank}, win)
}

func TestCloneIsIndependent(t *testing.T) {
	orig := Seed([]machine.Symbol{1, 2}, machine.Blank)
	cl := orig.Clone()

	cl.Write(2)
	cl.MoveRight()
	cl.Write(1)
	cl.MoveRight()
	cl.Write(1)

	assert.Equal(t, machine.Symbol(1), orig.Read(), "original cell unchanged")
	assert.Equal(t, 0, orig.Head(), "original head unchanged")
	assert.Equal(t, 2, orig.Cells())
	assert.Equal(t, 3, cl.Cells())
}
