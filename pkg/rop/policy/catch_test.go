package policy

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatch_NothingRaised(t *testing.T) {
	t.Parallel()
	ran := false

	require.NoError(t, Catch(func() { ran = true }))
	assert.True(t, ran)
}

func TestCatch_ReturnsRaisedError(t *testing.T) {
	t.Parallel()
	boom := errors.New("boom")

	require.Same(t, boom, Catch(func() { panic(boom) }))
}

func TestCatch_WrapsNonErrors(t *testing.T) {
	t.Parallel()

	err := Catch(func() { panic("not an error") })

	var re *RaisedError
	require.ErrorAs(t, err, &re)
	assert.Equal(t, "not an error", re.Value)
	assert.EqualError(t, err, "raised string: not an error")
}

func TestCatch_HookRaisingNonError(t *testing.T) {
	t.Parallel()
	src := withFailure(labelled{label: "quota exceeded"})

	err := Catch(func() { WideValueCheck[labelled](src) })

	var re *RaisedError
	require.ErrorAs(t, err, &re)
	assert.Equal(t, labelled{label: "quota exceeded"}, re.Value)
}

func TestCatch_RepanicsRuntimeErrors(t *testing.T) {
	t.Parallel()

	require.Panics(t, func() {
		_ = Catch(func() {
			var m map[string]int
			m["x"] = 1
		})
	})
}

func TestTry(t *testing.T) {
	t.Parallel()

	v, err := Try(func() int { return 42 })
	require.NoError(t, err)
	assert.Equal(t, 42, v)

	v, err = Try(func() int {
		WideValueCheck[errno](empty[errno]())
		return 42
	})
	require.ErrorIs(t, err, ErrNoValue)
	assert.Zero(t, v)
}
