package model

import (
	"sync"
	"testing"

	"github.com/CodMac/jsema/core/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOnce_SetTwiceFails(t *testing.T) {
	var o Once[int]
	require.NoError(t, o.Set(1))

	err := o.Set(2)
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.CodeDuplicateDefinition))

	v, ok := o.Get()
	assert.True(t, ok)
	assert.Equal(t, 1, v)
}

func TestOnce_ReadBeforeSet(t *testing.T) {
	var o Once[*MethodInspection]
	_, ok := o.Get()
	assert.False(t, ok)
	assert.False(t, o.IsSet())

	_, err := o.Value()
	assert.True(t, errors.IsCode(err, errors.CodeNotSet))
}

func TestOnce_ConcurrentSetHasSingleWinner(t *testing.T) {
	var o Once[int]
	var wg sync.WaitGroup
	var mu sync.Mutex
	wins := 0
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(v int) {
			defer wg.Done()
			if o.Set(v) == nil {
				mu.Lock()
				wins++
				mu.Unlock()
			}
		}(i)
	}
	wg.Wait()
	assert.Equal(t, 1, wins)
}
