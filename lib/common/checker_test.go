package common

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestChecker(t *testing.T) {
	limit := 10
	funcs := []CheckerFunc{}
	var dones []interface{}
	for i := 0; i < limit; i++ {
		f := func(checker Checker, args ...interface{}) error {
			dones = append(dones, checker)
			return nil
		}
		funcs = append(funcs, f)
	}

	checker := &DefaultChecker{funcs}
	err := RunChecker(checker, DefaultDeferFunc)
	require.NoError(t, err)
	require.Equal(t, limit, len(dones), "some funcs were not executed")
}

type CheckerWithProperties struct {
	DefaultChecker

	P0 int
}

func TestCheckerWithProperties(t *testing.T) {
	funcs := []CheckerFunc{}
	f0 := func(c Checker, args ...interface{}) error {
		checker := c.(*CheckerWithProperties)
		checker.P0 = 99
		return nil
	}
	funcs = append(funcs, f0)

	f1 := func(c Checker, args ...interface{}) error {
		checker := c.(*CheckerWithProperties)
		if checker.P0 != 99 {
			return errors.New("failed to set property in Checker")
		}
		return nil
	}
	funcs = append(funcs, f1)

	checker := &CheckerWithProperties{DefaultChecker: DefaultChecker{funcs}}
	require.NoError(t, RunChecker(checker, DefaultDeferFunc))
}

func TestCheckerStop(t *testing.T) {
	var executed int
	funcs := []CheckerFunc{
		func(Checker, ...interface{}) error {
			executed++
			return nil
		},
		func(Checker, ...interface{}) error {
			executed++
			return NewCheckerErrorStop("enough")
		},
		func(Checker, ...interface{}) error {
			executed++
			return nil
		},
	}

	var deferred []int
	deferFunc := func(i int, c Checker, err error) {
		deferred = append(deferred, i)
	}

	err := RunChecker(&DefaultChecker{funcs}, deferFunc)
	require.True(t, IsCheckerErrorStop(err))
	require.Equal(t, 2, executed)
	require.Equal(t, []int{0, 1}, deferred)

	require.False(t, IsCheckerErrorStop(errors.New("failed")))
	require.False(t, IsCheckerErrorStop(nil))
}
