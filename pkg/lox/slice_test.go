package lox_test

import (
	"errors"
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"

	"deal_factory/pkg/lox"
)

func TestMapErr(t *testing.T) {
	r := require.New(t)

	res, err := lox.MapErr([]string{"1", "2"}, strconv.Atoi)
	r.NoError(err)
	r.Equal([]int{1, 2}, res)

	_, err = lox.MapErr([]string{"1", "x"}, strconv.Atoi)
	var numErr *strconv.NumError
	r.True(errors.As(err, &numErr))

	empty, err := lox.MapErr([]string{}, strconv.Atoi)
	r.NoError(err)
	r.NotNil(empty)
}

func TestMap(t *testing.T) {
	require.Equal(t, []string{"1", "2"}, lox.Map([]int{1, 2}, strconv.Itoa))
}
