package rngsrc_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/go-numclust/numclust/rngsrc"
)

func TestNew_IsDeterministic(t *testing.T) {
	a := rngsrc.New(42)
	b := rngsrc.New(42)
	for i := 0; i < 10; i++ {
		require.Equal(t, a.UniformInt(0, 100), b.UniformInt(0, 100))
	}
}

func TestUniformInt_RespectsBounds(t *testing.T) {
	s := rngsrc.New(1)
	for i := 0; i < 1000; i++ {
		v := s.UniformInt(3, 7)
		require.GreaterOrEqual(t, v, 3)
		require.LessOrEqual(t, v, 7)
	}
}

func TestUniformFloat_RespectsBounds(t *testing.T) {
	s := rngsrc.New(1)
	for i := 0; i < 1000; i++ {
		v := s.UniformFloat(-1, 1)
		require.GreaterOrEqual(t, v, -1.0)
		require.Less(t, v, 1.0)
	}
}

func TestPermute_IsAPermutation(t *testing.T) {
	s := rngsrc.New(7)
	p := s.Permute(20)
	seen := make([]bool, 20)
	for _, v := range p {
		require.False(t, seen[v])
		seen[v] = true
	}
}

func TestPermute_EmptyAndSingleton(t *testing.T) {
	s := rngsrc.New(7)
	require.Equal(t, []int{}, s.Permute(0))
	require.Equal(t, []int{0}, s.Permute(1))
}
