package cwd_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MacroPower/lexpath/pkg/cwd"
)

func TestStatic(t *testing.T) {
	t.Parallel()

	t.Run("default directory", func(t *testing.T) {
		t.Parallel()

		p := cwd.NewStatic("/home/user")

		dir, err := p.Cwd("")
		require.NoError(t, err)
		assert.Equal(t, "/home/user", dir)
	})

	t.Run("per-drive directory", func(t *testing.T) {
		t.Parallel()

		p := cwd.NewStatic(`C:\base`).WithDrive("d:", `D:\work`)

		dir, err := p.Cwd("D:")
		require.NoError(t, err)
		assert.Equal(t, `D:\work`, dir)
	})

	t.Run("unknown drive fails", func(t *testing.T) {
		t.Parallel()

		p := cwd.NewStatic(`C:\base`)

		_, err := p.Cwd("E:")
		require.Error(t, err)
		assert.ErrorIs(t, err, cwd.ErrNoDirectory)
	})

	t.Run("unset default fails", func(t *testing.T) {
		t.Parallel()

		p := cwd.NewStatic("")

		_, err := p.Cwd("")
		require.Error(t, err)
		assert.ErrorIs(t, err, cwd.ErrNoDirectory)
	})
}

func TestOS(t *testing.T) {
	t.Parallel()

	p := cwd.NewOS()

	dir, err := p.Cwd("")
	require.NoError(t, err)

	want, err := os.Getwd()
	require.NoError(t, err)
	assert.Equal(t, want, dir)
}

func TestOS_DriveFallback(t *testing.T) {
	t.Parallel()

	p := cwd.NewOS()

	// Without a `=Q:` variable in the environment the provider answers
	// with the drive root.
	dir, err := p.Cwd("Q:")
	require.NoError(t, err)
	assert.Equal(t, `Q:\`, dir)
}
