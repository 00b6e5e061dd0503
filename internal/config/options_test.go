package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestOptions_Defaults(t *testing.T) {
	var nilOpts *Options

	require.Equal(t, time.Local, nilOpts.Location())
	require.Equal(t, DefaultMaxLineSize, nilOpts.LineSize())
	require.Equal(t, 1, nilOpts.SessionCount())

	opts := &Options{Sessions: -3, MaxLineSize: -1}
	require.Equal(t, 1, opts.SessionCount())
	require.Equal(t, DefaultMaxLineSize, opts.LineSize())
}

func TestOptions_Overrides(t *testing.T) {
	opts := &Options{
		DateLocation: time.UTC,
		MaxLineSize:  4096,
		Sessions:     4,
	}

	require.Equal(t, time.UTC, opts.Location())
	require.Equal(t, 4096, opts.LineSize())
	require.Equal(t, 4, opts.SessionCount())
}
