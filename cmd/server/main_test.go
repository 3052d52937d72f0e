package main

import (
	"os"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestLogWriterProductionIsPlainStderr(t *testing.T) {
	w := logWriter("production")
	assert.Equal(t, os.Stderr, w)
}

func TestLogWriterDevelopmentIsConsole(t *testing.T) {
	w := logWriter("development")
	cw, ok := w.(zerolog.ConsoleWriter)
	assert.True(t, ok)
	assert.Equal(t, os.Stderr, cw.Out)
}
