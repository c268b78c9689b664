package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLines(t *testing.T) {
	ls := lines()
	assert.Len(t, ls, 3)
	assert.Equal(t, "attrstyle", ls[0].String())
	assert.Equal(t, "Styles are built once and paired with text", ls[1].String())
	assert.Len(t, ls[1].Runs(), 4)
	assert.Equal(t, 2, len(ls[2].Runs()))
}
