package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_readKeys(t *testing.T) {
	keys := make(chan byte)
	go readKeys(strings.NewReader("c q"), keys)

	var got []byte
	for k := range keys {
		got = append(got, k)
	}

	// the channel closes once stdin is exhausted, ending continue mode too
	assert.Equal(t, []byte("c q"), got)
}

func Test_parseAddr(t *testing.T) {
	for _, in := range []string{"c000", "$C000", "0xc000"} {
		addr, err := parseAddr(in)
		assert.NoError(t, err, in)
		assert.Equal(t, uint16(0xc000), addr, in)
	}

	_, err := parseAddr("10000")
	assert.Error(t, err)
}
