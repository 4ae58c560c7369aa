package main

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestRunHashesArguments(t *testing.T) {
	var out bytes.Buffer
	err := run(context.Background(), bcrypt.MinCost, []string{"first-pass", "тест123"}, strings.NewReader(""), &out)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 2)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(lines[0]), []byte("first-pass")))
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(lines[1]), []byte("тест123")))
}

func TestRunReadsStdin(t *testing.T) {
	var out bytes.Buffer
	err := run(context.Background(), bcrypt.MinCost, nil, strings.NewReader("one\r\n\ntwo\n"), &out)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 2)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(lines[1]), []byte("two")))
}

func TestRunRejectsBadCost(t *testing.T) {
	err := run(context.Background(), 100, []string{"x"}, strings.NewReader(""), &bytes.Buffer{})
	assert.Error(t, err)
}
