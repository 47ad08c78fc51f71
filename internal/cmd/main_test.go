package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractLogLevel(t *testing.T) {
	level, args := extractLogLevel([]string{"qb", "-log-level=debug", "record", "query"})
	assert.Equal(t, "debug", level)
	assert.Equal(t, []string{"qb", "record", "query"}, args)

	level, args = extractLogLevel([]string{"qb", "record", "-log-level=debug"})
	assert.Empty(t, level)
	assert.Equal(t, []string{"qb", "record", "-log-level=debug"}, args)

	level, args = extractLogLevel([]string{"qb"})
	assert.Empty(t, level)
	assert.Equal(t, []string{"qb"}, args)
}
