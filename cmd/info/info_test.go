package info_test

import (
	"testing"

	"fjacquet/camt-extract/cmd/info"

	"github.com/stretchr/testify/assert"
)

func TestInfoCommand_Metadata(t *testing.T) {
	assert.Equal(t, "info", info.Cmd.Use)
	assert.Contains(t, info.Cmd.Short, "metadata")
	assert.Contains(t, info.Cmd.Long, "group header")
	assert.NotNil(t, info.Cmd.Run)
}
