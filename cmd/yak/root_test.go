package yak

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRootCmdHasBuildAndGetSubcommands(t *testing.T) {
	root := NewRootCmd()
	names := map[string]bool{}
	for _, c := range root.Commands() {
		names[c.Name()] = true
	}
	require.True(t, names["build"])
	require.True(t, names["get"])
}

func TestBuildRejectsExtraArgs(t *testing.T) {
	root := NewRootCmd()
	root.SetArgs([]string{"build", "one", "two"})
	err := root.Execute()
	require.Error(t, err)
}
