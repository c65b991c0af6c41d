package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestString(t *testing.T) {
	old, oldCommit := Version, Commit
	t.Cleanup(func() { Version, Commit = old, oldCommit })

	Version, Commit = "1.2.3", "abc1234"
	assert.Equal(t, "listkit 1.2.3 (abc1234)", String())
}
