package build

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInfo_String(t *testing.T) {
	assert.Equal(t, "dumbterm v0.2.0 (0123456)", Info{Version: "v0.2.0", Commit: "0123456789abcdef"}.String())
	assert.Equal(t, "dumbterm dev", Info{Version: "dev", Commit: "unknown"}.String())
}

func TestInfo_IsDev(t *testing.T) {
	assert.True(t, Info{Version: "dev"}.IsDev())
	assert.True(t, Info{Version: "(devel)"}.IsDev())
	assert.False(t, Info{Version: "v1.0.0"}.IsDev())
}
