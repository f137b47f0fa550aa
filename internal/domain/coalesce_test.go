package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCoalesceStr(t *testing.T) {
	assert.Equal(t, "a", CoalesceStr("a", "b"))
	assert.Equal(t, "b", CoalesceStr("", "b"))
	assert.Equal(t, "", CoalesceStr("", ""))
	assert.Equal(t, "", CoalesceStr())
}

func TestFromPtrWithDefault(t *testing.T) {
	assert.Equal(t, "kept", StrFromPtrWithDefault("kept", nil))
	assert.Equal(t, "new", StrFromPtrWithDefault("kept", StrPtr("new")))
	assert.Equal(t, "", StrFromPtrWithDefault("kept", StrPtr("")), "explicit empty wins over fallback")

	assert.True(t, BoolFromPtrWithDefault(true, nil))
	assert.False(t, BoolFromPtrWithDefault(true, BoolPtr(false)))

	assert.Equal(t, 2025, IntFromPtrWithDefault(2025, nil))
	assert.Equal(t, 2026, IntFromPtrWithDefault(2025, IntPtr(2026)))
}
