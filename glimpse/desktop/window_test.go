//go:build !js

package desktop

import (
	"testing"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/oliverbestmann/tint/glimpse"
	"github.com/stretchr/testify/assert"
)

func TestKeyOf(t *testing.T) {
	cases := map[glfw.Key]glimpse.Key{
		glfw.KeyEscape: glimpse.KeyEscape,
		glfw.KeyEnter:  glimpse.KeyEnter,
		glfw.KeyLeft:   glimpse.KeyLeft,
		glfw.KeyDown:   glimpse.KeyDown,
		glfw.KeyA:      glimpse.KeyA,
		glfw.KeyQ:      glimpse.KeyQ,
		glfw.KeyZ:      glimpse.KeyZ,
	}

	for glfwKey, expected := range cases {
		key, ok := keyOf(glfwKey)
		assert.True(t, ok, expected.String())
		assert.Equal(t, expected, key)
	}

	for _, glfwKey := range []glfw.Key{glfw.KeyF1, glfw.Key0, glfw.KeyUnknown} {
		_, ok := keyOf(glfwKey)
		assert.False(t, ok)
	}
}

func TestActionOf(t *testing.T) {
	assert.Equal(t, glimpse.Press, actionOf(glfw.Press))
	assert.Equal(t, glimpse.Release, actionOf(glfw.Release))
	assert.Equal(t, glimpse.Repeat, actionOf(glfw.Repeat))
}
