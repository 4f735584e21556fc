package validators

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsCPF(t *testing.T) {
	assert.True(t, IsCPF("01234567890"))

	// 10 digits, 12 digits, a letter, formatted
	assert.False(t, IsCPF(""))
	assert.False(t, IsCPF("0123456789"))
	assert.False(t, IsCPF("012345678901"))
	assert.False(t, IsCPF("0123456789a"))
	assert.False(t, IsCPF("012.345.678-90"))
}

func TestIsPhone(t *testing.T) {
	assert.True(t, IsPhone("2133334444"))
	assert.True(t, IsPhone("21999887766"))

	// 9 digits, 12 digits, formatted
	assert.False(t, IsPhone(""))
	assert.False(t, IsPhone("213333444"))
	assert.False(t, IsPhone("219998877665"))
	assert.False(t, IsPhone("(21)99988-776"))
}
