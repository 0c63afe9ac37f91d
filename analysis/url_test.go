package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsPostURL(t *testing.T) {
	valid := []string{
		"https://vk.com/wall-123456789_1234",
		"http://vk.com/wall-1_1",
		"https://www.vk.com/wall-1_1",
		"https://vk.com/wall123_456",
		"https://vk.com/wall-1_1/extra",
		"https://vk.com/wall-1_1/",
	}
	for _, u := range valid {
		assert.True(t, IsPostURL(u), "expected valid: %s", u)
	}

	invalid := []string{
		"",
		"vk.com/wall-1_1",
		"ftp://vk.com/wall-1_1",
		"https://vk.com/wall-1",
		"https://vk.com/wall_1_1",
		"https://vk.ru/wall-1_1",
		"https://example.com/wall-1_1",
		"https://vk.com/club-1_1",
		" https://vk.com/wall-1_1",
		"https://vk.com/wall-1_1 trailing",
	}
	for _, u := range invalid {
		assert.False(t, IsPostURL(u), "expected invalid: %s", u)
	}
}
