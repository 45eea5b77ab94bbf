package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatNumber(t *testing.T) {
	tests := map[int]string{
		0:          "0",
		7:          "7",
		999:        "999",
		1000:       "1,000",
		12345:      "12,345",
		123456:     "123,456",
		1234567:    "1,234,567",
		-1234:      "-1,234",
		-123456:    "-123,456",
		1000000000: "1,000,000,000",
	}

	for n, want := range tests {
		assert.Equal(t, want, FormatNumber(n), "FormatNumber(%d)", n)
	}
}

func TestPercent(t *testing.T) {
	assert.InDelta(t, 60.0, Percent(300, 500), 1e-9)
	assert.InDelta(t, 40.0, Percent(200, 500), 1e-9)
	assert.Zero(t, Percent(0, 0))
	assert.Zero(t, Percent(10, 0))
}
