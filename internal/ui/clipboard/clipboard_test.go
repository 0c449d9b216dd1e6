package clipboard

import (
	"testing"

	"github.com/atotto/clipboard"
	"github.com/stretchr/testify/assert"
)

func TestSystemReportsMissingClipboard(t *testing.T) {
	if !clipboard.Unsupported {
		t.Skip("host has a clipboard utility")
	}
	assert.ErrorIs(t, System{}.WriteAll("https://example.com"), ErrUnsupported)
}
