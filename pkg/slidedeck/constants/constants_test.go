package constants

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVirtualButtonGetName(t *testing.T) {
	cases := map[VirtualButton]string{
		VirtualButtonUnassigned: "Unassigned",
		VirtualButtonLeft:       "Left",
		VirtualButtonRight:      "Right",
		VirtualButtonL1:         "L1",
		VirtualButtonR1:         "R1",
		VirtualButtonMenu:       "Menu",
		VirtualButton(99):       "Unknown",
	}
	for button, want := range cases {
		assert.Equal(t, want, button.GetName(), int(button))
	}
}
