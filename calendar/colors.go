package calendar

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

func parseHexColor(hex string) (r, g, b float64, ok bool) {
	hex = strings.TrimPrefix(hex, "#")
	if len(hex) != 6 {
		return 0, 0, 0, false
	}
	rv, err1 := strconv.ParseUint(hex[0:2], 16, 8)
	gv, err2 := strconv.ParseUint(hex[2:4], 16, 8)
	bv, err3 := strconv.ParseUint(hex[4:6], 16, 8)
	if err1 != nil || err2 != nil || err3 != nil {
		return 0, 0, 0, false
	}
	return float64(rv), float64(gv), float64(bv), true
}

func rgb(r, g, b float64) string {
	return fmt.Sprintf("rgb(%d, %d, %d)", int(math.Round(r)), int(math.Round(g)), int(math.Round(b)))
}

// EventColor maps a client's base color to the fill color of an event chip.
// Booked events keep the base color, holds blend each channel halfway
// toward white, paid events darken each channel to 60%. Unknown types fall
// back to the base color untouched.
func EventColor(baseColor string, eventType EventType) string {
	r, g, b, ok := parseHexColor(baseColor)
	if !ok {
		return baseColor
	}

	switch eventType {
	case EventBook:
		return rgb(r, g, b)
	case EventHold:
		return rgb(r+(255-r)*0.5, g+(255-g)*0.5, b+(255-b)*0.5)
	case EventPaid:
		return rgb(r*0.6, g*0.6, b*0.6)
	default:
		return baseColor
	}
}

// EventBorderColor is the left-border accent of an event chip: the base
// color darkened to 70%, regardless of event type.
func EventBorderColor(baseColor string, eventType EventType) string {
	r, g, b, ok := parseHexColor(baseColor)
	if !ok {
		return baseColor
	}
	return rgb(r*0.7, g*0.7, b*0.7)
}
