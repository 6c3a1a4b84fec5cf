package dbg

import "github.com/logrusorgru/aurora"

var colorizers = []func(arg interface{}) aurora.Value{
	aurora.Cyan,
	aurora.Red,
	aurora.Green,
	aurora.Yellow,
	aurora.Magenta,
	aurora.Blue,
}

// Colorize gives text a terminal color picked by index, matching the order
// of Palette loosely enough to tell fragments apart in a summary.
func Colorize(index int, text string) string {
	if index < 0 {
		index = -index
	}
	return colorizers[index%len(colorizers)](text).String()
}
