package utils

import (
	"runtime"
)

// Stack returns the formatted stack of the calling goroutine, dropping the top skip frames.
func Stack(skip int) []byte {
	buf := make([]byte, 8192)
	n := runtime.Stack(buf, false)
	buf = buf[:n]

	// each frame is two lines, the first line is the goroutine header
	lines := 0
	for i := 0; i < len(buf); i++ {
		if buf[i] != '\n' {
			continue
		}
		lines++
		if lines == 1+2*skip {
			return append(buf[:0:0], buf[i+1:]...)
		}
	}
	return buf
}
