package source

import "io"

func NewLinesWithLimit(r io.Reader, maxSize int) *Lines {
	return &Lines{r: r, maxSize: maxSize}
}
