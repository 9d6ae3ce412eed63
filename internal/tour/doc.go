// Package tour contains runnable examples of the gocombine operators.
// Each example prints the values it observes, one per line, to an io.Writer.
package tour
