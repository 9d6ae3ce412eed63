package main

import "github.com/deadlyengineer/gocombine/internal/tour"

func main() {
	tour.Execute()
}
