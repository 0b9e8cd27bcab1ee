package testdata

import (
	"bufio"
	"os"
)

// LoadTestFile returns the non-empty lines of the file at path.
// It panics if the file can not be read.
func LoadTestFile(path string) []string {
	file, err := os.Open(path)
	if err != nil {
		panic("couldn't open " + path)
	}
	defer file.Close()

	var words []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		if line := scanner.Text(); line != "" {
			words = append(words, line)
		}
	}
	if err := scanner.Err(); err != nil {
		panic(err)
	}
	return words
}
