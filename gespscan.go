package gespscan

import (
	"io"
	"net/http"
	"os"
	"strings"

	"github.com/csimplestring/go-csv/detector"
)

// DetermineDelimiter guesses the rune delimiting a CSV-like reader.
// Reference gene lists come from several sources and arrive comma-, tab-,
// or semicolon-delimited; when detection is inconclusive, comma wins.
func DetermineDelimiter(r io.Reader) rune {
	candidates := detector.New().DetectDelimiter(r, '"')
	if len(candidates) == 0 {
		return ','
	}

	return rune(candidates[0][0])
}

// OpenFileOrURL reads the full contents of a local path or, if the input
// starts with http, of a remote URL.
func OpenFileOrURL(input string) ([]byte, error) {
	if strings.HasPrefix(input, "http") {
		resp, err := http.Get(input)
		if err != nil {
			return nil, err
		}
		defer resp.Body.Close()

		return io.ReadAll(resp.Body)
	}

	f, err := os.Open(input)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return io.ReadAll(f)
}
