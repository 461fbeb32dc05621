package report

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"
)

// Match is one line of a patient file that contains the search keyword.
type Match struct {
	Line int    `json:"line"`
	Text string `json:"text"`
}

// Search scans the patient's file line by line and returns every line whose
// lowercase form contains the lowercase keyword. found is false, with a nil
// error, when the patient has no file.
func (s *FileStore) Search(patient, keyword string) ([]Match, bool, error) {
	path, err := s.Path(patient)
	if err != nil {
		return nil, false, err
	}

	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return []Match{}, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("%w: open %s: %v", ErrStorageUnavailable, path, err)
	}
	defer f.Close()

	matches, err := ScanLines(f, keyword)
	if err != nil {
		return nil, true, fmt.Errorf("%w: scan %s: %v", ErrStorageUnavailable, path, err)
	}

	s.logger.Debug().Str("patient", patient).Str("keyword", keyword).Int("matches", len(matches)).Msg("report searched")
	return matches, true, nil
}

// ScanLines is the file-independent part of Search. Line numbers start at 1
// and lines may be of any length.
func ScanLines(r io.Reader, keyword string) ([]Match, error) {
	needle := strings.ToLower(keyword)
	matches := []Match{}

	br := bufio.NewReader(r)
	for n := 1; ; n++ {
		line, err := br.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return nil, err
		}
		if line == "" && err != nil {
			break
		}
		line = strings.TrimRight(line, "\r\n")
		if strings.Contains(strings.ToLower(line), needle) {
			matches = append(matches, Match{Line: n, Text: strings.TrimSpace(line)})
		}
		if err != nil {
			break
		}
	}
	return matches, nil
}
