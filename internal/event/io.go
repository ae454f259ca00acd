package event

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/jonakeys/calcurse/internal/filter"
)

// readPrefix consumes the "MM/DD/YYYY [<id>] " prefix, plus the
// ">NOTE " token when present, leaving r at the start of the message.
func readPrefix(r *bufio.Reader) (Date, int, string, error) {
	var d Date
	var id int
	if _, err := fmt.Fscanf(r, "%d/%d/%d [%d]", &d.Month, &d.Day, &d.Year, &id); err != nil {
		return Date{}, 0, "", fmt.Errorf("malformed event line: %v", err)
	}
	if b, err := r.ReadByte(); err != nil || b != ' ' {
		return Date{}, 0, "", fmt.Errorf("malformed event line: missing separator")
	}

	note := ""
	if next, err := r.Peek(1); err == nil && next[0] == '>' {
		if _, err := r.ReadByte(); err != nil {
			return Date{}, 0, "", err
		}
		tok, err := r.ReadString(' ')
		if err != nil {
			return Date{}, 0, "", fmt.Errorf("malformed note token: %v", err)
		}
		note = strings.TrimSuffix(tok, " ")
	}
	return d, id, note, nil
}

// Load parses serialized events from r into the store, one record per
// line, applying f to each. It stops at the first corrupt or rejected
// line and reports it with its line number.
func Load(r io.Reader, s *Store, f *filter.Filter) error {
	br := bufio.NewReader(r)
	for lineNum := 1; ; lineNum++ {
		if _, err := br.Peek(1); err == io.EOF {
			return nil
		} else if err != nil {
			return err
		}
		start, id, note, err := readPrefix(br)
		if err != nil {
			return fmt.Errorf("line %d: %v", lineNum, err)
		}
		if err := s.Scan(br, start, id, note, f); err != nil {
			return fmt.Errorf("line %d: %v", lineNum, err)
		}
	}
}

// LoadFile reads an apts file into the store. A missing file is not
// an error; the calendar simply starts empty.
func LoadFile(path string, s *Store, f *filter.Filter) error {
	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	defer file.Close()

	if err := Load(file, s, f); err != nil {
		return fmt.Errorf("error reading %s: %v", path, err)
	}
	return nil
}

// Save writes every stored event to w in canonical order.
func Save(w io.Writer, s *Store) error {
	for _, ev := range s.events {
		if err := ev.Write(w); err != nil {
			return err
		}
	}
	return nil
}

// SaveFile rewrites the apts file with the store's current contents.
func SaveFile(path string, s *Store) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("error creating directory: %v", err)
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("error writing %s: %v", path, err)
	}
	defer file.Close()

	return Save(file, s)
}
