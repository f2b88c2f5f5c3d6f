// Package works discovers hand-built pieces stored as works/works_NN/index.html.
package works

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"portfolioData/internal/models"

	"go.uber.org/zap"
	"golang.org/x/net/html"
)

// MaxWorks is the highest slot probed.
const MaxWorks = 40

type Scanner struct {
	root   string
	logger *zap.Logger
}

func NewScanner(root string, logger *zap.Logger) *Scanner {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Scanner{root: root, logger: logger}
}

// Scan probes slots MaxWorks down to 1 and returns the ones with an
// index.html, newest first. Gaps are skipped.
func (s *Scanner) Scan() ([]models.Work, error) {
	var found []models.Work
	for i := MaxWorks; i >= 1; i-- {
		id := fmt.Sprintf("%02d", i)
		rel := filepath.Join("works", "works_"+id, "index.html")
		path := filepath.Join(s.root, rel)

		file, err := os.Open(path)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return found, fmt.Errorf("failed to open %s: %w", path, err)
		}

		title, ok, err := ExtractTitle(file)
		file.Close()
		if err != nil {
			s.logger.Warn("Unreadable work page", zap.String("path", path), zap.Error(err))
			continue
		}
		if !ok {
			title = "Work " + id
		}

		found = append(found, models.Work{ID: id, Title: title, Path: filepath.ToSlash(rel)})
	}

	s.logger.Debug("Scanned works", zap.String("root", s.root), zap.Int("found", len(found)))
	return found, nil
}

// ExtractTitle returns the trimmed text of the first <title> element. ok is
// false only when the document has no <title>; an empty one yields "", true.
func ExtractTitle(r io.Reader) (title string, ok bool, err error) {
	z := html.NewTokenizer(r)
	inTitle := false
	var b strings.Builder

	for {
		switch z.Next() {
		case html.ErrorToken:
			if err := z.Err(); err != io.EOF {
				return "", false, err
			}
			return strings.TrimSpace(b.String()), inTitle, nil
		case html.StartTagToken:
			name, _ := z.TagName()
			if string(name) == "title" {
				inTitle = true
			}
		case html.EndTagToken:
			name, _ := z.TagName()
			if string(name) == "title" && inTitle {
				return strings.TrimSpace(b.String()), true, nil
			}
		case html.TextToken:
			if inTitle {
				b.Write(z.Text())
			}
		}
	}
}
