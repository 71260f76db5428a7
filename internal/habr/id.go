package habr

import (
	"errors"
	"strconv"
	"strings"

	"github.com/jonesrussell/habrreader/internal/domain"
)

var errNoIDSegment = errors.New("link has no identifier segment")

// ParseArticleID extracts the article identifier from a link of the form
// ".../articles/12345/". The identifier is the second-to-last "/"-separated
// segment and must be a positive integer.
func ParseArticleID(link string) (int, error) {
	parts := strings.Split(link, "/")
	if len(parts) < 2 {
		return 0, &domain.ParseError{Input: link, Err: errNoIDSegment}
	}

	segment := parts[len(parts)-2]
	id, err := strconv.Atoi(segment)
	if err != nil {
		return 0, &domain.ParseError{Input: link, Err: err}
	}
	if id <= 0 {
		return 0, &domain.ParseError{Input: link, Err: errors.New("identifier must be positive")}
	}

	return id, nil
}
