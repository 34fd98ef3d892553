package pagination

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
)

var ErrInvalidCursor = errors.New("invalid cursor")

// Cursor points at the last record of a page. Lists are ordered by id.
type Cursor struct {
	ID int64 `json:"id"`
}

func (c Cursor) Encode() *string {
	b, _ := json.Marshal(c)
	s := base64.RawURLEncoding.EncodeToString(b)
	return &s
}

// Decode returns nil for an absent or empty cursor.
func Decode(s *string) (*Cursor, error) {
	if s == nil || *s == "" {
		return nil, nil
	}
	data, err := base64.RawURLEncoding.DecodeString(*s)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidCursor, err)
	}
	var c Cursor
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidCursor, err)
	}
	if c.ID <= 0 {
		return nil, fmt.Errorf("%w: id must be > 0", ErrInvalidCursor)
	}
	return &c, nil
}
