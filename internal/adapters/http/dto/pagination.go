package dto

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"strconv"
)

// DefaultLimit is the catalog page size when the request does not set one.
const DefaultLimit = 12

// MaxLimit is the maximum allowed items per page.
const MaxLimit = 100

// cursorFieldOffset marks cursors that encode a position in a stable,
// fully sorted result list.
const cursorFieldOffset = "offset"

// Cursor errors.
var (
	// ErrInvalidCursor is returned when cursor decoding fails.
	ErrInvalidCursor = errors.New("invalid cursor")

	// ErrNoCursor signals a first page request.
	ErrNoCursor = errors.New("no cursor provided")
)

// PaginationRequest represents pagination parameters from the request.
type PaginationRequest struct {
	// Cursor is an opaque string from a previous response's NextCursor.
	Cursor string `form:"cursor"`

	// Limit is the maximum number of items to return.
	Limit int `form:"limit" validate:"omitempty,gte=1,lte=100"`
}

// GetLimit returns the limit with defaults applied.
func (p *PaginationRequest) GetLimit() int {
	return p.limitOr(DefaultLimit)
}

func (p *PaginationRequest) limitOr(def int) int {
	switch {
	case p.Limit <= 0:
		return def
	case p.Limit > MaxLimit:
		return MaxLimit
	default:
		return p.Limit
	}
}

// PaginatedResponse is a page of items.
type PaginatedResponse[T any] struct {
	Items      []T    `json:"items"`
	NextCursor string `json:"nextCursor,omitempty"`
	HasMore    bool   `json:"hasMore"`
	Total      int    `json:"total"`
}

// Paginate slices an already sorted list. The cursor stores the offset of
// the next page together with the ID of the last item returned, and is
// rejected when the list changed underneath it (e.g. a catalog reload).
func Paginate[T any](items []T, req PaginationRequest, defaultLimit int, idOf func(T) string) (*PaginatedResponse[T], error) {
	limit := req.limitOr(defaultLimit)

	start := 0

	if req.Cursor != "" {
		cur, err := DecodeCursor(req.Cursor)
		if err != nil {
			return nil, err
		}

		start, err = strconv.Atoi(cur.Value)
		if cur.Field != cursorFieldOffset || err != nil || start <= 0 || start > len(items) {
			return nil, ErrInvalidCursor
		}

		if idOf(items[start-1]) != cur.ID {
			return nil, ErrInvalidCursor
		}
	}

	end := min(start+limit, len(items))
	page := make([]T, end-start)
	copy(page, items[start:end])

	resp := &PaginatedResponse[T]{Items: page, HasMore: end < len(items), Total: len(items)}
	if resp.HasMore {
		resp.NextCursor = EncodeCursor(NewCursor(cursorFieldOffset, strconv.Itoa(end), idOf(items[end-1])))
	}

	return resp, nil
}

// CursorData contains the data encoded in a pagination cursor.
type CursorData struct {
	// Field is the kind of position the cursor stores.
	Field string `json:"f"`

	// Value is the position itself.
	Value string `json:"v"`

	// ID identifies the last item of the previous page.
	ID string `json:"id"`
}

// EncodeCursor encodes cursor data to a base64 string.
func EncodeCursor(data *CursorData) string {
	if data == nil {
		return ""
	}

	raw, err := json.Marshal(data)
	if err != nil {
		return ""
	}

	return base64.URLEncoding.EncodeToString(raw)
}

// DecodeCursor decodes a base64 cursor string.
func DecodeCursor(encoded string) (*CursorData, error) {
	if encoded == "" {
		return nil, ErrNoCursor
	}

	raw, err := base64.URLEncoding.DecodeString(encoded)
	if err != nil {
		return nil, ErrInvalidCursor
	}

	var data CursorData
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, ErrInvalidCursor
	}

	return &data, nil
}

// NewCursor creates a new cursor from field, value, and ID.
func NewCursor(field, value, id string) *CursorData {
	return &CursorData{Field: field, Value: value, ID: id}
}
