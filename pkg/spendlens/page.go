package spendlens

import (
	"bytes"
	"encoding/json"

	"github.com/pkg/errors"
)

// Page is the canonical list-endpoint shape. The API may answer with either
// a bare JSON array or an {items, total} object; both are coerced here, at
// the boundary, so nothing downstream branches on shape again. When total is
// absent it is inferred from the item count, which may undercount the true
// collection size.
type Page[T any] struct {
	Items []T
	Total int
}

// UnmarshalJSON implements json.Unmarshaler for Page
func (p *Page[T]) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimLeft(data, " \t\r\n")
	if len(trimmed) == 0 {
		return errors.Wrap(ErrMalformedResponse, "empty list response")
	}

	switch trimmed[0] {
	case '[':
		var items []T
		if err := json.Unmarshal(data, &items); err != nil {
			return errors.Wrap(ErrMalformedResponse, err.Error())
		}
		p.Items = items
		p.Total = len(items)
		return nil

	case '{':
		var envelope struct {
			Items json.RawMessage `json:"items"`
			Total *int            `json:"total"`
		}
		if err := json.Unmarshal(data, &envelope); err != nil {
			return errors.Wrap(ErrMalformedResponse, err.Error())
		}
		if envelope.Items == nil {
			return errors.Wrap(ErrMalformedResponse, "list object has no items field")
		}
		var items []T
		if err := json.Unmarshal(envelope.Items, &items); err != nil {
			return errors.Wrap(ErrMalformedResponse, err.Error())
		}
		p.Items = items
		if envelope.Total != nil {
			p.Total = *envelope.Total
		} else {
			p.Total = len(items)
		}
		return nil
	}

	return errors.Wrap(ErrMalformedResponse, "list response is neither an array nor an object")
}
