package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

const (
	preferRepresentation = "return=representation"
	preferMinimal        = "return=minimal"
	preferCountExact     = "count=exact"
	preferMergeDupes     = "resolution=merge-duplicates"
)

func tablePath(table string) string {
	return restPath + "/" + table
}

// Select implements [RecordAdapter]. GET /rest/v1/{table}?select=...&col=eq.v.
func (h *baasAdapter) Select(ctx context.Context, q *Query, dest any) error {
	resp, err := h.authedRequest(ctx).
		SetQueryParamsFromValues(q.values(true)).
		Get(tablePath(q.Table))
	if err != nil {
		return fmt.Errorf("select %s request: %w", q.Table, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return err
	}

	if err = json.Unmarshal(resp.Body(), dest); err != nil {
		return fmt.Errorf("%w: decode %s rows: %v", ErrMalformedResponse, q.Table, err)
	}
	return nil
}

// Count implements [RecordAdapter]. HEAD with Prefer: count=exact; the total
// is the part after "/" in Content-Range ("0-9/42", "*/0").
func (h *baasAdapter) Count(ctx context.Context, q *Query) (int, error) {
	resp, err := h.authedRequest(ctx).
		SetHeader("Prefer", preferCountExact).
		SetQueryParamsFromValues(q.values(true)).
		Head(tablePath(q.Table))
	if err != nil {
		return 0, fmt.Errorf("count %s request: %w", q.Table, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return 0, err
	}

	return parseContentRangeTotal(resp.Header().Get("Content-Range"))
}

func parseContentRangeTotal(header string) (int, error) {
	_, total, ok := strings.Cut(header, "/")
	if !ok || total == "" || total == "*" {
		return 0, fmt.Errorf("%w: content-range %q", ErrMalformedResponse, header)
	}

	n, err := strconv.Atoi(total)
	if err != nil {
		return 0, fmt.Errorf("%w: content-range %q", ErrMalformedResponse, header)
	}
	return n, nil
}

// Insert implements [RecordAdapter]. POST /rest/v1/{table}.
func (h *baasAdapter) Insert(ctx context.Context, table string, row any, dest any) error {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetHeader("Prefer", prefer(dest, preferRepresentation)).
		SetBody(row).
		Post(tablePath(table))
	if err != nil {
		return fmt.Errorf("insert %s request: %w", table, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return err
	}

	_, err = decodeFirst(resp.Body(), dest)
	return err
}

// Upsert implements [RecordAdapter]. POST with on_conflict and
// Prefer: resolution=merge-duplicates, which the backend runs as one
// INSERT ... ON CONFLICT DO UPDATE.
func (h *baasAdapter) Upsert(ctx context.Context, table string, row any, onConflict string, dest any) error {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetHeader("Prefer", prefer(dest, preferMergeDupes, preferRepresentation)).
		SetQueryParam("on_conflict", onConflict).
		SetBody(row).
		Post(tablePath(table))
	if err != nil {
		return fmt.Errorf("upsert %s request: %w", table, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return err
	}

	_, err = decodeFirst(resp.Body(), dest)
	return err
}

// Update implements [RecordAdapter]. PATCH /rest/v1/{table}?col=eq.v.
func (h *baasAdapter) Update(ctx context.Context, q *Query, patch any, dest any) (bool, error) {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetHeader("Prefer", preferRepresentation).
		SetQueryParamsFromValues(q.values(false)).
		SetBody(patch).
		Patch(tablePath(q.Table))
	if err != nil {
		return false, fmt.Errorf("update %s request: %w", q.Table, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return false, err
	}

	return decodeFirst(resp.Body(), dest)
}

// Delete implements [RecordAdapter]. DELETE /rest/v1/{table}?col=eq.v.
func (h *baasAdapter) Delete(ctx context.Context, q *Query) (int, error) {
	resp, err := h.authedRequest(ctx).
		SetHeader("Prefer", preferRepresentation).
		SetQueryParamsFromValues(q.values(false)).
		Delete(tablePath(q.Table))
	if err != nil {
		return 0, fmt.Errorf("delete %s request: %w", q.Table, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return 0, err
	}

	var rows []json.RawMessage
	if len(resp.Body()) == 0 {
		return 0, nil
	}
	if err = json.Unmarshal(resp.Body(), &rows); err != nil {
		return 0, fmt.Errorf("%w: decode deleted rows: %v", ErrMalformedResponse, err)
	}
	return len(rows), nil
}

// prefer joins Prefer directives; return=representation is replaced by
// return=minimal when the caller does not want the row back.
func prefer(dest any, directives ...string) string {
	out := make([]string, 0, len(directives))
	for _, d := range directives {
		if d == preferRepresentation && dest == nil {
			d = preferMinimal
		}
		out = append(out, d)
	}
	return strings.Join(out, ",")
}

// decodeFirst decodes the first element of a JSON array body into dest
// (may be nil) and reports whether there was one.
func decodeFirst(body []byte, dest any) (bool, error) {
	if len(body) == 0 {
		return false, nil
	}

	var rows []json.RawMessage
	if err := json.Unmarshal(body, &rows); err != nil {
		return false, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	if len(rows) == 0 {
		return false, nil
	}
	if dest == nil {
		return true, nil
	}
	if err := json.Unmarshal(rows[0], dest); err != nil {
		return false, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	return true, nil
}
