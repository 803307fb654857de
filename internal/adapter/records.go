package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// RecordClient is a typed client for one bookkeeping resource
// (e.g. /budget, /transaction). It shares the bearer token of the
// [HTTPServerAdapter] it was built on.
type RecordClient[T any] struct {
	server   *HTTPServerAdapter
	basePath string
}

// NewRecordClient builds a [RecordClient] for the resource rooted at basePath.
func NewRecordClient[T any](server *HTTPServerAdapter, basePath string) *RecordClient[T] {
	return &RecordClient[T]{
		server:   server,
		basePath: "/" + strings.Trim(basePath, "/"),
	}
}

func (c *RecordClient[T]) Create(ctx context.Context, record T) (T, error) {
	var created T

	resp, err := c.server.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(record).
		Post(c.basePath)
	if err != nil {
		return created, fmt.Errorf("create %s request: %w", c.basePath, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return created, err
	}

	if err = json.Unmarshal(resp.Body(), &created); err != nil {
		return created, fmt.Errorf("decode create %s response: %w", c.basePath, err)
	}
	return created, nil
}

func (c *RecordClient[T]) Get(ctx context.Context, id int64) (T, error) {
	var record T

	resp, err := c.server.authedRequest(ctx).Get(c.recordPath(id))
	if err != nil {
		return record, fmt.Errorf("get %s request: %w", c.basePath, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return record, err
	}

	if err = json.Unmarshal(resp.Body(), &record); err != nil {
		return record, fmt.Errorf("decode get %s response: %w", c.basePath, err)
	}
	return record, nil
}

func (c *RecordClient[T]) List(ctx context.Context) ([]T, error) {
	resp, err := c.server.authedRequest(ctx).Get(c.basePath)
	if err != nil {
		return nil, fmt.Errorf("list %s request: %w", c.basePath, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var records []T
	if err = json.Unmarshal(resp.Body(), &records); err != nil {
		return nil, fmt.Errorf("decode list %s response: %w", c.basePath, err)
	}
	return records, nil
}

func (c *RecordClient[T]) Update(ctx context.Context, id int64, record T) (T, error) {
	var updated T

	resp, err := c.server.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(record).
		Put(c.recordPath(id))
	if err != nil {
		return updated, fmt.Errorf("update %s request: %w", c.basePath, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return updated, err
	}

	if err = json.Unmarshal(resp.Body(), &updated); err != nil {
		return updated, fmt.Errorf("decode update %s response: %w", c.basePath, err)
	}
	return updated, nil
}

func (c *RecordClient[T]) Delete(ctx context.Context, id int64) error {
	resp, err := c.server.authedRequest(ctx).Delete(c.recordPath(id))
	if err != nil {
		return fmt.Errorf("delete %s request: %w", c.basePath, err)
	}
	return mapHTTPError(resp)
}

func (c *RecordClient[T]) recordPath(id int64) string {
	return c.basePath + "/" + strconv.FormatInt(id, 10)
}
