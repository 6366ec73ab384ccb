//nolint:ireturn
package httpclient

import (
	"context"
	"net/http"
)

func GetJSON[T any](ctx context.Context, c *Client, path string, opts ...RequestOption) (T, error) {
	var result T
	err := c.Get(ctx, path, &result, opts...)

	return result, err
}

func PostJSON[T any](ctx context.Context, c *Client, path string, body any, opts ...RequestOption) (T, error) {
	var result T
	err := c.Post(ctx, path, body, &result, opts...)

	return result, err
}

func PutJSON[T any](ctx context.Context, c *Client, path string, body any, opts ...RequestOption) (T, error) {
	var result T
	err := c.Put(ctx, path, body, &result, opts...)

	return result, err
}

func PatchJSON[T any](ctx context.Context, c *Client, path string, body any, opts ...RequestOption) (T, error) {
	var result T
	err := c.Patch(ctx, path, body, &result, opts...)

	return result, err
}

func DeleteJSON[T any](ctx context.Context, c *Client, path string, opts ...RequestOption) (T, error) {
	var result T
	err := c.Delete(ctx, path, &result, opts...)

	return result, err
}

func DoJSON[T any](ctx context.Context, c *Client, method, path string, body any, opts ...RequestOption) (T, error) {
	var result T
	err := c.Do(ctx, method, path, body, &result, opts...)

	return result, err
}

// Call resolves a catalog endpoint and performs the request against it. The
// endpoint name doubles as the metrics label.
func Call[T any](
	ctx context.Context,
	c *Client,
	method string,
	name string,
	ids []any,
	body any,
	opts ...RequestOption,
) (T, error) {
	var result T

	path, err := c.Resolve(name, ids...)
	if err != nil {
		return result, err
	}

	opts = append([]RequestOption{WithEndpointName(name)}, opts...)
	err = c.Do(ctx, method, path, body, &result, opts...)

	return result, err
}

func Fetch[T any](ctx context.Context, c *Client, name string, ids []any, opts ...RequestOption) (T, error) {
	return Call[T](ctx, c, http.MethodGet, name, ids, nil, opts...)
}

// Ping issues a GET and discards the body. Any 2xx answer is healthy.
func (c *Client) Ping(ctx context.Context, path string, opts ...RequestOption) error {
	opts = append([]RequestOption{WithEndpointName("ping")}, opts...)

	return c.Get(ctx, path, nil, opts...)
}
