package httpclient

import (
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
)

// RestyDoer sends requests through a resty.Client. Resty never parses the
// response here; classification stays with Client.
type RestyDoer struct {
	client *resty.Client
}

var _ Doer = (*RestyDoer)(nil)

func NewRestyDoer(client *resty.Client) *RestyDoer {
	if client == nil {
		client = NewRestyClient(DefaultTimeout)
	}

	return &RestyDoer{client: client}
}

// NewRestyClient builds the resty client used by the backend transport. Retries
// are left off so a failed call is reported exactly once.
func NewRestyClient(timeout time.Duration) *resty.Client {
	client := resty.New()
	client.SetTimeout(timeout)
	client.SetRetryCount(0)

	return client
}

func (d *RestyDoer) Do(httpReq *http.Request) (*http.Response, error) {
	req := d.client.R().
		SetContext(httpReq.Context()).
		SetDoNotParseResponse(true)

	req.Header = httpReq.Header.Clone()

	if httpReq.Body != nil {
		body, err := io.ReadAll(httpReq.Body)
		_ = httpReq.Body.Close()

		if err != nil {
			return nil, fmt.Errorf("resty: read request body: %w", err)
		}

		req.SetBody(body)
	}

	resp, err := req.Execute(httpReq.Method, httpReq.URL.String())
	if err != nil {
		return nil, err //nolint:wrapcheck
	}

	return resp.RawResponse, nil
}
