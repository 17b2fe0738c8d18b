package collector

import (
	"context"
	"io"
	"net/http"
	"strings"
	"testing"
)

// stubTransport serves a canned body for every request.
type stubTransport struct {
	body string
}

func (s *stubTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	return &http.Response{
		StatusCode: http.StatusOK,
		Body:       io.NopCloser(strings.NewReader(s.body)),
		Header:     make(http.Header),
		Request:    req,
	}, nil
}

func newStubFetcher(body string) *YahooFetcher {
	return &YahooFetcher{Client: &http.Client{Transport: &stubTransport{body: body}}}
}

func TestFetchHourlyBars_RaggedArrays(t *testing.T) {
	// Arrays of unequal length: three timestamps and closes, one volume.
	body := `{"chart":{"result":[{"timestamp":[1000,2000,3000],"indicators":{"quote":[{
		"open":[10.0,11.0,12.0],
		"high":[10.5,11.5,12.5],
		"low":[9.5,10.5,11.5],
		"close":[10.2,11.2,12.2],
		"volume":[100]
	}]}}],"error":null}}`

	f := newStubFetcher(body)
	bars, err := f.FetchHourlyBars(context.Background(), []string{"AAPL"}, 5)
	if err != nil {
		t.Fatalf("FetchHourlyBars: %v", err)
	}
	got := bars["AAPL"]
	if len(got) != 1 {
		t.Fatalf("got %d bars, want 1 (clamped to shortest array)", len(got))
	}
	if got[0].Close != 10.2 || got[0].Volume != 100 {
		t.Errorf("bar = %+v, want close 10.2 volume 100", got[0])
	}
}

func TestFetchHourlyBars_SkipsNullBars(t *testing.T) {
	body := `{"chart":{"result":[{"timestamp":[1000,2000],"indicators":{"quote":[{
		"open":[null,11.0],
		"high":[null,11.5],
		"low":[null,10.5],
		"close":[null,11.2],
		"volume":[null,200]
	}]}}],"error":null}}`

	f := newStubFetcher(body)
	bars, err := f.FetchHourlyBars(context.Background(), []string{"MSFT"}, 5)
	if err != nil {
		t.Fatalf("FetchHourlyBars: %v", err)
	}
	got := bars["MSFT"]
	if len(got) != 1 {
		t.Fatalf("got %d bars, want 1 (null bar skipped)", len(got))
	}
	if got[0].Close != 11.2 {
		t.Errorf("close = %v, want 11.2", got[0].Close)
	}
}

func TestFetchHourlyBars_APIErrorSkipsTicker(t *testing.T) {
	body := `{"chart":{"result":null,"error":{"code":"Not Found","description":"No data found"}}}`

	f := newStubFetcher(body)
	bars, err := f.FetchHourlyBars(context.Background(), []string{"ZZZZ"}, 5)
	if err != nil {
		t.Fatalf("FetchHourlyBars: %v", err)
	}
	if _, ok := bars["ZZZZ"]; ok {
		t.Error("errored ticker should be absent from the batch")
	}
}
