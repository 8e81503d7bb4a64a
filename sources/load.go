package sources

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/reusee/e5"
	"github.com/reusee/tapeopt/logs"
	"github.com/reusee/tapeopt/nets"
)

var wrap = e5.Wrap.With(e5.WrapStacktrace)

// MaxSize bounds every loaded program.
const MaxSize = 64 << 20

var ErrTooLarge = errors.New("program too large")

// Stdin is read for the location "-".
type Stdin io.Reader

func (Module) Stdin() Stdin {
	return os.Stdin
}

// Load reads program source from a file path, "-" for standard input, or an
// http(s) URL.
type Load func(ctx context.Context, location string) ([]byte, error)

func (Module) Load(
	client nets.HTTPClient,
	stdin Stdin,
	logger logs.Logger,
) Load {
	return func(ctx context.Context, location string) (ret []byte, err error) {
		defer func() {
			if err == nil {
				logger.InfoContext(ctx, "source loaded",
					"location", location,
					"size", humanize.Bytes(uint64(len(ret))),
				)
			}
		}()

		switch {

		case location == "-":
			return readAll(stdin)

		case strings.HasPrefix(location, "http://"),
			strings.HasPrefix(location, "https://"):
			return fetch(ctx, client, location)

		default:
			f, err := os.Open(location)
			if err != nil {
				return nil, wrap(err)
			}
			defer f.Close()
			return readAll(f)

		}
	}
}

func fetch(ctx context.Context, client nets.HTTPClient, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, wrap(err)
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, wrap(err)
	}
	defer resp.Body.Close()
	if resp.StatusCode/100 != 2 {
		return nil, wrap(fmt.Errorf("fetch %s: %s", url, resp.Status))
	}
	if resp.ContentLength > MaxSize {
		return nil, wrap(fmt.Errorf("%w: %s", ErrTooLarge, humanize.Bytes(uint64(resp.ContentLength))))
	}
	return readAll(resp.Body)
}

func readAll(r io.Reader) ([]byte, error) {
	data, err := io.ReadAll(io.LimitReader(r, MaxSize+1))
	if err != nil {
		return nil, wrap(err)
	}
	if len(data) > MaxSize {
		return nil, wrap(fmt.Errorf("%w: over %s", ErrTooLarge, humanize.Bytes(MaxSize)))
	}
	return data, nil
}
