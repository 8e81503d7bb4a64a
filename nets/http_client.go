package nets

import (
	"net/http"
	"net/url"
	"time"

	"github.com/reusee/tapeopt/cmds"
)

type HTTPClient = *http.Client

var httpTimeout = cmds.Var[time.Duration]("-http-timeout", "timeout for fetching remote programs")

func (Module) HTTPClient(
	dialer Dialer,
	getProxyURL GetProxyURL,
	isLocalAddr IsLocalAddr,
) HTTPClient {
	return &http.Client{
		Transport: &http.Transport{
			DialContext: dialer.DialContext,
			Proxy: func(req *http.Request) (*url.URL, error) {
				u, err := getProxyURL()
				if err != nil || u == nil || !isHTTPProxy(u) {
					return nil, err
				}
				if local, err := isLocalAddr(req.URL.Host); err != nil || local {
					return nil, err
				}
				return u, nil
			},
			TLSHandshakeTimeout: 10 * time.Second,
		},
		Timeout: *httpTimeout,
	}
}
