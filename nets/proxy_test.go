package nets

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/reusee/dscope"
	"github.com/reusee/tapeopt/configs"
	"github.com/reusee/tapeopt/modes"
)

func TestProxyAddrDevelopment(t *testing.T) {
	t.Setenv("ALL_PROXY", "socks5://127.0.0.1:1")
	dscope.New(
		modes.ForTest(t),
		new(Module),
		dscope.Provide(configs.NewLoader(nil, "")),
	).Call(func(
		addr ProxyAddr,
		getDialer GetProxyDialer,
	) {
		if addr != "" {
			t.Fatalf("got %v", addr)
		}
		if _, err := getDialer(); err != nil {
			t.Fatal(err)
		}
	})
}

func TestProxyAddrProduction(t *testing.T) {
	t.Setenv("ALL_PROXY", "socks://127.0.0.1:1080")
	dscope.New(
		modes.ForTest(t).As(modes.ModeProduction),
		new(Module),
		dscope.Provide(configs.NewLoader(nil, "")),
	).Call(func(
		addr ProxyAddr,
		getURL GetProxyURL,
		getDialer GetProxyDialer,
	) {
		if addr != "socks://127.0.0.1:1080" {
			t.Fatalf("got %v", addr)
		}
		u, err := getURL()
		if err != nil {
			t.Fatal(err)
		}
		if u.Scheme != "socks5" {
			t.Fatalf("got %v", u)
		}
		if _, err := getDialer(); err != nil {
			t.Fatal(err)
		}
	})
}

func TestHTTPClientDirect(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, "+++.")
	}))
	defer server.Close()

	dscope.New(
		modes.ForTest(t),
		new(Module),
		dscope.Provide(configs.NewLoader(nil, "")),
	).Fork(
		// unreachable proxy, local addresses must bypass it
		func() ProxyAddr {
			return "socks5://127.0.0.1:1"
		},
	).Call(func(
		client HTTPClient,
	) {
		resp, err := client.Get(server.URL)
		if err != nil {
			t.Fatal(err)
		}
		defer resp.Body.Close()
		body, err := io.ReadAll(resp.Body)
		if err != nil {
			t.Fatal(err)
		}
		if string(body) != "+++." {
			t.Fatalf("got %q", body)
		}
	})
}

func TestHTTPProxy(t *testing.T) {
	var proxied string
	proxyServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		proxied = r.URL.String()
		io.WriteString(w, "-.")
	}))
	defer proxyServer.Close()

	dscope.New(
		modes.ForTest(t),
		new(Module),
		dscope.Provide(configs.NewLoader(nil, "")),
	).Fork(
		func() ProxyAddr {
			return ProxyAddr(proxyServer.URL)
		},
	).Call(func(
		client HTTPClient,
		getDialer GetProxyDialer,
	) {
		if _, err := getDialer(); err != nil {
			t.Fatal(err)
		}
		resp, err := client.Get("http://example.invalid/prog.b")
		if err != nil {
			t.Fatal(err)
		}
		defer resp.Body.Close()
		body, err := io.ReadAll(resp.Body)
		if err != nil {
			t.Fatal(err)
		}
		if string(body) != "-." {
			t.Fatalf("got %q", body)
		}
		if proxied != "http://example.invalid/prog.b" {
			t.Fatalf("got %q", proxied)
		}
	})
}
