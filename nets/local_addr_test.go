package nets

import (
	"testing"

	"github.com/reusee/dscope"
	"github.com/reusee/tapeopt/configs"
	"github.com/reusee/tapeopt/modes"
)

func TestIsLocalAddr(t *testing.T) {
	dscope.New(
		modes.ForTest(t),
		new(Module),
		dscope.Provide(configs.NewLoader(nil, "")),
	).Call(func(
		isLocalAddr IsLocalAddr,
	) {
		for addr, want := range map[string]bool{
			"127.0.0.1:10000": true,
			"localhost:80":    true,
			"[::1]:443":       true,
			"10.1.2.3":        true,
			"192.168.0.1:22":  true,
			"8.8.8.8:53":      false,
			"[2001:db8::1]:1": false,
		} {
			yes, err := isLocalAddr(addr)
			if err != nil {
				t.Fatal(err)
			}
			if yes != want {
				t.Fatalf("%s: got %v", addr, yes)
			}
		}
	})
}
