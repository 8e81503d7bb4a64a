package images

import (
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/fxamacker/cbor/v2"
	"github.com/reusee/e5"
	"github.com/reusee/tapeopt/ir"
)

var wrap = e5.Wrap.With(e5.WrapStacktrace)

const (
	Magic   = "tapeopt"
	Version = 1
)

var (
	ErrBadMagic = errors.New("not a program image")
	ErrVersion  = errors.New("unsupported image version")
	ErrCorrupt  = errors.New("corrupt program image")
)

var (
	encMode cbor.EncMode
	decMode cbor.DecMode
)

func init() {
	em, err := cbor.CanonicalEncOptions().EncMode()
	if err != nil {
		panic(fmt.Sprintf("images: failed to create CBOR enc mode: %v", err))
	}
	encMode = em

	// every loop level nests a body array and a node map
	dm, err := cbor.DecOptions{
		MaxNestedLevels:  2*ir.MaxDepth + 8,
		MaxArrayElements: math.MaxInt32,
	}.DecMode()
	if err != nil {
		panic(fmt.Sprintf("images: failed to create CBOR dec mode: %v", err))
	}
	decMode = dm
}

type image struct {
	Magic   string `cbor:"1,keyasint"`
	Version uint   `cbor:"2,keyasint"`
	Program []node `cbor:"3,keyasint"`
}

type node struct {
	Op     ir.Op  `cbor:"1,keyasint"`
	Offset int    `cbor:"2,keyasint,omitempty"`
	Value  uint8  `cbor:"3,keyasint,omitempty"`
	Step   int    `cbor:"4,keyasint,omitempty"`
	High   int    `cbor:"5,keyasint,omitempty"`
	Low    int    `cbor:"6,keyasint,omitempty"`
	Body   []node `cbor:"7,keyasint,omitempty"`
}

func toNodes(prog ir.Program) []node {
	ret := make([]node, 0, len(prog))
	for _, inst := range prog {
		ret = append(ret, node{
			Op:     inst.Op,
			Offset: inst.Offset,
			Value:  inst.Value,
			Step:   inst.Step,
			High:   inst.High,
			Low:    inst.Low,
			Body:   toNodes(inst.Body),
		})
	}
	return ret
}

func fromNodes(nodes []node, depth int) (ir.Program, error) {
	if depth > ir.MaxDepth {
		return nil, fmt.Errorf("%w: loops nested deeper than %d", ErrCorrupt, ir.MaxDepth)
	}
	ret := make(ir.Program, 0, len(nodes))
	for _, n := range nodes {
		if n.Op < ir.OpStart || n.Op > ir.OpOutput {
			return nil, fmt.Errorf("%w: unknown instruction %d", ErrCorrupt, n.Op)
		}
		hasBody := n.Op == ir.OpLoop || n.Op == ir.OpFixedLoop
		if !hasBody && len(n.Body) > 0 {
			return nil, fmt.Errorf("%w: %v with body", ErrCorrupt, n.Op)
		}
		if n.Op == ir.OpStart && depth > 0 {
			return nil, fmt.Errorf("%w: nested start", ErrCorrupt)
		}
		body, err := fromNodes(n.Body, depth+1)
		if err != nil {
			return nil, err
		}
		if !hasBody {
			body = nil
		}
		ret = append(ret, ir.Inst{
			Op:     n.Op,
			Offset: n.Offset,
			Value:  n.Value,
			Step:   n.Step,
			High:   n.High,
			Low:    n.Low,
			Body:   body,
		})
	}
	return ret, nil
}

// Encode returns the canonical CBOR image of prog. Equal programs encode to
// equal bytes.
func Encode(prog ir.Program) ([]byte, error) {
	bs, err := encMode.Marshal(image{
		Magic:   Magic,
		Version: Version,
		Program: toNodes(prog),
	})
	if err != nil {
		return nil, wrap(err)
	}
	return bs, nil
}

func Decode(data []byte) (ir.Program, error) {
	var img image
	if err := decMode.Unmarshal(data, &img); err != nil {
		return nil, decodeError(err)
	}
	return check(img)
}

func Write(w io.Writer, prog ir.Program) error {
	if err := encMode.NewEncoder(w).Encode(image{
		Magic:   Magic,
		Version: Version,
		Program: toNodes(prog),
	}); err != nil {
		return wrap(err)
	}
	return nil
}

func Read(r io.Reader) (ir.Program, error) {
	var img image
	if err := decMode.NewDecoder(r).Decode(&img); err != nil {
		return nil, decodeError(err)
	}
	return check(img)
}

func check(img image) (ir.Program, error) {
	if img.Magic != Magic {
		return nil, wrap(ErrBadMagic)
	}
	if img.Version != Version {
		return nil, wrap(fmt.Errorf("%w: %d", ErrVersion, img.Version))
	}
	prog, err := fromNodes(img.Program, 0)
	if err != nil {
		return nil, wrap(err)
	}
	if err := verify(prog); err != nil {
		return nil, wrap(err)
	}
	return prog, nil
}

// decodeError tells a cut-off image from data that is not an image at all.
func decodeError(err error) error {
	if errors.Is(err, io.ErrUnexpectedEOF) {
		return wrap(fmt.Errorf("%w: %w", ErrCorrupt, err))
	}
	return wrap(fmt.Errorf("%w: %w", ErrBadMagic, err))
}
