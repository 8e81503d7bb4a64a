package machines

import (
	"context"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/reusee/tapeopt/images"
	"github.com/reusee/tapeopt/ir"
)

// WriteImage saves prog to path so it can be run later without compiling.
func (m *Machine) WriteImage(ctx context.Context, path string, prog ir.Program) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return wrap(err)
	}
	defer func() {
		if e := f.Close(); e != nil && err == nil {
			err = wrap(e)
		}
	}()
	if err := images.Write(f, prog); err != nil {
		return err
	}
	m.logger.InfoContext(ctx, "image written",
		"path", path,
		"instructions", humanize.Comma(int64(prog.Len())),
	)
	return nil
}

func (m *Machine) ReadImage(ctx context.Context, path string) (ir.Program, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, wrap(err)
	}
	defer f.Close()
	prog, err := images.Read(f)
	if err != nil {
		return nil, err
	}
	m.logger.InfoContext(ctx, "image loaded",
		"path", path,
		"instructions", humanize.Comma(int64(prog.Len())),
	)
	if m.dumpIR {
		if err := ir.Fprint(m.dumpOutput, prog); err != nil {
			return nil, wrap(err)
		}
	}
	return prog, nil
}
