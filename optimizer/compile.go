package optimizer

import "github.com/reusee/tapeopt/ir"

// Compile translates source bytes into an optimized program. Bytes other
// than the eight operators are ignored. Unbalanced brackets are tolerated:
// a stray ']' ends translation at that nesting level and an unterminated '['
// runs to the end of the source.
func Compile(src []byte) ir.Program {
	p := &parser{
		src: src,
	}
	prog := p.block(ir.Program{ir.Start()})
	return hoist(prog)
}

type parser struct {
	src []byte
	pos int
}

// block translates instructions until the matching ']' or the end of input,
// appending to out.
func (p *parser) block(out ir.Program) ir.Program {
	offset := 0

loop:
	for p.pos < len(p.src) {
		switch p.src[p.pos] {

		case '+', '-':
			sum := p.munch('+', '-')
			out = addInst(out, uint8(sum), offset)
			continue

		case '>', '<':
			offset += p.munch('>', '<')
			continue

		case ',':
			out = append(out, ir.Input(offset))

		case '.':
			out = append(out, ir.Output(offset))

		case '[':
			p.pos++
			body := p.block(nil)
			out = loopInst(out, body, &offset)
			continue

		case ']':
			p.pos++
			break loop

		}
		p.pos++
	}

	return moveInst(out, &offset)
}

// munch consumes a run of inc/dec bytes and returns the net count.
// Other bytes between them are skipped over, as they are comments.
func (p *parser) munch(inc, dec byte) int {
	sum := 0
	for ; p.pos < len(p.src); p.pos++ {
		switch p.src[p.pos] {
		case inc:
			sum++
		case dec:
			sum--
		case '+', '-', '<', '>', ',', '.', '[', ']':
			return sum
		}
	}
	return sum
}
