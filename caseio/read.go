package caseio

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/routegen/geom"
)

// Read parses a case in either the full or the router-input form. Blank
// lines are ignored. A pin with several access points keeps the first one.
// A case without nets is reported as wired.
func Read(r io.Reader) (*Case, error) {
	p := &parser{sc: bufio.NewScanner(r)}
	p.sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	return p.parse()
}

type parser struct {
	sc     *bufio.Scanner
	line   int
	peeked []string
	eof    bool
}

func (p *parser) parse() (*Case, error) {
	c := &Case{Wired: true}
	var err error
	if c.Width, err = p.header("Width"); err != nil {
		return nil, err
	}
	if c.Height, err = p.header("Height"); err != nil {
		return nil, err
	}
	if c.TotalWL, err = p.count("total_WL"); err != nil {
		return nil, err
	}
	if c.TotalVias, err = p.count("total_via"); err != nil {
		return nil, err
	}
	if c.Layers, err = p.count("Layer"); err != nil {
		return nil, err
	}
	if c.Layers < 1 {
		return nil, p.errorf("no layers")
	}
	for i := 0; i < c.Layers; i++ {
		if _, err = p.keyed(fmt.Sprintf("track%d", i), 3); err != nil {
			return nil, err
		}
	}

	n, err := p.count("Obstacle_num")
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		v, err := p.ints(6)
		if err != nil {
			return nil, err
		}
		c.Obstacles = append(c.Obstacles, geom.Box{Lo: geom.Pt(v[0], v[1], v[2]), Hi: geom.Pt(v[3], v[4], v[5])})
	}

	if n, err = p.count("Net_num"); err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		net, wired, err := p.net()
		if err != nil {
			return nil, err
		}
		if i == 0 {
			c.Wired = wired
		} else if wired != c.Wired {
			return nil, p.errorf("net %d mixes wired and unwired records", net.ID)
		}
		c.Nets = append(c.Nets, net)
	}

	if rest, err := p.next(); err == nil {
		return nil, p.errorf("trailing %q", strings.Join(rest, " "))
	} else if !p.eof {
		return nil, err
	}
	return c, nil
}

func (p *parser) net() (Net, bool, error) {
	var n Net
	var err error
	if n.ID, err = p.count("Net_id"); err != nil {
		return n, false, err
	}
	pins, err := p.count("pin_num")
	if err != nil {
		return n, false, err
	}
	for j := 0; j < pins; j++ {
		if _, err = p.count("pin_id"); err != nil {
			return n, false, err
		}
		aps, err := p.count("ap_num")
		if err != nil {
			return n, false, err
		}
		if aps < 1 {
			return n, false, p.errorf("pin %d of net %d has no access point", j, n.ID)
		}
		for k := 0; k < aps; k++ {
			v, err := p.ints(3)
			if err != nil {
				return n, false, err
			}
			if k == 0 {
				n.Pins = append(n.Pins, geom.Pt(v[0], v[1], v[2]))
			}
		}
	}

	if f, ok := p.peek(); !ok || f[0] != "Via_num" {
		return n, false, nil
	}
	vias, err := p.count("Via_num")
	if err != nil {
		return n, false, err
	}
	for j := 0; j < vias; j++ {
		v, err := p.ints(2)
		if err != nil {
			return n, false, err
		}
		n.Vias = append(n.Vias, Via{X: v[0], Y: v[1]})
	}
	if n.HSegments, err = p.segments("H_segment_num"); err != nil {
		return n, false, err
	}
	if n.VSegments, err = p.segments("V_segment_num"); err != nil {
		return n, false, err
	}
	return n, true, nil
}

func (p *parser) segments(key string) ([]geom.Segment, error) {
	n, err := p.count(key)
	if err != nil {
		return nil, err
	}
	var out []geom.Segment
	for i := 0; i < n; i++ {
		v, err := p.ints(6)
		if err != nil {
			return nil, err
		}
		out = append(out, geom.Segment{v[0], v[1], v[2], v[3], v[4], v[5]})
	}
	return out, nil
}

// header reads "<key> 0 <v>".
func (p *parser) header(key string) (int, error) {
	v, err := p.keyed(key, 2)
	if err != nil {
		return 0, err
	}
	if v[0] != 0 {
		return 0, p.errorf("%s origin %d, want 0", key, v[0])
	}
	if v[1] < 1 {
		return 0, p.errorf("%s %d", key, v[1])
	}
	return v[1], nil
}

// count reads "<key> <n>" with n ≥ 0.
func (p *parser) count(key string) (int, error) {
	v, err := p.keyed(key, 1)
	if err != nil {
		return 0, err
	}
	if v[0] < 0 {
		return 0, p.errorf("negative %s %d", key, v[0])
	}
	return v[0], nil
}

func (p *parser) keyed(key string, n int) ([]int, error) {
	f, err := p.next()
	if err != nil {
		return nil, err
	}
	if f[0] != key {
		return nil, p.errorf("got %q, want %s", f[0], key)
	}
	return p.atoi(f[1:], n)
}

func (p *parser) ints(n int) ([]int, error) {
	f, err := p.next()
	if err != nil {
		return nil, err
	}
	return p.atoi(f, n)
}

func (p *parser) atoi(f []string, n int) ([]int, error) {
	if len(f) != n {
		return nil, p.errorf("got %d values, want %d", len(f), n)
	}
	out := make([]int, n)
	for i, s := range f {
		v, err := strconv.Atoi(s)
		if err != nil {
			return nil, p.errorf("value %q is not an integer", s)
		}
		out[i] = v
	}
	return out, nil
}

// next returns the fields of the next non-blank line.
func (p *parser) next() ([]string, error) {
	if f := p.peeked; f != nil {
		p.peeked = nil
		return f, nil
	}
	for p.sc.Scan() {
		p.line++
		if f := strings.Fields(p.sc.Text()); len(f) > 0 {
			return f, nil
		}
	}
	if err := p.sc.Err(); err != nil {
		return nil, fmt.Errorf("caseio: read: %w", err)
	}
	p.eof = true
	return nil, p.errorf("unexpected end of input")
}

func (p *parser) peek() ([]string, bool) {
	if p.peeked != nil {
		return p.peeked, true
	}
	f, err := p.next()
	if err != nil {
		return nil, false
	}
	p.peeked = f
	return f, true
}

func (p *parser) errorf(format string, args ...any) error {
	return fmt.Errorf("line %d: %s: %w", p.line, fmt.Sprintf(format, args...), ErrMalformed)
}
