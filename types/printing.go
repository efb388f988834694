// The MIT License (MIT)
//
// Copyright (c) 2019 West Damron
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.

package types

import (
	"strconv"
	"strings"
	"sync"
)

// SourceType is a presentation-layer rendering of a Variable, suitable for inclusion
// in an error message (spec §6, "outward interface toSrcType"). It never holds a
// reference back into the Store: once built, it is inert and stable even if the
// solver keeps mutating the graph it was derived from.
type SourceType struct {
	repr string
}

func (s SourceType) String() string { return s.repr }

var srcPrinterPool = sync.Pool{
	New: func() interface{} {
		p := &srcPrinter{
			names:   make(map[Variable]string, 16),
			visited: make(map[Variable]bool, 16),
		}
		return p
	},
}

type srcPrinter struct {
	names   map[Variable]string
	visited map[Variable]bool
	sb      strings.Builder
}

func (p *srcPrinter) release() {
	for k := range p.names {
		delete(p.names, k)
	}
	for k := range p.visited {
		delete(p.visited, k)
	}
	p.sb.Reset()
	srcPrinterPool.Put(p)
}

func (p *srcPrinter) nextName() string {
	i := len(p.names)
	if i < 26 {
		return "'" + string(byte('a'+i))
	}
	return "'" + string(byte('a'+i%26)) + strconv.Itoa(i/26)
}

func (p *srcPrinter) nameFor(v Variable) string {
	if name, ok := p.names[v]; ok {
		return name
	}
	name := p.nextName()
	p.names[v] = name
	return name
}

// ToSrcType converts v into a SourceType for error reporting. It MUST handle cycles:
// if the walk revisits a representative already on the current path, it substitutes a
// placeholder rather than recursing forever, and never mutates store (spec §4.2).
func ToSrcType(store *Store, v Variable) SourceType {
	p := srcPrinterPool.Get().(*srcPrinter)
	srcType(p, store, v, false)
	repr := p.sb.String()
	p.release()
	return SourceType{repr: repr}
}

func srcType(p *srcPrinter, store *Store, v Variable, simple bool) {
	r := store.Find(v)
	if p.visited[r] {
		p.sb.WriteString("<cycle>")
		return
	}
	p.visited[r] = true
	defer delete(p.visited, r)

	d := store.Descriptor(r)
	switch c := d.Content.(type) {
	case Flex:
		if c.Name != "" {
			p.sb.WriteString("'" + c.Name)
			return
		}
		p.sb.WriteString(p.nameFor(r))

	case Rigid:
		if c.Name != "" {
			p.sb.WriteString(c.Name)
			return
		}
		p.sb.WriteString(p.nameFor(r))

	case Alias:
		p.sb.WriteString(c.QualifiedName)
		if len(c.Args) == 0 {
			return
		}
		p.sb.WriteByte('[')
		for i, a := range c.Args {
			if i > 0 {
				p.sb.WriteString(", ")
			}
			srcType(p, store, a.Var, false)
		}
		p.sb.WriteByte(']')

	case Structure:
		srcTerm(p, store, c.Term, simple)

	case Error:
		p.sb.WriteString("<error: " + c.Reason + ">")
	}
}

func srcTerm(p *srcPrinter, store *Store, t Term, simple bool) {
	switch t := t.(type) {
	case App1:
		p.sb.WriteString(t.Name)
		if len(t.Args) == 0 {
			return
		}
		p.sb.WriteByte('[')
		for i, a := range t.Args {
			if i > 0 {
				p.sb.WriteString(", ")
			}
			srcType(p, store, a, false)
		}
		p.sb.WriteByte(']')

	case Fun1:
		if simple {
			p.sb.WriteByte('(')
		}
		srcType(p, store, t.Arg, true)
		p.sb.WriteString(" -> ")
		srcType(p, store, t.Ret, false)
		if simple {
			p.sb.WriteByte(')')
		}

	case EmptyRecord1:
		p.sb.WriteString("{}")

	case Record1:
		p.sb.WriteByte('{')
		i := 0
		t.Fields.Range(func(name string, fv Variable) bool {
			if i > 0 {
				p.sb.WriteString(", ")
			}
			p.sb.WriteString(name)
			p.sb.WriteString(" : ")
			srcType(p, store, fv, false)
			i++
			return true
		})
		ext := store.Find(t.Extension)
		if !isEmptyRecordStructure(store.Descriptor(ext)) {
			p.sb.WriteString(" | ")
			srcType(p, store, t.Extension, false)
		}
		p.sb.WriteByte('}')
	}
}

func isEmptyRecordStructure(d *Descriptor) bool {
	s, ok := d.Content.(Structure)
	if !ok {
		return false
	}
	_, ok = s.Term.(EmptyRecord1)
	return ok
}
