package mico

import "strings"

const (
	separator  = ": "
	itemMarker = "- "
)

// state is the parser's position in the two-state line machine.
type state uint8

const (
	// stateTop means no list is open.
	stateTop state = iota
	// stateList means a list key was seen and "- " lines extend it.
	stateList
)

// lineParser builds a Document one line at a time. It keeps no state
// besides the output and the currently open list.
type lineParser struct {
	state state
	key   string
	items []string
	doc   Document
}

// feed consumes one raw input line. Blank lines are ignored regardless of
// state.
func (p *lineParser) feed(line string) {
	line = trim(line)
	if line == "" {
		return
	}
	p.step(line)
}

// step is the single transition function of the machine. line is trimmed
// and non-empty.
func (p *lineParser) step(line string) {
	switch p.state {
	case stateList:
		if item, ok := strings.CutPrefix(line, itemMarker); ok {
			p.items = append(p.items, trimLeft(item))
			return
		}
		p.closeList()
		p.step(line)
	case stateTop:
		if key, val, ok := strings.Cut(line, separator); ok {
			p.doc = append(p.doc, Entry{Key: trimRight(key), Value: Value{kind: StringKind, text: trimLeft(val)}})
			return
		}
		p.state = stateList
		p.key = line
		p.items = []string{}
	}
}

func (p *lineParser) closeList() {
	p.doc = append(p.doc, Entry{Key: p.key, Value: Value{kind: ListKind, items: p.items}})
	p.state = stateTop
	p.key = ""
	p.items = nil
}

// finish closes a pending list, even an empty one, and returns the
// Document built so far.
func (p *lineParser) finish() Document {
	if p.state == stateList {
		p.closeList()
	}
	doc := p.doc
	p.doc = nil
	return doc
}
