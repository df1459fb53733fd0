package emsh

// ctlseqState is one of the six ECMA-48 recognizer states.
type ctlseqState int

const (
	ctlseqInit ctlseqState = iota
	ctlseqEsc
	ctlseqCSI
	ctlseqParam
	ctlseqInterm
	ctlseqFinal
)

// ctlseqEvent is the classification of a single fed byte.
type ctlseqEvent int

const (
	ctlseqNone ctlseqEvent = iota
	ctlseqEvESC
	ctlseqEvCSI
	ctlseqEvParam
	ctlseqEvInterm
	ctlseqEvFinal
	ctlseqEvILSeq
)

// unknownByte is the sentinel stored for "more than one byte seen" in
// the first-parameter/first-intermediate slots.
const unknownByte byte = 0xFF

// ctlseq is the recognizer's state, carried across feed calls. The zero
// value is a valid recognizer sitting in ctlseqInit.
type ctlseq struct {
	state       ctlseqState
	paramByte   byte
	paramCount  int
	intermByte  byte
	intermCount int
}

func isParamByte(b byte) bool { return b >= 0x30 && b <= 0x3F }
func isIntermByte(b byte) bool { return b >= 0x20 && b <= 0x2F }
func isFinalByte(b byte) bool  { return b >= 0x40 && b <= 0x7E }

// feed advances the recognizer by one byte, returning the event it
// produced and whether a parameter sub-string terminated on this byte
// (psep). Reaching FINAL folds back to INIT on the very next call.
func (c *ctlseq) feed(b byte) (ev ctlseqEvent, psep bool) {
	if c.state == ctlseqFinal {
		c.state = ctlseqInit
	}

	switch c.state {
	case ctlseqInit:
		if b == 0x1B {
			c.state = ctlseqEsc
			return ctlseqEvESC, false
		}
		return ctlseqNone, false

	case ctlseqEsc:
		if b == '[' {
			c.state = ctlseqCSI
			c.paramByte = 0
			c.paramCount = 0
			c.intermByte = 0
			c.intermCount = 0
			return ctlseqEvCSI, false
		}
		c.state = ctlseqInit
		return ctlseqEvILSeq, false

	case ctlseqCSI:
		switch {
		case isParamByte(b):
			c.state = ctlseqParam
			c.recordParam(b)
			return ctlseqEvParam, b == ';'
		case isIntermByte(b):
			c.state = ctlseqInterm
			c.recordInterm(b)
			return ctlseqEvInterm, false
		case isFinalByte(b):
			c.state = ctlseqFinal
			return ctlseqEvFinal, false
		default:
			c.state = ctlseqInit
			return ctlseqEvILSeq, false
		}

	case ctlseqParam:
		switch {
		case isParamByte(b):
			c.recordParam(b)
			return ctlseqNone, b == ';'
		case isIntermByte(b):
			c.state = ctlseqInterm
			c.recordInterm(b)
			return ctlseqEvInterm, true
		case isFinalByte(b):
			c.state = ctlseqFinal
			return ctlseqEvFinal, true
		default:
			c.state = ctlseqInit
			return ctlseqEvILSeq, true
		}

	case ctlseqInterm:
		switch {
		case isIntermByte(b):
			return ctlseqNone, false
		case isFinalByte(b):
			c.state = ctlseqFinal
			return ctlseqEvFinal, false
		default:
			c.state = ctlseqInit
			return ctlseqEvILSeq, false
		}
	}

	c.state = ctlseqInit
	return ctlseqEvILSeq, false
}

func (c *ctlseq) recordParam(b byte) {
	if c.paramCount == 0 {
		c.paramByte = b
	} else {
		c.paramByte = unknownByte
	}
	c.paramCount++
}

func (c *ctlseq) recordInterm(b byte) {
	if c.intermCount == 0 {
		c.intermByte = b
	} else {
		c.intermByte = unknownByte
	}
	c.intermCount++
}
