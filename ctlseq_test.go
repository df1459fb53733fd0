package emsh

import "testing"

func feedAll(c *ctlseq, bs []byte) (lastEv ctlseqEvent) {
	for _, b := range bs {
		lastEv, _ = c.feed(b)
	}
	return
}

func TestCtlseqPlainByteIsNone(t *testing.T) {
	var c ctlseq
	ev, _ := c.feed('a')
	if ev != ctlseqNone || c.state != ctlseqInit {
		t.Fatalf("feed('a') = (%v, %v), want (NONE, INIT)", ev, c.state)
	}
}

func TestCtlseqCursorForward(t *testing.T) {
	var c ctlseq
	ev := feedAll(&c, []byte{0x1B, '['})
	if ev != ctlseqEvCSI || c.state != ctlseqCSI {
		t.Fatalf("after ESC [: ev=%v state=%v, want CSI/CSI", ev, c.state)
	}
	ev, _ = c.feed('C')
	if ev != ctlseqEvFinal || c.state != ctlseqFinal {
		t.Fatalf("after final C: ev=%v state=%v, want FINAL/FINAL", ev, c.state)
	}
}

func TestCtlseqFinalFoldsBackToInit(t *testing.T) {
	var c ctlseq
	feedAll(&c, []byte{0x1B, '[', 'A'})
	if c.state != ctlseqFinal {
		t.Fatalf("state = %v, want FINAL", c.state)
	}
	ev, _ := c.feed('x')
	if c.state != ctlseqInit {
		t.Fatalf("state after folding = %v, want INIT", c.state)
	}
	if ev != ctlseqNone {
		t.Fatalf("event for 'x' after fold = %v, want NONE", ev)
	}
}

func TestCtlseqParamByteWithSingleDigit(t *testing.T) {
	var c ctlseq
	feedAll(&c, []byte{0x1B, '[', '1', '~'})
	if c.paramByte != '1' {
		t.Fatalf("paramByte = %q, want '1'", c.paramByte)
	}
}

func TestCtlseqParamByteBecomesUnknownSentinel(t *testing.T) {
	var c ctlseq
	feedAll(&c, []byte{0x1B, '[', '1', '0', '~'})
	if c.paramByte != unknownByte {
		t.Fatalf("paramByte = %q, want sentinel 0xFF after two param bytes", c.paramByte)
	}
}

func TestCtlseqIllegalByteInEscReturnsToInit(t *testing.T) {
	var c ctlseq
	c.feed(0x1B)
	ev, _ := c.feed('z')
	if ev != ctlseqEvILSeq || c.state != ctlseqInit {
		t.Fatalf("ev=%v state=%v, want ILSEQ/INIT", ev, c.state)
	}
}

func TestCtlseqPsepOnSeparator(t *testing.T) {
	var c ctlseq
	feedAll(&c, []byte{0x1B, '['})
	_, psep := c.feed('1')
	if psep {
		t.Fatalf("psep true on first digit, want false")
	}
	_, psep = c.feed(';')
	if !psep {
		t.Fatalf("psep false on ';' separator, want true")
	}
}
