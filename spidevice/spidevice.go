// Package spidevice probes an SPI character device with a single
// full-duplex transfer. It exists to give the console's "spi" example
// command something real to exercise: an embedded shell built on top
// of emsh is exactly the kind of target that also wants to poke a
// sensor over SPI from a command line.
package spidevice

import (
	"reflect"
	"syscall"
	"unsafe"

	ioctl "github.com/daedaluz/goioctl"
)

const spiIOCMagic = 'k'

type spiIOCTransfer struct {
	txBuf uint64
	rxBuf uint64

	len     uint32
	speedHz uint32

	delayUsecs    uint16
	bitsPerWord   uint8
	csChange      uint8
	txNBits       uint8
	rxNBits       uint8
	wordDelayUsec uint8
	pad           uint8
}

var (
	spiIOCWRMaxSpeedHz   = ioctl.IOW(spiIOCMagic, 4, 4)
	spiIOCWRBitsPerWord  = ioctl.IOW(spiIOCMagic, 3, 1)
	spiIOCWRMode32       = ioctl.IOW(spiIOCMagic, 5, 4)
	spiIOCMessage        = ioctl.IOW(spiIOCMagic, 0, unsafe.Sizeof(spiIOCTransfer{}))
)

// Mode is the SPI clock-polarity/phase mode (SPI_MODE_0..SPI_MODE_3).
type Mode uint32

// Config describes how to drive the bus for a Probe call.
type Config struct {
	Mode      Mode
	Bits      uint8
	SpeedHz   uint32
	DelayUsec uint16
}

// Probe opens path, configures the bus per cfg, and performs a single
// full-duplex transfer: tx is written out while an equal-length
// response is clocked in and returned.
func Probe(path string, cfg Config, tx []byte) ([]byte, error) {
	fd, err := syscall.Open(path, syscall.O_RDWR, 0)
	if err != nil {
		return nil, err
	}
	defer syscall.Close(fd)

	speed := cfg.SpeedHz
	if err := ioctl.Ioctl(fd, spiIOCWRMaxSpeedHz, uintptr(unsafe.Pointer(&speed))); err != nil {
		return nil, err
	}
	bits := cfg.Bits
	if err := ioctl.Ioctl(fd, spiIOCWRBitsPerWord, uintptr(unsafe.Pointer(&bits))); err != nil {
		return nil, err
	}
	mode := cfg.Mode
	if err := ioctl.Ioctl(fd, spiIOCWRMode32, uintptr(unsafe.Pointer(&mode))); err != nil {
		return nil, err
	}

	rx := make([]byte, len(tx))
	txHeader := (*reflect.SliceHeader)(unsafe.Pointer(&tx))
	rxHeader := (*reflect.SliceHeader)(unsafe.Pointer(&rx))
	xfer := &spiIOCTransfer{
		txBuf:       uint64(txHeader.Data),
		rxBuf:       uint64(rxHeader.Data),
		len:         uint32(txHeader.Len),
		speedHz:     cfg.SpeedHz,
		delayUsecs:  cfg.DelayUsec,
		bitsPerWord: cfg.Bits,
	}
	if err := ioctl.Ioctl(fd, spiIOCMessage, uintptr(unsafe.Pointer(xfer))); err != nil {
		return nil, err
	}
	return rx, nil
}
