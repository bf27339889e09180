// Copyright 2021 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package ssd1315

import (
	"periph.io/x/conn/v3"
)

const (
	i2cCmd  = 0x00 // I²C transaction has a single command byte
	i2cData = 0x40 // I²C transaction has a stream of data bytes

	// Largest data block the transport reliably supports per transaction.
	maxDataChunk = 32
)

// channel carries the SSD1315 control byte protocol.
//
// It exists as an interface so tests can record what the driver puts on the
// wire without a bus.
type channel interface {
	sendCommand(cmds ...byte) error
	sendData(data []byte) error
}

// i2cChannel sends commands and data over an I²C connection.
type i2cChannel struct {
	c conn.Conn
}

// sendCommand writes each command byte in its own transaction, prefixed with
// the command control byte.
func (ch *i2cChannel) sendCommand(cmds ...byte) error {
	for _, cmd := range cmds {
		if err := ch.c.Tx([]byte{i2cCmd, cmd}, nil); err != nil {
			return err
		}
	}
	return nil
}

// sendData writes the payload in chunks of at most maxDataChunk bytes, each
// prefixed with the data control byte. Order is preserved.
func (ch *i2cChannel) sendData(data []byte) error {
	for len(data) != 0 {
		n := len(data)
		if n > maxDataChunk {
			n = maxDataChunk
		}
		if err := ch.c.Tx(append([]byte{i2cData}, data[:n]...), nil); err != nil {
			return err
		}
		data = data[n:]
	}
	return nil
}
