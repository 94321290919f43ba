// Package pms provides L0 protocol support for PMS5003T/PMS3003 dust sensors.
package pms

// The sensor talks over a 9600 8N1 serial link without flow control.
// In passive mode the host sends a request command and the sensor answers
// with a single frame:
//
//   42 4D LL LL [fields ...] CC CC
//
// All multi-byte fields are big-endian. LL LL counts the bytes following the
// length field up to and including the checksum CC CC, which is the sum of
// all preceding bytes of the frame modulo 65536.
//
// The wire protocol does not carry a device type. A declared length of 28
// identifies the extended layout (PMS5003T, with temperature and humidity),
// anything else is treated as the compact layout (PMS3003).
//
// Frame acquisition is synchronous: Sensor.Read polls the byte source until a
// frame is complete or the time budget of the current phase expires. There is
// no cancellation and no retry inside a read.
