// Package storage provides a persistent entry.Device on top of BadgerDB.
//
// The device is a fixed-size byte array split into pages. Each page is one
// Badger key ("page/" + 4-byte big-endian page number); pages never written
// read back as zeros, like an erased EEPROM. The device size and page size
// are recorded under "meta/geometry" on first open and checked on reopen.
//
// InMemoryConfig gives a throwaway device for tests.
package storage
