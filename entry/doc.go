// Package entry stores delivery records on a small byte-addressable device.
//
// Two fixed-width record kinds live in separate regions of the device:
//
//	PreEntry   256 bytes  dict | ttd (2, big-endian) | flags | desc (252)
//	PostEntry    8 bytes  dict | prio | eid | oid | status | since (3, big-endian)
//
// A PreEntry describes a pending delivery, a PostEntry its outcome. The
// post record carries a derived priority that feeds the route planner's
// per-location priorities.
//
// The default layout matches a 4 KiB EEPROM: pre records in 0x000-0xBFF,
// post records in 0xC00-0xF9B. Each region is an append-only pointer between
// inclusive bounds; an all-zero record reads as erased.
//
// Any io.ReaderAt + io.WriterAt with a known size can back a Manager:
// MemDevice for RAM, storage.Device for BadgerDB.
package entry
