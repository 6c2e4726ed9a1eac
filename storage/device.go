package storage

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/dgraph-io/badger/v4"

	"github.com/katalvlaran/cartroute/entry"
)

// Sentinel errors.
var (
	ErrNoPath      = errors.New("storage: path is required for a persistent device")
	ErrGeometry    = errors.New("storage: device geometry mismatch")
	ErrBadGeometry = errors.New("storage: size and page size must be positive")
	ErrOutOfRange  = errors.New("storage: access outside device")
)

var metaKey = []byte("meta/geometry")

// Config holds configuration for a Device.
type Config struct {
	// Path is the Badger directory. Ignored when InMemory is true.
	Path string

	// InMemory keeps everything in RAM.
	InMemory bool

	// SyncWrites fsyncs every write transaction.
	SyncWrites bool

	// Size is the device capacity in bytes.
	Size int64

	// PageSize is the number of bytes per Badger value.
	PageSize int

	// Logger receives Badger's internal logs. Nil disables them.
	Logger *slog.Logger
}

// DefaultConfig returns a durable 4 KiB device config at path.
func DefaultConfig(path string) Config {
	return Config{
		Path:       path,
		SyncWrites: true,
		Size:       entry.DeviceSize,
		PageSize:   64,
	}
}

// InMemoryConfig returns a 4 KiB device config for tests.
func InMemoryConfig() Config {
	return Config{
		InMemory: true,
		Size:     entry.DeviceSize,
		PageSize: 64,
	}
}

// badgerLogger adapts slog.Logger to Badger's Logger interface.
type badgerLogger struct {
	logger *slog.Logger
}

func (l *badgerLogger) Errorf(format string, args ...interface{}) {
	l.logger.Error(fmt.Sprintf(format, args...))
}

func (l *badgerLogger) Warningf(format string, args ...interface{}) {
	l.logger.Warn(fmt.Sprintf(format, args...))
}

func (l *badgerLogger) Infof(format string, args ...interface{}) {
	l.logger.Info(fmt.Sprintf(format, args...))
}

func (l *badgerLogger) Debugf(format string, args ...interface{}) {
	l.logger.Debug(fmt.Sprintf(format, args...))
}

// Device is a paged byte device persisted in Badger. It implements
// entry.Device and is safe for concurrent use.
type Device struct {
	db   *badger.DB
	size int64
	page int
}

var _ entry.Device = (*Device)(nil)

// Open opens or creates a device.
func Open(cfg Config) (*Device, error) {
	if cfg.Size <= 0 || cfg.PageSize <= 0 {
		return nil, fmt.Errorf("size %d, page %d: %w", cfg.Size, cfg.PageSize, ErrBadGeometry)
	}
	if !cfg.InMemory && cfg.Path == "" {
		return nil, ErrNoPath
	}

	var opts badger.Options
	if cfg.InMemory {
		opts = badger.DefaultOptions("").WithInMemory(true)
	} else {
		if err := os.MkdirAll(cfg.Path, 0750); err != nil {
			return nil, fmt.Errorf("create device directory %s: %w", cfg.Path, err)
		}
		opts = badger.DefaultOptions(cfg.Path)
	}
	opts = opts.WithSyncWrites(cfg.SyncWrites).WithNumVersionsToKeep(1)
	if cfg.Logger != nil {
		opts = opts.WithLogger(&badgerLogger{logger: cfg.Logger.With("component", "badger")})
	} else {
		opts = opts.WithLogger(nil)
	}

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open badger device: %w", err)
	}
	d := &Device{db: db, size: cfg.Size, page: cfg.PageSize}
	if err = d.checkGeometry(); err != nil {
		_ = db.Close()
		return nil, err
	}

	return d, nil
}

func (d *Device) checkGeometry() error {
	want := make([]byte, 12)
	binary.BigEndian.PutUint64(want[:8], uint64(d.size))
	binary.BigEndian.PutUint32(want[8:], uint32(d.page))

	return d.db.Update(func(txn *badger.Txn) error {
		item, err := txn.Get(metaKey)
		if errors.Is(err, badger.ErrKeyNotFound) {
			return txn.Set(metaKey, want)
		}
		if err != nil {
			return err
		}
		return item.Value(func(got []byte) error {
			if string(got) != string(want) {
				return fmt.Errorf("stored %x, configured %x: %w", got, want, ErrGeometry)
			}
			return nil
		})
	})
}

// Close releases the underlying database.
func (d *Device) Close() error {
	return d.db.Close()
}

// Size returns the device capacity.
func (d *Device) Size() int64 { return d.size }

// PageSize returns the bytes stored per key.
func (d *Device) PageSize() int { return d.page }

func pageKey(n int64) []byte {
	k := make([]byte, 5+4)
	copy(k, "page/")
	binary.BigEndian.PutUint32(k[5:], uint32(n))

	return k
}

// loadPage copies page n into dst (len == page size); missing pages are zero.
func (d *Device) loadPage(txn *badger.Txn, n int64, dst []byte) error {
	item, err := txn.Get(pageKey(n))
	if errors.Is(err, badger.ErrKeyNotFound) {
		clear(dst)
		return nil
	}
	if err != nil {
		return err
	}

	return item.Value(func(val []byte) error {
		clear(dst)
		copy(dst, val)
		return nil
	})
}

// ReadAt implements io.ReaderAt. Reads past the end return io.EOF.
func (d *Device) ReadAt(p []byte, off int64) (int, error) {
	if off < 0 {
		return 0, fmt.Errorf("read at %d: %w", off, ErrOutOfRange)
	}
	if off >= d.size {
		return 0, io.EOF
	}
	want := p
	if rem := d.size - off; int64(len(want)) > rem {
		want = want[:rem]
	}

	buf := make([]byte, d.page)
	var read int
	err := d.db.View(func(txn *badger.Txn) error {
		for read < len(want) {
			pos := off + int64(read)
			n, in := pos/int64(d.page), int(pos%int64(d.page))
			if err := d.loadPage(txn, n, buf); err != nil {
				return err
			}
			read += copy(want[read:], buf[in:])
		}
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("read %d bytes at %d: %w", len(p), off, err)
	}
	if read < len(p) {
		return read, io.EOF
	}

	return read, nil
}

// WriteAt implements io.WriterAt. A write is one Badger transaction, so it
// lands entirely or not at all. Writes never grow the device.
func (d *Device) WriteAt(p []byte, off int64) (int, error) {
	if off < 0 || off+int64(len(p)) > d.size {
		return 0, fmt.Errorf("write %d bytes at %d of %d: %w", len(p), off, d.size, ErrOutOfRange)
	}

	var written int
	err := d.db.Update(func(txn *badger.Txn) error {
		for written < len(p) {
			pos := off + int64(written)
			n, in := pos/int64(d.page), int(pos%int64(d.page))
			page := make([]byte, d.page)
			if err := d.loadPage(txn, n, page); err != nil {
				return err
			}
			c := copy(page[in:], p[written:])
			if err := txn.Set(pageKey(n), page); err != nil {
				return err
			}
			written += c
		}
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("write %d bytes at %d: %w", len(p), off, err)
	}

	return written, nil
}

// Erase drops every page, returning the device to all zeros.
func (d *Device) Erase() error {
	return d.db.DropPrefix([]byte("page/"))
}
