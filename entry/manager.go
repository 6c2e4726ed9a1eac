package entry

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
)

// Manager appends and reads records on a Device using the default layout.
// It is not safe for concurrent use.
type Manager struct {
	dev  Device
	pre  Region
	post Region
	log  *slog.Logger
}

// NewManager opens the default layout on dev and resumes both append
// pointers after the last non-erased record. A nil logger discards output.
func NewManager(dev Device, logger *slog.Logger) (*Manager, error) {
	if dev.Size() < int64(PostHi)+1 {
		return nil, fmt.Errorf("size %d, need %d: %w", dev.Size(), int(PostHi)+1, ErrDeviceSize)
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	m := &Manager{
		dev:  dev,
		pre:  NewRegion(PreLo, PreHi),
		post: NewRegion(PostLo, PostHi),
		log:  logger.With("component", "entry"),
	}
	if err := m.recover(&m.pre, PreSize); err != nil {
		return nil, err
	}
	if err := m.recover(&m.post, PostSize); err != nil {
		return nil, err
	}

	return m, nil
}

// recover advances r past every leading non-erased record.
func (m *Manager) recover(r *Region, size int) error {
	buf := make([]byte, size)
	var (
		i    int
		addr uint16
		err  error
	)
	for i = 0; i < r.Capacity(size); i++ {
		addr, _ = r.Slot(i, size)
		if err = m.read(addr, buf); err != nil {
			return err
		}
		if isErased(buf) {
			break
		}
	}

	return r.Set(r.Lo + uint16(i*size))
}

// WritePre appends a pending delivery and returns its address.
func (m *Manager) WritePre(pre PreEntry) (uint16, error) {
	b, _ := pre.MarshalBinary()
	return m.write(&m.pre, "pre", b)
}

// WritePost appends a delivery outcome and returns its address.
func (m *Manager) WritePost(post PostEntry) (uint16, error) {
	b, err := post.MarshalBinary()
	if err != nil {
		return 0, err
	}

	return m.write(&m.post, "post", b)
}

// Record transmutes pre into an outcome record and appends it.
func (m *Manager) Record(pre PreEntry, eid, oid uint8, status Status) (PostEntry, error) {
	if !status.Valid() {
		return PostEntry{}, fmt.Errorf("record %d: %w", uint8(status), ErrBadStatus)
	}
	post := Transmute(pre, eid, oid, status)
	if _, err := m.WritePost(post); err != nil {
		return PostEntry{}, err
	}

	return post, nil
}

func (m *Manager) write(r *Region, region string, b []byte) (uint16, error) {
	from := r.Addr
	to := int(from) + len(b) - 1
	log := m.log.With(
		slog.String("region", region),
		slog.String("span", fmt.Sprintf("%#03x-%#03x", from, to)),
	)

	// An all-zero record reads back as the end of the region.
	if isErased(b) {
		log.Error("write aborted: blank record")
		return 0, fmt.Errorf("%s write at %#03x: %w", region, from, ErrBlank)
	}
	if !r.Fits(len(b)) {
		log.Error("write aborted: out of bounds")
		return 0, fmt.Errorf("%s write at %#03x: %w", region, from, ErrOutOfBounds)
	}

	head := make([]byte, 1)
	if err := m.read(from, head); err == nil && head[0] != 0 {
		log.Warn("write potentially overwriting data")
	}

	if _, err := m.dev.WriteAt(b, int64(from)); err != nil {
		log.Error("write failed", slog.Any("error", err))
		return 0, fmt.Errorf("%s write at %#03x: %w", region, from, err)
	}
	if err := r.Set(from + uint16(len(b))); err != nil {
		return 0, err
	}
	log.Info("write ok")

	return from, nil
}

func (m *Manager) read(addr uint16, buf []byte) error {
	n, err := m.dev.ReadAt(buf, int64(addr))
	if n == len(buf) {
		return nil
	}
	if err == nil || errors.Is(err, io.EOF) {
		err = io.ErrUnexpectedEOF
	}

	return fmt.Errorf("read %d bytes at %#03x: %w", len(buf), addr, err)
}

// PreCount returns the number of pending records written.
func (m *Manager) PreCount() int { return int(m.pre.Addr-m.pre.Lo) / PreSize }

// PostCount returns the number of outcome records written.
func (m *Manager) PostCount() int { return int(m.post.Addr-m.post.Lo) / PostSize }

// ReadPre returns pending record i.
func (m *Manager) ReadPre(i int) (PreEntry, error) {
	var pre PreEntry
	if i < 0 || i >= m.PreCount() {
		return pre, fmt.Errorf("pre %d of %d: %w", i, m.PreCount(), ErrIndex)
	}
	addr, _ := m.pre.Slot(i, PreSize)
	buf := make([]byte, PreSize)
	if err := m.read(addr, buf); err != nil {
		return pre, err
	}
	err := pre.UnmarshalBinary(buf)

	return pre, err
}

// ReadPost returns outcome record i.
func (m *Manager) ReadPost(i int) (PostEntry, error) {
	var post PostEntry
	if i < 0 || i >= m.PostCount() {
		return post, fmt.Errorf("post %d of %d: %w", i, m.PostCount(), ErrIndex)
	}
	addr, _ := m.post.Slot(i, PostSize)
	buf := make([]byte, PostSize)
	if err := m.read(addr, buf); err != nil {
		return post, err
	}
	err := post.UnmarshalBinary(buf)

	return post, err
}

// Posts returns every outcome record in write order.
func (m *Manager) Posts() ([]PostEntry, error) {
	out := make([]PostEntry, 0, m.PostCount())
	for i := 0; i < m.PostCount(); i++ {
		p, err := m.ReadPost(i)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}

	return out, nil
}

// Priorities returns, per location, the highest priority among outcome
// records that are not yet successful.
func (m *Manager) Priorities() (map[uint8]uint8, error) {
	posts, err := m.Posts()
	if err != nil {
		return nil, err
	}
	out := make(map[uint8]uint8)
	for _, p := range posts {
		if p.Status.Class() == ClassSuccessful {
			continue
		}
		if cur, ok := out[p.Dict]; !ok || p.Prio > cur {
			out[p.Dict] = p.Prio
		}
	}

	return out, nil
}

// Reset rewinds both append pointers without erasing data. Subsequent writes
// log overwrite warnings.
func (m *Manager) Reset() {
	m.pre.Reset()
	m.post.Reset()
}
