package export

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/circulo-sport/courtdesk/clock"
	"github.com/circulo-sport/courtdesk/events"
	"github.com/circulo-sport/courtdesk/store"
	"github.com/tidwall/gjson"
)

const (
	AppTag  = "courtdesk"
	Version = 1
)

type Mode string

const (
	ModeReplace Mode = "replace"
	ModeMerge   Mode = "merge"
)

type Includes struct {
	Bookings  bool `json:"bookings"`
	Ledger    bool `json:"ledger"`
	Customers bool `json:"customers"`
	Extras    bool `json:"extras"`
}

func AllIncludes() Includes {
	return Includes{Bookings: true, Ledger: true, Customers: true, Extras: true}
}

// Range limits bookings (by date) and ledger entries (by local day of their
// timestamp). Both bounds are optional YYYY-MM-DD days, inclusive.
type Range struct {
	From string `json:"from,omitempty"`
	To   string `json:"to,omitempty"`
}

type Meta struct {
	App       string    `json:"app"`
	Version   int       `json:"version"`
	CreatedAt time.Time `json:"createdAt"`
	Includes  Includes  `json:"includes"`
	Range     *Range    `json:"range,omitempty"`
}

type File struct {
	Meta Meta                       `json:"__meta"`
	Data map[string]json.RawMessage `json:"data"`
}

type Options struct {
	Range    *Range
	Includes *Includes
}

type Service struct {
	kv     store.KV
	keys   store.Keys
	clock  clock.Clock
	events events.Publisher
	loc    *time.Location
	logger *slog.Logger
	mu     sync.Mutex
}

func NewService(kv store.KV, keys store.Keys, clk clock.Clock, publisher events.Publisher, loc *time.Location) *Service {
	if loc == nil {
		loc = time.Local
	}

	return &Service{
		kv:     kv,
		keys:   keys,
		clock:  clk,
		events: publisher,
		loc:    loc,
		logger: slog.Default().With("component", "backup"),
	}
}

// Build packs every prefixed collection into a backup file. Collections the
// service does not know about are included whole.
func (s *Service) Build(ctx context.Context, opts Options) (File, error) {
	includes := AllIncludes()

	if opts.Includes != nil {
		includes = *opts.Includes
	}

	bookingFilter, ledgerFilter, err := s.rangeFilters(opts.Range)

	if err != nil {
		return File{}, err
	}

	keys, err := s.kv.Keys(ctx, s.keys.Prefix)

	if err != nil {
		return File{}, fmt.Errorf("failed to list collections: %w", err)
	}

	data := map[string]json.RawMessage{}

	for _, key := range keys {
		raw, err := s.kv.Get(ctx, key)

		if errors.Is(err, store.ErrNotFound) {
			continue
		}

		if err != nil {
			return File{}, fmt.Errorf("failed to read collection '%v': %w", key, err)
		}

		if !gjson.ValidBytes(raw) {
			s.logger.Warn("backing up unreadable collection as empty", "key", key)
			raw = []byte("[]")
		}

		switch key {
		case s.keys.Bookings:
			if includes.Bookings {
				data[key] = filterArray(raw, bookingFilter)
			}
		case s.keys.Ledger:
			if includes.Ledger {
				data[key] = filterArray(raw, ledgerFilter)
			}
		case s.keys.Customers:
			if includes.Customers {
				data[key] = raw
			}
		case s.keys.Extras:
			if includes.Extras {
				data[key] = raw
			}
		default:
			data[key] = raw
		}
	}

	return File{
		Meta: Meta{
			App:       AppTag,
			Version:   Version,
			CreatedAt: s.clock.Now(),
			Includes:  includes,
			Range:     opts.Range,
		},
		Data: data,
	}, nil
}

// Backup builds a backup and records it as the latest one.
func (s *Service) Backup(ctx context.Context, opts Options) (File, error) {
	file, err := s.Build(ctx, opts)

	if err != nil {
		return File{}, err
	}

	if err := s.markBackup(ctx, file.Meta.CreatedAt); err != nil {
		return File{}, err
	}

	s.logger.Info("backup created", "collections", len(file.Data))

	return file, nil
}

// Restore writes the collections of a backup. Replace clears every prefixed
// key first; merge only overwrites the keys present in the file.
func (s *Service) Restore(ctx context.Context, raw []byte, mode Mode) ([]string, error) {
	if mode == "" {
		mode = ModeReplace
	}

	if mode != ModeReplace && mode != ModeMerge {
		return nil, ErrInvalidMode
	}

	if !gjson.ValidBytes(raw) {
		return nil, fmt.Errorf("%w: malformed JSON", ErrUnrecognizedBackup)
	}

	meta := gjson.GetBytes(raw, "__meta")

	if meta.Get("app").String() != AppTag {
		return nil, ErrUnrecognizedBackup
	}

	if version := meta.Get("version"); version.Exists() && version.Int() != Version {
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedVersion, version.Raw)
	}

	var file File

	if err := json.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnrecognizedBackup, err)
	}

	values := map[string][]byte{}

	for key, value := range file.Data {
		if !strings.HasPrefix(key, s.keys.Prefix) {
			s.logger.Warn("skipping foreign key in backup", "key", key)
			continue
		}

		if len(value) == 0 || string(value) == "null" {
			value = json.RawMessage("[]")
		}

		var compact bytes.Buffer

		if err := json.Compact(&compact, value); err != nil {
			return nil, fmt.Errorf("%w: collection '%v': %v", ErrUnrecognizedBackup, key, err)
		}

		values[key] = compact.Bytes()
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if mode == ModeReplace {
		existing, err := s.kv.Keys(ctx, s.keys.Prefix)

		if err != nil {
			return nil, fmt.Errorf("failed to list collections: %w", err)
		}

		for _, key := range existing {
			if err := s.kv.Delete(ctx, key); err != nil {
				return nil, fmt.Errorf("failed to clear collection '%v': %w", key, err)
			}
		}
	}

	written := make([]string, 0, len(values))

	for key := range values {
		written = append(written, key)
	}

	slices.Sort(written)

	for _, key := range written {
		if err := s.kv.Set(ctx, key, values[key]); err != nil {
			return nil, fmt.Errorf("failed to restore collection '%v': %w", key, err)
		}
	}

	s.logger.Info("backup restored", "mode", mode, "collections", written)
	s.events.Publish(events.Event{Type: events.DataRestored, At: s.clock.Now(), Payload: written})

	return written, nil
}

func (s *Service) rangeFilters(r *Range) (func(gjson.Result) bool, func(gjson.Result) bool, error) {
	if r == nil || (r.From == "" && r.To == "") {
		return nil, nil, nil
	}

	earliest, latest := time.Time{}, time.Time{}

	if r.From != "" {
		day, err := time.ParseInLocation(time.DateOnly, r.From, s.loc)

		if err != nil {
			return nil, nil, fmt.Errorf("%w: from '%v'", ErrInvalidRange, r.From)
		}

		earliest = day
	}

	if r.To != "" {
		day, err := time.ParseInLocation(time.DateOnly, r.To, s.loc)

		if err != nil {
			return nil, nil, fmt.Errorf("%w: to '%v'", ErrInvalidRange, r.To)
		}

		latest = day.AddDate(0, 0, 1).Add(-time.Nanosecond)
	}

	if r.From != "" && r.To != "" && r.From > r.To {
		return nil, nil, fmt.Errorf("%w: from is after to", ErrInvalidRange)
	}

	bookings := func(item gjson.Result) bool {
		date := item.Get("date").String()

		if date == "" {
			return false
		}

		return (r.From == "" || date >= r.From) && (r.To == "" || date <= r.To)
	}

	ledger := func(item gjson.Result) bool {
		at, ok := store.LenientTime(json.RawMessage(item.Get("at").Raw))

		if !ok {
			return false
		}

		return (earliest.IsZero() || !at.Before(earliest)) && (latest.IsZero() || !at.After(latest))
	}

	return bookings, ledger, nil
}

// filterArray keeps the array items matching keep. A nil keep returns raw
// untouched.
func filterArray(raw []byte, keep func(gjson.Result) bool) json.RawMessage {
	if keep == nil {
		return raw
	}

	parsed := gjson.ParseBytes(raw)

	if !parsed.IsArray() {
		return json.RawMessage("[]")
	}

	var buf bytes.Buffer
	buf.WriteByte('[')
	first := true

	parsed.ForEach(func(_, item gjson.Result) bool {
		if keep(item) {
			if !first {
				buf.WriteByte(',')
			}

			buf.WriteString(item.Raw)
			first = false
		}

		return true
	})

	buf.WriteByte(']')

	return buf.Bytes()
}
