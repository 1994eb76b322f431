package crc

import (
	"strings"
	"sync"
)

// Method selects which update kernel an Engine uses. All three are
// observationally equivalent; they differ only in memory footprint and
// throughput.
type Method int

const (
	// MethodWordwise is the slice-by-8 kernel. It is the default: fastest
	// for anything but tiny inputs, at the cost of an 8x256-entry table.
	MethodWordwise Method = iota
	// MethodBytewise is the slice-by-1 kernel: a single 256-entry table.
	MethodBytewise
	// MethodBitwise is the tableless, any-width kernel. Slowest, but has
	// zero setup cost and is the only kernel partial-word feeds ever use.
	MethodBitwise
)

// longJobThreshold is the byte count at which Update takes the per-engine
// mutex for the duration of the call: short updates may race on a shared
// Engine (callers are expected to serialize those themselves), but a single
// long update must not corrupt accum out from under a concurrent caller.
const longJobThreshold = 2048

// Engine is a configured CRC accumulator. The zero value is not usable;
// construct one with New.
type Engine struct {
	width  uint8
	refIn  bool
	refOut bool

	polyInt uint64
	initInt uint64
	xorOut  uint64

	accum  uint64
	result uint64
	dirty  bool

	method    Method
	byteTable *byteTable
	wordTable *wordTable

	cfg Config

	mu sync.Mutex
}

// builderConfig accumulates the optional constructor parameters before New
// resolves them against the catalogue and/or explicit fields.
type builderConfig struct {
	name      string
	hasName   bool
	width     uint8
	hasWidth  bool
	poly      uint64
	hasPoly   bool
	init      uint64
	hasInit   bool
	refIn     bool
	hasRefIn  bool
	refOut    bool
	hasRefOut bool
	xorOut    uint64
	hasXorOut bool
	method    Method
	hasMethod bool
	data      []byte
}

// Option configures a New call. Options mirror the constructor's named
// parameters: name selects a catalogue template, the individual field
// options override or (without a name) define a custom Config, Method
// picks the update kernel, and Data feeds initial bytes after construction.
type Option func(*builderConfig)

func WithName(name string) Option   { return func(b *builderConfig) { b.name = name; b.hasName = true } }
func WithWidth(w uint8) Option      { return func(b *builderConfig) { b.width = w; b.hasWidth = true } }
func WithPoly(p uint64) Option      { return func(b *builderConfig) { b.poly = p; b.hasPoly = true } }
func WithInit(v uint64) Option      { return func(b *builderConfig) { b.init = v; b.hasInit = true } }
func WithRefIn(v bool) Option       { return func(b *builderConfig) { b.refIn = v; b.hasRefIn = true } }
func WithRefOut(v bool) Option      { return func(b *builderConfig) { b.refOut = v; b.hasRefOut = true } }
func WithXorOut(v uint64) Option    { return func(b *builderConfig) { b.xorOut = v; b.hasXorOut = true } }
func WithMethod(m Method) Option    { return func(b *builderConfig) { b.method = m; b.hasMethod = true } }
func WithData(data []byte) Option   { return func(b *builderConfig) { b.data = data } }

// New constructs an Engine. If none of WithName/WithWidth/WithPoly/WithInit/
// WithRefIn/WithRefOut/WithXorOut is given, the catalogue default
// ("crc-32", i.e. CRC-32/ISO-HDLC) is used. If WithName is given it fills
// the Config first; any other field option then overrides that field.
// Without WithName, WithWidth and WithPoly are mandatory. WithMethod
// defaults to MethodWordwise. All validation happens before any Engine
// state is constructed — a failed call returns (nil, err) with no partial
// object observable.
func New(opts ...Option) (*Engine, error) {
	var b builderConfig
	for _, opt := range opts {
		opt(&b)
	}

	anyExplicit := b.hasWidth || b.hasPoly || b.hasInit || b.hasRefIn || b.hasRefOut || b.hasXorOut

	var cfg Config
	switch {
	case b.hasName:
		found, ok := FindConfig(strings.ToLower(b.name))
		if !ok {
			return nil, &unknownNameError{name: b.name}
		}
		cfg = found
	case !anyExplicit:
		found, ok := FindConfig(DefaultName)
		if !ok {
			return nil, ErrRuntime
		}
		cfg = found
	default:
		if !b.hasWidth {
			return nil, newRequiredError("width")
		}
		if !b.hasPoly {
			return nil, newRequiredError("poly")
		}
		cfg = Config{Width: b.width, Poly: b.poly}
	}

	if b.hasWidth {
		cfg.Width = b.width
	}
	if b.hasPoly {
		cfg.Poly = b.poly
	}
	if b.hasInit {
		cfg.Init = b.init
	}
	if b.hasRefIn {
		cfg.RefIn = b.refIn
	}
	if b.hasRefOut {
		cfg.RefOut = b.refOut
	}
	if b.hasXorOut {
		cfg.XorOut = b.xorOut
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	method := MethodWordwise
	if b.hasMethod {
		method = b.method
	}

	e, err := newEngine(cfg, method)
	if err != nil {
		return nil, err
	}
	if len(b.data) > 0 {
		e.Update(b.data)
	}
	return e, nil
}

// internalize computes the engine's canonical (internalized) poly/init,
// driven by RefIn: bit-reversed across width when reflected, or
// left-shifted into the high bits of the 64-bit register otherwise.
func internalize(cfg Config) (polyInt, initInt uint64) {
	if cfg.RefIn {
		return bitswap(cfg.Poly, cfg.Width), bitswap(cfg.Init, cfg.Width)
	}
	shift := 64 - cfg.Width
	return cfg.Poly << shift, cfg.Init << shift
}

// externalize inverts internalize for a single value. Nothing in the package
// calls it: the accessors return the stored external Config fields, and
// Clear's validation works directly on the external value.
func externalize(v uint64, width uint8, refIn bool) uint64 {
	if refIn {
		return bitswap(v, width)
	}
	return v >> (64 - width)
}

func newEngine(cfg Config, method Method) (*Engine, error) {
	polyInt, initInt := internalize(cfg)
	e := &Engine{
		width:   cfg.Width,
		refIn:   cfg.RefIn,
		refOut:  cfg.RefOut,
		polyInt: polyInt,
		initInt: initInt,
		xorOut:  cfg.XorOut,
		accum:   initInt,
		method:  method,
		cfg:     cfg,
	}
	switch method {
	case MethodBitwise:
	case MethodBytewise:
		e.byteTable = globalTableCache.getByteTable(cfg, polyInt, cfg.RefIn)
	case MethodWordwise:
		e.byteTable = globalTableCache.getByteTable(cfg, polyInt, cfg.RefIn)
		e.wordTable = globalTableCache.getWordTable(cfg, e.byteTable, cfg.RefIn)
	default:
		return nil, &unknownMethodError{method: "method"}
	}
	return e, nil
}

// Update feeds bytes through the engine's selected kernel. Updates are
// order-significant; Update(nil) and Update([]byte{}) are no-ops that leave
// dirty unchanged.
func (e *Engine) Update(data []byte) {
	if len(data) == 0 {
		return
	}
	long := len(data) >= longJobThreshold
	if long {
		e.mu.Lock()
		defer e.mu.Unlock()
	}
	switch e.method {
	case MethodBitwise:
		e.accum = bitwiseUpdate(e.accum, e.polyInt, e.refIn, data)
	case MethodBytewise:
		e.accum = bytewiseUpdate(e.accum, e.byteTable, data, e.refIn)
	case MethodWordwise:
		e.accum = wordwiseUpdate(e.accum, e.byteTable, e.wordTable, data, e.refIn)
	}
	e.dirty = true
}

// ZeroBytes feeds n zero bytes through the current kernel.
func (e *Engine) ZeroBytes(n int) error {
	if n < 0 {
		return newRangeError("n")
	}
	if n == 0 {
		return nil
	}
	e.Update(make([]byte, n))
	return nil
}

// ZeroBits feeds n zero bits: ⌊n/8⌋ zero bytes followed by n%8 zero bits
// through UpdateWord.
func (e *Engine) ZeroBits(n int) error {
	if n < 0 {
		return newRangeError("n")
	}
	if n == 0 {
		return nil
	}
	if full := n / 8; full > 0 {
		if err := e.ZeroBytes(full); err != nil {
			return err
		}
	}
	if rem := n % 8; rem > 0 {
		return e.UpdateWord(0, rem)
	}
	return nil
}

// Copy returns an independent Engine with the same configuration and
// accumulator state. The copy shares the (immutable) lookup tables with the
// original but has its own mutex and accumulator; updates to one never
// affect the other.
func (e *Engine) Copy() *Engine {
	e.mu.Lock()
	defer e.mu.Unlock()
	return &Engine{
		width:     e.width,
		refIn:     e.refIn,
		refOut:    e.refOut,
		polyInt:   e.polyInt,
		initInt:   e.initInt,
		xorOut:    e.xorOut,
		accum:     e.accum,
		result:    e.result,
		dirty:     e.dirty,
		method:    e.method,
		byteTable: e.byteTable,
		wordTable: e.wordTable,
		cfg:       e.cfg,
	}
}

// Clear resets the accumulator to the configured init value, or to the
// given value if one is provided. It immediately finalizes the (now empty)
// digest into the result cache and clears dirty, matching digest()'s own
// caching so that Digest() after Clear() never needs to "catch up".
func (e *Engine) Clear(init ...uint64) error {
	if len(init) > 1 {
		return newRangeError("init")
	}
	e.mu.Lock()
	defer e.mu.Unlock()

	if len(init) == 1 {
		v := init[0]
		if v > bitmask(e.width) {
			return newRangeError("init")
		}
		if e.refIn {
			e.initInt = bitswap(v, e.width)
		} else {
			e.initInt = v << (64 - e.width)
		}
		e.cfg.Init = v
	}
	e.accum = e.initInt
	e.result = e.finalizeFrom(e.accum)
	e.dirty = false
	return nil
}

// Accessors. All return externalized values.
func (e *Engine) Width() uint8     { return e.cfg.Width }
func (e *Engine) Poly() uint64     { return e.cfg.Poly }
func (e *Engine) Init() uint64     { return e.cfg.Init }
func (e *Engine) RefIn() bool      { return e.cfg.RefIn }
func (e *Engine) RefOut() bool     { return e.cfg.RefOut }
func (e *Engine) XorOut() uint64   { return e.cfg.XorOut }
func (e *Engine) Config() Config   { return e.cfg }
func (e *Engine) Method() Method   { return e.method }
func (e *Engine) Name() string     { return "crc" }
func (e *Engine) BlockSize() int   { return 1 }
func (e *Engine) DigestSize() int  { return 8 }
