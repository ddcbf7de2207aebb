// Package tuning resolves, for each kernel name, the implementation variant
// and unroll factor the rest of internal/kernel should compile in
// (spec.md §4.15, §6 "Tuning file").
//
// In the original C library this resolution happens at preprocessor time
// from a generated header; RAPP Compute resolves it once at process start
// from a TOML document with the same shape (one table per kernel name,
// giving its winning variant tag and unroll factor), mirroring how
// lookbusy1344-arm_emulator loads its own TOML-based runtime configuration
// with github.com/BurntSushi/toml. Two environment-variable overrides stand
// in for the C build's compiler defines: RAPP_FORCE_VARIANT ("generic" or
// "swar") for FORCE_GENERIC / FORCE_SWAR, and RAPP_FORCE_UNROLL for
// FORCE_UNROLL. There is no SIMD variant and so no FORCE_SIMD counterpart.
package tuning

import (
	"os"
	"strconv"

	"github.com/BurntSushi/toml"
)

// Variant names a kernel implementation family: "generic" or "swar" (whole
// machine words rather than true vector instructions; RAPP Compute never
// emits real SIMD, see platform.VectorBytes's doc comment). Each kernel in
// internal/kernel has a single implementation and none of them consults
// Impl; the variant is only recorded in and read back from the tuning file.
type Variant string

const (
	Generic Variant = "generic"
	SWAR    Variant = "swar"
)

// Entry is one row of the generated tuning file: the winning variant and
// unroll factor for a single kernel name.
type Entry struct {
	Variant string `toml:"variant"`
	Unroll  int    `toml:"unroll"`
}

// File is the decoded shape of a tuning file: a flat map from kernel name to
// its winning Entry. An external analyzer (out of scope per spec.md §1)
// would rank candidate implementations by geometric-mean normalized
// throughput across benchmark sizes and emit this file; cmd/rappbench's
// "tune" subcommand is a stand-in for that analyzer.
type File struct {
	Kernel map[string]Entry `toml:"kernel"`
}

// Default is the tuning file baked into the module when no file is loaded:
// every kernel gets the SWAR variant with an unroll factor of 4, the same
// default the C library ships before any benchmark-driven tuning file has
// been generated for the host.
var Default = File{Kernel: map[string]Entry{}}

var active = Default

// Load replaces the active tuning table with the contents of path.
// Malformed or missing entries fall back silently to the Default table's
// per-kernel behavior (variant SWAR, unroll 4) — a kernel name the file
// never mentions has nothing to override.
func Load(path string) error {
	var f File
	if _, err := toml.DecodeFile(path, &f); err != nil {
		return err
	}
	active = f
	return nil
}

// Save writes the active tuning table to path in the same TOML shape Load
// reads.
func Save(path string) error {
	fh, err := os.Create(path)
	if err != nil {
		return err
	}
	defer fh.Close()
	return toml.NewEncoder(fh).Encode(active)
}

// Set records the winning variant/unroll for kernel name, as cmd/rappbench's
// "tune" subcommand does after benchmarking every candidate.
func Set(name string, variant Variant, unroll int) {
	if active.Kernel == nil {
		active.Kernel = map[string]Entry{}
	}
	active.Kernel[name] = Entry{Variant: string(variant), Unroll: unroll}
}

// force* mirror the C build's FORCE_GENERIC/FORCE_SWAR/FORCE_UNROLL
// compiler defines as environment-variable overrides, read once at init.
var (
	forceVariant Variant
	forceUnroll  int
)

func init() {
	switch os.Getenv("RAPP_FORCE_VARIANT") {
	case "generic":
		forceVariant = Generic
	case "swar":
		forceVariant = SWAR
	}
	if v := os.Getenv("RAPP_FORCE_UNROLL"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && (n == 1 || n == 2 || n == 4) {
			forceUnroll = n
		}
	}
}

// Unroll returns the unroll factor (1, 2 or 4) a kernel named name should
// use: a RAPP_FORCE_UNROLL override if set, else the tuning file's entry,
// else 4.
func Unroll(name string) int {
	if forceUnroll != 0 {
		return forceUnroll
	}
	if e, ok := active.Kernel[name]; ok && (e.Unroll == 1 || e.Unroll == 2 || e.Unroll == 4) {
		return e.Unroll
	}
	return 4
}

// Impl returns the implementation variant a kernel named name should use: a
// RAPP_FORCE_VARIANT override if set, else the tuning file's entry, else
// SWAR.
func Impl(name string) Variant {
	if forceVariant != "" {
		return forceVariant
	}
	if e, ok := active.Kernel[name]; ok && (Variant(e.Variant) == Generic || Variant(e.Variant) == SWAR) {
		return Variant(e.Variant)
	}
	return SWAR
}
