// mem.go - the memory and port collaborator contracts
//
// The v86 original expresses these as IMemory/IPort, pointer+size C++
// interfaces (see original_source/v86/dev/memory.h, port.h). Translated to
// Go slices with a returned count instead of an output size parameter.
//
// (c) 2024-2026 Zayn Otley - GPLv3 or later

package cpu

// Memory is the linear address space the core reads and writes through.
// Read and Write operate on a flat byte-addressed space; the core is
// responsible for turning (segment, offset) pairs into linear addresses
// via Linear before calling either method.
type Memory interface {
	// Read copies len(out) bytes starting at addr into out, returning the
	// number of bytes actually copied. A short read leaves the remainder
	// of out untouched; the core treats a short read past the end of
	// guest memory as a zeroed tail, not an error.
	Read(addr uint32, out []byte) uint32

	// Write copies in into the address space starting at addr, returning
	// the number of bytes actually written.
	Write(addr uint32, in []byte) uint32
}

// Port is the I/O address space reached by the string I/O opcodes
// (INSB/INSW/OUTSB/OUTSW). Unlike Memory, a read may fail (an
// unmapped port), so Read reports success explicitly rather than via a
// sentinel value.
type Port interface {
	// Read returns the byte at the given port and whether it is mapped.
	Read(port uint16) (byte, bool)

	// Write stores a byte at the given port. Writes to unmapped ports
	// are silently dropped, matching real hardware bus behavior.
	Write(port uint16, v byte)
}
