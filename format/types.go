package format

// BackendType identifies the compression backend that produced a payload.
type BackendType uint8

const (
	BackendZlib BackendType = 0x1 // BackendZlib represents the zlib (deflate) backend.
	BackendLZ4  BackendType = 0x2 // BackendLZ4 represents the LZ4 block backend.
	BackendZstd BackendType = 0x3 // BackendZstd represents the Zstandard frame backend.
	BackendS2   BackendType = 0x4 // BackendS2 represents the S2 block backend.
	BackendNone BackendType = 0x5 // BackendNone represents the pass-through backend.
)

func (b BackendType) String() string {
	switch b {
	case BackendZlib:
		return "Zlib"
	case BackendLZ4:
		return "LZ4"
	case BackendZstd:
		return "Zstd"
	case BackendS2:
		return "S2"
	case BackendNone:
		return "None"
	default:
		return "Unknown"
	}
}

// ParseBackend maps a backend name to its BackendType.
// Both the canonical spelling printed by String and the all-lowercase
// form are accepted. Returns false if the name is not a known backend.
func ParseBackend(name string) (BackendType, bool) {
	switch name {
	case "Zlib", "zlib":
		return BackendZlib, true
	case "LZ4", "lz4":
		return BackendLZ4, true
	case "Zstd", "zstd":
		return BackendZstd, true
	case "S2", "s2":
		return BackendS2, true
	case "None", "none":
		return BackendNone, true
	default:
		return 0, false
	}
}
