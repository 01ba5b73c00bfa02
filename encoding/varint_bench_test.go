package encoding

import (
	"fmt"
	"testing"
)

func BenchmarkAppendUvarint(b *testing.B) {
	values := []struct {
		name  string
		value uint64
	}{
		{name: "1byte", value: 42},
		{name: "3byte", value: 1 << 20},
		{name: "10byte", value: 1 << 63},
	}

	for _, v := range values {
		b.Run(v.name, func(b *testing.B) {
			dst := make([]byte, 0, MaxVarintLen)
			for i := 0; i < b.N; i++ {
				dst = AppendUvarint(dst[:0], v.value)
			}
			_ = dst
		})
	}
}

func BenchmarkDecodeUvarint(b *testing.B) {
	for _, size := range []int{1, 3, 10} {
		value := uint64(42)
		if size > 1 {
			value = uint64(1) << (7 * (size - 1))
		}
		encoded := EncodeUvarint(value)

		b.Run(fmt.Sprintf("%dbyte", size), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				_, _, _ = DecodeUvarint(encoded)
			}
		})
	}
}
