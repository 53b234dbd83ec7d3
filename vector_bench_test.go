package vector

import (
	"bytes"
	"strconv"
	"testing"
)

func BenchmarkAdd(b *testing.B) {
	v, err := New()
	if err != nil {
		b.Fatal(err)
	}
	defer v.Close()

	data := []byte("benchmark-element")
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := v.Add(data); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkGet(b *testing.B) {
	v, err := New()
	if err != nil {
		b.Fatal(err)
	}
	defer v.Close()

	for i := 0; i < 1024; i++ {
		if err := v.Add([]byte(strconv.Itoa(i))); err != nil {
			b.Fatal(err)
		}
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, ok := v.Get(i & 1023); !ok {
			b.Fatal("missing element")
		}
	}
}

func BenchmarkSort(b *testing.B) {
	elems := make([][]byte, 1024)
	for i := range elems {
		elems[i] = []byte(strconv.Itoa((i * 7919) % 1024))
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		b.StopTimer()
		v, err := New(WithCapacity(1024))
		if err != nil {
			b.Fatal(err)
		}
		for _, e := range elems {
			if err := v.Add(e); err != nil {
				b.Fatal(err)
			}
		}
		b.StartTimer()

		if err := v.Sort(bytes.Compare); err != nil {
			b.Fatal(err)
		}

		b.StopTimer()
		v.Close()
		b.StartTimer()
	}
}
