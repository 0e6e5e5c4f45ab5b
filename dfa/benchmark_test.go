package dfa

import (
	"strings"
	"testing"
)

var benchCorpora = []struct {
	name string
	data []byte
}{
	{"ascii", []byte(strings.Repeat("the quick brown fox jumps over the lazy dog ", 64))},
	{"greek", []byte(strings.Repeat("αβγδεζηθικλμνξοπρστυφχψω ", 64))},
	{"cjk", []byte(strings.Repeat("漢字仮名交じり文の例です ", 64))},
	{"emoji", []byte(strings.Repeat("🤓😎🥸🤩🤯", 64))},
}

func BenchmarkValidate(b *testing.B) {
	for _, c := range benchCorpora {
		b.Run(c.name, func(b *testing.B) {
			b.SetBytes(int64(len(c.data)))
			for i := 0; i < b.N; i++ {
				if !UTF8.Validate(c.data) {
					b.Fatal("corpus invalid")
				}
			}
		})
	}
}

func BenchmarkCount(b *testing.B) {
	for _, c := range benchCorpora {
		b.Run(c.name, func(b *testing.B) {
			b.SetBytes(int64(len(c.data)))
			for i := 0; i < b.N; i++ {
				if _, err := UTF8.Count(c.data); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkDecoderStream(b *testing.B) {
	data := benchCorpora[3].data
	b.SetBytes(int64(len(data)))
	d := NewDecoder(UTF8)
	for i := 0; i < b.N; i++ {
		d.Reset()
		for _, c := range data {
			if _, st := d.Step(c); st == Rejected {
				b.Fatal("rejected")
			}
		}
	}
}
