package huffman

import (
	"bytes"
	"testing"
)

func FuzzRoundTrip(f *testing.F) {
	f.Add([]byte{})
	f.Add([]byte{0x00})
	f.Add([]byte("aaabbc"))
	f.Add([]byte("abracadabra"))
	f.Add(bytes.Repeat([]byte{0x41}, 1000))
	f.Add(allBytes())

	f.Fuzz(func(t *testing.T, input []byte) {
		artifact, err := Compress(input)
		if err != nil {
			t.Fatalf("Compress: %v", err)
		}
		out, err := Decompress(artifact)
		if err != nil {
			t.Fatalf("Decompress: %v", err)
		}
		if !bytes.Equal(input, out) {
			t.Errorf("wrong output:\n\texpect: %x\n\tactual: %x", input, out)
		}
	})
}

func FuzzDecompress(f *testing.F) {
	for _, seed := range [][]byte{
		{},
		[]byte("aaabbc"),
		bytes.Repeat([]byte{0x41}, 100),
		allBytes(),
	} {
		artifact, err := Compress(seed)
		if err != nil {
			f.Fatal(err)
		}
		f.Add(artifact)
	}

	f.Fuzz(func(t *testing.T, artifact []byte) {
		out, err := Decompress(artifact)
		if err != nil {
			if !IsCorrupt(err) {
				t.Fatalf("unexpected error kind: %v", err)
			}
			return
		}

		// Anything accepted must re-encode to something that decodes to
		// the same bytes.
		again, err := Compress(out)
		if err != nil {
			t.Fatalf("Compress: %v", err)
		}
		back, err := Decompress(again)
		if err != nil {
			t.Fatalf("Decompress: %v", err)
		}
		if !bytes.Equal(out, back) {
			t.Errorf("wrong output:\n\texpect: %x\n\tactual: %x", out, back)
		}
	})
}
