package window

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/golang/snappy"
)

// SnappySuffix marks window store files written with snappy framing.
const SnappySuffix = ".sz"

// DecodeFull reads a JSON store of full records and validates every bucket.
func DecodeFull(r io.Reader) (Full, error) {
	var s Full
	if err := json.NewDecoder(r).Decode(&s); err != nil {
		return nil, fmt.Errorf("decoding window store: %w", err)
	}
	if err := Validate(s); err != nil {
		return nil, err
	}
	return s, nil
}

// DecodeRaw reads a JSON store of raw sequence buckets.
func DecodeRaw(r io.Reader) (Tot, error) {
	var s Tot
	if err := json.NewDecoder(r).Decode(&s); err != nil {
		return nil, fmt.Errorf("decoding window store: %w", err)
	}
	return s, nil
}

// Encode writes a store as a JSON array, with null for absent windows.
func Encode[B any](w io.Writer, s Store[B]) error {
	if s == nil {
		s = Store[B]{}
	}
	if err := json.NewEncoder(w).Encode(s); err != nil {
		return fmt.Errorf("encoding window store: %w", err)
	}
	return nil
}

// ReadFullFile reads a full store from path, snappy-decoded for .sz files.
func ReadFullFile(path string) (Full, error) {
	var s Full
	err := readFile(path, func(r io.Reader) error {
		var err error
		s, err = DecodeFull(r)
		return err
	})
	return s, err
}

// ReadRawFile reads a raw store from path, snappy-decoded for .sz files.
func ReadRawFile(path string) (Tot, error) {
	var s Tot
	err := readFile(path, func(r io.Reader) error {
		var err error
		s, err = DecodeRaw(r)
		return err
	})
	return s, err
}

// WriteFile writes a store to path, snappy-encoded for .sz files.
func WriteFile[B any](path string, s Store[B]) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating file: %w", err)
	}
	defer file.Close()

	if strings.HasSuffix(path, SnappySuffix) {
		sw := snappy.NewBufferedWriter(file)
		if err := Encode(sw, s); err != nil {
			return err
		}
		if err := sw.Close(); err != nil {
			return fmt.Errorf("flushing %s: %w", path, err)
		}
	} else {
		bw := bufio.NewWriter(file)
		if err := Encode(bw, s); err != nil {
			return err
		}
		if err := bw.Flush(); err != nil {
			return fmt.Errorf("flushing %s: %w", path, err)
		}
	}

	return file.Close()
}

func readFile(path string, decode func(io.Reader) error) error {
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("opening file: %w", err)
	}
	defer file.Close()

	var r io.Reader = bufio.NewReader(file)
	if strings.HasSuffix(path, SnappySuffix) {
		r = snappy.NewReader(r)
	}
	return decode(r)
}
