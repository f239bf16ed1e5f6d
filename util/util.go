package util

import (
	"bytes"
	"encoding/gob"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/exp/constraints"
	"golang.org/x/exp/slices"
)

func EnsureDir(dir string) error {
	return os.MkdirAll(dir, 0777)
}

func GatherAllMidiPaths(path string, maxNum int) ([]string, error) {
	var res []string
	walk := func(s string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			if strings.HasSuffix(s, ".mid") || strings.HasSuffix(s, ".midi") {
				if maxNum == 0 || len(res) < maxNum {
					res = append(res, s)
				}
			}
		}
		return nil
	}
	if err := filepath.WalkDir(path, walk); err != nil {
		return nil, err
	}
	return res, nil
}

// GetKeys returns the map's keys in ascending order.
func GetKeys[A constraints.Ordered, B any](m map[A]B) []A {
	keys := make([]A, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

func CreateBinary(filename string, data any) error {
	buf := new(bytes.Buffer)
	encoder := gob.NewEncoder(buf)
	if err := encoder.Encode(data); err != nil {
		return fmt.Errorf("encoding %v: %w", filename, err)
	}
	if err := os.WriteFile(filename, buf.Bytes(), 0666); err != nil {
		return fmt.Errorf("writing %v: %w", filename, err)
	}
	return nil
}

func ReadBinary[A any](path string) (A, error) {
	var data A
	f, err := os.Open(path)
	if err != nil {
		return data, fmt.Errorf("opening %v: %w", path, err)
	}
	defer f.Close()

	decoder := gob.NewDecoder(f)
	if err := decoder.Decode(&data); err != nil {
		return data, fmt.Errorf("decoding %v: %w", path, err)
	}
	return data, nil
}

func Min[A constraints.Integer](nums ...A) A {
	res := nums[0]
	for _, v := range nums[1:] {
		if v < res {
			res = v
		}
	}
	return res
}

func Max[A constraints.Integer](nums ...A) A {
	res := nums[0]
	for _, v := range nums[1:] {
		if v > res {
			res = v
		}
	}
	return res
}

func Abs[A constraints.Signed](num A) A {
	if num < 0 {
		return -num
	}
	return num
}
