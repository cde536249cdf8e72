package fs

import (
	"crypto/md5"
	"crypto/sha1"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"hash"
	"io"
	"strings"

	"github.com/spf13/afero"
)

func newHash(algo string) (hash.Hash, error) {
	switch strings.ToLower(algo) {
	case "sha256", "sha-256":
		return sha256.New(), nil
	case "sha1", "sha-1":
		return sha1.New(), nil
	case "md5":
		return md5.New(), nil
	default:
		return nil, fmt.Errorf("unsupported hash algorithm %q", algo)
	}
}

// Hash computes the checksum of the file at path on fsys using the given
// algorithm. Supported algorithms: sha256, sha1, md5.
func Hash(fsys afero.Fs, path, algo string) (string, error) {
	h, err := newHash(algo)
	if err != nil {
		return "", err
	}
	f, err := fsys.Open(path)
	if err != nil {
		return "", err
	}
	defer func() { _ = f.Close() }()
	if _, err := io.Copy(h, f); err != nil {
		return "", err
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}

// HashBytes computes the checksum of data.
func HashBytes(data []byte, algo string) (string, error) {
	h, err := newHash(algo)
	if err != nil {
		return "", err
	}
	h.Write(data)
	return hex.EncodeToString(h.Sum(nil)), nil
}

// SameContent reports whether the file at path exists and holds exactly data.
func SameContent(fsys afero.Fs, path string, data []byte) bool {
	want, err := HashBytes(data, "sha256")
	if err != nil {
		return false
	}
	got, err := Hash(fsys, path, "sha256")
	return err == nil && got == want
}
