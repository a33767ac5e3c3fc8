package session

import (
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/crypto/chacha20poly1305"
	"golang.org/x/crypto/hkdf"
)

// CredFile persists the bearer token across runs. The token is sealed with a
// key derived from a machine fingerprint, so copying the file to another host
// yields nothing readable. A file that fails to open or decrypt reads as "no
// credential" rather than an error: a broken token is the same as being
// logged out.
type CredFile struct {
	path string
}

const credFileName = "credential"

func NewCredFile(stateDir string) *CredFile {
	return &CredFile{path: filepath.Join(stateDir, credFileName)}
}

func (c *CredFile) Save(token string) error {
	if err := os.MkdirAll(filepath.Dir(c.path), 0o700); err != nil {
		return fmt.Errorf("create state dir: %w", err)
	}
	aead, err := newAEAD()
	if err != nil {
		return err
	}
	nonce := make([]byte, aead.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return fmt.Errorf("generate nonce: %w", err)
	}
	sealed := aead.Seal(nonce, nonce, []byte(token), nil)
	if err := os.WriteFile(c.path, sealed, 0o600); err != nil {
		return fmt.Errorf("write credential: %w", err)
	}
	return nil
}

// Load returns the persisted token, or "" when there is none (missing,
// unreadable or undecryptable file all count as none).
func (c *CredFile) Load() string {
	b, err := os.ReadFile(c.path)
	if err != nil {
		return ""
	}
	aead, err := newAEAD()
	if err != nil {
		return ""
	}
	if len(b) < aead.NonceSize() {
		return ""
	}
	nonce, sealed := b[:aead.NonceSize()], b[aead.NonceSize():]
	token, err := aead.Open(nil, nonce, sealed, nil)
	if err != nil {
		return ""
	}
	return string(token)
}

func (c *CredFile) Clear() error {
	if err := os.Remove(c.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("remove credential: %w", err)
	}
	return nil
}

func newAEAD() (cipher.AEAD, error) {
	key, err := deriveKey(machineFingerprint())
	if err != nil {
		return nil, err
	}
	return chacha20poly1305.NewX(key)
}

// deriveKey stretches the fingerprint into a 32-byte key with HKDF-SHA256.
func deriveKey(fingerprint string) ([]byte, error) {
	h := hkdf.New(sha256.New, []byte(fingerprint), nil, []byte("credential-key"))
	key := make([]byte, chacha20poly1305.KeySize)
	if _, err := io.ReadFull(h, key); err != nil {
		return nil, fmt.Errorf("derive key: %w", err)
	}
	return key, nil
}

// machineFingerprint identifies this machine well enough to bind the stored
// credential to it. Hostname is a weak fallback but always present.
func machineFingerprint() string {
	for _, p := range []string{"/etc/machine-id", "/var/lib/dbus/machine-id"} {
		if b, err := os.ReadFile(p); err == nil {
			if id := strings.TrimSpace(string(b)); id != "" {
				return id
			}
		}
	}
	host, _ := os.Hostname()
	return "host:" + host
}
