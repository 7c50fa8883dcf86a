// Package mtls builds the mutual-TLS configuration the Swish API requires.
//
// Material accepts either inline PEM content or filesystem paths, matching
// how merchants usually receive their Swish certificates.
package mtls

import (
	"crypto/tls"
	"crypto/x509"
	"encoding/pem"
	"errors"
	"fmt"
	"os"
	"strings"
)

// Sentinel errors so callers can tell which part of the material is broken.
var (
	ErrCertificate = errors.New("mtls: invalid certificate")
	ErrKey         = errors.New("mtls: invalid key")
	ErrCA          = errors.New("mtls: invalid ca")
)

// Material holds the client certificate, private key and CA bundle in PEM
// form, plus an optional passphrase for an encrypted key.
type Material struct {
	Cert       []byte
	Key        []byte
	CA         []byte
	Passphrase string
}

// Empty reports whether no TLS material was configured at all.
func (m Material) Empty() bool {
	return len(m.Cert) == 0 && len(m.Key) == 0 && len(m.CA) == 0
}

// LoadPEM resolves a certificate source: inline PEM content is returned
// as-is, anything else is treated as a file path.
func LoadPEM(src string) ([]byte, error) {
	if strings.Contains(src, "-----BEGIN") {
		return []byte(src), nil
	}
	b, err := os.ReadFile(src)
	if err != nil {
		return nil, fmt.Errorf("read pem file %q: %w", src, err)
	}
	return b, nil
}

// Config assembles a *tls.Config from the material. Failures wrap
// ErrCertificate, ErrKey or ErrCA depending on which input is at fault.
func (m Material) Config() (*tls.Config, error) {
	cfg := &tls.Config{MinVersion: tls.VersionTLS12}

	if len(m.Cert) > 0 || len(m.Key) > 0 {
		if len(m.Cert) == 0 {
			return nil, ErrCertificate
		}
		if len(m.Key) == 0 {
			return nil, ErrKey
		}
		keyPEM, err := decryptKeyPEM(m.Key, m.Passphrase)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrKey, err)
		}
		pair, err := tls.X509KeyPair(m.Cert, keyPEM)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrCertificate, err)
		}
		cfg.Certificates = []tls.Certificate{pair}
	}

	if len(m.CA) > 0 {
		pool := x509.NewCertPool()
		if !pool.AppendCertsFromPEM(m.CA) {
			return nil, ErrCA
		}
		cfg.RootCAs = pool
	}

	return cfg, nil
}

// decryptKeyPEM decrypts a legacy PEM-encrypted private key with the given
// passphrase. Unencrypted keys pass through untouched.
func decryptKeyPEM(keyPEM []byte, passphrase string) ([]byte, error) {
	block, _ := pem.Decode(keyPEM)
	if block == nil {
		return nil, errors.New("no PEM block found")
	}
	//nolint:staticcheck // Swish merchant keys are still issued in this format.
	if !x509.IsEncryptedPEMBlock(block) {
		return keyPEM, nil
	}
	//nolint:staticcheck
	der, err := x509.DecryptPEMBlock(block, []byte(passphrase))
	if err != nil {
		return nil, fmt.Errorf("decrypt pem block: %w", err)
	}
	return pem.EncodeToMemory(&pem.Block{Type: block.Type, Bytes: der}), nil
}
